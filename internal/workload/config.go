// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package workload runs configurable sequences of heap operations against
// the heaps in cloudeng.io/pqueue/container and checks that they are
// extracted in order and that the heaps remain structurally sound.
package workload

import (
	"context"
	"fmt"
	"math/rand"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
)

// Random describes randomly generated keys.
type Random struct {
	N            int    `yaml:"n" cmd:"number of keys to generate"`
	Seed         int64  `yaml:"seed" cmd:"seed for the random number generator"`
	Max          int    `yaml:"max" cmd:"keys are generated in the range [0, max)"`
	Distribution string `yaml:"distribution" cmd:"uniform or zipf, defaults to uniform"`
}

// Spec describes a single workload.
type Spec struct {
	Name         string   `yaml:"name" cmd:"name of the workload"`
	Kinds        []string `yaml:"kinds" cmd:"heap kinds to run the workload against, defaults to all kinds"`
	Keys         []int    `yaml:"keys" cmd:"explicit keys to insert"`
	Random       *Random  `yaml:"random" cmd:"randomly generated keys, appended to any explicit keys"`
	ExtractEvery int      `yaml:"extract_every" cmd:"extract the minimum after every n inserts"`
	MergeBatches int      `yaml:"merge_batches" cmd:"build n separate heaps and merge them, binomial only"`
	Validate     bool     `yaml:"validate" cmd:"validate heap structure after every operation"`
}

// Config is a set of workloads.
type Config struct {
	Workloads []Spec `yaml:"workloads" cmd:"the workloads to run"`
}

// ParseConfig parses a YAML workload configuration.
func ParseConfig(spec []byte) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfig(spec, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.validate()
}

// ParseConfigFile parses a YAML workload configuration file.
func ParseConfigFile(file string) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFile(context.Background(), file, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%v: %w", file, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	errs := errors.M{}
	for i, s := range c.Workloads {
		errs.Append(s.validate(i))
	}
	return errs.Err()
}

func (s Spec) validate(i int) error {
	name := s.Name
	if len(name) == 0 {
		name = fmt.Sprintf("workload #%d", i)
	}
	errs := errors.M{}
	if len(s.Keys) == 0 && s.Random == nil {
		errs.Append(fmt.Errorf("%v: neither keys nor random are specified", name))
	}
	if r := s.Random; r != nil {
		if r.N < 0 || r.Max <= 0 {
			errs.Append(fmt.Errorf("%v: random.n must be >= 0 and random.max > 0", name))
		}
		switch r.Distribution {
		case "", "uniform", "zipf":
		default:
			errs.Append(fmt.Errorf("%v: unsupported distribution %q", name, r.Distribution))
		}
	}
	if s.ExtractEvery < 0 || s.MergeBatches < 0 {
		errs.Append(fmt.Errorf("%v: extract_every and merge_batches must not be negative", name))
	}
	for _, k := range s.kinds() {
		if _, ok := factories[k]; !ok {
			errs.Append(fmt.Errorf("%v: unsupported heap kind %q", name, k))
			continue
		}
		if s.MergeBatches > 1 && !supportsMerge(k) {
			errs.Append(fmt.Errorf("%v: heap kind %q does not support merge", name, k))
		}
	}
	if s.MergeBatches > 1 && s.ExtractEvery > 0 {
		errs.Append(fmt.Errorf("%v: merge_batches and extract_every are mutually exclusive", name))
	}
	return errs.Err()
}

func (s Spec) kinds() []string {
	if len(s.Kinds) == 0 {
		return Kinds()
	}
	return s.Kinds
}

// keys returns the explicit keys followed by any randomly generated ones.
func (s Spec) keys() []int {
	keys := append([]int{}, s.Keys...)
	r := s.Random
	if r == nil || r.N == 0 {
		return keys
	}
	rnd := rand.New(rand.NewSource(r.Seed)) // #nosec: G404
	switch r.Distribution {
	case "zipf":
		gen := rand.NewZipf(rnd, 3.0, 1.1, uint64(r.Max-1))
		for i := 0; i < r.N; i++ {
			keys = append(keys, int(gen.Uint64()))
		}
	default:
		for i := 0; i < r.N; i++ {
			keys = append(keys, rnd.Intn(r.Max))
		}
	}
	return keys
}
