// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package workload_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"cloudeng.io/pqueue/internal/workload"
)

const exampleConfig = `workloads:
  - name: explicit
    kinds: [binary, fibonacci]
    keys: [3, 1, 4, 1, 5]
    validate: true
  - name: uniform
    random: {n: 100, seed: 1, max: 1000}
    extract_every: 3
  - name: zipf-merge
    kinds: [binomial]
    random: {n: 64, seed: 2, max: 50, distribution: zipf}
    merge_batches: 4
`

func TestParseConfig(t *testing.T) {
	cfg, err := workload.ParseConfig([]byte(exampleConfig))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(cfg.Workloads), 3; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	w := cfg.Workloads[0]
	if got, want := w.Keys, []int{3, 1, 4, 1, 5}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := w.Kinds, []string{"binary", "fibonacci"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if !w.Validate {
		t.Errorf("validate should be set")
	}
	r := cfg.Workloads[1].Random
	if r == nil || r.N != 100 || r.Seed != 1 || r.Max != 1000 {
		t.Errorf("unexpected random spec: %+v", r)
	}
	if got, want := cfg.Workloads[1].ExtractEvery, 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.Workloads[2].Random.Distribution, "zipf"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.Workloads[2].MergeBatches, 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "workloads.yaml")
	if err := os.WriteFile(file, []byte(exampleConfig), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := workload.ParseConfigFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(cfg.Workloads), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := workload.ParseConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestConfigErrors(t *testing.T) {
	for i, tc := range []struct {
		config string
		errs   []string
	}{
		{`workloads:
  - name: none
`, []string{"none: neither keys nor random are specified"}},
		{`workloads:
  - name: bad-kind
    kinds: [pairing]
    keys: [1]
`, []string{`bad-kind: unsupported heap kind "pairing"`}},
		{`workloads:
  - name: bad-merge
    kinds: [binary, fibonacci]
    keys: [1]
    merge_batches: 2
`, []string{`bad-merge: heap kind "binary" does not support merge`,
			`bad-merge: heap kind "fibonacci" does not support merge`}},
		{`workloads:
  - name: bad-random
    random: {n: 10, max: 0, distribution: normal}
`, []string{"bad-random: random.n must be >= 0 and random.max > 0",
			`bad-random: unsupported distribution "normal"`}},
		{`workloads:
  - keys: [1]
    kinds: [binomial]
    extract_every: 1
    merge_batches: 2
`, []string{"workload #0: merge_batches and extract_every are mutually exclusive"}},
		{`workloads:
  - keys: [1]
    extract_every: -1
`, []string{"workload #0: extract_every and merge_batches must not be negative"}},
	} {
		_, err := workload.ParseConfig([]byte(tc.config))
		if err == nil {
			t.Errorf("%v: expected an error", i)
			continue
		}
		for _, e := range tc.errs {
			if !strings.Contains(err.Error(), e) {
				t.Errorf("%v: %q does not contain %q", i, err, e)
			}
		}
	}

	_, err := workload.ParseConfig([]byte("workloads: [1, 2"))
	if err == nil {
		t.Errorf("expected a yaml syntax error")
	}
}

func TestKinds(t *testing.T) {
	if got, want := workload.Kinds(), []string{"binary", "binomial", "fibonacci"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, k := range workload.Kinds() {
		q, err := workload.New(k)
		if err != nil {
			t.Fatal(err)
		}
		if !q.IsEmpty() {
			t.Errorf("%v: new heap is not empty", k)
		}
	}
	if _, err := workload.New("pairing"); err == nil {
		t.Errorf("expected an error for an unsupported kind")
	}
}
