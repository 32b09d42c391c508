// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package workload_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/pqueue/internal/workload"
)

func TestRun(t *testing.T) {
	cfg, err := workload.ParseConfig([]byte(exampleConfig))
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	report, err := workload.Run(ctx, cfg)
	if err != nil {
		t.Fatal(err)
	}
	// explicit: 2 kinds, uniform: 3 kinds, zipf-merge: 1 kind.
	if got, want := len(report.Results), 6; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for _, r := range report.Results {
		if len(r.Error) > 0 {
			t.Errorf("%v: %v: %v", r.Workload, r.Kind, r.Error)
		}
		if got, want := r.Extracted, r.Inserted; got != want {
			t.Errorf("%v: %v: got %v, want %v", r.Workload, r.Kind, got, want)
		}
	}

	explicit := report.Results[0]
	if got, want := explicit.Inserted, 5; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// one validation per insert and per extract.
	if got, want := explicit.Validations, 10; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	uniform := report.Results[2]
	if got, want := uniform.Workload, "uniform"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := uniform.Validations, 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	merged := report.Results[5]
	if got, want := merged.Kind, workload.Binomial; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := merged.Merged, 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := merged.Inserted, 64; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	logs := out.String()
	for _, s := range []string{`"msg":"starting"`, `"msg":"finished"`, `"msg":"validated"`, `"workload":"zipf-merge"`} {
		if !strings.Contains(logs, s) {
			t.Errorf("logs do not contain %v", s)
		}
	}
}

func TestRunValidatedMerge(t *testing.T) {
	cfg := workload.Config{Workloads: []workload.Spec{{
		Kinds:        []string{workload.Binomial},
		Random:       &workload.Random{N: 100, Seed: 3, Max: 10},
		MergeBatches: 7,
		Validate:     true,
	}}}
	report, err := workload.Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	r := report.Results[0]
	if got, want := r.Workload, "workload-0"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := r.Merged, 7; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// 7 donor validations, 7 merge validations and 100 extracts.
	if got, want := r.Validations, 114; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRunCanceled(t *testing.T) {
	cfg, err := workload.ParseConfig([]byte(exampleConfig))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := workload.Run(ctx, cfg)
	if err == nil || !strings.Contains(err.Error(), context.Canceled.Error()) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if got, want := len(report.Results), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRunUnsupportedMerge(t *testing.T) {
	// Run does not require a validated config.
	cfg := workload.Config{Workloads: []workload.Spec{{
		Name:         "merge",
		Kinds:        []string{workload.Fibonacci, workload.Binomial},
		Keys:         []int{5, 4, 3, 2, 1},
		MergeBatches: 2,
	}}}
	report, err := workload.Run(context.Background(), cfg)
	if err == nil || !strings.Contains(err.Error(), `merge: fibonacci: heap kind "fibonacci" does not support merge`) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if got, want := len(report.Results), 2; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if len(report.Results[0].Error) == 0 {
		t.Errorf("expected an error for the fibonacci heap")
	}
	if len(report.Results[1].Error) != 0 {
		t.Errorf("unexpected error for the binomial heap: %v", report.Results[1].Error)
	}
}
