// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package workload

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/pqueue"
	"cloudeng.io/pqueue/container/binomial"
)

// Result records the outcome of running a workload against one heap kind.
type Result struct {
	Workload    string        `yaml:"workload" json:"workload"`
	Kind        string        `yaml:"kind" json:"kind"`
	Inserted    int           `yaml:"inserted" json:"inserted"`
	Extracted   int           `yaml:"extracted" json:"extracted"`
	Merged      int           `yaml:"merged,omitempty" json:"merged,omitempty"`
	Validations int           `yaml:"validations" json:"validations"`
	Duration    time.Duration `yaml:"duration" json:"duration"`
	Error       string        `yaml:"error,omitempty" json:"error,omitempty"`
}

// Report contains the results of running all of the workloads in a Config.
type Report struct {
	Results []Result `yaml:"results" json:"results"`
}

// Run runs every workload in cfg against each of its heap kinds. It
// returns a Report containing a Result for every workload and kind that
// was run and an error that combines all of the failures encountered.
// Run stops early if ctx is canceled.
func Run(ctx context.Context, cfg Config) (Report, error) {
	var report Report
	errs := errors.M{}
	for i, spec := range cfg.Workloads {
		if len(spec.Name) == 0 {
			spec.Name = fmt.Sprintf("workload-%d", i)
		}
		keys := spec.keys()
		for _, kind := range spec.kinds() {
			if err := ctx.Err(); err != nil {
				errs.Append(err)
				return report, errs.Err()
			}
			res, err := runOne(ctx, spec, kind, keys)
			if err != nil {
				res.Error = err.Error()
				errs.Append(fmt.Errorf("%v: %v: %w", spec.Name, kind, err))
			}
			report.Results = append(report.Results, res)
		}
	}
	return report, errs.Err()
}

type runner struct {
	spec    Spec
	kind    string
	queue   Queue
	res     *Result
	lastMin int
}

func runOne(ctx context.Context, spec Spec, kind string, keys []int) (Result, error) {
	logger := ctxlog.Logger(ctx).With("workload", spec.Name, "kind", kind)
	res := Result{Workload: spec.Name, Kind: kind}
	q, err := New(kind)
	if err != nil {
		return res, err
	}
	r := &runner{spec: spec, kind: kind, queue: q, res: &res}
	logger.Info("starting", "keys", len(keys))
	start := time.Now()
	err = r.run(ctx, keys)
	res.Duration = time.Since(start)
	if err != nil {
		logger.Error("failed", "error", err)
		return res, err
	}
	logger.Info("finished", "inserted", res.Inserted, "extracted", res.Extracted, "validations", res.Validations, "duration", res.Duration)
	return res, nil
}

func (r *runner) run(ctx context.Context, keys []int) error {
	if r.spec.MergeBatches > 1 {
		if err := r.merge(ctx, keys); err != nil {
			return err
		}
	} else {
		if err := r.insert(ctx, keys); err != nil {
			return err
		}
	}
	if err := r.drain(ctx); err != nil {
		return err
	}
	return r.checkEmpty()
}

func (r *runner) validate(ctx context.Context, q Queue, op string) error {
	if !r.spec.Validate {
		return nil
	}
	r.res.Validations++
	if err := q.Validate(); err != nil {
		return fmt.Errorf("after %v: %w", op, err)
	}
	ctxlog.Logger(ctx).Debug("validated", "workload", r.spec.Name, "kind", r.kind, "op", op, "len", q.Len())
	return nil
}

func (r *runner) insert(ctx context.Context, keys []int) error {
	for i, k := range keys {
		r.queue.Insert(k)
		r.res.Inserted++
		if err := r.validate(ctx, r.queue, "insert"); err != nil {
			return err
		}
		if n := r.spec.ExtractEvery; n > 0 && (i+1)%n == 0 {
			if err := r.extract(ctx, false); err != nil {
				return err
			}
		}
	}
	return nil
}

// merge distributes keys round robin over separate heaps and then merges
// them all into the workload's heap.
func (r *runner) merge(ctx context.Context, keys []int) error {
	dst, ok := r.queue.(*binomial.Heap)
	if !ok {
		return fmt.Errorf("heap kind %q does not support merge", r.kind)
	}
	batches := make([]*binomial.Heap, r.spec.MergeBatches)
	for i := range batches {
		batches[i] = binomial.New()
	}
	for i, k := range keys {
		batches[i%len(batches)].Insert(k)
		r.res.Inserted++
	}
	for _, b := range batches {
		if err := r.validate(ctx, b, "insert"); err != nil {
			return err
		}
		want := dst.Len() + b.Len()
		dst.Merge(b)
		r.res.Merged++
		if got := dst.Len(); got != want {
			return fmt.Errorf("merge: got %d keys, want %d", got, want)
		}
		if !b.IsEmpty() {
			return fmt.Errorf("merge: donor heap is not empty")
		}
		if err := r.validate(ctx, dst, "merge"); err != nil {
			return err
		}
	}
	return nil
}

// extract removes the minimum and checks that it is no larger than the
// new minimum. When ordered is true it also checks that it is no smaller
// than the previously extracted key.
func (r *runner) extract(ctx context.Context, ordered bool) error {
	k, err := r.queue.ExtractMin()
	if err != nil {
		return err
	}
	if ordered && r.res.Extracted > 0 && k < r.lastMin {
		return fmt.Errorf("extracted %d after %d", k, r.lastMin)
	}
	r.lastMin = k
	r.res.Extracted++
	if next, err := r.queue.Min(); err == nil && next < k {
		return fmt.Errorf("extracted %d but %d remains", k, next)
	}
	if err := r.validate(ctx, r.queue, "extract"); err != nil {
		return err
	}
	return r.validateConsolidated()
}

// consolidator is implemented by heaps that restructure themselves on
// extraction such that no two roots have the same degree.
type consolidator interface {
	ValidateConsolidated() error
}

func (r *runner) validateConsolidated() error {
	c, ok := r.queue.(consolidator)
	if !r.spec.Validate || !ok {
		return nil
	}
	if err := c.ValidateConsolidated(); err != nil {
		return fmt.Errorf("after extract: %w", err)
	}
	return nil
}

func (r *runner) drain(ctx context.Context) error {
	want := r.res.Inserted - r.res.Extracted
	if got := r.queue.Len(); got != want {
		return fmt.Errorf("heap contains %d keys, want %d", got, want)
	}
	// Keys extracted during the insert phase need not be ordered with
	// respect to those that remain.
	drained := r.res.Extracted
	for !r.queue.IsEmpty() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.extract(ctx, r.res.Extracted > drained); err != nil {
			return err
		}
	}
	if got := r.res.Extracted; got != r.res.Inserted {
		return fmt.Errorf("extracted %d keys, inserted %d", got, r.res.Inserted)
	}
	return nil
}

// checkEmpty ensures that an empty heap reports ErrEmptyHeap and
// remains usable.
func (r *runner) checkEmpty() error {
	if _, err := r.queue.ExtractMin(); !errors.Is(err, pqueue.ErrEmptyHeap) {
		return fmt.Errorf("extract from empty heap: got %v, want %v", err, pqueue.ErrEmptyHeap)
	}
	r.queue.Insert(1)
	if k, err := r.queue.ExtractMin(); err != nil || k != 1 {
		return fmt.Errorf("heap not usable after becoming empty: got %d, %v", k, err)
	}
	if !r.queue.IsEmpty() {
		return fmt.Errorf("heap not empty")
	}
	return nil
}
