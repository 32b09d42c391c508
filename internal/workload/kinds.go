// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package workload

import (
	"fmt"
	"slices"

	"cloudeng.io/pqueue"
	"cloudeng.io/pqueue/container/binaryheap"
	"cloudeng.io/pqueue/container/binomial"
	"cloudeng.io/pqueue/container/fibonacci"
)

// Queue is implemented by all of the heaps that a workload can be run
// against.
type Queue interface {
	pqueue.Interface
	Min() (int, error)
	Validate() error
}

// Supported heap kinds.
const (
	Binary    = "binary"
	Binomial  = "binomial"
	Fibonacci = "fibonacci"
)

var factories = map[string]func() Queue{
	Binary:    func() Queue { return binaryheap.New() },
	Binomial:  func() Queue { return binomial.New() },
	Fibonacci: func() Queue { return fibonacci.New() },
}

// Kinds returns the supported heap kinds in sorted order.
func Kinds() []string {
	k := make([]string, 0, len(factories))
	for name := range factories {
		k = append(k, name)
	}
	slices.Sort(k)
	return k
}

// New returns an empty heap of the specified kind.
func New(kind string) (Queue, error) {
	fn, ok := factories[kind]
	if !ok {
		return nil, fmt.Errorf("unsupported heap kind %q, must be one of %v", kind, Kinds())
	}
	return fn(), nil
}

// supportsMerge returns true for the kinds that can merge whole heaps.
func supportsMerge(kind string) bool {
	return kind == Binomial
}
