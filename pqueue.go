// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pqueue defines the contract shared by the integer min priority
// queues in cloudeng.io/pqueue/container: a binary heap, a binomial heap
// and a Fibonacci heap. None of the implementations are safe for
// concurrent use.
package pqueue

import (
	"cloudeng.io/errors"
)

// ErrEmptyHeap is returned by ExtractMin and Min when the heap contains
// no elements.
var ErrEmptyHeap = errors.New("pqueue: empty heap")

// Interface is implemented by all of the heaps in this module.
type Interface interface {
	// Insert adds key to the heap.
	Insert(key int)
	// ExtractMin removes and returns the smallest key, or ErrEmptyHeap.
	ExtractMin() (int, error)
	// IsEmpty returns true if the heap contains no elements.
	IsEmpty() bool
	// Len returns the number of elements in the heap.
	Len() int
}

// Drain extracts every element from q, returning them in the order
// in which they were extracted.
func Drain(q Interface) []int {
	out := make([]int, 0, q.Len())
	for !q.IsEmpty() {
		k, err := q.ExtractMin()
		if err != nil {
			break
		}
		out = append(out, k)
	}
	return out
}

// InsertAll inserts all of the supplied keys into q.
func InsertAll(q Interface, keys ...int) {
	for _, k := range keys {
		q.Insert(k)
	}
}

// IsSorted returns the index of the first element that is smaller than
// its predecessor, or -1 if keys is in non-decreasing order.
func IsSorted(keys []int) int {
	for i := 1; i < len(keys); i++ {
		if keys[i] < keys[i-1] {
			return i
		}
	}
	return -1
}
