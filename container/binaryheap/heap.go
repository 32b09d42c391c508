// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package binaryheap provides an array backed binary min-heap of integers.
package binaryheap

import (
	"cloudeng.io/pqueue"
)

// Heap is a binary min-heap stored as a complete binary tree in a slice,
// with the root at index 0 and the children of i at 2i+1 and 2i+2.
type Heap struct {
	keys []int
}

// New returns a new Heap configured by the supplied options.
func New(opts ...Option) *Heap {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if o.keys != nil {
		h := &Heap{keys: o.keys}
		h.heapify()
		return h
	}
	return &Heap{keys: make([]int, 0, o.sliceCap)}
}

// Len returns the number of keys in the heap.
func (h *Heap) Len() int {
	return len(h.keys)
}

// IsEmpty returns true if the heap contains no keys.
func (h *Heap) IsEmpty() bool {
	return len(h.keys) == 0
}

// Insert adds key to the heap in O(log n) time.
func (h *Heap) Insert(key int) {
	h.keys = append(h.keys, key)
	h.up(len(h.keys) - 1)
}

// Min returns the smallest key without removing it.
func (h *Heap) Min() (int, error) {
	if len(h.keys) == 0 {
		return 0, pqueue.ErrEmptyHeap
	}
	return h.keys[0], nil
}

// ExtractMin removes and returns the smallest key in O(log n) time.
func (h *Heap) ExtractMin() (int, error) {
	n := len(h.keys) - 1
	if n < 0 {
		return 0, pqueue.ErrEmptyHeap
	}
	k := h.keys[0]
	h.keys[0] = h.keys[n]
	h.keys = h.keys[:n]
	h.down(0, n)
	return k, nil
}

// heapify uses Floyd's algorithm to establish the heap property
// over the initial data.
func (h *Heap) heapify() {
	n := len(h.keys)
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}
}

func (h *Heap) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || h.keys[i] <= h.keys[j] {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *Heap) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.keys[j2] < h.keys[j1] {
			j = j2 // right child
		}
		if h.keys[j] >= h.keys[i] {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}

func (h *Heap) swap(i, j int) {
	h.keys[i], h.keys[j] = h.keys[j], h.keys[i]
}
