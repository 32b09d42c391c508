// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package fibonacci provides a Fibonacci min-heap of integers.
//
// The roots of the heap's trees form a circular doubly linked ring, as do
// the children of every node. Insert is O(1), it simply adds a new root
// to the ring. ExtractMin is O(log n) amortized and is where all of the
// restructuring takes place: the children of the minimum are promoted to
// the root ring, which is then consolidated so that no two roots have the
// same degree.
package fibonacci

import (
	"math/bits"

	"cloudeng.io/pqueue"
	"cloudeng.io/pqueue/container/arena"
	"cloudeng.io/pqueue/container/ring"
)

type node struct {
	ring.Links
	key    int
	degree int  // number of direct children.
	mark   bool // reserved for decrease-key, always false.
	parent arena.Handle
	child  arena.Handle // any member of the child ring.
}

type linker struct {
	*arena.Arena[node]
}

func (l linker) Links(h arena.Handle) *ring.Links {
	return &l.Get(h).Links
}

// Heap is a Fibonacci min-heap. The zero value is not usable, use New.
type Heap struct {
	nodes *arena.Arena[node]
	rings linker
	min   arena.Handle
	n     int
}

// New returns an empty Heap.
func New() *Heap {
	nodes := arena.New[node](0)
	return &Heap{
		nodes: nodes,
		rings: linker{nodes},
		min:   arena.Nil,
	}
}

// Len returns the number of keys in the heap.
func (h *Heap) Len() int {
	return h.n
}

// IsEmpty returns true if the heap contains no keys.
func (h *Heap) IsEmpty() bool {
	return h.min == arena.Nil
}

func (h *Heap) get(x arena.Handle) *node {
	return h.nodes.Get(x)
}

// Insert adds key to the root ring, no consolidation takes place.
func (h *Heap) Insert(key int) {
	x := h.nodes.Alloc(node{
		key:    key,
		parent: arena.Nil,
		child:  arena.Nil,
	})
	ring.Init(h.rings, x)
	if h.min == arena.Nil {
		h.min = x
	} else {
		ring.InsertAfter(h.rings, h.min, x)
		if key < h.get(h.min).key {
			h.min = x
		}
	}
	h.n++
}

// Min returns the smallest key without removing it.
func (h *Heap) Min() (int, error) {
	if h.min == arena.Nil {
		return 0, pqueue.ErrEmptyHeap
	}
	return h.get(h.min).key, nil
}

// ExtractMin removes and returns the smallest key.
func (h *Heap) ExtractMin() (int, error) {
	z := h.min
	if z == arena.Nil {
		return 0, pqueue.ErrEmptyHeap
	}
	zn := h.get(z)
	if c := zn.child; c != arena.Nil {
		for x := range ring.All(h.rings, c) {
			h.get(x).parent = arena.Nil
		}
		ring.Splice(h.rings, z, c)
	}
	key := zn.key
	if next := ring.Remove(h.rings, z); next == arena.Nil {
		h.min = arena.Nil
	} else {
		h.min = next
		h.consolidate()
	}
	h.nodes.Free(z)
	h.n--
	return key, nil
}

// link removes y from its ring and makes it a child of x.
func (h *Heap) link(y, x arena.Handle) {
	ring.Remove(h.rings, y)
	yn, xn := h.get(y), h.get(x)
	yn.parent = x
	yn.mark = false
	if xn.child == arena.Nil {
		xn.child = y
	} else {
		ring.InsertAfter(h.rings, xn.child, y)
	}
	xn.degree++
}

// consolidate links roots of equal degree until every root has a distinct
// degree and then rebuilds the root ring and recomputes the minimum.
func (h *Heap) consolidate() {
	// Linking modifies the root ring, so work from a snapshot.
	roots := ring.Members(h.rings, h.min)
	byDegree := make([]arena.Handle, bits.Len(uint(h.n))+4)
	for i := range byDegree {
		byDegree[i] = arena.Nil
	}
	for _, x := range roots {
		d := h.get(x).degree
		for {
			for d >= len(byDegree) {
				byDegree = append(byDegree, arena.Nil)
			}
			y := byDegree[d]
			if y == arena.Nil {
				break
			}
			if h.get(x).key > h.get(y).key {
				x, y = y, x
			}
			h.link(y, x)
			byDegree[d] = arena.Nil
			d++
		}
		byDegree[d] = x
	}
	h.min = arena.Nil
	for _, x := range byDegree {
		if x == arena.Nil {
			continue
		}
		ring.Init(h.rings, x)
		if h.min == arena.Nil {
			h.min = x
			continue
		}
		ring.InsertAfter(h.rings, h.min, x)
		if h.get(x).key < h.get(h.min).key {
			h.min = x
		}
	}
}

// RootDegrees returns the degrees of the roots in ring order starting
// with the minimum.
func (h *Heap) RootDegrees() []int {
	var d []int
	for x := range ring.All(h.rings, h.min) {
		d = append(d, h.get(x).degree)
	}
	return d
}
