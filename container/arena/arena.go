// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package arena provides a slab allocator for the nodes of linked
// data structures. Nodes are addressed by stable integer handles rather
// than pointers so that back references (parent, sibling, left/right)
// are plain, non-owning indices.
package arena

import (
	"fmt"
	"iter"

	"cloudeng.io/algo/container/bitmap"
)

// Handle identifies a node allocated from an Arena.
type Handle int

// Nil is the handle that refers to no node.
const Nil Handle = -1

// Arena is a slab of T's. Freed slots are reused, most recently freed
// first.
type Arena[T any] struct {
	slots []T
	live  bitmap.T
	free  []Handle
	n     int
}

// New returns an Arena with room for size nodes before it needs to grow.
func New[T any](size int) *Arena[T] {
	return &Arena[T]{
		slots: make([]T, 0, size),
		live:  bitmap.New(size),
	}
}

// Len returns the number of live nodes.
func (a *Arena[T]) Len() int {
	return a.n
}

// Cap returns the number of slots, live or free.
func (a *Arena[T]) Cap() int {
	return len(a.slots)
}

// Alloc stores v in a free slot and returns its handle.
func (a *Arena[T]) Alloc(v T) Handle {
	var h Handle
	if l := len(a.free); l > 0 {
		h = a.free[l-1]
		a.free = a.free[:l-1]
		a.slots[h] = v
	} else {
		h = Handle(len(a.slots))
		a.slots = append(a.slots, v)
		for int(h) >= len(a.live)*64 {
			a.live = append(a.live, 0)
		}
	}
	a.live.SetUnsafe(int(h))
	a.n++
	return h
}

// Free returns the slot for h to the free list.
func (a *Arena[T]) Free(h Handle) {
	a.mustBeLive(h)
	var zero T
	a.slots[h] = zero
	a.live.ClearUnsafe(int(h))
	a.free = append(a.free, h)
	a.n--
}

// Valid returns true if h refers to a live node.
func (a *Arena[T]) Valid(h Handle) bool {
	return h >= 0 && int(h) < len(a.slots) && a.live.IsSetUnsafe(int(h))
}

// Get returns a pointer to the node for h. The pointer is only valid until
// the next call to Alloc. Get panics if h is not live.
func (a *Arena[T]) Get(h Handle) *T {
	a.mustBeLive(h)
	return &a.slots[h]
}

// All returns an iterator over the handles of all live nodes in
// allocation slot order.
func (a *Arena[T]) All() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for i := range len(a.slots) {
			if !a.live.IsSetUnsafe(i) {
				continue
			}
			if !yield(Handle(i)) {
				return
			}
		}
	}
}

// Reset frees every node, retaining the allocated storage.
func (a *Arena[T]) Reset() {
	clear(a.slots)
	a.slots = a.slots[:0]
	clear(a.live)
	a.free = a.free[:0]
	a.n = 0
}

func (a *Arena[T]) mustBeLive(h Handle) {
	if !a.Valid(h) {
		panic(fmt.Sprintf("arena: invalid handle %d (slots %d)", h, len(a.slots)))
	}
}
