// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package binomial provides a binomial min-heap of integers.
//
// The heap is a forest of binomial trees whose roots are kept in a singly
// linked root list ordered by increasing degree, with at most one tree of
// any given degree. A tree of degree d contains exactly 2^d nodes and the
// children of its root, from left to right, are binomial trees of degree
// d-1 down to 0. Nodes are allocated from an arena and refer to each other
// by handle.
package binomial

import (
	"cloudeng.io/pqueue"
	"cloudeng.io/pqueue/container/arena"
)

type node struct {
	key     int
	degree  int
	parent  arena.Handle
	child   arena.Handle // leftmost, ie. highest degree, child.
	sibling arena.Handle // next root in the root list or next child.
}

// Heap is a binomial min-heap. The zero value is not usable, use New.
type Heap struct {
	nodes *arena.Arena[node]
	head  arena.Handle
}

// New returns an empty Heap.
func New() *Heap {
	return &Heap{
		nodes: arena.New[node](0),
		head:  arena.Nil,
	}
}

// Len returns the number of keys in the heap.
func (h *Heap) Len() int {
	return h.nodes.Len()
}

// IsEmpty returns true if the heap contains no keys.
func (h *Heap) IsEmpty() bool {
	return h.head == arena.Nil
}

func (h *Heap) get(n arena.Handle) *node {
	return h.nodes.Get(n)
}

// Insert adds key to the heap by merging a single node heap into it.
func (h *Heap) Insert(key int) {
	n := h.nodes.Alloc(node{
		key:     key,
		parent:  arena.Nil,
		child:   arena.Nil,
		sibling: arena.Nil,
	})
	h.union(n)
}

// Merge moves all of the keys in other into h. Other is left empty and
// may continue to be used.
func (h *Heap) Merge(other *Heap) {
	if other == h || other.head == arena.Nil {
		return
	}
	h.union(h.transfer(other))
}

// transfer moves every node in other's arena into h's arena, rewriting
// handles as it goes, and returns the new handle of other's root list.
func (h *Heap) transfer(other *Heap) arena.Handle {
	remap := make([]arena.Handle, other.nodes.Cap())
	for i := range remap {
		remap[i] = arena.Nil
	}
	for o := range other.nodes.All() {
		remap[o] = h.nodes.Alloc(*other.get(o))
	}
	translate := func(o arena.Handle) arena.Handle {
		if o == arena.Nil {
			return arena.Nil
		}
		return remap[o]
	}
	for _, n := range remap {
		if n == arena.Nil {
			continue
		}
		nn := h.get(n)
		nn.parent = translate(nn.parent)
		nn.child = translate(nn.child)
		nn.sibling = translate(nn.sibling)
	}
	head := translate(other.head)
	other.nodes.Reset()
	other.head = arena.Nil
	return head
}

// mergeRootLists merges two root lists into a single list ordered by
// non-decreasing degree. Where degrees are equal the root from a precedes
// the root from b.
func (h *Heap) mergeRootLists(a, b arena.Handle) arena.Handle {
	if a == arena.Nil {
		return b
	}
	if b == arena.Nil {
		return a
	}
	var head arena.Handle
	if h.get(a).degree <= h.get(b).degree {
		head, a = a, h.get(a).sibling
	} else {
		head, b = b, h.get(b).sibling
	}
	tail := head
	for a != arena.Nil && b != arena.Nil {
		if h.get(a).degree <= h.get(b).degree {
			h.get(tail).sibling = a
			a = h.get(a).sibling
		} else {
			h.get(tail).sibling = b
			b = h.get(b).sibling
		}
		tail = h.get(tail).sibling
	}
	if a != arena.Nil {
		h.get(tail).sibling = a
	} else {
		h.get(tail).sibling = b
	}
	return head
}

// link makes the tree rooted at b the leftmost child of a. The two trees
// are expected to have the same degree.
func (h *Heap) link(a, b arena.Handle) {
	an, bn := h.get(a), h.get(b)
	bn.parent = a
	bn.sibling = an.child
	an.child = b
	an.degree++
}

// union merges the root list other into the heap's root list and then
// links roots of equal degree until each degree occurs at most once.
func (h *Heap) union(other arena.Handle) {
	head := h.mergeRootLists(h.head, other)
	if head == arena.Nil {
		h.head = arena.Nil
		return
	}
	prev, curr := arena.Nil, head
	next := h.get(curr).sibling
	for next != arena.Nil {
		cn, nn := h.get(curr), h.get(next)
		switch {
		case cn.degree != nn.degree ||
			(nn.sibling != arena.Nil && h.get(nn.sibling).degree == cn.degree):
			// Either the degrees differ, or this is the first of three
			// roots with the same degree, in which case the second and
			// third are linked on the next iteration.
			prev, curr = curr, next
		case cn.key <= nn.key:
			cn.sibling = nn.sibling
			h.link(curr, next)
		default:
			if prev == arena.Nil {
				head = next
			} else {
				h.get(prev).sibling = next
			}
			h.link(next, curr)
			curr = next
		}
		next = h.get(curr).sibling
	}
	h.head = head
}

// minRoot scans the root list for the root with the smallest key,
// returning it and its predecessor in the root list.
func (h *Heap) minRoot() (prevMin, minimum arena.Handle) {
	prevMin, minimum = arena.Nil, h.head
	minKey := h.get(minimum).key
	for prev, x := h.head, h.get(h.head).sibling; x != arena.Nil; prev, x = x, h.get(x).sibling {
		if k := h.get(x).key; k < minKey {
			prevMin, minimum, minKey = prev, x, k
		}
	}
	return
}

// Min returns the smallest key without removing it. There is no cached
// minimum so this requires a scan of the root list.
func (h *Heap) Min() (int, error) {
	if h.head == arena.Nil {
		return 0, pqueue.ErrEmptyHeap
	}
	_, m := h.minRoot()
	return h.get(m).key, nil
}

// ExtractMin removes and returns the smallest key.
func (h *Heap) ExtractMin() (int, error) {
	if h.head == arena.Nil {
		return 0, pqueue.ErrEmptyHeap
	}
	prevMin, m := h.minRoot()
	mn := h.get(m)
	if prevMin == arena.Nil {
		h.head = mn.sibling
	} else {
		h.get(prevMin).sibling = mn.sibling
	}
	// The children are ordered by decreasing degree, reversing them
	// yields a valid root list.
	children := arena.Nil
	for c := mn.child; c != arena.Nil; {
		cn := h.get(c)
		next := cn.sibling
		cn.sibling = children
		cn.parent = arena.Nil
		children, c = c, next
	}
	key := mn.key
	h.nodes.Free(m)
	h.union(children)
	return key, nil
}

// RootDegrees returns the degrees of the trees in the root list, in
// root list order.
func (h *Heap) RootDegrees() []int {
	var d []int
	for x := h.head; x != arena.Nil; x = h.get(x).sibling {
		d = append(d, h.get(x).degree)
	}
	return d
}
