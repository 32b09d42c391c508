// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package ring provides circular doubly linked rings whose members are
// addressed by arena handles. A ring has no sentinel: any member can be
// used to refer to the ring and a single node is a ring of length one
// whose left and right links refer to itself.
package ring

import (
	"fmt"
	"iter"

	"cloudeng.io/pqueue/container/arena"
)

// Links are the left and right neighbours of a ring member.
type Links struct {
	Left, Right arena.Handle
}

// Linker provides access to the Links embedded in each ring member.
type Linker interface {
	Links(h arena.Handle) *Links
}

// Init makes h a ring of length one.
func Init(l Linker, h arena.Handle) {
	lk := l.Links(h)
	lk.Left, lk.Right = h, h
}

// InsertAfter inserts the singleton h into the ring containing at,
// immediately to the right of at.
func InsertAfter(l Linker, at, h arena.Handle) {
	alk, hlk := l.Links(at), l.Links(h)
	right := alk.Right
	hlk.Left = at
	hlk.Right = right
	l.Links(right).Left = h
	alk.Right = h
}

// Remove unlinks h from its ring and leaves it as a ring of length one.
// It returns a remaining member of the ring, or arena.Nil if h was the
// only member.
func Remove(l Linker, h arena.Handle) arena.Handle {
	hlk := l.Links(h)
	if hlk.Right == h {
		return arena.Nil
	}
	left, right := hlk.Left, hlk.Right
	l.Links(left).Right = right
	l.Links(right).Left = left
	hlk.Left, hlk.Right = h, h
	return right
}

// Splice joins the ring containing b into the ring containing a such that
// the members of b follow a. Either may be arena.Nil, in which case the
// other is returned; otherwise a is returned.
func Splice(l Linker, a, b arena.Handle) arena.Handle {
	if a == arena.Nil {
		return b
	}
	if b == arena.Nil {
		return a
	}
	alk, blk := l.Links(a), l.Links(b)
	aRight, bLeft := alk.Right, blk.Left
	alk.Right = b
	blk.Left = a
	l.Links(bLeft).Right = aRight
	l.Links(aRight).Left = bLeft
	return a
}

// All returns an iterator over the ring starting at h and moving right.
// The ring must not be modified while it is being iterated over, use
// Members to obtain a snapshot when it is.
func All(l Linker, h arena.Handle) iter.Seq[arena.Handle] {
	return func(yield func(arena.Handle) bool) {
		if h == arena.Nil {
			return
		}
		n := h
		for {
			if !yield(n) {
				return
			}
			if n = l.Links(n).Right; n == h {
				return
			}
		}
	}
}

// Members returns a snapshot of the members of the ring starting at h.
func Members(l Linker, h arena.Handle) []arena.Handle {
	var m []arena.Handle
	for n := range All(l, h) {
		m = append(m, n)
	}
	return m
}

// Len returns the number of members of the ring containing h.
func Len(l Linker, h arena.Handle) int {
	n := 0
	for range All(l, h) {
		n++
	}
	return n
}

// Validate checks that every member's neighbours refer back to it,
// visiting at most limit members.
func Validate(l Linker, h arena.Handle, limit int) error {
	if h == arena.Nil {
		return nil
	}
	n, i := h, 0
	for {
		lk := l.Links(n)
		if got := l.Links(lk.Right).Left; got != n {
			return fmt.Errorf("ring: %d.right=%d but %d.left=%d", n, lk.Right, lk.Right, got)
		}
		if got := l.Links(lk.Left).Right; got != n {
			return fmt.Errorf("ring: %d.left=%d but %d.right=%d", n, lk.Left, lk.Left, got)
		}
		if n = lk.Right; n == h {
			return nil
		}
		if i++; i >= limit {
			return fmt.Errorf("ring: starting at %d is longer than %d members", h, limit)
		}
	}
}
