// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package binomial

import (
	"fmt"

	"cloudeng.io/errors"
	"cloudeng.io/pqueue/container/arena"
)

// Validate checks the structural invariants of the heap: root degrees are
// strictly increasing, every tree of degree d has 2^d nodes with children
// of degree d-1 down to 0, keys are heap ordered, parent handles refer
// to the enclosing node and every allocated node is reachable.
func (h *Heap) Validate() error {
	errs := errors.M{}
	visited := 0
	limit := h.nodes.Len()
	prevDegree := -1
	for x := h.head; x != arena.Nil; x = h.get(x).sibling {
		if !h.nodes.Valid(x) {
			errs.Append(fmt.Errorf("binomial: root list refers to invalid handle %d", x))
			break
		}
		xn := h.get(x)
		if xn.degree <= prevDegree {
			errs.Append(fmt.Errorf("binomial: root %d has degree %d after degree %d", x, xn.degree, prevDegree))
		}
		prevDegree = xn.degree
		if xn.parent != arena.Nil {
			errs.Append(fmt.Errorf("binomial: root %d has parent %d", x, xn.parent))
		}
		size := h.validateTree(&errs, x, &visited, limit)
		if want := 1 << xn.degree; size != want {
			errs.Append(fmt.Errorf("binomial: tree rooted at %d of degree %d has %d nodes, not %d", x, xn.degree, size, want))
		}
		if visited > limit {
			break
		}
	}
	if visited != limit {
		errs.Append(fmt.Errorf("binomial: %d nodes reachable, %d allocated", visited, limit))
	}
	return errs.Err()
}

func (h *Heap) validateTree(errs *errors.M, x arena.Handle, visited *int, limit int) int {
	if *visited++; *visited > limit {
		errs.Append(fmt.Errorf("binomial: more nodes reachable than the %d allocated", limit))
		return 0
	}
	xn := h.get(x)
	size := 1
	want := xn.degree - 1
	for c := xn.child; c != arena.Nil; c = h.get(c).sibling {
		if !h.nodes.Valid(c) {
			errs.Append(fmt.Errorf("binomial: node %d has invalid child %d", x, c))
			return size
		}
		cn := h.get(c)
		if cn.parent != x {
			errs.Append(fmt.Errorf("binomial: child %d of %d has parent %d", c, x, cn.parent))
		}
		if cn.key < xn.key {
			errs.Append(fmt.Errorf("binomial: child %d key %d < parent %d key %d", c, cn.key, x, xn.key))
		}
		if cn.degree != want {
			errs.Append(fmt.Errorf("binomial: child %d of %d has degree %d, not %d", c, x, cn.degree, want))
		}
		want--
		size += h.validateTree(errs, c, visited, limit)
		if *visited > limit {
			return size
		}
	}
	if want != -1 {
		errs.Append(fmt.Errorf("binomial: node %d has degree %d but %d children", x, xn.degree, xn.degree-1-want))
	}
	return size
}
