// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fibonacci

import (
	"fmt"

	"cloudeng.io/errors"
	"cloudeng.io/pqueue/container/arena"
	"cloudeng.io/pqueue/container/ring"
)

// Validate checks the structural invariants of the heap: the root ring
// and every child ring are consistent, the degree of every node is the
// number of its children, keys are heap ordered, parent handles refer to
// the enclosing node, no node is marked, the minimum is the smallest root
// and the node count matches the number of reachable nodes. Handles that
// do not refer to live nodes are reported rather than followed.
func (h *Heap) Validate() error {
	errs := errors.M{}
	if got, want := h.nodes.Len(), h.n; got != want {
		errs.Append(fmt.Errorf("fibonacci: %d nodes allocated, size is %d", got, want))
	}
	if h.min == arena.Nil {
		if h.n != 0 {
			errs.Append(fmt.Errorf("fibonacci: no minimum but size is %d", h.n))
		}
		return errs.Err()
	}
	if !h.nodes.Valid(h.min) {
		errs.Append(fmt.Errorf("fibonacci: minimum %d is not a live node", h.min))
		return errs.Err()
	}
	if err := h.validateRing(h.min); err != nil {
		errs.Append(fmt.Errorf("fibonacci: root ring: %w", err))
		return errs.Err()
	}
	minKey := h.get(h.min).key
	visited := 0
	for x := range ring.All(h.rings, h.min) {
		xn := h.get(x)
		if xn.parent != arena.Nil {
			errs.Append(fmt.Errorf("fibonacci: root %d has parent %d", x, xn.parent))
		}
		if xn.key < minKey {
			errs.Append(fmt.Errorf("fibonacci: root %d key %d is less than the minimum %d", x, xn.key, minKey))
		}
		if !h.validateTree(&errs, x, &visited) {
			break
		}
	}
	if visited != h.n {
		errs.Append(fmt.Errorf("fibonacci: %d nodes reachable, size is %d", visited, h.n))
	}
	return errs.Err()
}

// ValidateConsolidated is like Validate but also checks that no two
// roots have the same degree, which holds after every ExtractMin until
// the next Insert.
func (h *Heap) ValidateConsolidated() error {
	if err := h.Validate(); err != nil {
		return err
	}
	errs := errors.M{}
	seen := map[int]arena.Handle{}
	for x := range ring.All(h.rings, h.min) {
		d := h.get(x).degree
		if y, ok := seen[d]; ok {
			errs.Append(fmt.Errorf("fibonacci: roots %d and %d both have degree %d", y, x, d))
			continue
		}
		seen[d] = x
	}
	return errs.Err()
}

// validateRing checks that every left and right handle in the ring
// containing x refers to a live node before checking the ring's
// consistency.
func (h *Heap) validateRing(x arena.Handle) error {
	n := x
	for i := 0; i <= h.n; i++ {
		lk := h.get(n).Links
		for _, nb := range []arena.Handle{lk.Left, lk.Right} {
			if !h.nodes.Valid(nb) {
				return fmt.Errorf("node %d links to %d which is not a live node", n, nb)
			}
		}
		if n = lk.Right; n == x {
			return ring.Validate(h.rings, x, h.n)
		}
	}
	return fmt.Errorf("ring starting at %d is longer than %d members", x, h.n)
}

func (h *Heap) validateTree(errs *errors.M, x arena.Handle, visited *int) bool {
	if *visited++; *visited > h.n {
		errs.Append(fmt.Errorf("fibonacci: more nodes reachable than the %d in the heap", h.n))
		return false
	}
	xn := h.get(x)
	if xn.mark {
		errs.Append(fmt.Errorf("fibonacci: node %d is marked", x))
	}
	if xn.child == arena.Nil {
		if xn.degree != 0 {
			errs.Append(fmt.Errorf("fibonacci: node %d has degree %d but no children", x, xn.degree))
		}
		return true
	}
	if !h.nodes.Valid(xn.child) {
		errs.Append(fmt.Errorf("fibonacci: child %d of %d is not a live node", xn.child, x))
		return false
	}
	if err := h.validateRing(xn.child); err != nil {
		errs.Append(fmt.Errorf("fibonacci: child ring of %d: %w", x, err))
		return false
	}
	children := 0
	for c := range ring.All(h.rings, xn.child) {
		children++
		cn := h.get(c)
		if cn.parent != x {
			errs.Append(fmt.Errorf("fibonacci: child %d of %d has parent %d", c, x, cn.parent))
		}
		if cn.key < xn.key {
			errs.Append(fmt.Errorf("fibonacci: child %d key %d < parent %d key %d", c, cn.key, x, xn.key))
		}
		if !h.validateTree(errs, c, visited) {
			return false
		}
	}
	if children != xn.degree {
		errs.Append(fmt.Errorf("fibonacci: node %d has degree %d but %d children", x, xn.degree, children))
	}
	return true
}
