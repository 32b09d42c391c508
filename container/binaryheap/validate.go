// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package binaryheap

import (
	"fmt"

	"cloudeng.io/errors"
)

// Validate returns an error describing every parent/child pair that
// violates the min-heap property.
func (h *Heap) Validate() error {
	errs := errors.M{}
	for i := 1; i < len(h.keys); i++ {
		if p := (i - 1) / 2; h.keys[p] > h.keys[i] {
			errs.Append(fmt.Errorf("binaryheap: [%d] %d > child [%d] %d", p, h.keys[p], i, h.keys[i]))
		}
	}
	return errs.Err()
}
