// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package binaryheap

type options struct {
	sliceCap int
	keys     []int
}

// Option represents the options that can be passed to New.
type Option func(*options)

// WithSliceCap sets the initial capacity of the slice used to hold keys.
func WithSliceCap(n int) Option {
	return func(o *options) {
		o.sliceCap = n
	}
}

// WithData sets the initial contents of the heap. The heap takes
// ownership of keys and reorders it in place.
func WithData(keys []int) Option {
	return func(o *options) {
		o.keys = keys
	}
}
