// Copyright (c) 2024 The sortedtermset Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package util holds small generic helpers shared across the module.
package util

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// ToAnySlice takes a []T, and converts it into a []any.
// This is a common conversion when a function expects a []any but the
// calling code has a []T, with T not being any.
func ToAnySlice[T any](in []T) []any {
	l := len(in)
	out := make([]any, l)
	for i := 0; i < l; i++ {
		out[i] = any(in[i])
	}
	return out
}

// Sorted returns a sorted copy of in, leaving in untouched.
func Sorted[T constraints.Ordered](in []T) []T {
	out := slices.Clone(in)
	slices.Sort(out)
	return out
}
