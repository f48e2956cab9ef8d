// Copyright (c) 2024 The sortedtermset Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package util

import (
	"reflect"
	"testing"
)

func TestToAnySlice(t *testing.T) {
	in := []int{1, 2, 3}
	got := ToAnySlice(in)
	want := []any{1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ToAnySlice(%v) = %v, want %v", in, got, want)
	}
}

func TestSorted(t *testing.T) {
	in := []string{"c", "a", "b"}
	got := Sorted(in)
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Sorted(%v) = %v, want %v", in, got, want)
	}
	if want := []string{"c", "a", "b"}; !reflect.DeepEqual(in, want) {
		t.Fatalf("Sorted mutated its input: %v", in)
	}
}
