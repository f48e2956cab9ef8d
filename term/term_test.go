// Copyright (c) 2024 The sortedtermset Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package term

import "testing"

func TestVariantRank(t *testing.T) {
	atom := NewAtom("a")
	bs, err := NewBitstring([]byte("a"))
	if err != nil {
		t.Fatalf("NewBitstring: %v", err)
	}
	ordered := []Term{
		NewInteger(0),
		atom,
		NewTuple(nil),
		NewList(nil),
		bs,
	}
	for i := 0; i < len(ordered)-1; i++ {
		if c := Compare(ordered[i], ordered[i+1]); c >= 0 {
			t.Fatalf("expected %v < %v, got Compare=%d", ordered[i], ordered[i+1], c)
		}
	}
}

func TestIntegerOrder(t *testing.T) {
	cases := []struct {
		a, b int64
		want int
	}{
		{1, 2, -1},
		{2, 1, 1},
		{5, 5, 0},
		{-3, 3, -1},
	}
	for _, c := range cases {
		got := Compare(NewInteger(c.a), NewInteger(c.b))
		if sign(got) != c.want {
			t.Errorf("Compare(%d, %d) = %d, want sign %d", c.a, c.b, got, c.want)
		}
	}
}

func TestAtomLexicographic(t *testing.T) {
	if Compare(NewAtom("aaa"), NewAtom("aab")) >= 0 {
		t.Fatal("expected aaa < aab")
	}
	if !Equal(NewAtom("same"), NewAtom("same")) {
		t.Fatal("expected equal atoms to compare Equal")
	}
}

func TestTupleArityThenElementwise(t *testing.T) {
	short := NewTuple([]Term{NewInteger(9), NewInteger(9)})
	long := NewTuple([]Term{NewInteger(0), NewInteger(0), NewInteger(0)})
	if Compare(short, long) >= 0 {
		t.Fatal("shorter tuple should sort first regardless of contents")
	}

	a := NewTuple([]Term{NewInteger(1), NewInteger(2)})
	b := NewTuple([]Term{NewInteger(1), NewInteger(3)})
	if Compare(a, b) >= 0 {
		t.Fatal("expected elementwise comparison to break the tie on arity")
	}
}

func TestListPrefixThenLength(t *testing.T) {
	a := NewList([]Term{NewInteger(1), NewInteger(2)})
	b := NewList([]Term{NewInteger(1), NewInteger(2), NewInteger(3)})
	if Compare(a, b) >= 0 {
		t.Fatal("expected shorter prefix-equal list to sort first")
	}
	c := NewList([]Term{NewInteger(1), NewInteger(5)})
	if Compare(a, c) >= 0 {
		t.Fatal("expected elementwise mismatch to decide order before length")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	inner := NewAtom("inner")
	original := NewTuple([]Term{inner, NewInteger(7)})
	clone := original.Clone()

	if !Equal(original, clone) {
		t.Fatal("clone should compare equal to original")
	}

	// Mutate the clone's backing storage directly and confirm the
	// original's bytes/elems are untouched.
	cb, _ := clone.elems[0].Bytes()
	cb[0] = 'X'
	ob, _ := original.elems[0].Bytes()
	if ob[0] == 'X' {
		t.Fatal("clone shares backing array with original")
	}
}

func TestFreeClearsSubtree(t *testing.T) {
	leaf := NewAtom("leaf")
	tpl := NewTuple([]Term{leaf, NewList([]Term{NewInteger(1)})})
	tpl.Free()
	if tpl.elems != nil {
		t.Fatal("expected Free to clear elems")
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	a := NewTuple([]Term{NewInteger(1), NewAtom("x")})
	b := NewTuple([]Term{NewInteger(1), NewAtom("x")})
	if !Equal(a, b) {
		t.Fatal("precondition: a and b should be equal")
	}
	if a.Hash() != b.Hash() {
		t.Fatal("equal terms must hash equal")
	}
}

func TestNewBitstringRejectsInvalidUTF8(t *testing.T) {
	_, err := NewBitstring([]byte{0xff, 0xfe})
	if err != ErrInvalidUTF8 {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
