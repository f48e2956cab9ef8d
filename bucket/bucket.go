// Copyright (c) 2024 The sortedtermset Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package bucket

import (
	"golang.org/x/exp/slices"

	"github.com/aristanetworks/sortedtermset/term"
)

// AddOutcome reports whether Add inserted a new term or discovered a
// duplicate.
type AddOutcome int8

const (
	// Added means the term was not present and has been inserted.
	Added AddOutcome = iota
	// Duplicate means an equal term was already present; the incoming
	// term was freed.
	Duplicate
)

func (o AddOutcome) String() string {
	if o == Duplicate {
		return "duplicate"
	}
	return "added"
}

// Bucket is a sorted, bounded, deduplicating array of term.Term. The
// zero value is an empty, zero-capacity Bucket ready to use.
type Bucket struct {
	items []term.Term
}

// New returns an empty Bucket that can grow to capacityHint terms
// without reallocating.
func New(capacityHint int) *Bucket {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Bucket{items: make([]term.Term, 0, capacityHint)}
}

// FromSorted wraps an already-sorted, duplicate-free slice as a
// Bucket. Ownership of items transfers to the Bucket; the caller must
// not reuse items afterward. Callers are responsible for the
// sortedness/uniqueness precondition; FromSorted does not validate it.
func FromSorted(items []term.Term) *Bucket {
	return &Bucket{items: items}
}

// Len reports the number of terms currently stored.
func (b *Bucket) Len() int {
	if b == nil {
		return 0
	}
	return len(b.items)
}

// At returns the term at position i within the bucket's local order.
func (b *Bucket) At(i int) (term.Term, bool) {
	if b == nil || i < 0 || i >= len(b.items) {
		return term.Term{}, false
	}
	return b.items[i], true
}

// Items returns the bucket's backing slice. The caller must treat it
// as read-only; it is shared with the Bucket.
func (b *Bucket) Items() []term.Term {
	if b == nil {
		return nil
	}
	return b.items
}

// search returns the lower-bound index of item and whether an equal
// term is already stored there.
func (b *Bucket) search(item term.Term) (int, bool) {
	return slices.BinarySearchFunc(b.items, item, term.Compare)
}

// Add inserts item, keeping the bucket sorted and duplicate-free.
//
// If an equal term is already present, item is freed and Add returns
// (Duplicate, i) where i is that term's index. Otherwise item is
// inserted at its lower-bound position and Add returns (Added, i).
// Add may leave the bucket one element over its configured maximum;
// the caller (sortedset.Set) is responsible for splitting.
func (b *Bucket) Add(item term.Term) (AddOutcome, int) {
	i, found := b.search(item)
	if found {
		item.Free()
		return Duplicate, i
	}
	b.items = slices.Insert(b.items, i, item)
	return Added, i
}

// Find returns the index of item if present.
func (b *Bucket) Find(item term.Term) (int, bool) {
	i, found := b.search(item)
	if !found {
		return 0, false
	}
	return i, true
}

// RemoveAt deletes and frees the term at local index i.
func (b *Bucket) RemoveAt(i int) {
	b.items[i].Free()
	b.items = slices.Delete(b.items, i, i+1)
}

// Split partitions the bucket at floor(len/2): the receiver retains
// the lower half and a new Bucket holding the upper half is returned.
// The caller must insert the returned Bucket immediately after the
// receiver to preserve global order. An empty or zero-capacity bucket
// splits into an empty Bucket with no allocation.
func (b *Bucket) Split() *Bucket {
	if len(b.items) == 0 || cap(b.items) == 0 {
		return &Bucket{}
	}
	mid := len(b.items) / 2
	right := &Bucket{items: make([]term.Term, len(b.items)-mid, cap(b.items))}
	copy(right.items, b.items[mid:])
	for i := mid; i < len(b.items); i++ {
		b.items[i] = term.Term{}
	}
	b.items = b.items[:mid]
	return right
}

// ItemCompare is the range predicate used by sortedset.Set to binary
// search the bucket list for the bucket owning item. It returns a
// negative number if item sorts after everything in the bucket
// (Less), zero if item lies within or on the bucket's boundary,
// including matching an empty bucket (Equal), and a positive number
// if item sorts before everything in the bucket (Greater).
func (b *Bucket) ItemCompare(item term.Term) int {
	if len(b.items) == 0 {
		return 0
	}
	if term.Compare(item, b.items[0]) < 0 {
		return 1
	}
	if term.Compare(item, b.items[len(b.items)-1]) > 0 {
		return -1
	}
	return 0
}

// Free releases every term owned by the bucket.
func (b *Bucket) Free() {
	for i := range b.items {
		b.items[i].Free()
	}
	b.items = nil
}
