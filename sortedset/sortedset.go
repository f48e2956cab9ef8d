// Copyright (c) 2024 The sortedtermset Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package sortedset

import (
	"fmt"
	"iter"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/aristanetworks/sortedtermset/bucket"
	"github.com/aristanetworks/sortedtermset/config"
	"github.com/aristanetworks/sortedtermset/term"
)

// AppendOutcome reports the result of AppendBucket.
type AppendOutcome int8

const (
	// AppendOK means the slice was appended as a new trailing bucket.
	AppendOK AppendOutcome = iota
	// AppendMaxBucketSizeExceeded means len(items) >= MaxBucketSize; the
	// incoming slice was freed and nothing changed.
	AppendMaxBucketSizeExceeded
)

// Set is a bucketed ordered array: an ordered list of bucket.Bucket
// values plus a running element count. The zero Set is not usable;
// construct one with Empty or New.
type Set struct {
	cfg     config.Configuration
	buckets []*bucket.Bucket
	count   int
}

// Empty returns a Set with zero buckets, sized per
// cfg.InitialSetCapacity. cfg.MaxBucketSize must be positive.
func Empty(cfg config.Configuration) (*Set, error) {
	if cfg.MaxBucketSize <= 0 {
		return nil, fmt.Errorf("sortedset: max bucket size must be positive, got %d", cfg.MaxBucketSize)
	}
	return &Set{
		cfg:     cfg,
		buckets: make([]*bucket.Bucket, 0, cfg.InitialSetCapacity),
	}, nil
}

// New returns a Set seeded with a single empty bucket, so that the
// first Add has an obvious target without a lazy-provisioning step.
func New(cfg config.Configuration) (*Set, error) {
	s, err := Empty(cfg)
	if err != nil {
		return nil, err
	}
	s.buckets = append(s.buckets, bucket.New(0))
	return s, nil
}

// Config returns the Set's immutable tuning record.
func (s *Set) Config() config.Configuration { return s.cfg }

// ensureBucket lazily provisions a single empty bucket on a Set built
// by Empty, so mutating operations never have to special-case a
// zero-bucket list.
func (s *Set) ensureBucket() {
	if len(s.buckets) == 0 {
		s.buckets = append(s.buckets, bucket.New(0))
	}
}

// findBucketIndex binary-searches the bucket list using each bucket's
// range predicate (bucket.ItemCompare). It reports ok=false only when
// the bucket list is empty; otherwise it returns the unique bucket
// that owns item, clamped to the last bucket when item sorts past
// every element currently stored, so trailing inserts land in the
// last bucket.
func (s *Set) findBucketIndex(item term.Term) (idx int, ok bool) {
	if len(s.buckets) == 0 {
		return 0, false
	}
	lo, hi := 0, len(s.buckets)
	for lo < hi {
		mid := (lo + hi) / 2
		switch c := s.buckets[mid].ItemCompare(item); {
		case c == 0:
			return mid, true
		case c < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	if lo >= len(s.buckets) {
		lo = len(s.buckets) - 1
	}
	return lo, true
}

// effectiveIndex converts a (bucket index, in-bucket index) pair into
// the element's position in the global order across all buckets.
func (s *Set) effectiveIndex(bi, inner int) int {
	idx := inner
	for j := 0; j < bi; j++ {
		idx += s.buckets[j].Len()
	}
	return idx
}

// Add inserts item, taking ownership of it. It returns bucket.Added
// and the item's effective index if item was new, or bucket.Duplicate
// and the existing item's effective index if an equal term was
// already present (in which case item has been freed and Size is
// unchanged).
func (s *Set) Add(item term.Term) (bucket.AddOutcome, int) {
	s.ensureBucket()
	bi, _ := s.findBucketIndex(item)
	b := s.buckets[bi]
	outcome, inner := b.Add(item)
	idx := s.effectiveIndex(bi, inner)
	if outcome == bucket.Duplicate {
		return bucket.Duplicate, idx
	}
	if b.Len() >= s.cfg.MaxBucketSize {
		s.buckets = slices.Insert(s.buckets, bi+1, b.Split())
	}
	s.count++
	return bucket.Added, idx
}

// Remove deletes and frees the stored term equal to item, returning
// its former effective index. When found is false the set is
// unchanged. Remove does not take ownership of item; the caller still
// owns the probe value.
func (s *Set) Remove(item term.Term) (idx int, found bool) {
	bi, ok := s.findBucketIndex(item)
	if !ok {
		return 0, false
	}
	inner, ok := s.buckets[bi].Find(item)
	if !ok {
		return 0, false
	}
	idx = s.effectiveIndex(bi, inner)
	s.buckets[bi].RemoveAt(inner)
	if s.buckets[bi].Len() == 0 && len(s.buckets) > 1 {
		s.buckets[bi].Free()
		s.buckets = slices.Delete(s.buckets, bi, bi+1)
	}
	s.count--
	return idx, true
}

// AppendBucket appends items as a new trailing bucket, taking
// ownership of the slice. The caller must ensure items is sorted,
// duplicate-free and strictly greater than every term currently in the
// set. The precondition is documented, not validated; violating it
// leaves the set's ordering undefined. The only condition
// AppendBucket checks is the bucket-size bound.
func (s *Set) AppendBucket(items []term.Term) AppendOutcome {
	if len(items) >= s.cfg.MaxBucketSize {
		for i := range items {
			items[i].Free()
		}
		return AppendMaxBucketSizeExceeded
	}
	s.buckets = append(s.buckets, bucket.FromSorted(items))
	s.count += len(items)
	return AppendOK
}

// FindIndex returns the effective index of item, or found=false if
// absent.
func (s *Set) FindIndex(item term.Term) (idx int, found bool) {
	bi, ok := s.findBucketIndex(item)
	if !ok {
		return 0, false
	}
	inner, ok := s.buckets[bi].Find(item)
	if !ok {
		return 0, false
	}
	return s.effectiveIndex(bi, inner), true
}

// At returns the term at global index i, or found=false if
// i >= Size().
func (s *Set) At(i int) (t term.Term, found bool) {
	if i < 0 {
		return term.Term{}, false
	}
	for _, b := range s.buckets {
		if i < b.Len() {
			return b.At(i)
		}
		i -= b.Len()
	}
	return term.Term{}, false
}

// Slice returns a newly allocated, deep-cloned copy of the half-open
// range [start, min(start+amount, Size())). Over-requesting amount is
// clamped silently; start >= Size() or amount == 0 yields an empty,
// non-nil slice.
func (s *Set) Slice(start, amount int) []term.Term {
	if start < 0 {
		start = 0
	}
	if amount <= 0 || start >= s.count {
		return []term.Term{}
	}
	end := start + amount
	if end > s.count || end < start { // end < start guards int overflow
		end = s.count
	}
	out := make([]term.Term, 0, end-start)
	skip := start
	remaining := end - start
	for _, b := range s.buckets {
		if remaining == 0 {
			break
		}
		if skip >= b.Len() {
			skip -= b.Len()
			continue
		}
		for i := skip; i < b.Len() && remaining > 0; i++ {
			t, _ := b.At(i)
			out = append(out, t.Clone())
			remaining--
		}
		skip = 0
	}
	return out
}

// ToVec deep-clones every element into a fresh slice of length Size().
func (s *Set) ToVec() []term.Term {
	return s.Slice(0, s.count)
}

// All ranges over the set's elements in order without materializing a
// full copy, additive sugar over At/Size.
func (s *Set) All() iter.Seq[term.Term] {
	return func(yield func(term.Term) bool) {
		for _, b := range s.buckets {
			for i := 0; i < b.Len(); i++ {
				t, _ := b.At(i)
				if !yield(t) {
					return
				}
			}
		}
	}
}

// Size returns the number of terms currently stored, in O(1).
func (s *Set) Size() int { return s.count }

// Debug returns an implementation-defined textual snapshot of the
// bucket list for diagnostics. Its format carries no stability
// contract.
func (s *Set) Debug() string {
	var b strings.Builder
	fmt.Fprintf(&b, "sortedset.Set{count=%d, buckets=%d, maxBucketSize=%d}\n",
		s.count, len(s.buckets), s.cfg.MaxBucketSize)
	for i, bk := range s.buckets {
		fmt.Fprintf(&b, "  [%d] len=%d:", i, bk.Len())
		for j := 0; j < bk.Len(); j++ {
			t, _ := bk.At(j)
			fmt.Fprintf(&b, " %s", t.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Free releases every bucket and every term owned by the set. After
// Free, s must not be used again.
func (s *Set) Free() {
	for _, b := range s.buckets {
		b.Free()
	}
	s.buckets = nil
	s.count = 0
}
