// Copyright (c) 2024 The sortedtermset Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package handle exposes sortedset through opaque handles, the way a
// host runtime consumes the library. The core set is single-threaded;
// all concurrency control lives here: each handle carries a weight-1
// semaphore used as a non-blocking try-mutex, and every operation
// either enters the critical section immediately or returns
// apierr.LockFail without waiting. Callers on cooperative worker
// threads are expected to retry; they are never blocked.
package handle

import (
	"sync"
	"unicode/utf8"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/semaphore"

	"github.com/aristanetworks/sortedtermset/apierr"
	"github.com/aristanetworks/sortedtermset/bucket"
	"github.com/aristanetworks/sortedtermset/config"
	"github.com/aristanetworks/sortedtermset/internal/diag"
	"github.com/aristanetworks/sortedtermset/internal/logging"
	"github.com/aristanetworks/sortedtermset/internal/robinhood"
	"github.com/aristanetworks/sortedtermset/sortedset"
	"github.com/aristanetworks/sortedtermset/term"
)

// Handle identifies a live set in a Table. Handles are issued
// sequentially and never reused while the Table lives.
type Handle uint64

// Hash spreads the sequentially issued handle value so the handle
// table's probes do not cluster (splitmix64 finalizer).
func (h Handle) Hash() uint64 {
	v := uint64(h)
	v ^= v >> 30
	v *= 0xbf58476d1ce4e5b9
	v ^= v >> 27
	v *= 0x94d049bb133111eb
	return v ^ (v >> 31)
}

// Equal reports whether two handles are the same.
func (h Handle) Equal(other Handle) bool { return h == other }

type slot struct {
	sem  *semaphore.Weighted
	hold diag.HoldTimer
	set  *sortedset.Set
}

// Table is a registry of live sets keyed by Handle. The Table's own
// bookkeeping is guarded by a conventional RWMutex; the per-set
// critical sections are guarded by each slot's try-semaphore. A Table
// must not be copied after first use.
type Table struct {
	log logging.Logger

	mu   sync.RWMutex
	next Handle
	sets *robinhood.Map[Handle, *slot]
}

// NewTable returns an empty handle table. A nil log discards
// everything below fatal.
func NewTable(log logging.Logger) *Table {
	if log == nil {
		log = logging.Discard{}
	}
	return &Table{
		log:  log,
		sets: robinhood.New[Handle, *slot](0),
	}
}

// Empty creates a set with zero buckets and registers it.
func (t *Table) Empty(cfg config.Configuration) (Handle, error) {
	s, err := sortedset.Empty(cfg)
	if err != nil {
		return 0, err
	}
	return t.register(s), nil
}

// New creates a set seeded with one empty bucket and registers it.
func (t *Table) New(cfg config.Configuration) (Handle, error) {
	s, err := sortedset.New(cfg)
	if err != nil {
		return 0, err
	}
	return t.register(s), nil
}

func (t *Table) register(s *sortedset.Set) Handle {
	t.mu.Lock()
	t.next++
	h := t.next
	t.sets.Set(h, &slot{sem: semaphore.NewWeighted(1), set: s})
	t.mu.Unlock()
	t.log.Infof("handle %d: created (max bucket size %d)", h, s.Config().MaxBucketSize)
	return h
}

// acquire looks up h and enters its critical section, or reports why
// it could not.
func (t *Table) acquire(h Handle) (*slot, apierr.Outcome) {
	t.mu.RLock()
	sl, ok := t.sets.Get(h)
	t.mu.RUnlock()
	if !ok {
		return nil, apierr.BadReference
	}
	if !sl.sem.TryAcquire(1) {
		if d, held := sl.hold.Held(); held {
			t.log.Errorf("handle %d: lock_fail, holder inside for %v", h, d)
		} else {
			t.log.Errorf("handle %d: lock_fail", h)
		}
		return nil, apierr.LockFail
	}
	sl.hold.Enter()
	return sl, apierr.OK
}

func (t *Table) release(sl *slot) {
	sl.hold.Exit()
	sl.sem.Release(1)
}

// termOK walks item checking every kind is within the closed variant
// set and every Bitstring payload is valid UTF-8. Terms built through
// the term constructors always pass; the check exists for callers that
// hand the facade a malformed value.
func termOK(item term.Term) bool {
	switch item.Kind() {
	case term.KindInteger, term.KindAtom:
		return true
	case term.KindBitstring:
		payload, _ := item.Bytes()
		return utf8.Valid(payload)
	case term.KindTuple, term.KindList:
		elems, _ := item.Elems()
		for _, e := range elems {
			if !termOK(e) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Add inserts item into h's set, taking ownership of item. On any
// non-success outcome the incoming term is freed so the transferred
// ownership is honored exactly once.
func (t *Table) Add(h Handle, item term.Term) (apierr.Outcome, int) {
	if !termOK(item) {
		item.Free()
		return apierr.UnsupportedType, 0
	}
	sl, out := t.acquire(h)
	if out != apierr.OK {
		item.Free()
		return out, 0
	}
	defer t.release(sl)
	outcome, idx := sl.set.Add(item)
	if outcome == bucket.Duplicate {
		return apierr.Duplicate, idx
	}
	return apierr.Added, idx
}

// Remove deletes the stored term equal to item. item is only a probe;
// Remove frees it before returning.
func (t *Table) Remove(h Handle, item term.Term) (apierr.Outcome, int) {
	defer item.Free()
	if !termOK(item) {
		return apierr.UnsupportedType, 0
	}
	sl, out := t.acquire(h)
	if out != apierr.OK {
		return out, 0
	}
	defer t.release(sl)
	idx, found := sl.set.Remove(item)
	if !found {
		return apierr.NotFound, 0
	}
	return apierr.Removed, idx
}

// AppendBucket appends items as a new trailing bucket, taking
// ownership of the slice. The caller's sortedness/disjointness
// precondition is documented on sortedset.Set.AppendBucket.
func (t *Table) AppendBucket(h Handle, items []term.Term) apierr.Outcome {
	for _, item := range items {
		if !termOK(item) {
			freeAll(items)
			return apierr.UnsupportedType
		}
	}
	sl, out := t.acquire(h)
	if out != apierr.OK {
		freeAll(items)
		return out
	}
	defer t.release(sl)
	if sl.set.AppendBucket(items) == sortedset.AppendMaxBucketSizeExceeded {
		return apierr.MaxBucketSizeExceeded
	}
	return apierr.OK
}

func freeAll(items []term.Term) {
	for i := range items {
		items[i].Free()
	}
}

// Size returns the number of terms in h's set.
func (t *Table) Size(h Handle) (int, apierr.Outcome) {
	sl, out := t.acquire(h)
	if out != apierr.OK {
		return 0, out
	}
	defer t.release(sl)
	return sl.set.Size(), apierr.OK
}

// ToList returns a deep-cloned snapshot of h's set in order. The
// caller owns the result.
func (t *Table) ToList(h Handle) ([]term.Term, apierr.Outcome) {
	sl, out := t.acquire(h)
	if out != apierr.OK {
		return nil, out
	}
	defer t.release(sl)
	return sl.set.ToVec(), apierr.OK
}

// At returns a deep clone of the term at global index i, or
// apierr.IndexOutOfBounds when i is not below the set's size.
func (t *Table) At(h Handle, i int) (term.Term, apierr.Outcome) {
	sl, out := t.acquire(h)
	if out != apierr.OK {
		return term.Term{}, out
	}
	defer t.release(sl)
	item, found := sl.set.At(i)
	if !found {
		return term.Term{}, apierr.IndexOutOfBounds
	}
	return item.Clone(), apierr.OK
}

// Slice returns deep clones of the half-open range
// [start, min(start+amount, size)). Over-requests clamp silently.
func (t *Table) Slice(h Handle, start, amount int) ([]term.Term, apierr.Outcome) {
	sl, out := t.acquire(h)
	if out != apierr.OK {
		return nil, out
	}
	defer t.release(sl)
	return sl.set.Slice(start, amount), apierr.OK
}

// FindIndex returns the effective index of the stored term equal to
// item, or apierr.NotFound. item is only a probe; FindIndex frees it
// before returning.
func (t *Table) FindIndex(h Handle, item term.Term) (int, apierr.Outcome) {
	defer item.Free()
	if !termOK(item) {
		return 0, apierr.UnsupportedType
	}
	sl, out := t.acquire(h)
	if out != apierr.OK {
		return 0, out
	}
	defer t.release(sl)
	idx, found := sl.set.FindIndex(item)
	if !found {
		return 0, apierr.NotFound
	}
	return idx, apierr.OK
}

// Debug returns the set's diagnostic snapshot (no stability contract).
func (t *Table) Debug(h Handle) (string, apierr.Outcome) {
	sl, out := t.acquire(h)
	if out != apierr.OK {
		return "", out
	}
	defer t.release(sl)
	return sl.set.Debug(), apierr.OK
}

// Release destroys h's set and invalidates the handle. The set's
// critical section must be free; a concurrent holder produces
// apierr.LockFail and the handle stays live. The semaphore is left
// acquired so a racing operation that looked the slot up before the
// delete still fails with LockFail rather than touching a freed set.
func (t *Table) Release(h Handle) apierr.Outcome {
	t.mu.Lock()
	sl, ok := t.sets.Get(h)
	if !ok {
		t.mu.Unlock()
		return apierr.BadReference
	}
	if !sl.sem.TryAcquire(1) {
		t.mu.Unlock()
		t.log.Errorf("handle %d: lock_fail on release", h)
		return apierr.LockFail
	}
	t.sets.Delete(h)
	t.mu.Unlock()
	sl.set.Free()
	t.log.Infof("handle %d: released", h)
	return apierr.OK
}

// Len reports how many handles are live.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.sets.Len()
}

// Handles returns the live handles in ascending order, for
// diagnostics.
func (t *Table) Handles() []Handle {
	t.mu.RLock()
	out := make([]Handle, 0, t.sets.Len())
	t.sets.ForEach(func(h Handle, _ *slot) bool {
		out = append(out, h)
		return true
	})
	t.mu.RUnlock()
	slices.Sort(out)
	return out
}
