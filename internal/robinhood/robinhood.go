// Copyright (c) 2024 The sortedtermset Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package robinhood provides a generic open-addressing hash map with
// robin-hood displacement, keyed by types that hash themselves. The
// handle table uses it to map live handles to their sets; the demo CLI
// uses it for its name index.
//
// Both users are insert-and-lookup dominated: handles and names are
// registered once and probed many times, and deletions happen only on
// release. Deletion therefore compacts the probe run in place
// (backward shift) instead of leaving tombstones, so lookups never pay
// for dead slots no matter how long the map lives.
package robinhood

// Hashable is the contract a key type satisfies: content hashing and
// equality, the same pair term.Term already carries.
type Hashable[K any] interface {
	Hash() uint64
	Equal(other K) bool
}

// Map is a robin-hood hash map from K to V. The zero Map is not
// usable; construct one with New.
type Map[K Hashable[K], V any] struct {
	slots  []slot[K, V]
	length int
}

type slot[K Hashable[K], V any] struct {
	hash     uint64
	key      K
	value    V
	occupied bool
}

// Every insert past loadFactor×capacity doubles the table. Without
// tombstones a probe run only ever grows through genuine occupancy, so
// the threshold can sit higher than a tombstone-accumulating table
// could afford.
const loadFactor = 0.8

// minSize is the capacity of the first allocation. Handle tables are
// small for most of their life; starting at eight slots avoids a
// burst of doublings during the first few registers.
const minSize = 8

// New returns a Map sized to hold sizeHint entries without growing.
func New[K Hashable[K], V any](sizeHint uint) *Map[K, V] {
	m := &Map[K, V]{}
	if sizeHint > 0 {
		capacity := minSize
		for float64(capacity)*loadFactor < float64(sizeHint) {
			capacity <<= 1
		}
		m.slots = make([]slot[K, V], capacity)
	}
	return m
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int { return m.length }

func (m *Map[K, V]) mask() int { return len(m.slots) - 1 }

func (m *Map[K, V]) home(hash uint64) int { return int(hash) & m.mask() }

// probeDistance is how far pos is from the hash's home slot, wrapping
// around the table.
func (m *Map[K, V]) probeDistance(hash uint64, pos int) int {
	d := pos - m.home(hash)
	if d < 0 {
		d += len(m.slots)
	}
	return d
}

// Set associates k with v, replacing any existing value for k.
func (m *Map[K, V]) Set(k K, v V) {
	if len(m.slots) == 0 {
		m.slots = make([]slot[K, V], minSize)
	} else if float64(m.length+1) > float64(len(m.slots))*loadFactor {
		m.rehash(len(m.slots) * 2)
	}
	m.insert(k.Hash(), k, v)
}

func (m *Map[K, V]) insert(hash uint64, k K, v V) {
	pos := m.home(hash)
	var distance int
	for {
		sl := &m.slots[pos]
		if !sl.occupied {
			*sl = slot[K, V]{hash: hash, key: k, value: v, occupied: true}
			m.length++
			return
		}
		if sl.hash == hash && sl.key.Equal(k) {
			sl.value = v
			return
		}
		// Robin-hood displacement: a poorer entry (further from home)
		// evicts a richer resident and the resident continues probing.
		if resident := m.probeDistance(sl.hash, pos); distance > resident {
			hash, sl.hash = sl.hash, hash
			k, sl.key = sl.key, k
			v, sl.value = sl.value, v
			distance = resident
		}
		distance++
		pos = (pos + 1) & m.mask()
	}
}

// Get returns the value associated with k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	pos, ok := m.find(k)
	if !ok {
		var zero V
		return zero, false
	}
	return m.slots[pos].value, true
}

// find returns the slot index holding k. Probing stops at the first
// empty slot or once k would have displaced the resident: past that
// point the key cannot be stored.
func (m *Map[K, V]) find(k K) (int, bool) {
	if len(m.slots) == 0 {
		return 0, false
	}
	hash := k.Hash()
	pos := m.home(hash)
	var distance int
	for {
		sl := &m.slots[pos]
		if !sl.occupied {
			return 0, false
		}
		if distance > m.probeDistance(sl.hash, pos) {
			return 0, false
		}
		if sl.hash == hash && sl.key.Equal(k) {
			return pos, true
		}
		distance++
		pos = (pos + 1) & m.mask()
	}
}

// Delete removes k if present. The probe run after k is shifted back
// one slot so no tombstone is left behind: each successor that is not
// already at its home slot moves into the vacancy, and the run ends at
// the first empty or at-home slot.
func (m *Map[K, V]) Delete(k K) {
	pos, ok := m.find(k)
	if !ok {
		return
	}
	for {
		next := (pos + 1) & m.mask()
		sl := &m.slots[next]
		if !sl.occupied || m.probeDistance(sl.hash, next) == 0 {
			break
		}
		m.slots[pos] = *sl
		pos = next
	}
	m.slots[pos] = slot[K, V]{}
	m.length--
}

// ForEach calls fn for every live entry, in unspecified order, until
// fn returns false.
func (m *Map[K, V]) ForEach(fn func(K, V) bool) {
	for i := range m.slots {
		sl := &m.slots[i]
		if !sl.occupied {
			continue
		}
		if !fn(sl.key, sl.value) {
			return
		}
	}
}

func (m *Map[K, V]) rehash(size int) {
	old := m.slots
	m.slots = make([]slot[K, V], size)
	m.length = 0
	for _, sl := range old {
		if sl.occupied {
			m.insert(sl.hash, sl.key, sl.value)
		}
	}
}
