// Copyright (c) 2024 The sortedtermset Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package bucket implements a sorted, bounded, deduplicating array of
// term.Term values: the storage unit of a sortedset.Set. A Bucket
// never holds more than one copy of an equal term and keeps its
// contents strictly increasing under term.Compare. sortedset.Set is
// responsible for splitting a Bucket once it overflows and for
// collapsing an emptied Bucket; Bucket itself only guarantees the
// invariants of a single sorted run.
package bucket
