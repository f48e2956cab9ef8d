// Copyright (c) 2024 The sortedtermset Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package sortedset implements a bucketed ordered array: an ordered
// list of bucket.Bucket values that together hold a sorted,
// deduplicated sequence of term.Term with stable random access by
// index.
//
// A flat sorted slice degrades on insert: every insert past the front
// shifts O(N) owned values, and growth reallocates and copies O(N)
// deep-owned terms. Bucketing turns growth into bucket-pointer moves
// in the top-level list, bounding the in-bucket shift cost by
// Configuration.MaxBucketSize. A balanced tree would avoid shifts
// entirely but loses the cache locality and the simple O(|B|) walk
// that At and Slice rely on here.
//
// Set is not safe for concurrent use; concurrency is the caller's
// responsibility (see the handle package for the try-lock-per-handle
// facade built on top of Set).
package sortedset
