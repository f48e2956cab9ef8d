// Copyright (c) 2024 The sortedtermset Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package apierr defines the closed set of outcome tags the handle
// facade returns to a host, in place of Go errors for expected,
// logical results.
package apierr

// Outcome is a closed, string-backed result tag returned by every
// handle.Table operation on an existing handle. Unlike an error, an
// Outcome is ordinary control flow: Duplicate, NotFound and friends are
// expected results, not exceptional failures.
type Outcome string

const (
	// OK is returned by operations with no more specific success tag
	// (append_bucket, size, to_list, at, slice, find_index, debug,
	// release).
	OK Outcome = "ok"
	// Added means Add inserted a new term.
	Added Outcome = "added"
	// Duplicate means Add found the term already present.
	Duplicate Outcome = "duplicate"
	// Removed means Remove deleted the term.
	Removed Outcome = "removed"
	// NotFound means Remove or FindIndex could not locate the term.
	NotFound Outcome = "not_found"
	// IndexOutOfBounds means At indexed at or past Size.
	IndexOutOfBounds Outcome = "index_out_of_bounds"
	// MaxBucketSizeExceeded means AppendBucket was given a slice of
	// length >= the set's configured MaxBucketSize.
	MaxBucketSizeExceeded Outcome = "max_bucket_size_exceeded"
	// UnsupportedType means a term.Term value was malformed (a kind
	// outside term.Kind's closed set, or a Bitstring with invalid
	// UTF-8 bytes that bypassed the constructor).
	UnsupportedType Outcome = "unsupported_type"
	// BadReference means the handle does not identify a live set.
	BadReference Outcome = "bad_reference"
	// LockFail means the non-blocking try-lock on the handle's set was
	// already held by another caller.
	LockFail Outcome = "lock_fail"
)

// String returns the wire tag, identical to the Outcome's value.
func (o Outcome) String() string { return string(o) }

// IsError reports whether o represents a failure rather than a
// successful result (Added/Duplicate/Removed/OK).
func (o Outcome) IsError() bool {
	switch o {
	case OK, Added, Duplicate, Removed:
		return false
	default:
		return true
	}
}
