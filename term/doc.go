// Copyright (c) 2024 The sortedtermset Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package term defines the tagged value stored by a sortedset.Set.
//
// A Term is a closed sum type over five variants: Integer, Atom,
// Bitstring, Tuple and List. Unlike a bare Go interface{}, the set of
// representable shapes is fixed so that Compare, Clone and Free can be
// exhaustive. Ordering is total and deterministic: variant rank first
// (Integer < Atom < Tuple < List < Bitstring), then a variant-specific
// comparison. The order never changes across releases of a Term, which
// is what lets a sortedset.Set keep its bucket boundaries valid across
// inserts.
package term
