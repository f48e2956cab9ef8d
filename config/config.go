// Copyright (c) 2024 The sortedtermset Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package config holds the immutable tuning record for a sortedset.Set.
package config

import "fmt"

// DefaultMaxBucketSize is the library default for Configuration.MaxBucketSize.
const DefaultMaxBucketSize = 500

// Configuration tunes a sortedset.Set. It is immutable once
// constructed; build a new value rather than mutating one in place.
type Configuration struct {
	// MaxBucketSize bounds the number of terms a single bucket may
	// hold before sortedset.Set splits it. Must be positive.
	MaxBucketSize int
	// InitialSetCapacity is a capacity hint for the set's bucket list,
	// not a hard limit.
	InitialSetCapacity int
}

// Default returns the library-default Configuration:
// MaxBucketSize=500, InitialSetCapacity=0.
func Default() Configuration {
	return Configuration{MaxBucketSize: DefaultMaxBucketSize}
}

// New validates and builds a Configuration. maxBucketSize must be
// positive; initialSetCapacity must be non-negative.
func New(maxBucketSize, initialSetCapacity int) (Configuration, error) {
	if maxBucketSize <= 0 {
		return Configuration{}, fmt.Errorf("config: max bucket size must be positive, got %d", maxBucketSize)
	}
	if initialSetCapacity < 0 {
		return Configuration{}, fmt.Errorf("config: initial set capacity must be non-negative, got %d", initialSetCapacity)
	}
	return Configuration{MaxBucketSize: maxBucketSize, InitialSetCapacity: initialSetCapacity}, nil
}

// FromItemCapacity derives a Configuration from an expected item
// count: initialItemCapacity is converted to a bucket-list capacity
// hint via initialItemCapacity/maxBucketSize + 1.
func FromItemCapacity(maxBucketSize, initialItemCapacity int) (Configuration, error) {
	if maxBucketSize <= 0 {
		return Configuration{}, fmt.Errorf("config: max bucket size must be positive, got %d", maxBucketSize)
	}
	if initialItemCapacity < 0 {
		return Configuration{}, fmt.Errorf("config: initial item capacity must be non-negative, got %d", initialItemCapacity)
	}
	initialSetCapacity := initialItemCapacity/maxBucketSize + 1
	return Configuration{MaxBucketSize: maxBucketSize, InitialSetCapacity: initialSetCapacity}, nil
}
