// Copyright (c) 2024 The sortedtermset Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package testutil holds test helpers shared by _test.go files across
// the module.
package testutil

import (
	"reflect"

	"github.com/kylelemons/godebug/pretty"
)

// Diff returns a human readable diff of a and b; the empty string
// means they are deeply equal.
func Diff(a, b interface{}) string {
	if reflect.DeepEqual(a, b) {
		return ""
	}
	return pretty.Compare(a, b)
}

// DeepEqual reports whether a and b are deeply equal.
func DeepEqual(a, b interface{}) bool {
	return reflect.DeepEqual(a, b)
}
