// Copyright (c) 2024 The sortedtermset Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package diag provides the hold timer the handle facade uses to
// annotate lock-fail log lines with how long the current holder has
// been inside the critical section. It is diagnostic only and never
// drives control flow.
package diag

import (
	"sync/atomic"
	"time"
)

// HoldTimer records when a critical section was entered. The zero
// HoldTimer is ready to use.
type HoldTimer struct {
	enteredNanos atomic.Int64
}

// Enter marks the critical section as entered now. Only the lock
// holder calls Enter, so stores never race with each other.
func (t *HoldTimer) Enter() {
	t.enteredNanos.Store(time.Now().UnixNano())
}

// Exit marks the critical section as left.
func (t *HoldTimer) Exit() {
	t.enteredNanos.Store(0)
}

// Held reports how long the critical section has currently been held.
// ok is false when no holder is inside, or when the holder is racing
// this read so closely that the answer would be meaningless.
func (t *HoldTimer) Held() (d time.Duration, ok bool) {
	entered := t.enteredNanos.Load()
	if entered == 0 {
		return 0, false
	}
	d = time.Duration(time.Now().UnixNano() - entered)
	if d < 0 {
		return 0, false
	}
	return d, true
}
