// Copyright (c) 2024 The sortedtermset Authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package handle

import (
	"testing"

	"github.com/aristanetworks/sortedtermset/apierr"
	"github.com/aristanetworks/sortedtermset/config"
	"github.com/aristanetworks/sortedtermset/term"
)

// grab enters h's critical section the way an operation would, so a
// test can observe the facade's behavior while the lock is held. It
// lives in-package because the semaphore is not exported.
func (t *Table) grab(h Handle) (release func(), ok bool) {
	sl, out := t.acquire(h)
	if out != apierr.OK {
		return nil, false
	}
	return func() { t.release(sl) }, true
}

// Every operation must return lock_fail immediately while another
// caller is inside the critical section, and work again once the
// holder leaves.
func TestLockFailWhileHeld(t *testing.T) {
	tbl := NewTable(nil)
	h, err := tbl.New(config.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	release, ok := tbl.grab(h)
	if !ok {
		t.Fatal("grab failed on a fresh handle")
	}

	if out, _ := tbl.Add(h, term.NewInteger(1)); out != apierr.LockFail {
		t.Fatalf("Add while held = %v, want lock_fail", out)
	}
	if out, _ := tbl.Remove(h, term.NewInteger(1)); out != apierr.LockFail {
		t.Fatalf("Remove while held = %v, want lock_fail", out)
	}
	if _, out := tbl.Size(h); out != apierr.LockFail {
		t.Fatalf("Size while held = %v, want lock_fail", out)
	}
	if _, out := tbl.ToList(h); out != apierr.LockFail {
		t.Fatalf("ToList while held = %v, want lock_fail", out)
	}
	if _, out := tbl.At(h, 0); out != apierr.LockFail {
		t.Fatalf("At while held = %v, want lock_fail", out)
	}
	if _, out := tbl.Slice(h, 0, 1); out != apierr.LockFail {
		t.Fatalf("Slice while held = %v, want lock_fail", out)
	}
	if _, out := tbl.FindIndex(h, term.NewInteger(1)); out != apierr.LockFail {
		t.Fatalf("FindIndex while held = %v, want lock_fail", out)
	}
	if _, out := tbl.Debug(h); out != apierr.LockFail {
		t.Fatalf("Debug while held = %v, want lock_fail", out)
	}
	if out := tbl.AppendBucket(h, []term.Term{term.NewInteger(1)}); out != apierr.LockFail {
		t.Fatalf("AppendBucket while held = %v, want lock_fail", out)
	}
	// Release must refuse too: the handle stays live.
	if out := tbl.Release(h); out != apierr.LockFail {
		t.Fatalf("Release while held = %v, want lock_fail", out)
	}

	release()
	if out, idx := tbl.Add(h, term.NewInteger(1)); out != apierr.Added || idx != 0 {
		t.Fatalf("Add after release = (%v, %d), want (added, 0)", out, idx)
	}
	if out := tbl.Release(h); out != apierr.OK {
		t.Fatalf("Release after unlock = %v, want ok", out)
	}
}
