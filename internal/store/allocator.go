// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// allocator produces the monotonically increasing integer identifiers for a
// single collection. A fresh allocator hands out 1, 2, 3, ... in order and
// never reuses a value, even after the record that received it is deleted.
//
// Each collection owns exactly one allocator; allocators of different
// collections are fully independent. The allocator itself performs no
// locking — the owning collection serializes access under its mutex so that
// allocate-then-append is a single critical section.
type allocator struct {
	next int64
}

func newAllocator() *allocator {
	return &allocator{next: 1}
}

// nextID returns the current counter value and advances it by exactly one.
func (a *allocator) nextID() int64 {
	id := a.next
	a.next++
	return id
}

// reset rewinds the counter back to 1.
//
// Only the audit collection ever resets its allocator (on bulk clear); the
// items and users collections keep counting across clears. This asymmetry is
// a documented contract, not an oversight — see the audit repository.
func (a *allocator) reset() {
	a.next = 1
}
