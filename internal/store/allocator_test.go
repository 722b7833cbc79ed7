package store

import "testing"

func TestAllocator_StartsAtOne(t *testing.T) {
	alloc := newAllocator()

	if id := alloc.nextID(); id != 1 {
		t.Fatalf("expected first id=1, got %d", id)
	}
}

func TestAllocator_MonotonicallyIncreasing(t *testing.T) {
	alloc := newAllocator()

	for want := int64(1); want <= 100; want++ {
		if got := alloc.nextID(); got != want {
			t.Fatalf("expected id=%d, got %d", want, got)
		}
	}
}

func TestAllocator_Reset(t *testing.T) {
	alloc := newAllocator()

	alloc.nextID()
	alloc.nextID()
	alloc.reset()

	if got := alloc.nextID(); got != 1 {
		t.Errorf("expected id=1 after reset, got %d", got)
	}
}

func TestAllocators_AreIndependent(t *testing.T) {
	first := newAllocator()
	second := newAllocator()

	first.nextID()
	first.nextID()

	if got := second.nextID(); got != 1 {
		t.Errorf("expected independent allocator to start at 1, got %d", got)
	}
}
