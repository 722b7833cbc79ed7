// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "sync"

// collection is the ordered in-memory sequence backing one entity type,
// parameterized over the record type. Records keep insertion order: an
// in-place replace preserves the record's position and a removal shifts the
// records after it down by one.
//
// Every method takes the collection's mutex, so a collection is safe for
// concurrent callers. Identifier allocation and the subsequent append share
// one critical section: two concurrent inserts can never receive the same
// identifier.
type collection[T any] struct {
	mu    sync.Mutex
	alloc *allocator
	recs  []T

	// id extracts the identifier from a record; the collection itself
	// stays agnostic of the concrete record layout.
	id func(T) int64
}

func newCollection[T any](id func(T) int64) *collection[T] {
	return &collection[T]{
		alloc: newAllocator(),
		id:    id,
	}
}

// insert allocates the next identifier, builds the record from it, and
// appends the result to the end of the collection.
func (c *collection[T]) insert(build func(id int64) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec := build(c.alloc.nextID())
	c.recs = append(c.recs, rec)
	return rec
}

// insertChecked runs check against the current records before allocating an
// identifier and appending. Check and append share the critical section, so
// a conflicting concurrent insert can never slip in between (the
// check-then-act race on unique fields is serialized here).
//
// When check fails, nothing is allocated and the collection is left exactly
// as it was.
func (c *collection[T]) insertChecked(check func(existing []T) error, build func(id int64) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := check(c.recs); err != nil {
		var zero T
		return zero, err
	}

	rec := build(c.alloc.nextID())
	c.recs = append(c.recs, rec)
	return rec, nil
}

// findByID returns the record with the given identifier via linear scan.
// Identifiers are unique within a collection, so the first match is the
// only one.
func (c *collection[T]) findByID(id int64) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, rec := range c.recs {
		if c.id(rec) == id {
			return rec, true
		}
	}

	var zero T
	return zero, false
}

// find returns the first record satisfying pred, in insertion order.
func (c *collection[T]) find(pred func(T) bool) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, rec := range c.recs {
		if pred(rec) {
			return rec, true
		}
	}

	var zero T
	return zero, false
}

// replace locates the record with the given identifier and overwrites it in
// place with mutate(old), preserving its position. The second return value
// is false when no record carries the identifier.
func (c *collection[T]) replace(id int64, mutate func(old T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for idx, rec := range c.recs {
		if c.id(rec) == id {
			updated := mutate(rec)
			c.recs[idx] = updated
			return updated, true
		}
	}

	var zero T
	return zero, false
}

// remove deletes the record with the given identifier, shifting later
// records down by one position. Returns false when no record matches.
func (c *collection[T]) remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for idx, rec := range c.recs {
		if c.id(rec) == id {
			c.recs = append(c.recs[:idx], c.recs[idx+1:]...)
			return true
		}
	}

	return false
}

// slice returns up to limit records in insertion order after skipping the
// first skip records. Out-of-range arguments yield an empty or truncated
// result, never an error; negative values are treated as zero.
func (c *collection[T]) slice(skip, limit int) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}
	if skip >= len(c.recs) {
		return []T{}
	}

	end := skip + limit
	if end > len(c.recs) {
		end = len(c.recs)
	}

	out := make([]T, end-skip)
	copy(out, c.recs[skip:end])
	return out
}

// all returns a copy of every record in insertion order.
func (c *collection[T]) all() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, len(c.recs))
	copy(out, c.recs)
	return out
}

// size returns the number of records currently stored.
func (c *collection[T]) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.recs)
}

// clear removes every record. The allocator keeps counting unless
// resetAllocator is true: the items and users collections clear without a
// reset, while the audit collection restarts its identifier sequence at 1.
func (c *collection[T]) clear(resetAllocator bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.recs = nil
	if resetAllocator {
		c.alloc.reset()
	}
}
