// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package cache provides a generic in-memory keyed store with lazy TTL
// expiry.
//
// There is no background eviction: expiry is checked on read, and a Put
// overwrites any prior entry. One Store is used per entity kind (modules,
// versions, migration guides, compatibility matrices) so a stampede on one
// kind cannot evict another.
//
// # Thread Safety
//
// Store is safe for concurrent use. Concurrent writers to the same key are
// last-writer-wins, which is safe because every cached value is immutable
// after creation.
package cache

import (
	"sync"
	"time"
)

// Clock abstracts time.Now so tests can drive expiry deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }

type entry[V any] struct {
	value      V
	insertedAt time.Time
}

// Store is a keyed TTL cache for values of type V.
type Store[V any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	clock   Clock
	entries map[string]entry[V]
}

// New creates a Store with the given TTL using the system clock.
func New[V any](ttl time.Duration) *Store[V] {
	return NewWithClock[V](ttl, SystemClock{})
}

// NewWithClock creates a Store with an injected Clock. Tests substitute a
// fake clock here to exercise expiry without sleeping.
func NewWithClock[V any](ttl time.Duration, clock Clock) *Store[V] {
	return &Store[V]{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]entry[V]),
	}
}

// Get returns the stored value for key if present and younger than the
// TTL. The second return is false on a miss or an expired entry. Expired
// entries are left in place; the next Put overwrites them.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if s.clock.Now().Sub(e.insertedAt) >= s.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Put stores value under key with the current timestamp, overwriting any
// prior entry.
func (s *Store[V]) Put(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry[V]{value: value, insertedAt: s.clock.Now()}
}

// Len returns the number of entries, expired ones included.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
