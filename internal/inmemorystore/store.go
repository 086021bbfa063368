// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package inmemorystore

import (
	"slices"
	"sync"
)

// Store maps canonical string keys to values of type V. The zero value is an
// empty store ready for use.
type Store[V any] struct {
	mu    sync.RWMutex
	items map[string]V
}

// New creates a new, empty store.
func New[V any]() *Store[V] {
	return &Store[V]{items: make(map[string]V)}
}

// Set inserts value under key, replacing any previous value.
func (s *Store[V]) Set(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.items == nil {
		s.items = make(map[string]V)
	}
	s.items[key] = value
}

// Get returns the value stored under key. The boolean is false when the key
// was never set or has been deleted.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	return value, ok
}

// Delete removes key from the store. Deleting an absent key does nothing.
func (s *Store[V]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
}

// Len returns the number of stored entries.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// Keys returns a sorted snapshot of all keys.
func (s *Store[V]) Keys() []string {
	s.mu.RLock()
	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	s.mu.RUnlock()

	slices.Sort(keys)
	return keys
}

// Clone returns an independent store holding the same entries. Values are
// shared with the receiver; later writes to either store are not visible in
// the other.
func (s *Store[V]) Clone() *Store[V] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clone := &Store[V]{items: make(map[string]V, len(s.items))}
	for k, v := range s.items {
		clone.items[k] = v
	}
	return clone
}
