// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

// Package stats holds the per-event view and favorite counters.
//
// The counters are process-lifetime state, not a source of truth: they seed
// the trending calculation and back the auxiliary counter endpoints, and
// they reset on restart. The Store interface exists so the in-memory
// implementation can be swapped for a real persistence layer (or a fixture
// in tests) without touching the enrichment engine.
package stats

import (
	"math/rand/v2"
	"sync"
)

// Counts is one event's counter pair.
type Counts struct {
	Views     int64
	Favorites int64
}

// Store is the per-event counter store consumed by the enrichment engine and
// the counter endpoints. Get lazily initializes unknown IDs.
type Store interface {
	// Get returns the counters for id, seeding them on first access.
	Get(id string) Counts

	// IncrementView adds one view and returns the new view count.
	IncrementView(id string) int64

	// SetFavorite adjusts the favorite count by +1 or -1 (floored at zero)
	// and returns the new favorite count.
	SetFavorite(id string, favorited bool) int64
}

// MemoryStore is the default Store: a mutex-guarded map seeded with
// pseudo-random counters so trending has signal to work with on a fresh
// process. Safe for concurrent use.
type MemoryStore struct {
	mu     sync.Mutex
	counts map[string]Counts
	seed   func(id string) Counts
}

// Ensure MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a store with randomized seed counters
// (views 50-549, favorites 5-54).
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counts: make(map[string]Counts),
		seed: func(string) Counts {
			return Counts{
				Views:     rand.Int64N(500) + 50,
				Favorites: rand.Int64N(50) + 5,
			}
		},
	}
}

// NewFixedStore creates a store that seeds every unknown ID with the given
// counters. Used by tests that need deterministic trending scores.
func NewFixedStore(views, favorites int64) *MemoryStore {
	return &MemoryStore{
		counts: make(map[string]Counts),
		seed: func(string) Counts {
			return Counts{Views: views, Favorites: favorites}
		},
	}
}

// getLocked returns the counters for id, seeding on first access.
// Callers must hold mu.
func (s *MemoryStore) getLocked(id string) Counts {
	c, ok := s.counts[id]
	if !ok {
		c = s.seed(id)
		s.counts[id] = c
	}
	return c
}

// Get returns the counters for id, seeding them on first access.
func (s *MemoryStore) Get(id string) Counts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(id)
}

// Set overwrites the counters for id. Used by tests to stage exact values.
func (s *MemoryStore) Set(id string, c Counts) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[id] = c
}

// IncrementView adds one view and returns the new view count.
func (s *MemoryStore) IncrementView(id string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.getLocked(id)
	c.Views++
	s.counts[id] = c
	return c.Views
}

// SetFavorite adjusts the favorite count and returns the new value.
// Un-favoriting never drives the count below zero.
func (s *MemoryStore) SetFavorite(id string, favorited bool) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.getLocked(id)
	if favorited {
		c.Favorites++
	} else if c.Favorites > 0 {
		c.Favorites--
	}
	s.counts[id] = c
	return c.Favorites
}
