// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package stats

import (
	"sync"
	"testing"
)

// TestMemoryStore_SeedRanges verifies random seeds land in the documented
// ranges and are stable per ID
func TestMemoryStore_SeedRanges(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	for i := 0; i < 50; i++ {
		id := string(rune('a' + i%26))
		c := store.Get(id)
		if c.Views < 50 || c.Views > 549 {
			t.Errorf("Expected views in [50,549], got %d", c.Views)
		}
		if c.Favorites < 5 || c.Favorites > 54 {
			t.Errorf("Expected favorites in [5,54], got %d", c.Favorites)
		}
		if again := store.Get(id); again != c {
			t.Errorf("Expected stable counts for %s, got %v then %v", id, c, again)
		}
	}
}

// TestMemoryStore_IncrementView verifies views increase monotonically from
// the seed
func TestMemoryStore_IncrementView(t *testing.T) {
	t.Parallel()

	store := NewFixedStore(10, 1)

	if got := store.IncrementView("e1"); got != 11 {
		t.Errorf("Expected 11 views after first increment, got %d", got)
	}
	if got := store.IncrementView("e1"); got != 12 {
		t.Errorf("Expected 12 views after second increment, got %d", got)
	}
	if got := store.Get("e1"); got.Views != 12 {
		t.Errorf("Expected Get to observe 12 views, got %d", got.Views)
	}
}

// TestMemoryStore_SetFavorite verifies favorite adjustment with the zero
// floor
func TestMemoryStore_SetFavorite(t *testing.T) {
	t.Parallel()

	store := NewFixedStore(0, 1)

	if got := store.SetFavorite("e1", true); got != 2 {
		t.Errorf("Expected 2 favorites after favoriting, got %d", got)
	}
	if got := store.SetFavorite("e1", false); got != 1 {
		t.Errorf("Expected 1 favorite after unfavoriting, got %d", got)
	}
	if got := store.SetFavorite("e1", false); got != 0 {
		t.Errorf("Expected 0 favorites, got %d", got)
	}
	// Floor: un-favoriting at zero stays at zero.
	if got := store.SetFavorite("e1", false); got != 0 {
		t.Errorf("Expected favorites floored at 0, got %d", got)
	}
}

// TestMemoryStore_Concurrent verifies the store under concurrent writers
func TestMemoryStore_Concurrent(t *testing.T) {
	t.Parallel()

	store := NewFixedStore(0, 0)

	const goroutines = 20
	const perGoroutine = 100

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				store.IncrementView("shared")
				store.SetFavorite("shared", true)
			}
		}()
	}
	wg.Wait()

	c := store.Get("shared")
	if c.Views != goroutines*perGoroutine {
		t.Errorf("Expected %d views, got %d", goroutines*perGoroutine, c.Views)
	}
	if c.Favorites != goroutines*perGoroutine {
		t.Errorf("Expected %d favorites, got %d", goroutines*perGoroutine, c.Favorites)
	}
}
