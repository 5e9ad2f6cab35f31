// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package aggregator

import (
	"testing"

	"github.com/URGG/lapulse/internal/models"
)

// TestDeduplicate verifies first-occurrence-wins, order-preserving filtering
func TestDeduplicate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ids     []string
		wantIDs []string
	}{
		{"no duplicates", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"adjacent duplicate", []string{"a", "a", "b"}, []string{"a", "b"}},
		{"separated duplicate", []string{"a", "b", "a", "c", "b"}, []string{"a", "b", "c"}},
		{"all same", []string{"x", "x", "x"}, []string{"x"}},
		{"empty", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := make([]models.Event, 0, len(tt.ids))
			for i, id := range tt.ids {
				// Title marks the original index so first-wins is observable.
				events = append(events, models.Event{ID: id, Title: string(rune('0' + i))})
			}

			got := Deduplicate(events)
			if got == nil {
				t.Fatal("Expected non-nil result")
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Expected %d events, got %d", len(tt.wantIDs), len(got))
			}
			for i, want := range tt.wantIDs {
				if got[i].ID != want {
					t.Errorf("Expected ID %s at index %d, got %s", want, i, got[i].ID)
				}
			}
		})
	}
}

// TestDeduplicate_KeepsFirstOccurrence verifies the survivor is the earliest
// copy, not an arbitrary one
func TestDeduplicate_KeepsFirstOccurrence(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		{ID: "dup", Title: "first"},
		{ID: "dup", Title: "second"},
	}

	got := Deduplicate(events)
	if len(got) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(got))
	}
	if got[0].Title != "first" {
		t.Errorf("Expected the first occurrence to survive, got %q", got[0].Title)
	}
}

// TestDeduplicate_Idempotent verifies running the filter on its own output
// is a no-op
func TestDeduplicate_Idempotent(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		{ID: "a"}, {ID: "b"}, {ID: "a"}, {ID: "c"},
	}

	once := Deduplicate(events)
	twice := Deduplicate(once)

	if len(once) != len(twice) {
		t.Fatalf("Expected idempotent filter, got %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("Expected stable output at index %d, got %s then %s", i, once[i].ID, twice[i].ID)
		}
	}
}
