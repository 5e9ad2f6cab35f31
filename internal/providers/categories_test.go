// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package providers

import (
	"testing"

	"github.com/URGG/lapulse/internal/models"
)

// TestMapTicketmasterClassification verifies segment/genre pairs map to the
// expected app category
func TestMapTicketmasterClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		segment string
		genre   string
		want    models.Category
	}{
		{"sports segment", "Sports", "Basketball", models.CategorySports},
		{"sports genre under misc segment", "Miscellaneous", "Extreme Sports", models.CategorySports},
		{"arts segment", "Arts & Theatre", "Theatre", models.CategoryArts},
		{"dance genre", "Miscellaneous", "Dance", models.CategoryArts},
		{"fine art genre", "Miscellaneous", "Fine Art", models.CategoryArts},
		{"food genre", "Miscellaneous", "Food & Drink Festivals", models.CategoryFood},
		{"culinary genre", "Miscellaneous", "Culinary Events", models.CategoryFood},
		{"nightlife genre", "Miscellaneous", "Nightlife", models.CategoryBars},
		{"club genre", "Miscellaneous", "Club Nights", models.CategoryBars},
		{"music segment", "Music", "Rock", models.CategoryEntertainment},
		{"film segment", "Film", "Documentary", models.CategoryEntertainment},
		{"empty classification", "", "", models.CategoryEntertainment},
		{"unknown taxonomy", "Hobbies", "Collecting", models.CategoryEntertainment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapTicketmasterClassification(tt.segment, tt.genre)
			if got != tt.want {
				t.Errorf("Expected %q for segment=%q genre=%q, got %q", tt.want, tt.segment, tt.genre, got)
			}
		})
	}
}

// TestMapYelpCategories verifies alias slices map to the expected app
// category, including the bars-before-food priority
func TestMapYelpCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		aliases []string
		want    models.Category
	}{
		{"cocktail bar", []string{"cocktailbars"}, models.CategoryBars},
		{"nightlife", []string{"nightlife", "danceclubs"}, models.CategoryBars},
		{"bar that serves food wins as bar", []string{"bars", "restaurants"}, models.CategoryBars},
		{"restaurant", []string{"restaurants", "mexican"}, models.CategoryFood},
		{"coffee shop", []string{"coffee"}, models.CategoryFood},
		{"gallery", []string{"galleries"}, models.CategoryArts},
		{"museum", []string{"museums"}, models.CategoryArts},
		{"theater", []string{"theater"}, models.CategoryArts},
		{"sports club", []string{"active", "climbing"}, models.CategorySports},
		{"fitness", []string{"fitness"}, models.CategorySports},
		{"no aliases", nil, models.CategoryEntertainment},
		{"unknown aliases", []string{"laundromat"}, models.CategoryEntertainment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapYelpCategories(tt.aliases)
			if got != tt.want {
				t.Errorf("Expected %q for aliases=%v, got %q", tt.want, tt.aliases, got)
			}
		})
	}
}

// TestMapEventbriteCategory verifies category names map to the expected app
// category
func TestMapEventbriteCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category string
		want     models.Category
	}{
		{"sports and fitness", "Sports & Fitness", models.CategorySports},
		{"performing arts", "Performing & Visual Arts", models.CategoryArts},
		{"food and drink", "Food & Drink", models.CategoryFood},
		{"nightlife", "Nightlife", models.CategoryBars},
		{"music", "Music", models.CategoryEntertainment},
		{"empty", "", models.CategoryEntertainment},
		{"unknown", "Science & Technology", models.CategoryEntertainment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapEventbriteCategory(tt.category)
			if got != tt.want {
				t.Errorf("Expected %q for category=%q, got %q", tt.want, tt.category, got)
			}
		})
	}
}

// TestCategoryMappingAlwaysValid verifies every mapper output is a valid
// category for arbitrary garbage input
func TestCategoryMappingAlwaysValid(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "x", "ZZZZ", "sport art food bar", "\x00weird"}
	for _, in := range inputs {
		if got := MapTicketmasterClassification(in, in); !got.Valid() {
			t.Errorf("MapTicketmasterClassification(%q) returned invalid category %q", in, got)
		}
		if got := MapYelpCategories([]string{in}); !got.Valid() {
			t.Errorf("MapYelpCategories(%q) returned invalid category %q", in, got)
		}
		if got := MapEventbriteCategory(in); !got.Valid() {
			t.Errorf("MapEventbriteCategory(%q) returned invalid category %q", in, got)
		}
	}
}
