// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package enrich

import "github.com/URGG/lapulse/internal/models"

// parkingByCategory is a heuristic lookup, not live availability data:
// venues of the same category around LA cluster tightly enough in parking
// situation that a canned answer per category beats no answer.
var parkingByCategory = map[models.Category]models.ParkingInfo{
	models.CategoryEntertainment: {
		Available: true,
		Cost:      "$10-25",
		Locations: []string{"Venue lot", "Nearby structures"},
	},
	models.CategoryFood: {
		Available: true,
		Cost:      "Free-$10",
		Locations: []string{"Street parking", "Valet"},
	},
	models.CategorySports: {
		Available: true,
		Cost:      "$20-40",
		Locations: []string{"Stadium lots", "Park & ride shuttles"},
	},
	models.CategoryArts: {
		Available: true,
		Cost:      "$8-15",
		Locations: []string{"Museum garage", "Street parking"},
	},
	models.CategoryBars: {
		Available: false,
		Cost:      "Street only",
		Locations: []string{"Street parking", "Rideshare recommended"},
	},
}

// ParkingInfo returns the canned parking heuristic for a category. Total:
// unknown categories get the entertainment default, mirroring the category
// mapper's own fallback.
func ParkingInfo(category models.Category) *models.ParkingInfo {
	info, ok := parkingByCategory[category]
	if !ok {
		info = parkingByCategory[models.CategoryEntertainment]
	}
	// Copy so callers can't mutate the shared table.
	out := info
	out.Locations = append([]string(nil), info.Locations...)
	return &out
}
