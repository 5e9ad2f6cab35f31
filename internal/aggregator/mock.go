// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package aggregator

import "github.com/URGG/lapulse/internal/models"

// FallbackSource is the sources key under which the built-in dataset is
// reported, so clients can tell fallback data from live data.
const FallbackSource = "fallback"

// MockEvents returns a fresh copy of the built-in dataset: one well-known
// LA venue per category plus a downtown anchor. Served whenever every
// provider came back empty so the endpoint never returns an empty payload.
//
// A fresh slice is returned on every call because the dataset goes through
// enrichment, which writes derived fields in place.
func MockEvents() []models.Event {
	return []models.Event{
		{
			ID:          "mock-1",
			Title:       "Live Jazz at The Blue Whale",
			Description: "An intimate evening of contemporary jazz in Little Tokyo.",
			Category:    models.CategoryEntertainment,
			Date:        "Dec 15, 2025",
			Time:        "8:00 PM",
			Address:     "123 Astronaut E S Onizuka St, Los Angeles, CA",
			Latitude:    34.0496,
			Longitude:   -118.2404,
		},
		{
			ID:          "mock-2",
			Title:       "Smorgasburg LA",
			Description: "Weekly open-air food market with dozens of local vendors.",
			Category:    models.CategoryFood,
			Date:        "TBA",
			Time:        "Ongoing",
			Address:     "777 S Alameda St, Los Angeles, CA",
			Latitude:    34.0332,
			Longitude:   -118.2324,
		},
		{
			ID:          "mock-3",
			Title:       "Lakers vs Warriors",
			Description: "NBA regular season matchup at Crypto.com Arena.",
			Category:    models.CategorySports,
			Date:        "Dec 18, 2025",
			Time:        "7:30 PM",
			Address:     "1111 S Figueroa St, Los Angeles, CA",
			Latitude:    34.0430,
			Longitude:   -118.2673,
		},
		{
			ID:          "mock-4",
			Title:       "The Broad: Infinity Mirror Rooms",
			Description: "Timed-entry viewing of Yayoi Kusama's immersive installations.",
			Category:    models.CategoryArts,
			Date:        "Dec 20, 2025",
			Time:        "11:00 AM",
			Address:     "221 S Grand Ave, Los Angeles, CA",
			Latitude:    34.0545,
			Longitude:   -118.2506,
		},
		{
			ID:          "mock-5",
			Title:       "Rooftop Happy Hour at Perch",
			Description: "French-inspired rooftop bar overlooking Pershing Square.",
			Category:    models.CategoryBars,
			Date:        "TBA",
			Time:        "Ongoing",
			Address:     "448 S Hill St, Los Angeles, CA",
			Latitude:    34.0485,
			Longitude:   -118.2513,
		},
		{
			ID:          "mock-6",
			Title:       "Grand Park Sunday Sessions",
			Description: "Free outdoor DJ sets on the Performance Lawn.",
			Category:    models.CategoryEntertainment,
			Date:        "Dec 21, 2025",
			Time:        "2:00 PM",
			Address:     "200 N Grand Ave, Los Angeles, CA",
			Latitude:    34.0565,
			Longitude:   -118.2468,
		},
	}
}
