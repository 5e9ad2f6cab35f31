// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package providers

import (
	"strings"

	"github.com/URGG/lapulse/internal/models"
)

// Category mapping is deliberately duck-typed: lowercase substring checks
// against upstream taxonomy names. Every function here is pure and total:
// it never fails and always returns one of the five categories, defaulting
// to entertainment for unrecognized input. The most specific signal is
// checked first (explicit sport/art keywords) before falling back to the
// broad segment/category field.

// MapTicketmasterClassification maps a Ticketmaster segment/genre pair to an
// app category. Ticketmaster taxonomies: segment is the broad bucket
// ("Music", "Sports", "Arts & Theatre", "Film", "Miscellaneous"), genre is
// the specific one ("Basketball", "Theatre", "Food & Drink Festivals").
func MapTicketmasterClassification(segment, genre string) models.Category {
	s := strings.ToLower(segment)
	g := strings.ToLower(genre)

	switch {
	// Specific genre signals take priority over the broad segment.
	case strings.Contains(g, "sport"), strings.Contains(s, "sport"):
		return models.CategorySports
	case strings.Contains(g, "theatre"), strings.Contains(g, "theater"),
		strings.Contains(g, "fine art"), strings.Contains(g, "dance"),
		strings.Contains(s, "arts"):
		return models.CategoryArts
	case strings.Contains(g, "food"), strings.Contains(g, "culinary"),
		strings.Contains(g, "dining"):
		return models.CategoryFood
	case strings.Contains(g, "nightlife"), strings.Contains(g, "club"):
		return models.CategoryBars
	default:
		// Music, Film, Miscellaneous and anything unrecognized.
		return models.CategoryEntertainment
	}
}

// MapYelpCategories maps a Yelp business's category aliases to an app
// category. Aliases are machine names like "cocktailbars" or "galleries".
// The first matching rule wins; bars are checked before food because most
// bars also carry a food alias.
func MapYelpCategories(aliases []string) models.Category {
	joined := strings.ToLower(strings.Join(aliases, ","))

	switch {
	case strings.Contains(joined, "bar"), strings.Contains(joined, "nightlife"),
		strings.Contains(joined, "pub"), strings.Contains(joined, "lounge"):
		return models.CategoryBars
	case strings.Contains(joined, "restaurant"), strings.Contains(joined, "food"),
		strings.Contains(joined, "cafe"), strings.Contains(joined, "coffee"):
		return models.CategoryFood
	case strings.Contains(joined, "galler"), strings.Contains(joined, "museum"),
		strings.Contains(joined, "theater"), strings.Contains(joined, "theatre"),
		strings.Contains(joined, "art"):
		return models.CategoryArts
	case strings.Contains(joined, "active"), strings.Contains(joined, "sport"),
		strings.Contains(joined, "fitness"):
		return models.CategorySports
	default:
		return models.CategoryEntertainment
	}
}

// MapEventbriteCategory maps an Eventbrite category name ("Sports & Fitness",
// "Food & Drink", "Performing & Visual Arts", "Nightlife", ...) to an app
// category.
func MapEventbriteCategory(name string) models.Category {
	n := strings.ToLower(name)

	switch {
	case strings.Contains(n, "sport"), strings.Contains(n, "fitness"):
		return models.CategorySports
	case strings.Contains(n, "art"):
		return models.CategoryArts
	case strings.Contains(n, "food"), strings.Contains(n, "drink"):
		return models.CategoryFood
	case strings.Contains(n, "nightlife"), strings.Contains(n, "bar"):
		return models.CategoryBars
	default:
		return models.CategoryEntertainment
	}
}
