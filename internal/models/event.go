// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package models

// Category is the closed set of event categories the mobile client renders.
// Every provider taxonomy must map into exactly one of these values.
type Category string

const (
	CategoryEntertainment Category = "entertainment"
	CategoryFood          Category = "food"
	CategorySports        Category = "sports"
	CategoryArts          Category = "arts"
	CategoryBars          Category = "bars"
)

// Categories lists every valid category in a stable order.
// Used by the Yelp provider (one search per category) and by tests.
var Categories = []Category{
	CategoryEntertainment,
	CategoryFood,
	CategorySports,
	CategoryArts,
	CategoryBars,
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryEntertainment, CategoryFood, CategorySports, CategoryArts, CategoryBars:
		return true
	}
	return false
}

// Event is the canonical aggregated event record returned to the mobile client.
//
// IDs are namespaced per source (e.g. "tm-", "yelp-", "eb-" prefixes) so that
// providers reusing numeric IDs can never collide with each other.
//
// ViewCount, FavoriteCount, IsTrending, ParkingInfo and NearbyTransit are
// derived fields populated only by the enrichment engine, never by providers.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`

	// Date and Time are display strings ("Dec 15, 2025", "7:30 PM"),
	// not raw timestamps. Missing values render as "TBA" / "Ongoing".
	Date string `json:"date"`
	Time string `json:"time"`

	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	ImageURL  string `json:"imageUrl,omitempty"`
	TicketURL string `json:"ticketUrl,omitempty"`

	ViewCount     int64         `json:"viewCount"`
	FavoriteCount int64         `json:"favoriteCount"`
	IsTrending    bool          `json:"isTrending"`
	ParkingInfo   *ParkingInfo  `json:"parkingInfo,omitempty"`
	NearbyTransit []TransitStop `json:"nearbyTransit,omitempty"`
}

// ParkingInfo is a category-keyed parking heuristic, not live availability data.
type ParkingInfo struct {
	Available bool     `json:"available"`
	Cost      string   `json:"cost"`
	Locations []string `json:"locations"`
}

// TransitStop describes one nearby transit station with a formatted distance
// ("850 ft" under a mile, "1.3 mi" otherwise).
type TransitStop struct {
	Type     string `json:"type"`
	Station  string `json:"station"`
	Distance string `json:"distance"`
}
