// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package enrich

import (
	"fmt"
	"math"
	"sort"

	"github.com/URGG/lapulse/internal/models"
)

const (
	// earthRadiusMiles is the Earth radius used by the haversine formula.
	earthRadiusMiles = 3959.0

	// transitRadiusMiles bounds the nearby-transit lookup; stations further
	// out are not worth showing on an event card.
	transitRadiusMiles = 2.0

	// maxTransitStops caps the nearbyTransit list per event.
	maxTransitStops = 2

	feetPerMile = 5280.0
)

// station is one fixed transit stop. The list is hardcoded: LA Metro
// stations move rarely enough that a live lookup is not worth the latency.
type station struct {
	name      string
	kind      string
	latitude  float64
	longitude float64
}

// transitStations covers the Metro rail stations around downtown and the
// major event corridors (Hollywood, Exposition Park, Santa Monica).
var transitStations = []station{
	{"Union Station", "Metro Rail", 34.0561, -118.2365},
	{"7th St/Metro Center", "Metro Rail", 34.0487, -118.2589},
	{"Pershing Square", "Metro Rail", 34.0494, -118.2510},
	{"Civic Center/Grand Park", "Metro Rail", 34.0550, -118.2460},
	{"Pico", "Metro Rail", 34.0406, -118.2663},
	{"Grand/LATTC", "Metro Rail", 34.0331, -118.2687},
	{"Expo Park/USC", "Metro Rail", 34.0184, -118.2864},
	{"Hollywood/Highland", "Metro Rail", 34.1016, -118.3389},
	{"Hollywood/Vine", "Metro Rail", 34.1016, -118.3259},
	{"Universal City/Studio City", "Metro Rail", 34.1398, -118.3630},
	{"Downtown Santa Monica", "Metro Rail", 34.0134, -118.4915},
	{"Culver City", "Metro Rail", 34.0272, -118.3892},
	{"North Hollywood", "Metro Rail", 34.1687, -118.3770},
	{"Chinatown", "Metro Rail", 34.0637, -118.2358},
	{"Little Tokyo/Arts District", "Metro Rail", 34.0504, -118.2381},
}

// NearbyTransit returns the closest stations within the transit radius,
// sorted ascending by distance and truncated to the two nearest. The
// distance string is rendered in feet under one mile, otherwise in miles to
// one decimal.
func NearbyTransit(latitude, longitude float64) []models.TransitStop {
	type scored struct {
		station  station
		distance float64
	}

	var candidates []scored
	for _, s := range transitStations {
		d := haversineMiles(latitude, longitude, s.latitude, s.longitude)
		if d <= transitRadiusMiles {
			candidates = append(candidates, scored{station: s, distance: d})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})
	if len(candidates) > maxTransitStops {
		candidates = candidates[:maxTransitStops]
	}

	stops := make([]models.TransitStop, 0, len(candidates))
	for _, c := range candidates {
		stops = append(stops, models.TransitStop{
			Type:     c.station.kind,
			Station:  c.station.name,
			Distance: formatDistance(c.distance),
		})
	}
	return stops
}

// haversineMiles computes the great-circle distance between two coordinates.
func haversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180.0
	lon1Rad := lon1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0
	lon2Rad := lon2 * math.Pi / 180.0

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

// formatDistance renders a distance for display: whole feet under one mile,
// miles to one decimal otherwise. Rounding happens only here; the underlying
// computation stays in double precision.
func formatDistance(miles float64) string {
	if miles < 1.0 {
		return fmt.Sprintf("%d ft", int(math.Round(miles*feetPerMile)))
	}
	return fmt.Sprintf("%.1f mi", miles)
}
