// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

// Package enrich derives the presentation-ready fields on aggregated events.
//
// Three independent passes run on every deduplicated batch:
//
//   - Parking: a canned heuristic keyed by category (parking.go)
//   - Transit: great-circle distance (haversine, Earth radius 3959 miles)
//     to a fixed LA Metro station list, keeping at most the two nearest
//     stations within two miles (transit.go)
//   - Trending: score = favorites*10 + views from the stats.Store counters;
//     an event trends when its score exceeds 1.5x the batch mean
//     (trending.go)
//
// Distances and scores are computed in double precision; rounding happens
// only at display-string formatting time.
package enrich
