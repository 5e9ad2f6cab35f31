// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package enrich

import (
	"github.com/URGG/lapulse/internal/models"
	"github.com/URGG/lapulse/internal/stats"
)

// Engine computes the derived, presentation-ready fields on deduplicated
// events: parking heuristic, nearest-transit lookup, and the batch-relative
// trending flag. The three passes are independent; only trending needs the
// whole batch at once.
type Engine struct {
	stats stats.Store
}

// NewEngine creates an enrichment engine backed by the given counter store.
func NewEngine(store stats.Store) *Engine {
	return &Engine{stats: store}
}

// Enrich populates the derived fields on every event in the batch, in place,
// and returns the same slice. Events keep their input order.
func (e *Engine) Enrich(events []models.Event) []models.Event {
	scores := make([]float64, len(events))

	for i := range events {
		ev := &events[i]

		ev.ParkingInfo = ParkingInfo(ev.Category)
		ev.NearbyTransit = NearbyTransit(ev.Latitude, ev.Longitude)

		counts := e.stats.Get(ev.ID)
		ev.ViewCount = counts.Views
		ev.FavoriteCount = counts.Favorites
		scores[i] = trendingScore(counts.Views, counts.Favorites)
	}

	for i, trending := range markTrending(scores) {
		events[i].IsTrending = trending
	}
	return events
}
