// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package api

import (
	"context"
	"time"

	"github.com/URGG/lapulse/internal/models"
	"github.com/URGG/lapulse/internal/stats"
)

// EventAggregator is the pipeline entry point the handlers call. Declared
// here so tests can drive the handlers with a stub pipeline.
type EventAggregator interface {
	Aggregate(ctx context.Context) models.EventsResponse
}

// Handler contains dependencies for the API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: shared response/validation helpers
//   - handlers_events.go: aggregation and counter endpoints
//   - handlers_health.go: health endpoint
type Handler struct {
	aggregator EventAggregator
	stats      stats.Store
	startTime  time.Time
}

// NewHandler creates the API handler over the aggregation pipeline and the
// counter store.
func NewHandler(agg EventAggregator, store stats.Store) *Handler {
	return &Handler{
		aggregator: agg,
		stats:      store,
		startTime:  time.Now(),
	}
}
