// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package models

// EventsResponse is the body of GET /api/events.
//
// The endpoint always answers 200 with a non-empty Events slice; when every
// provider came back empty (or the pipeline failed), Events holds the enriched
// built-in dataset and Sources carries a "fallback" entry so callers can tell
// live data from fallback data without a separate error channel.
//
// Example:
//
//	{
//	  "events": [...],
//	  "sources": {"ticketmaster": 42, "yelp": 18, "eventbrite": 7, "total": 67}
//	}
type EventsResponse struct {
	Events  []Event      `json:"events"`
	Sources SourceCounts `json:"sources"`
}

// SourceCounts reports per-provider raw item counts (pre-deduplication) plus
// a "total" key. Diagnostic only; the dedup/enrich passes may shrink the
// actual Events slice below total.
type SourceCounts map[string]int

// ViewResponse is the body of POST /api/events/{id}/view.
type ViewResponse struct {
	Success bool  `json:"success"`
	Views   int64 `json:"views"`
}

// FavoriteResponse is the body of POST /api/events/{id}/favorite.
type FavoriteResponse struct {
	Success   bool  `json:"success"`
	Favorites int64 `json:"favorites"`
}

// FavoriteRequest is the body of POST /api/events/{id}/favorite.
// Favorited is a pointer so a missing field fails validation instead of
// silently defaulting to an un-favorite.
type FavoriteRequest struct {
	Favorited *bool `json:"favorited" validate:"required"`
}

// APIError represents a structured error payload for the auxiliary endpoints.
// The aggregation endpoint itself never returns one; errors there are absorbed
// into the fallback dataset.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse wraps an APIError for JSON serialization.
type ErrorResponse struct {
	Status string    `json:"status"`
	Error  *APIError `json:"error"`
}
