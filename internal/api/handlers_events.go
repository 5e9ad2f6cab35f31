// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/URGG/lapulse/internal/models"
)

// Events handles GET /api/events: the full aggregation pipeline.
//
// This endpoint always answers 200 with a non-empty events array; provider
// failures, empty upstreams, and even pipeline panics all degrade into the
// enriched fallback dataset inside the aggregator. The only signal that
// fallback data was served is the "fallback" entry in sources.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	resp := h.aggregator.Aggregate(r.Context())
	respondJSON(w, http.StatusOK, resp)
}

// IncrementView handles POST /api/events/{id}/view: bumps the per-event
// view counter used by the trending calculation.
//
// Unknown IDs are valid: the counter store lazily seeds them, so a view on
// an event the server has not aggregated yet (e.g. straight from a client
// deep link) still counts.
func (h *Handler) IncrementView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "event id is required")
		return
	}

	views := h.stats.IncrementView(id)
	respondJSON(w, http.StatusOK, models.ViewResponse{Success: true, Views: views})
}

// SetFavorite handles POST /api/events/{id}/favorite with body
// {"favorited": bool}: adjusts the per-event favorite counter up or down.
func (h *Handler) SetFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "event id is required")
		return
	}

	var req models.FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "request body must be valid JSON")
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message)
		return
	}

	favorites := h.stats.SetFavorite(id, *req.Favorited)
	respondJSON(w, http.StatusOK, models.FavoriteResponse{Success: true, Favorites: favorites})
}
