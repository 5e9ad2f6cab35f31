// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

/*
Package models defines the data structures shared across the LA Pulse backend.

It is the single source of truth for:

  - Event: the canonical aggregated event record (provider-namespaced ID,
    fixed five-value Category enum, display-formatted date/time strings,
    enrichment-only derived fields)
  - EventsResponse / SourceCounts: the GET /api/events contract
  - ViewResponse / FavoriteResponse / FavoriteRequest: the auxiliary
    counter endpoints
  - APIError / ErrorResponse: structured errors for the auxiliary endpoints

Invariants:

  - Event.ID is globally unique across providers (source-tag prefix plus the
    provider-native ID), so deduplication can key on it alone.
  - Event.Category is always one of the five Category constants; providers
    that cannot be mapped land on CategoryEntertainment.
  - Derived fields (ViewCount, FavoriteCount, IsTrending, ParkingInfo,
    NearbyTransit) are populated only by internal/enrich.

All models are plain data structures: immutable after construction, safe for
concurrent reads, JSON-tagged in the camelCase shape the mobile client expects.
*/
package models
