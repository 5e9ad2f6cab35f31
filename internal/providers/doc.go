// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

/*
Package providers implements the upstream event source adapters.

Each adapter knows how to build its provider-specific geo-radius query
around the configured Los Angeles search center, call the remote API, and
map the raw payload into the canonical models.Event shape:

  - TicketmasterClient: Discovery API event search (ticketing), "tm-" IDs
  - YelpClient: Fusion business search, one call per app category merged
    internally (business listings as ongoing events), "yelp-" IDs
  - EventbriteClient: community event search, "eb-" IDs

Shared behavior across adapters:

  - A missing API key disables the adapter: empty result, logged once.
  - Non-2xx responses and malformed JSON surface as errors that the
    orchestrator degrades to an empty contribution; nothing propagates to
    the HTTP client.
  - Events missing geolocation default to the configured search center;
    missing dates and times render as "TBA" and "Ongoing".
  - Category mapping is a pure, total function per provider (categories.go),
    defaulting to entertainment.

CircuitBreakerProvider decorates any adapter with a sony/gobreaker circuit
breaker and a per-fetch deadline so one slow or failing upstream cannot
stall the whole aggregation request.
*/
package providers
