// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package providers

import (
	"context"

	"github.com/URGG/lapulse/internal/models"
)

// Provider is one upstream event source. Implementations build a
// provider-specific geo-radius query around the configured search center,
// issue the HTTP call(s), and map each raw item into the canonical Event
// shape, including the category mapping and ID namespacing.
//
// Contract with the orchestrator:
//   - A missing API key is not an error: return an empty slice and nil.
//   - Upstream failures (non-2xx, network error, malformed JSON) are
//     returned as errors; the orchestrator degrades them to an empty
//     contribution and never propagates them to the HTTP client.
//   - Implementations must honor ctx cancellation; the orchestrator wraps
//     each fetch in a per-provider deadline.
type Provider interface {
	Name() string
	FetchEvents(ctx context.Context) ([]models.Event, error)
}
