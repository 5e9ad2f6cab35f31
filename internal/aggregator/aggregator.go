// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package aggregator

import (
	"context"
	"sync"
	"time"

	"github.com/URGG/lapulse/internal/enrich"
	"github.com/URGG/lapulse/internal/logging"
	"github.com/URGG/lapulse/internal/metrics"
	"github.com/URGG/lapulse/internal/models"
	"github.com/URGG/lapulse/internal/providers"
)

// Aggregator is the pipeline entry point: it fans out to every provider
// concurrently, collects the results in declared provider order, dedups,
// enriches, and falls back to the built-in dataset when everything came
// back empty.
//
// Provider order is fixed at construction time. The fan-out joins all
// fetches (it does not race them), so the collect order, and therefore the
// response order, is deterministic across runs regardless of which
// provider answers first.
type Aggregator struct {
	providers       []providers.Provider
	enricher        *enrich.Engine
	fallbackEnabled bool
}

// New creates an aggregator over the given providers, in priority order.
func New(provs []providers.Provider, enricher *enrich.Engine, fallbackEnabled bool) *Aggregator {
	return &Aggregator{
		providers:       provs,
		enricher:        enricher,
		fallbackEnabled: fallbackEnabled,
	}
}

// Aggregate runs the full pipeline. It never fails outward: provider errors
// and provider panics degrade to empty contributions inside their fetch
// goroutines, and any panic in the collect/dedup/enrich stages is converted
// into the fallback response so the HTTP endpoint always returns a valid
// payload.
func (a *Aggregator) Aggregate(ctx context.Context) (resp models.EventsResponse) {
	defer func() {
		if r := recover(); r != nil {
			logging.Ctx(ctx).Error().Interface("panic", r).
				Msg("aggregation pipeline panicked, serving fallback dataset")
			resp = a.fallbackResponse()
		}
	}()

	start := time.Now()
	defer func() {
		metrics.AggregationDuration.Observe(time.Since(start).Seconds())
	}()

	// Fan-out: one goroutine per provider, results slotted by provider
	// index. All fetches must settle before collection proceeds; one slow
	// provider delays the response but cannot reorder it.
	results := make([][]models.Event, len(a.providers))
	var wg sync.WaitGroup
	for i, p := range a.providers {
		wg.Add(1)
		go func(i int, p providers.Provider) {
			defer wg.Done()
			// A recover() on the calling goroutine cannot see panics raised
			// here, so each fetch goroutine absorbs its own: the provider
			// degrades to an empty contribution like any other failure.
			defer func() {
				if r := recover(); r != nil {
					logging.Ctx(ctx).Error().Interface("panic", r).Str("provider", p.Name()).
						Msg("provider panicked, degraded to empty result")
					results[i] = nil
				}
			}()

			fetchStart := time.Now()
			events, err := p.FetchEvents(ctx)
			if err != nil {
				logging.Ctx(ctx).Warn().Err(err).Str("provider", p.Name()).
					Msg("provider degraded to empty result")
				events = nil
			}
			metrics.RecordProviderFetch(p.Name(), time.Since(fetchStart), len(events))
			results[i] = events
		}(i, p)
	}
	wg.Wait()

	// Collect: concatenate per-adapter results in declared priority order.
	// Source counts are raw pre-deduplication counts, diagnostic only.
	sources := models.SourceCounts{}
	total := 0
	var combined []models.Event
	for i, p := range a.providers {
		sources[p.Name()] = len(results[i])
		total += len(results[i])
		combined = append(combined, results[i]...)
	}

	deduped := Deduplicate(combined)
	if removed := len(combined) - len(deduped); removed > 0 {
		metrics.DedupRemoved.Add(float64(removed))
		logging.Ctx(ctx).Debug().Int("removed", removed).Msg("duplicate events removed")
	}

	enriched := a.enricher.Enrich(deduped)

	if len(enriched) == 0 && a.fallbackEnabled {
		logging.Ctx(ctx).Warn().Msg("all providers empty, serving fallback dataset")
		return a.fallbackResponse()
	}

	sources["total"] = total
	metrics.AggregationEventsServed.Add(float64(len(enriched)))

	logging.Ctx(ctx).Info().Int("events", len(enriched)).Int("raw_total", total).
		Dur("duration", time.Since(start)).Msg("aggregation complete")

	return models.EventsResponse{Events: enriched, Sources: sources}
}

// fallbackResponse serves the enriched built-in dataset. Provider entries
// stay in the source counts (at zero) and a "fallback" entry carries the
// dataset size, so total still equals the number of events served.
func (a *Aggregator) fallbackResponse() models.EventsResponse {
	metrics.FallbackServed.Inc()

	events := a.enricher.Enrich(MockEvents())

	sources := models.SourceCounts{}
	for _, p := range a.providers {
		sources[p.Name()] = 0
	}
	sources[FallbackSource] = len(events)
	sources["total"] = len(events)

	return models.EventsResponse{Events: events, Sources: sources}
}
