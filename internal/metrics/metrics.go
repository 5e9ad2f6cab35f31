// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for the aggregation pipeline:
// - Provider fetch latency, errors and raw event counts
// - Circuit breaker state per provider
// - Aggregation pipeline duration, dedup removals, fallback activations
// - API endpoint latency and throughput

var (
	// Provider Metrics
	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "provider_request_duration_seconds",
			Help:    "Duration of upstream provider fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	ProviderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_errors_total",
			Help: "Total number of provider fetches degraded to an empty result",
		},
		[]string{"provider", "reason"}, // "http_error", "timeout", "decode_error", "circuit_open"
	)

	ProviderEventsFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_events_fetched_total",
			Help: "Total number of raw events fetched per provider (pre-deduplication)",
		},
		[]string{"provider"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breakers by outcome",
		},
		[]string{"name", "outcome"}, // "success", "failure", "rejected"
	)

	// Aggregation Pipeline Metrics
	AggregationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "aggregation_duration_seconds",
			Help:    "End-to-end duration of the fan-out/dedup/enrich pipeline",
			Buckets: prometheus.DefBuckets,
		},
	)

	AggregationEventsServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aggregation_events_served_total",
			Help: "Total number of events returned to clients after enrichment",
		},
	)

	DedupRemoved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dedup_removed_total",
			Help: "Total number of duplicate events removed by the deduplicator",
		},
	)

	FallbackServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fallback_served_total",
			Help: "Total number of responses served from the built-in dataset",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIRequestsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_requests_active",
			Help: "Current number of in-flight API requests",
		},
	)
)

// RecordProviderFetch records one provider fetch with its raw event count.
func RecordProviderFetch(provider string, duration time.Duration, events int) {
	ProviderRequestDuration.WithLabelValues(provider).Observe(duration.Seconds())
	ProviderEventsFetched.WithLabelValues(provider).Add(float64(events))
}

// RecordProviderError records a provider fetch that degraded to empty.
func RecordProviderError(provider, reason string) {
	ProviderErrors.WithLabelValues(provider, reason).Inc()
}

// RecordAPIRequest records metrics for a completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIRequestsActive.Inc()
	} else {
		APIRequestsActive.Dec()
	}
}
