// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

// Package metrics defines the Prometheus collectors for the service.
//
// Collectors are registered once at package init via promauto and exposed on
// GET /metrics. Provider and circuit-breaker metrics are labeled by provider
// name so a single dashboard row per upstream shows latency, error reasons
// and breaker state side by side.
package metrics
