// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

// Package middleware provides HTTP middleware shared across routes:
// request-ID propagation and Prometheus request instrumentation. Both are
// written as func(http.HandlerFunc) http.HandlerFunc and adapted to Chi's
// signature at the router.
package middleware
