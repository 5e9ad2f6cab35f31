// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

// Package aggregator orchestrates the event aggregation pipeline:
// concurrent provider fan-out, deterministic collection, deduplication,
// enrichment, and the always-succeed fallback to the built-in dataset.
package aggregator
