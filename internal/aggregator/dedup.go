// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package aggregator

import "github.com/URGG/lapulse/internal/models"

// Deduplicate removes events sharing an ID, keeping the first occurrence in
// input order. It is a pure, order-preserving filter: running it on its own
// output is a no-op.
//
// Because IDs are provider-namespaced, duplicates can only come from within
// a single provider's own result set (e.g. overlapping Yelp category
// searches returning the same business twice).
func Deduplicate(events []models.Event) []models.Event {
	seen := make(map[string]struct{}, len(events))
	out := make([]models.Event, 0, len(events))
	for _, ev := range events {
		if _, dup := seen[ev.ID]; dup {
			continue
		}
		seen[ev.ID] = struct{}{}
		out = append(out, ev)
	}
	return out
}
