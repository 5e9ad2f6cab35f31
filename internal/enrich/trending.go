// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package enrich

// trendingThresholdFactor flags an event as trending when its score exceeds
// this multiple of the batch mean.
const trendingThresholdFactor = 1.5

// trendingScore weights favorites ten times heavier than views: a favorite
// is a deliberate action, a view is often just a scroll-past.
func trendingScore(views, favorites int64) float64 {
	return float64(favorites)*10 + float64(views)
}

// markTrending flags the events whose score exceeds 1.5x the arithmetic mean
// score of the batch. The mean is recomputed per batch, so trending is
// relative to the current result set rather than an absolute global
// threshold; a quiet Tuesday still surfaces its comparatively hot events.
func markTrending(scores []float64) []bool {
	flags := make([]bool, len(scores))
	if len(scores) == 0 {
		return flags
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	mean := sum / float64(len(scores))
	threshold := trendingThresholdFactor * mean

	for i, s := range scores {
		flags[i] = s > threshold
	}
	return flags
}
