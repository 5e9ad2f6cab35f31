// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package enrich

import "testing"

// TestTrendingScore verifies the favorite weighting
func TestTrendingScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		views     int64
		favorites int64
		want      float64
	}{
		{"zero", 0, 0, 0},
		{"views only", 100, 0, 100},
		{"favorites only", 0, 10, 100},
		{"mixed", 250, 25, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trendingScore(tt.views, tt.favorites); got != tt.want {
				t.Errorf("Expected score %f, got %f", tt.want, got)
			}
		})
	}
}

// TestMarkTrending verifies the batch-relative threshold
func TestMarkTrending(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		scores []float64
		want   []bool
	}{
		{
			// Mean 250, threshold 375: only the 700 crosses it.
			name:   "one hot event",
			scores: []float64{100, 100, 100, 700},
			want:   []bool{false, false, false, true},
		},
		{
			// Equal scores can never exceed 1.5x their own mean.
			name:   "uniform batch has no trending",
			scores: []float64{200, 200, 200},
			want:   []bool{false, false, false},
		},
		{
			// A single event is its own mean; strict inequality keeps it off.
			name:   "single event",
			scores: []float64{500},
			want:   []bool{false},
		},
		{
			// Mean 100, threshold 150: score exactly at the threshold stays off.
			name:   "exactly at threshold",
			scores: []float64{50, 150},
			want:   []bool{false, false},
		},
		{
			name:   "empty batch",
			scores: nil,
			want:   []bool{},
		},
		{
			// All-zero batch: threshold 0, strict inequality keeps everything off.
			name:   "all zero",
			scores: []float64{0, 0},
			want:   []bool{false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := markTrending(tt.scores)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d flags, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Expected flag %v at index %d, got %v", tt.want[i], i, got[i])
				}
			}
		})
	}
}
