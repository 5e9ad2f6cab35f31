// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package providers

import "testing"

// TestFormatLocalDate verifies upstream dates render in display format with
// "TBA" for missing or unparseable input
func TestFormatLocalDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"valid date", "2026-09-15", "Sep 15, 2026"},
		{"single digit day", "2026-01-02", "Jan 2, 2026"},
		{"empty", "", "TBA"},
		{"garbage", "not-a-date", "TBA"},
		{"wrong layout", "09/15/2026", "TBA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatLocalDate(tt.input); got != tt.want {
				t.Errorf("Expected %q for %q, got %q", tt.want, tt.input, got)
			}
		})
	}
}

// TestFormatLocalTime verifies upstream times render in display format with
// "Ongoing" for missing or unparseable input
func TestFormatLocalTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"with seconds", "19:30:00", "7:30 PM"},
		{"without seconds", "09:05", "9:05 AM"},
		{"midnight", "00:00:00", "12:00 AM"},
		{"noon", "12:00:00", "12:00 PM"},
		{"empty", "", "Ongoing"},
		{"garbage", "late", "Ongoing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatLocalTime(tt.input); got != tt.want {
				t.Errorf("Expected %q for %q, got %q", tt.want, tt.input, got)
			}
		})
	}
}

// TestFallbackDescription verifies the synthesized description shapes
func TestFallbackDescription(t *testing.T) {
	t.Parallel()

	if got := fallbackDescription("Jazz Night", "The Blue Room"); got != "Jazz Night at The Blue Room" {
		t.Errorf("Expected 'Jazz Night at The Blue Room', got %q", got)
	}
	if got := fallbackDescription("Jazz Night", ""); got != "Jazz Night in Los Angeles" {
		t.Errorf("Expected 'Jazz Night in Los Angeles', got %q", got)
	}
}

// TestJoinNonEmpty verifies empty and whitespace-only parts are dropped
func TestJoinNonEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"all present", []string{"a", "b", "c"}, "a, b, c"},
		{"middle missing", []string{"a", "", "c"}, "a, c"},
		{"whitespace only dropped", []string{"a", "  ", "c"}, "a, c"},
		{"all missing", []string{"", ""}, ""},
		{"no parts", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinNonEmpty(", ", tt.parts...); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

// TestParseCoord verifies string coordinates parse with a default fallback
func TestParseCoord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		def   float64
		want  float64
	}{
		{"valid", "34.0522", 0, 34.0522},
		{"negative", "-118.2437", 0, -118.2437},
		{"padded", " 34.05 ", 0, 34.05},
		{"empty uses default", "", 34.0522, 34.0522},
		{"garbage uses default", "north", -118.2437, -118.2437},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseCoord(tt.input, tt.def); got != tt.want {
				t.Errorf("Expected %f for %q, got %f", tt.want, tt.input, got)
			}
		})
	}
}
