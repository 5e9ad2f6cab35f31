// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package providers

import (
	"strconv"
	"strings"
	"time"
)

// Display formats are locale-fixed: the mobile client renders these strings
// verbatim and has no locale-aware date handling of its own.
const (
	dateDisplayLayout = "Jan 2, 2006"
	timeDisplayLayout = "3:04 PM"

	// Placeholders for events without a scheduled date or time.
	dateTBA     = "TBA"
	timeOngoing = "Ongoing"
)

// formatLocalDate converts an upstream "2006-01-02" date into the display
// format. Unparseable or missing input renders as "TBA".
func formatLocalDate(localDate string) string {
	if localDate == "" {
		return dateTBA
	}
	t, err := time.Parse("2006-01-02", localDate)
	if err != nil {
		return dateTBA
	}
	return t.Format(dateDisplayLayout)
}

// formatLocalTime converts an upstream "15:04:05" (or "15:04") time into the
// display format. Unparseable or missing input renders as "Ongoing".
func formatLocalTime(localTime string) string {
	if localTime == "" {
		return timeOngoing
	}
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, localTime); err == nil {
			return t.Format(timeDisplayLayout)
		}
	}
	return timeOngoing
}

// fallbackDescription synthesizes a description when a provider supplies
// none of its description fields.
func fallbackDescription(title, venue string) string {
	if venue == "" {
		return title + " in Los Angeles"
	}
	return title + " at " + venue
}

// joinNonEmpty concatenates the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// parseCoord parses a string-encoded coordinate, falling back to def when the
// provider omits or mangles it. Several upstream APIs ship coordinates as
// JSON strings rather than numbers.
func parseCoord(s string, def float64) float64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return v
}
