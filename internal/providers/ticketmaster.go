// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

/*
ticketmaster.go - Ticketmaster Discovery API Client

Implements the ticketing provider: one geo-radius event search around the
configured center, mapped into canonical Events with the "tm-" ID namespace.

API Reference: https://developer.ticketmaster.com/products-and-docs/apis/discovery-api/v2/
*/

package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/URGG/lapulse/internal/config"
	"github.com/URGG/lapulse/internal/logging"
	"github.com/URGG/lapulse/internal/metrics"
	"github.com/URGG/lapulse/internal/models"
)

// tmIDPrefix namespaces Ticketmaster event IDs so they can never collide
// with another provider's IDs after aggregation.
const tmIDPrefix = "tm-"

// TicketmasterClient fetches events from the Ticketmaster Discovery API.
type TicketmasterClient struct {
	cfg        config.TicketmasterConfig
	search     config.SearchConfig
	httpClient *http.Client

	// logKeyMissing ensures the missing-key condition is logged once per
	// process, not once per request.
	logKeyMissing sync.Once
}

// Ensure TicketmasterClient implements Provider
var _ Provider = (*TicketmasterClient)(nil)

// NewTicketmasterClient creates a Ticketmaster Discovery API client.
func NewTicketmasterClient(cfg config.TicketmasterConfig, search config.SearchConfig) *TicketmasterClient {
	return &TicketmasterClient{
		cfg:    cfg,
		search: search,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Name identifies the provider in source counts, logs and metrics.
func (c *TicketmasterClient) Name() string {
	return "ticketmaster"
}

// tmSearchResponse is the subset of the Discovery search response we consume.
type tmSearchResponse struct {
	Embedded struct {
		Events []tmEvent `json:"events"`
	} `json:"_embedded"`
}

type tmEvent struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Info            string             `json:"info"`
	PleaseNote      string             `json:"pleaseNote"`
	URL             string             `json:"url"`
	Images          []tmImage          `json:"images"`
	Dates           tmDates            `json:"dates"`
	Classifications []tmClassification `json:"classifications"`
	Embedded        struct {
		Venues []tmVenue `json:"venues"`
	} `json:"_embedded"`
}

type tmImage struct {
	URL    string `json:"url"`
	Ratio  string `json:"ratio"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type tmDates struct {
	Start struct {
		LocalDate string `json:"localDate"`
		LocalTime string `json:"localTime"`
	} `json:"start"`
}

type tmClassification struct {
	Segment struct {
		Name string `json:"name"`
	} `json:"segment"`
	Genre struct {
		Name string `json:"name"`
	} `json:"genre"`
}

// tmVenue carries coordinates as JSON strings, per the upstream contract.
type tmVenue struct {
	Name    string `json:"name"`
	Address struct {
		Line1 string `json:"line1"`
	} `json:"address"`
	City struct {
		Name string `json:"name"`
	} `json:"city"`
	State struct {
		StateCode string `json:"stateCode"`
	} `json:"state"`
	Location struct {
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"location"`
}

// FetchEvents performs one radius-bounded event search around the configured
// center and maps every hit into the canonical Event shape.
func (c *TicketmasterClient) FetchEvents(ctx context.Context) ([]models.Event, error) {
	if c.cfg.APIKey == "" {
		c.logKeyMissing.Do(func() {
			logging.Warn().Str("provider", c.Name()).Msg("API key not configured, provider disabled")
		})
		return []models.Event{}, nil
	}

	params := url.Values{}
	params.Set("apikey", c.cfg.APIKey)
	params.Set("latlong", fmt.Sprintf("%f,%f", c.search.Latitude, c.search.Longitude))
	params.Set("radius", fmt.Sprintf("%d", c.cfg.RadiusMiles))
	params.Set("unit", "miles")
	params.Set("size", "100")
	params.Set("sort", "date,asc")

	endpoint := fmt.Sprintf("%s/events.json?%s", strings.TrimSuffix(c.cfg.BaseURL, "/"), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("ticketmaster request build failed: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordProviderError(c.Name(), "http_error")
		return nil, fmt.Errorf("ticketmaster search request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordProviderError(c.Name(), "http_status")
		return nil, fmt.Errorf("ticketmaster search returned status %d", resp.StatusCode)
	}

	var search tmSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		metrics.RecordProviderError(c.Name(), "decode_error")
		return nil, fmt.Errorf("failed to decode ticketmaster search response: %w", err)
	}

	events := make([]models.Event, 0, len(search.Embedded.Events))
	for i := range search.Embedded.Events {
		events = append(events, c.mapEvent(&search.Embedded.Events[i]))
	}
	return events, nil
}

// mapEvent converts one raw Discovery event into the canonical shape.
func (c *TicketmasterClient) mapEvent(raw *tmEvent) models.Event {
	var venue tmVenue
	if len(raw.Embedded.Venues) > 0 {
		venue = raw.Embedded.Venues[0]
	}

	var segment, genre string
	if len(raw.Classifications) > 0 {
		segment = raw.Classifications[0].Segment.Name
		genre = raw.Classifications[0].Genre.Name
	}

	// Description precedence: info, then pleaseNote, then a synthesized
	// "<title> at <venue>" string.
	description := raw.Info
	if description == "" {
		description = raw.PleaseNote
	}
	if description == "" {
		description = fallbackDescription(raw.Name, venue.Name)
	}

	return models.Event{
		ID:          tmIDPrefix + raw.ID,
		Title:       raw.Name,
		Description: description,
		Category:    MapTicketmasterClassification(segment, genre),
		Date:        formatLocalDate(raw.Dates.Start.LocalDate),
		Time:        formatLocalTime(raw.Dates.Start.LocalTime),
		Address:     joinNonEmpty(", ", venue.Name, venue.Address.Line1, venue.City.Name, venue.State.StateCode),
		Latitude:    parseCoord(venue.Location.Latitude, c.search.Latitude),
		Longitude:   parseCoord(venue.Location.Longitude, c.search.Longitude),
		ImageURL:    bestImage(raw.Images),
		TicketURL:   raw.URL,
	}
}

// bestImage picks the preferred image: widest 16:9 asset when available,
// otherwise the widest of any ratio. Returns empty string for no images.
func bestImage(images []tmImage) string {
	var best tmImage
	for _, img := range images {
		if img.URL == "" {
			continue
		}
		if best.URL == "" || betterImage(img, best) {
			best = img
		}
	}
	return best.URL
}

// betterImage reports whether a should be preferred over b: the 16:9 aspect
// ratio wins outright, then the larger width.
func betterImage(a, b tmImage) bool {
	aWide := a.Ratio == "16_9"
	bWide := b.Ratio == "16_9"
	if aWide != bWide {
		return aWide
	}
	return a.Width > b.Width
}
