// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

/*
eventbrite.go - Eventbrite API Client

Implements the community-event provider: one geo-radius event search with the
venue and category expansions, mapped into canonical Events with the "eb-"
ID namespace.

API Reference: https://www.eventbrite.com/platform/api
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

const ebIDPrefix = "eb-"

// EventbriteClient fetches community events from the Eventbrite API.
type EventbriteClient struct {
	cfg        config.EventbriteConfig
	search     config.SearchConfig
	httpClient *http.Client

	logKeyMissing sync.Once
}

// Ensure EventbriteClient implements Provider
var _ Provider = (*EventbriteClient)(nil)

// NewEventbriteClient creates an Eventbrite API client.
func NewEventbriteClient(cfg config.EventbriteConfig, search config.SearchConfig) *EventbriteClient {
	return &EventbriteClient{
		cfg:    cfg,
		search: search,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Name identifies the provider in source counts, logs and metrics.
func (c *EventbriteClient) Name() string {
	return "eventbrite"
}

// ebSearchResponse is the subset of the event search response we consume.
type ebSearchResponse struct {
	Events []ebEvent `json:"events"`
}

type ebEvent struct {
	ID   string `json:"id"`
	Name struct {
		Text string `json:"text"`
	} `json:"name"`
	Description struct {
		Text string `json:"text"`
	} `json:"description"`
	Summary string `json:"summary"`
	URL     string `json:"url"`
	Logo    struct {
		URL      string `json:"url"`
		Original struct {
			URL string `json:"url"`
		} `json:"original"`
	} `json:"logo"`
	Start struct {
		Local string `json:"local"` // "2006-01-02T15:04:05"
	} `json:"start"`
	Venue struct {
		Name    string `json:"name"`
		Address struct {
			LocalizedAddressDisplay string `json:"localized_address_display"`
			Address1                string `json:"address_1"`
			City                    string `json:"city"`
			Region                  string `json:"region"`
		} `json:"address"`
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"venue"`
	Category struct {
		Name string `json:"name"`
	} `json:"category"`
}

// FetchEvents performs one radius-bounded event search around the configured
// center.
func (c *EventbriteClient) FetchEvents(ctx context.Context) ([]models.Event, error) {
	if c.cfg.APIKey == "" {
		c.logKeyMissing.Do(func() {
			logging.Warn().Str("provider", c.Name()).Msg("API key not configured, provider disabled")
		})
		return []models.Event{}, nil
	}

	params := url.Values{}
	params.Set("location.latitude", fmt.Sprintf("%f", c.search.Latitude))
	params.Set("location.longitude", fmt.Sprintf("%f", c.search.Longitude))
	params.Set("location.within", fmt.Sprintf("%dmi", c.cfg.RadiusMiles))
	params.Set("expand", "venue,category")

	endpoint := fmt.Sprintf("%s/events/search/?%s", strings.TrimSuffix(c.cfg.BaseURL, "/"), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("eventbrite request build failed: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordProviderError(c.Name(), "http_error")
		return nil, fmt.Errorf("eventbrite search request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordProviderError(c.Name(), "http_status")
		return nil, fmt.Errorf("eventbrite search returned status %d", resp.StatusCode)
	}

	var search ebSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		metrics.RecordProviderError(c.Name(), "decode_error")
		return nil, fmt.Errorf("failed to decode eventbrite search response: %w", err)
	}

	events := make([]models.Event, 0, len(search.Events))
	for i := range search.Events {
		events = append(events, c.mapEvent(&search.Events[i]))
	}
	return events, nil
}

// mapEvent converts one raw Eventbrite event into the canonical shape.
func (c *EventbriteClient) mapEvent(raw *ebEvent) models.Event {
	// Description precedence: summary, then full description text, then a
	// synthesized "<title> at <venue>" string.
	description := raw.Summary
	if description == "" {
		description = raw.Description.Text
	}
	if description == "" {
		description = fallbackDescription(raw.Name.Text, raw.Venue.Name)
	}

	address := raw.Venue.Address.LocalizedAddressDisplay
	if address == "" {
		address = joinNonEmpty(", ", raw.Venue.Name, raw.Venue.Address.Address1,
			raw.Venue.Address.City, raw.Venue.Address.Region)
	}

	imageURL := raw.Logo.Original.URL
	if imageURL == "" {
		imageURL = raw.Logo.URL
	}

	localDate, localTime := splitLocalDateTime(raw.Start.Local)

	return models.Event{
		ID:          ebIDPrefix + raw.ID,
		Title:       raw.Name.Text,
		Description: description,
		Category:    MapEventbriteCategory(raw.Category.Name),
		Date:        formatLocalDate(localDate),
		Time:        formatLocalTime(localTime),
		Address:     address,
		Latitude:    parseCoord(raw.Venue.Latitude, c.search.Latitude),
		Longitude:   parseCoord(raw.Venue.Longitude, c.search.Longitude),
		ImageURL:    imageURL,
		TicketURL:   raw.URL,
	}
}

// splitLocalDateTime splits Eventbrite's "2006-01-02T15:04:05" local
// timestamp into its date and time halves. Either half may come back empty.
func splitLocalDateTime(local string) (string, string) {
	if local == "" {
		return "", ""
	}
	parts := strings.SplitN(local, "T", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
