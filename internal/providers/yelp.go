// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

/*
yelp.go - Yelp Fusion API Client

Implements the business-listing provider. Yelp has no single "everything
nearby" search, so one request is issued per app category and the results are
merged internally. A failing sub-call degrades to an empty contribution for
that category only; the remaining categories still run.

API Reference: https://docs.developer.yelp.com/reference/v3_business_search
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

const yelpIDPrefix = "yelp-"

// yelpSearchPlan maps each app category to the Yelp category aliases used
// for its search call. Order matters: it is the merge order of sub-results.
var yelpSearchPlan = []struct {
	category models.Category
	aliases  string
}{
	{models.CategoryEntertainment, "festivals,movietheaters,musicvenues"},
	{models.CategoryFood, "restaurants,foodtrucks"},
	{models.CategorySports, "active,stadiumsarenas"},
	{models.CategoryArts, "galleries,museums,theater"},
	{models.CategoryBars, "bars,cocktailbars,nightlife"},
}

// YelpClient fetches businesses from the Yelp Fusion API and presents them
// as ongoing events.
type YelpClient struct {
	cfg        config.YelpConfig
	search     config.SearchConfig
	httpClient *http.Client

	logKeyMissing sync.Once
}

// Ensure YelpClient implements Provider
var _ Provider = (*YelpClient)(nil)

// NewYelpClient creates a Yelp Fusion API client.
func NewYelpClient(cfg config.YelpConfig, search config.SearchConfig) *YelpClient {
	return &YelpClient{
		cfg:    cfg,
		search: search,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Name identifies the provider in source counts, logs and metrics.
func (c *YelpClient) Name() string {
	return "yelp"
}

// yelpSearchResponse is the subset of the business search response we consume.
type yelpSearchResponse struct {
	Businesses []yelpBusiness `json:"businesses"`
}

type yelpBusiness struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	ImageURL    string `json:"image_url"`
	Coordinates struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"coordinates"`
	Location struct {
		DisplayAddress []string `json:"display_address"`
	} `json:"location"`
	Categories []struct {
		Alias string `json:"alias"`
		Title string `json:"title"`
	} `json:"categories"`
	Price  string  `json:"price"`
	Rating float64 `json:"rating"`
}

// FetchEvents runs one business search per app category and merges the
// results in plan order.
func (c *YelpClient) FetchEvents(ctx context.Context) ([]models.Event, error) {
	if c.cfg.APIKey == "" {
		c.logKeyMissing.Do(func() {
			logging.Warn().Str("provider", c.Name()).Msg("API key not configured, provider disabled")
		})
		return []models.Event{}, nil
	}

	var merged []models.Event
	var lastErr error
	for _, plan := range yelpSearchPlan {
		businesses, err := c.searchCategory(ctx, plan.aliases)
		if err != nil {
			// Degrade this sub-call only; the other categories still run.
			logging.Warn().Err(err).Str("provider", c.Name()).Str("aliases", plan.aliases).
				Msg("category search degraded to empty result")
			lastErr = err
			continue
		}
		for i := range businesses {
			merged = append(merged, c.mapBusiness(&businesses[i], plan.category))
		}
	}

	// Only report an error when every sub-call failed; a partial result is
	// a successful fetch.
	if len(merged) == 0 && lastErr != nil {
		return nil, fmt.Errorf("all yelp category searches failed: %w", lastErr)
	}
	return merged, nil
}

// searchCategory issues one business search scoped to the given aliases.
func (c *YelpClient) searchCategory(ctx context.Context, aliases string) ([]yelpBusiness, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", c.search.Latitude))
	params.Set("longitude", fmt.Sprintf("%f", c.search.Longitude))
	params.Set("radius", fmt.Sprintf("%d", c.cfg.RadiusMeters))
	params.Set("categories", aliases)
	params.Set("limit", fmt.Sprintf("%d", c.cfg.Limit))
	params.Set("sort_by", "rating")

	endpoint := fmt.Sprintf("%s/businesses/search?%s", strings.TrimSuffix(c.cfg.BaseURL, "/"), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("yelp request build failed: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordProviderError(c.Name(), "http_error")
		return nil, fmt.Errorf("yelp search request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordProviderError(c.Name(), "http_status")
		return nil, fmt.Errorf("yelp search returned status %d", resp.StatusCode)
	}

	var search yelpSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		metrics.RecordProviderError(c.Name(), "decode_error")
		return nil, fmt.Errorf("failed to decode yelp search response: %w", err)
	}
	return search.Businesses, nil
}

// mapBusiness converts one business into the canonical Event shape. The
// search category is the primary signal; the business's own aliases can
// override it when they carry a more specific one.
func (c *YelpClient) mapBusiness(raw *yelpBusiness, searched models.Category) models.Event {
	aliases := make([]string, 0, len(raw.Categories))
	titles := make([]string, 0, len(raw.Categories))
	for _, cat := range raw.Categories {
		aliases = append(aliases, cat.Alias)
		titles = append(titles, cat.Title)
	}

	category := MapYelpCategories(aliases)
	if category == models.CategoryEntertainment {
		// Unmappable aliases: trust the category we searched under.
		category = searched
	}

	address := strings.Join(raw.Location.DisplayAddress, ", ")

	description := strings.Join(titles, ", ")
	if raw.Price != "" {
		description = joinNonEmpty(" · ", description, raw.Price)
	}
	if description == "" {
		description = fallbackDescription(raw.Name, address)
	}

	lat := raw.Coordinates.Latitude
	lon := raw.Coordinates.Longitude
	if lat == 0 && lon == 0 {
		lat = c.search.Latitude
		lon = c.search.Longitude
	}

	return models.Event{
		ID:          yelpIDPrefix + raw.ID,
		Title:       raw.Name,
		Description: description,
		Category:    category,
		Date:        dateTBA,
		Time:        timeOngoing,
		Address:     address,
		Latitude:    lat,
		Longitude:   lon,
		ImageURL:    raw.ImageURL,
		TicketURL:   raw.URL,
	}
}
