// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package config

import (
	"fmt"
	"time"
)

// Config is the complete runtime configuration for the aggregation service.
// Loaded via Koanf with layered sources: defaults, optional YAML file,
// environment variables (highest priority).
type Config struct {
	Server       ServerConfig       `koanf:"server"`
	Search       SearchConfig       `koanf:"search"`
	Ticketmaster TicketmasterConfig `koanf:"ticketmaster"`
	Yelp         YelpConfig         `koanf:"yelp"`
	Eventbrite   EventbriteConfig   `koanf:"eventbrite"`
	Aggregation  AggregationConfig  `koanf:"aggregation"`
	Logging      LoggingConfig      `koanf:"logging"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// SearchConfig is the fixed geo-search reference point shared by every
// provider query. Defaults to the Los Angeles city center.
type SearchConfig struct {
	Latitude  float64 `koanf:"latitude"`
	Longitude float64 `koanf:"longitude"`
}

// TicketmasterConfig configures the ticketing provider (Discovery API).
// An empty APIKey disables the provider; this is a valid, non-fatal state.
type TicketmasterConfig struct {
	APIKey      string `koanf:"api_key"`
	BaseURL     string `koanf:"base_url"`
	RadiusMiles int    `koanf:"radius_miles"`
}

// YelpConfig configures the business-listing provider (Fusion API).
// One search request is issued per app category and merged internally.
type YelpConfig struct {
	APIKey       string `koanf:"api_key"`
	BaseURL      string `koanf:"base_url"`
	RadiusMeters int    `koanf:"radius_meters"`
	Limit        int    `koanf:"limit"`
}

// EventbriteConfig configures the community-event provider.
type EventbriteConfig struct {
	APIKey      string `koanf:"api_key"`
	BaseURL     string `koanf:"base_url"`
	RadiusMiles int    `koanf:"radius_miles"`
}

// AggregationConfig tunes the orchestration pipeline.
type AggregationConfig struct {
	// ProviderTimeout bounds each provider fetch. A timed-out provider is
	// treated the same as one that returned an empty list.
	ProviderTimeout time.Duration `koanf:"provider_timeout"`

	// FallbackEnabled controls whether an empty aggregation result is
	// replaced with the built-in dataset. Disabled only in tests.
	FallbackEnabled bool `koanf:"fallback_enabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks configuration invariants. It is called by Load after all
// layers are merged, so a bad env override fails fast at startup.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be 1-65535, got %d", c.Server.Port)
	}
	if c.Search.Latitude < -90 || c.Search.Latitude > 90 {
		return fmt.Errorf("search.latitude must be -90..90, got %f", c.Search.Latitude)
	}
	if c.Search.Longitude < -180 || c.Search.Longitude > 180 {
		return fmt.Errorf("search.longitude must be -180..180, got %f", c.Search.Longitude)
	}
	if c.Aggregation.ProviderTimeout <= 0 {
		return fmt.Errorf("aggregation.provider_timeout must be positive, got %s", c.Aggregation.ProviderTimeout)
	}
	// Yelp caps the search radius at 40000 meters server-side; reject larger
	// values here instead of letting every sub-category call 400.
	if c.Yelp.RadiusMeters < 1 || c.Yelp.RadiusMeters > 40000 {
		return fmt.Errorf("yelp.radius_meters must be 1-40000, got %d", c.Yelp.RadiusMeters)
	}
	if c.Ticketmaster.RadiusMiles < 1 {
		return fmt.Errorf("ticketmaster.radius_miles must be positive, got %d", c.Ticketmaster.RadiusMiles)
	}
	if c.Eventbrite.RadiusMiles < 1 {
		return fmt.Errorf("eventbrite.radius_miles must be positive, got %d", c.Eventbrite.RadiusMiles)
	}
	return nil
}
