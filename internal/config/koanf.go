// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order
// of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/lapulse/config.yaml",
	"/etc/lapulse/config.yml",
}

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "CONFIG_PATH"

// losAngelesLat and losAngelesLon are the default geo-search center:
// Los Angeles City Hall, the reference point the mobile client centers on.
const (
	losAngelesLat = 34.0522
	losAngelesLon = -118.2437
)

// defaultConfig returns a Config with all default values. Defaults are loaded
// first, then overridden by the config file and environment variables.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8080,
			Timeout: 30 * time.Second,
		},
		Search: SearchConfig{
			Latitude:  losAngelesLat,
			Longitude: losAngelesLon,
		},
		Ticketmaster: TicketmasterConfig{
			APIKey:      "", // Empty key disables the provider
			BaseURL:     "https://app.ticketmaster.com/discovery/v2",
			RadiusMiles: 50,
		},
		Yelp: YelpConfig{
			APIKey:       "",
			BaseURL:      "https://api.yelp.com/v3",
			RadiusMeters: 40000, // Yelp's documented maximum
			Limit:        20,
		},
		Eventbrite: EventbriteConfig{
			APIKey:      "",
			BaseURL:     "https://www.eventbriteapi.com/v3",
			RadiusMiles: 25,
		},
		Aggregation: AggregationConfig{
			ProviderTimeout: 10 * time.Second,
			FallbackEnabled: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load builds the configuration using Koanf v2 with layered sources:
//
//  1. Defaults: built-in sensible defaults
//  2. Config file: optional YAML file (if present)
//  3. Environment variables: override any setting
//
// Precedence: ENV > file > defaults.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: optional config file
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the first file found, or empty string if none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envMappings maps environment variable names to koanf config paths.
// A plain lowercase-and-dot transform cannot tell API_KEY apart from a
// nested api.key path, so the mapping is explicit.
var envMappings = map[string]string{
	"host":         "server.host",
	"port":         "server.port",
	"http_timeout": "server.timeout",

	"search_latitude":  "search.latitude",
	"search_longitude": "search.longitude",

	"ticketmaster_api_key":      "ticketmaster.api_key",
	"ticketmaster_base_url":     "ticketmaster.base_url",
	"ticketmaster_radius_miles": "ticketmaster.radius_miles",

	"yelp_api_key":       "yelp.api_key",
	"yelp_base_url":      "yelp.base_url",
	"yelp_radius_meters": "yelp.radius_meters",
	"yelp_limit":         "yelp.limit",

	"eventbrite_api_key":      "eventbrite.api_key",
	"eventbrite_base_url":     "eventbrite.base_url",
	"eventbrite_radius_miles": "eventbrite.radius_miles",

	"provider_timeout": "aggregation.provider_timeout",
	"fallback_enabled": "aggregation.fallback_enabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config
// paths. Unknown variables are dropped so unrelated process environment
// (PATH, HOME, ...) never leaks into the configuration.
//
// Examples:
//   - TICKETMASTER_API_KEY -> ticketmaster.api_key
//   - YELP_RADIUS_METERS   -> yelp.radius_meters
//   - LOG_LEVEL            -> logging.level
func envTransformFunc(key string) string {
	if path, ok := envMappings[strings.ToLower(key)]; ok {
		return path
	}
	return ""
}
