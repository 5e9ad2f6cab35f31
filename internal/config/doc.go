// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

/*
Package config loads and validates the service configuration.

Configuration is layered via Koanf v2, highest priority last:

 1. Built-in defaults (LA city center, 10s provider timeout, port 8080)
 2. Optional YAML config file (config.yaml, or CONFIG_PATH)
 3. Environment variables

Provider API keys come from TICKETMASTER_API_KEY, YELP_API_KEY and
EVENTBRITE_API_KEY. A missing key is a valid, non-fatal state: the adapter for
that provider simply contributes zero events. Keys are read once at startup;
the Config struct is read-only after Load returns.
*/
package config
