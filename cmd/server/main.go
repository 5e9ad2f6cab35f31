// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

/*
main.go - Service entry point

Wires configuration, logging, the three upstream provider clients (each
behind a circuit breaker), the enrichment engine, and the HTTP API, then
runs the server until SIGINT/SIGTERM with a graceful shutdown window.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/URGG/lapulse/internal/aggregator"
	"github.com/URGG/lapulse/internal/api"
	"github.com/URGG/lapulse/internal/config"
	"github.com/URGG/lapulse/internal/enrich"
	"github.com/URGG/lapulse/internal/logging"
	"github.com/URGG/lapulse/internal/providers"
	"github.com/URGG/lapulse/internal/stats"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Bool("ticketmaster", cfg.Ticketmaster.APIKey != "").
		Bool("yelp", cfg.Yelp.APIKey != "").
		Bool("eventbrite", cfg.Eventbrite.APIKey != "").
		Msg("starting event aggregation service")

	// Provider order here fixes the order events appear in the merged
	// response, so keep it stable across releases.
	provs := []providers.Provider{
		providers.WithCircuitBreaker(
			providers.NewTicketmasterClient(cfg.Ticketmaster, cfg.Search),
			cfg.Aggregation.ProviderTimeout,
		),
		providers.WithCircuitBreaker(
			providers.NewYelpClient(cfg.Yelp, cfg.Search),
			cfg.Aggregation.ProviderTimeout,
		),
		providers.WithCircuitBreaker(
			providers.NewEventbriteClient(cfg.Eventbrite, cfg.Search),
			cfg.Aggregation.ProviderTimeout,
		),
	}

	store := stats.NewMemoryStore()
	engine := enrich.NewEngine(store)
	agg := aggregator.New(provs, engine, cfg.Aggregation.FallbackEnabled)

	handler := api.NewHandler(agg, store)
	router := api.NewRouter(handler)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		logging.Error().Err(err).Msg("HTTP server failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
	logging.Info().Msg("server stopped")
}
