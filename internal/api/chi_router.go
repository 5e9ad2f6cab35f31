// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

// Package api provides HTTP routing and request handlers using the Chi
// router.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/URGG/lapulse/internal/middleware"
)

// chiMiddleware adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler so our middleware works with r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Router wires the HTTP routes to a Handler.
type Router struct {
	handler *Handler
}

// NewRouter creates a router over the given handler.
func NewRouter(handler *Handler) *Router {
	return &Router{handler: handler}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		// The mobile client talks to us directly; web builds may come from
		// any origin during development.
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health and Prometheus metrics, permissively rate limited so
	// monitoring can poll freely.
	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(1000, time.Minute))
		r.Get("/api/health", router.handler.Health)
		r.Handle("/metrics", promhttp.Handler())
	})

	// Aggregation and counter endpoints. Each request pays a full provider
	// fan-out, so the rate limit here protects the upstream API quotas as
	// much as this process.
	r.Route("/api/events", func(r chi.Router) {
		r.Use(httprate.LimitByIP(100, time.Minute))
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/", router.handler.Events)
		r.Post("/{id}/view", router.handler.IncrementView)
		r.Post("/{id}/favorite", router.handler.SetFavorite)
	})

	return r
}
