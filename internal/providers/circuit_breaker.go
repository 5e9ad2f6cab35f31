// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package providers

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/URGG/lapulse/internal/logging"
	"github.com/URGG/lapulse/internal/metrics"
	"github.com/URGG/lapulse/internal/models"
)

// CircuitBreakerProvider wraps a Provider with the circuit breaker pattern
// plus a per-fetch deadline. It prevents a flapping or slow upstream from
// dragging every aggregation request through a full timeout: once the
// breaker opens, fetches fail fast until the recovery window elapses.
//
// An open circuit is reported as an error; the orchestrator degrades it to
// an empty contribution exactly like any other provider failure.
type CircuitBreakerProvider struct {
	inner   Provider
	cb      *gobreaker.CircuitBreaker[[]models.Event]
	timeout time.Duration
}

// Ensure CircuitBreakerProvider implements Provider
var _ Provider = (*CircuitBreakerProvider)(nil)

// WithCircuitBreaker wraps p with a circuit breaker and a per-fetch timeout.
//
// Breaker configuration:
//   - Max 3 concurrent requests in half-open state
//   - 1 minute measurement window in closed state
//   - 2 minute wait before attempting recovery
//   - Opens at a 60% failure rate over at least 10 requests
func WithCircuitBreaker(p Provider, timeout time.Duration) *CircuitBreakerProvider {
	name := p.Name()

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[[]models.Event](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			if failureRatio >= 0.6 {
				logging.Warn().Str("provider", name).Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).Msg("opening provider circuit")
				return true
			}
			return false
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			logging.Info().Str("provider", name).Str("from", fromStr).Str("to", toStr).
				Msg("provider circuit state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &CircuitBreakerProvider{
		inner:   p,
		cb:      cb,
		timeout: timeout,
	}
}

// Name returns the wrapped provider's name.
func (b *CircuitBreakerProvider) Name() string {
	return b.inner.Name()
}

// FetchEvents executes the wrapped fetch under the breaker with a deadline.
func (b *CircuitBreakerProvider) FetchEvents(ctx context.Context) ([]models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	events, err := b.cb.Execute(func() ([]models.Event, error) {
		return b.inner.FetchEvents(ctx)
	})
	if err != nil {
		switch {
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			metrics.CircuitBreakerRequests.WithLabelValues(b.Name(), "rejected").Inc()
			metrics.RecordProviderError(b.Name(), "circuit_open")
		case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
			metrics.CircuitBreakerRequests.WithLabelValues(b.Name(), "failure").Inc()
			metrics.RecordProviderError(b.Name(), "timeout")
		default:
			metrics.CircuitBreakerRequests.WithLabelValues(b.Name(), "failure").Inc()
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.Name(), "success").Inc()
	return events, nil
}

// stateToString converts a gobreaker state to a metric label.
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// stateToFloat converts a gobreaker state to a gauge value.
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
