// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/URGG/lapulse/internal/models"
)

// stubProvider is a scriptable Provider for breaker tests.
type stubProvider struct {
	name   string
	events []models.Event
	err    error
	block  bool // block until the context is done
	calls  int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) FetchEvents(ctx context.Context) ([]models.Event, error) {
	s.calls++
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return s.events, s.err
}

// TestCircuitBreaker_PassThrough verifies a healthy provider's events flow
// through unchanged
func TestCircuitBreaker_PassThrough(t *testing.T) {
	t.Parallel()

	stub := &stubProvider{
		name:   "stub",
		events: []models.Event{{ID: "stub-1", Title: "One"}},
	}
	wrapped := WithCircuitBreaker(stub, time.Second)

	if wrapped.Name() != "stub" {
		t.Errorf("Expected wrapped name 'stub', got %s", wrapped.Name())
	}

	events, err := wrapped.FetchEvents(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(events) != 1 || events[0].ID != "stub-1" {
		t.Errorf("Expected the stub's events, got %v", events)
	}
}

// TestCircuitBreaker_ErrorPassThrough verifies provider errors propagate
// while the breaker is closed
func TestCircuitBreaker_ErrorPassThrough(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("upstream exploded")
	stub := &stubProvider{name: "stub-err", err: wantErr}
	wrapped := WithCircuitBreaker(stub, time.Second)

	_, err := wrapped.FetchEvents(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("Expected wrapped provider error, got %v", err)
	}
}

// TestCircuitBreaker_Timeout verifies the per-fetch deadline cancels a stuck
// provider
func TestCircuitBreaker_Timeout(t *testing.T) {
	t.Parallel()

	stub := &stubProvider{name: "stub-slow", block: true}
	wrapped := WithCircuitBreaker(stub, 20*time.Millisecond)

	start := time.Now()
	_, err := wrapped.FetchEvents(context.Background())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Expected deadline exceeded, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Expected fetch to abort near the deadline, took %s", elapsed)
	}
}

// TestCircuitBreaker_OpensAfterFailures verifies the breaker opens at the
// failure threshold and then rejects without calling the provider
func TestCircuitBreaker_OpensAfterFailures(t *testing.T) {
	t.Parallel()

	stub := &stubProvider{name: "stub-flaky", err: errors.New("boom")}
	wrapped := WithCircuitBreaker(stub, time.Second)

	// Trip threshold: at least 10 requests at >= 60% failures. All ten fail.
	for i := 0; i < 10; i++ {
		if _, err := wrapped.FetchEvents(context.Background()); err == nil {
			t.Fatalf("Expected failure on request %d", i)
		}
	}

	callsBefore := stub.calls
	_, err := wrapped.FetchEvents(context.Background())
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("Expected circuit open error, got %v", err)
	}
	if stub.calls != callsBefore {
		t.Errorf("Expected no provider call while open, got %d extra", stub.calls-callsBefore)
	}
}
