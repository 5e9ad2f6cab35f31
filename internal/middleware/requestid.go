// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package middleware

import (
	"net/http"

	"github.com/URGG/lapulse/internal/logging"
)

// RequestID tags each request with a unique ID, reusing an upstream-supplied
// X-Request-ID when one is present. The ID is set on the response header and
// stored in the logging context, so every pipeline log line can be tied back
// to its request via logging.Ctx(ctx) / logging.RequestIDFromContext.
func RequestID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}

		w.Header().Set("X-Request-ID", requestID)

		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		next(w, r.WithContext(ctx))
	}
}
