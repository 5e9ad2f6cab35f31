// LA Pulse - Los Angeles Event Discovery and Aggregation
// Copyright 2026 URGG
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/URGG/lapulse

package api

import (
	"net/http"
	"strconv"

	validator "github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/URGG/lapulse/internal/logging"
	"github.com/URGG/lapulse/internal/models"
)

// validate is the shared validator instance; validator instances cache
// struct metadata and are meant to be long-lived.
var validate = validator.New(validator.WithRequiredStructEnabled())

// respondJSON sends a JSON response with proper headers.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error().Err(err).Msg("failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("failed to write JSON response")
	}
}

// generateETag creates a simple ETag from data using an FNV-1a hash.
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

// respondError sends a structured error response. Only the auxiliary
// counter endpoints use this; the aggregation endpoint absorbs errors into
// the fallback dataset instead.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, models.ErrorResponse{
		Status: "error",
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// validateRequest validates a struct using go-playground/validator and
// converts the first failure into an APIError.
func validateRequest(v interface{}) *models.APIError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	if invalid, ok := err.(*validator.InvalidValidationError); ok {
		return &models.APIError{Code: "VALIDATION_ERROR", Message: invalid.Error()}
	}

	for _, fieldErr := range err.(validator.ValidationErrors) {
		return &models.APIError{
			Code:    "VALIDATION_ERROR",
			Message: "field " + fieldErr.Field() + " failed on the '" + fieldErr.Tag() + "' rule",
			Details: map[string]interface{}{"field": fieldErr.Field()},
		}
	}
	return &models.APIError{Code: "VALIDATION_ERROR", Message: err.Error()}
}
