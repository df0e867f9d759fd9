// Package api holds the JSON response helpers shared by the HTTP handlers.
// Every error a client sees goes through Error so driver details never
// leave the process.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/yogi-fashion/embroidery-service/internal/apperror"
)

// APIError is the envelope of every 4xx/5xx response.
type APIError struct {
	Detail string   `json:"detail"`
	Fields []string `json:"fields,omitempty"`
}

// RespondJSON writes v as the JSON body with the given status.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func BadRequest(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusBadRequest, APIError{Detail: message})
}

func MethodNotAllowed(w http.ResponseWriter) {
	RespondJSON(w, http.StatusMethodNotAllowed, APIError{Detail: "method not allowed"})
}

// Error writes err with the status its failure kind maps to.
func Error(w http.ResponseWriter, err error) {
	status := StatusFor(err)

	body := APIError{Detail: apperror.Message(err)}
	var fe *apperror.FieldError
	if errors.As(err, &fe) {
		body.Fields = fe.Fields
	}

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("request failed")
	}

	RespondJSON(w, status, body)
}

// StatusFor maps a core failure onto an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrMissingField),
		errors.Is(err, apperror.ErrInvalidFormat),
		errors.Is(err, apperror.ErrInvalidNumeric),
		errors.Is(err, apperror.ErrPasswordMismatch):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrDuplicateUsername),
		errors.Is(err, apperror.ErrDuplicateContact):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, apperror.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
