package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/isdelr/expense-tracker-be/internal/auth"
	"github.com/isdelr/expense-tracker-be/internal/services"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the body of every failed request. Err is only set for
// unexpected failures.
type ErrorResponse struct {
	Message string `json:"message"`
	Err     string `json:"error,omitempty"`
}

// MessageResponse is the body of requests that only acknowledge an action.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

// writeError maps service errors onto status codes.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var se *services.Error
	if errors.As(err, &se) {
		switch {
		case errors.Is(err, services.ErrNotFound):
			writeMessage(w, http.StatusNotFound, se.Msg)
			return
		case errors.Is(err, services.ErrValidation),
			errors.Is(err, services.ErrConflict),
			errors.Is(err, services.ErrInvalidCredentials):
			writeMessage(w, http.StatusBadRequest, se.Msg)
			return
		}
	}

	log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("Request failed")
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: "Server error", Err: err.Error()})
}

// principal returns the authenticated caller. Routes using it are mounted
// behind auth.Middleware.
func principal(w http.ResponseWriter, r *http.Request) (auth.Principal, bool) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		log.Error().Str("path", r.URL.Path).Msg("Could not retrieve principal from context")
		writeMessage(w, http.StatusUnauthorized, auth.MsgNoToken)
	}
	return p, ok
}
