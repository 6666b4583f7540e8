package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/launchpad/backend/internal/domain"
)

// respondJSON writes v without the trailing newline json.Encoder would add,
// so identical values always produce byte-identical bodies.
func respondJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// mapError translates domain sentinel errors to HTTP status codes.
// All mapping lives here so individual handlers stay concise.
func mapError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidJSON),
		errors.Is(err, domain.ErrBodyRead):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrBodyTooLarge):
		respondError(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, domain.ErrNotReady):
		respondError(w, http.StatusServiceUnavailable, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
