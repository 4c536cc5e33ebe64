package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-cup/internal/padel"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, padel.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, padel.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, padel.ErrTournamentFull), errors.Is(err, padel.ErrAlreadyGenerated):
		status = http.StatusConflict
	case errors.Is(err, padel.ErrStorage):
		status = http.StatusServiceUnavailable
	}
	if status >= http.StatusInternalServerError {
		log.Error("Request failed", "status", status, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func notFound(what, id string) error {
	return fmt.Errorf("%s %s: %w", what, id, padel.ErrNotFound)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", padel.ErrValidation, err)
	}
	return nil
}
