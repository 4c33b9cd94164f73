// ABOUTME: JSON response and request helpers for the API handlers.
// ABOUTME: Maps store and lookup errors onto HTTP status codes.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/harperreed/gymtrack/internal/exercisedb"
	"github.com/harperreed/gymtrack/internal/storage"
	"github.com/rs/zerolog/log"
)

var errUnavailable = errors.New("not configured")

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("Encode response")
	}
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: msg})
}

// writeError picks the status for err: 404 for missing rows, 409 for
// foreign key violations, the upstream code for ExerciseDB errors.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	var apiErr *exercisedb.APIError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, storage.ErrForeignKey):
		status = http.StatusConflict
	case errors.Is(err, errUnavailable):
		status = http.StatusServiceUnavailable
	case errors.As(err, &apiErr):
		if code, convErr := strconv.Atoi(apiErr.Code); convErr == nil && code >= 400 && code < 600 {
			status = code
		}
	}

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return n, nil
}

func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}
