package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-sample-api/internal/logger"
	"github.com/go-chi/chi/v5"
)

// writeJSON serialises v into the response body with the given status code.
// Encoding failures are logged only: the status line has already been sent,
// so there is nothing useful left to tell the caller.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromRequest(r).Err(err).Msg("error encoding response body")
	}
}

// pathID extracts the named chi URL parameter as a positive integer
// identifier. The second return value is false when the segment is not a
// valid integer; the handler should answer 400 in that case.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// listParams reads the optional "skip" and "limit" query parameters. Missing
// values fall back to skip=0 and the configured default limit; a value that
// is present but not an integer reports ok=false.
func (h *Handler) listParams(r *http.Request) (skip, limit int, ok bool) {
	skip, limit = 0, h.api.DefaultListLimit

	if raw := r.URL.Query().Get("skip"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, false
		}
		skip = parsed
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, false
		}
		limit = parsed
	}

	return skip, limit, true
}
