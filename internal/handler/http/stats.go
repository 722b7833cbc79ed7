package http

import (
	"net/http"

	"github.com/MKhiriev/go-sample-api/internal/logger"
)

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	stats, err := h.services.StatsService.Compute(r.Context())
	if err != nil {
		log.Err(err).Msg("error computing statistics")
		respondError(w, err)
		return
	}

	writeJSON(w, r, http.StatusOK, stats)
}
