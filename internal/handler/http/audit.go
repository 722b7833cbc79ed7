package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-sample-api/internal/logger"
	"github.com/MKhiriev/go-sample-api/models"
)

func (h *Handler) recordAudit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var payload models.AuditPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	entry, err := h.services.AuditService.RecordAudit(r.Context(), payload)
	if err != nil {
		log.Err(err).Msg("error recording audit entry")
		respondError(w, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, entry)
}

func (h *Handler) listAuditLogs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	entries, err := h.services.AuditService.ListAuditLogs(r.Context())
	if err != nil {
		log.Err(err).Msg("error listing audit entries")
		respondError(w, err)
		return
	}

	writeJSON(w, r, http.StatusOK, entries)
}

func (h *Handler) clearAuditLogs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.AuditService.ClearAuditLogs(r.Context()); err != nil {
		log.Err(err).Msg("error clearing audit entries")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
