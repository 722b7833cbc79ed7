package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-sample-api/models"
)

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, models.Welcome{
		Message: "Welcome to go-sample-api",
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
		Docs:    "/docs",
	})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, models.Health{
		Status:    "healthy",
		Timestamp: time.Now(),
	})
}
