package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-sample-api/internal/logger"
	"github.com/MKhiriev/go-sample-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var payload models.UserPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), payload)
	if err != nil {
		log.Err(err).Str("username", payload.Username).Msg("error creating user")
		respondError(w, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, user)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	skip, limit, ok := h.listParams(r)
	if !ok {
		log.Warn().Str("query", r.URL.RawQuery).Msg("invalid skip/limit query parameters")
		http.Error(w, "skip and limit must be integers", http.StatusBadRequest)
		return
	}

	users, err := h.services.UserService.ListUsers(r.Context(), skip, limit)
	if err != nil {
		log.Err(err).Msg("error listing users")
		respondError(w, err)
		return
	}

	writeJSON(w, r, http.StatusOK, users)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := pathID(r, "userID")
	if !ok {
		http.Error(w, "user id must be an integer", http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("error getting user")
		respondError(w, err)
		return
	}

	writeJSON(w, r, http.StatusOK, user)
}

func (h *Handler) getUserByUsername(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	username := chi.URLParam(r, "username")

	user, err := h.services.UserService.GetUserByUsername(r.Context(), username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("error getting user by username")
		respondError(w, err)
		return
	}

	writeJSON(w, r, http.StatusOK, user)
}
