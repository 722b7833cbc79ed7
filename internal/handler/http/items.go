package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-sample-api/internal/logger"
	"github.com/MKhiriev/go-sample-api/models"
)

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var payload models.ItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.CreateItem(r.Context(), payload)
	if err != nil {
		log.Err(err).Msg("error creating item")
		respondError(w, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, item)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	skip, limit, ok := h.listParams(r)
	if !ok {
		log.Warn().Str("query", r.URL.RawQuery).Msg("invalid skip/limit query parameters")
		http.Error(w, "skip and limit must be integers", http.StatusBadRequest)
		return
	}

	items, err := h.services.ItemService.ListItems(r.Context(), skip, limit)
	if err != nil {
		log.Err(err).Msg("error listing items")
		respondError(w, err)
		return
	}

	writeJSON(w, r, http.StatusOK, items)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := pathID(r, "itemID")
	if !ok {
		http.Error(w, "item id must be an integer", http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.GetItem(r.Context(), id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("error getting item")
		respondError(w, err)
		return
	}

	writeJSON(w, r, http.StatusOK, item)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := pathID(r, "itemID")
	if !ok {
		http.Error(w, "item id must be an integer", http.StatusBadRequest)
		return
	}

	var payload models.ItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.UpdateItem(r.Context(), id, payload)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("error updating item")
		respondError(w, err)
		return
	}

	writeJSON(w, r, http.StatusOK, item)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := pathID(r, "itemID")
	if !ok {
		http.Error(w, "item id must be an integer", http.StatusBadRequest)
		return
	}

	if err := h.services.ItemService.DeleteItem(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("error deleting item")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
