package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stefpopov/go-wine-cellar/internal/logger"
	"github.com/stefpopov/go-wine-cellar/internal/utils"
	"github.com/stefpopov/go-wine-cellar/models"
)

func (h *Handler) listWines(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	wines, err := h.service.List(r.Context())
	if err != nil {
		log.Err(err).Str("func", "Handler.listWines").Msg("error listing wines")
		writeError(w, err)
		return
	}

	if wines == nil {
		wines = []models.Wine{}
	}
	_, _ = utils.WriteJSON(w, wines, http.StatusOK)
}

func (h *Handler) getWine(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := wineID(r)
	if err != nil {
		http.Error(w, "invalid wine id", http.StatusBadRequest)
		return
	}

	wine, err := h.service.Get(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "Handler.getWine").Int64("id", id).Msg("error getting wine")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, wine, http.StatusOK)
}

func (h *Handler) createWine(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var wine models.Wine
	if err := json.NewDecoder(r.Body).Decode(&wine); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), wine)
	if err != nil {
		log.Err(err).Str("func", "Handler.createWine").Msg("error creating wine")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateWine(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := wineID(r)
	if err != nil {
		http.Error(w, "invalid wine id", http.StatusBadRequest)
		return
	}

	var wine models.Wine
	if err = json.NewDecoder(r.Body).Decode(&wine); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	wine.ID = id

	updated, err := h.service.Update(r.Context(), wine)
	if err != nil {
		log.Err(err).Str("func", "Handler.updateWine").Int64("id", id).Msg("error updating wine")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteWine(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := wineID(r)
	if err != nil {
		http.Error(w, "invalid wine id", http.StatusBadRequest)
		return
	}

	if err = h.service.Delete(r.Context(), id); err != nil {
		log.Err(err).Str("func", "Handler.deleteWine").Int64("id", id).Msg("error deleting wine")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func wineID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
