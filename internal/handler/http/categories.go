package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"blogkeeper/internal/logger"
	"blogkeeper/internal/service"
	"blogkeeper/internal/utils"
	"blogkeeper/models"
)

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	created, err := h.services.CategoryService.CreateCategory(ctx, category)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing category response")
	}
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	categories, err := h.services.CategoryService.ListCategories(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, categories, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing category response")
	}
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	categoryID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, r, ErrMalformedID)
		return
	}

	if err = h.services.CategoryService.DeleteCategory(ctx, categoryID); err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing category response")
	}
}
