package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lcmendes/weather-gist/internal/logger"
	"github.com/lcmendes/weather-gist/internal/utils"
	"github.com/lcmendes/weather-gist/models"
)

func (h *Handler) publishGistCommentByCity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.authUserID(w, r)
	if !ok {
		return
	}

	city := chi.URLParam(r, "city")
	record, err := h.services.GistCommentService.PublishByCity(ctx, userID, city)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("city", city).Int64("comment_id", record.GithubCommentID).Msg("digest comment published")
	utils.WriteJSON(w, record, http.StatusCreated)
}

func (h *Handler) publishGistCommentByCoordinates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.authUserID(w, r)
	if !ok {
		return
	}

	var req models.CoordinatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadJSON(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeValidationError(w, r, err)
		return
	}

	record, err := h.services.GistCommentService.PublishByCoordinates(ctx, userID, req.Latitude, req.Longitude)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("comment_id", record.GithubCommentID).Msg("digest comment published")
	utils.WriteJSON(w, record, http.StatusCreated)
}

func (h *Handler) listGistComments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.listOwnerID(w, r)
	if !ok {
		return
	}

	records, err := h.services.GistCommentService.List(ctx, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.GistCommentList{Comments: records, Length: len(records)}, http.StatusOK)
}

func (h *Handler) getGistComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.authUserID(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		h.writeStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.services.GistCommentService.Get(ctx, id, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) updateGistComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.authUserID(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		h.writeStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	var update models.GistCommentUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.writeBadJSON(w, r, err)
		return
	}
	update.ID = id
	update.UserID = userID

	record, err := h.services.GistCommentService.Update(ctx, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) deleteGistComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.authUserID(w, r)
	if !ok {
		return
	}

	id, err := idParam(r)
	if err != nil {
		h.writeStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.services.GistCommentService.Delete(ctx, id, userID); err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", id).Msg("digest comment deleted")
	w.WriteHeader(http.StatusNoContent)
}
