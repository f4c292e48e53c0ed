package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lcmendes/weather-gist/internal/logger"
	"github.com/lcmendes/weather-gist/internal/utils"
	"github.com/lcmendes/weather-gist/models"
)

func (h *Handler) fetchForecastByCity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.authUserID(w, r)
	if !ok {
		return
	}

	city := chi.URLParam(r, "city")
	samples, err := h.services.ForecastService.FetchByCity(ctx, userID, city)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("city", city).Int("samples", len(samples)).Msg("forecast fetched")
	utils.WriteJSON(w, models.ForecastList{Weathers: samples, Length: len(samples)}, http.StatusCreated)
}

func (h *Handler) fetchForecastByCoordinates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

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

	samples, err := h.services.ForecastService.FetchByCoordinates(ctx, userID, req.Latitude, req.Longitude)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ForecastList{Weathers: samples, Length: len(samples)}, http.StatusCreated)
}

func (h *Handler) listForecasts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.listOwnerID(w, r)
	if !ok {
		return
	}

	samples, err := h.services.ForecastService.List(ctx, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ForecastList{Weathers: samples, Length: len(samples)}, http.StatusOK)
}

func (h *Handler) getForecast(w http.ResponseWriter, r *http.Request) {
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

	sample, err := h.services.ForecastService.Get(ctx, id, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, sample, http.StatusOK)
}

func (h *Handler) updateForecast(w http.ResponseWriter, r *http.Request) {
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

	var update models.ForecastUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.writeBadJSON(w, r, err)
		return
	}
	update.ID = id
	update.UserID = userID

	sample, err := h.services.ForecastService.Update(ctx, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, sample, http.StatusOK)
}

func (h *Handler) deleteForecast(w http.ResponseWriter, r *http.Request) {
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

	if err := h.services.ForecastService.Delete(ctx, id, userID); err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", id).Msg("forecast record deleted")
	w.WriteHeader(http.StatusNoContent)
}
