package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lcmendes/weather-gist/internal/logger"
	"github.com/lcmendes/weather-gist/internal/utils"
	"github.com/lcmendes/weather-gist/models"
)

// authUserID extracts the authenticated user's ID or rejects the request.
// Returns false when the response has already been written.
func (h *Handler) authUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		h.writeStatus(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return 0, false
	}
	return userID, true
}

// listOwnerID parses the {id} parameter of a per-user listing route and
// rejects requests that ask for another user's records.
func (h *Handler) listOwnerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := h.authUserID(w, r)
	if !ok {
		return 0, false
	}

	id, err := idParam(r)
	if err != nil {
		h.writeStatus(w, http.StatusBadRequest, err.Error())
		return 0, false
	}
	if id != userID {
		utils.WriteJSON(w, models.ErrorResponse{
			Code:    statusCodeNames[http.StatusForbidden],
			Message: "records of another user are not accessible",
		}, http.StatusForbidden)
		return 0, false
	}

	return userID, true
}

func (h *Handler) fetchCurrentWeatherByCity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.authUserID(w, r)
	if !ok {
		return
	}

	city := chi.URLParam(r, "city")
	record, err := h.services.CurrentWeatherService.FetchByCity(ctx, userID, city)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("city", city).Int64("id", record.ID).Msg("current weather fetched")
	utils.WriteJSON(w, record, http.StatusCreated)
}

func (h *Handler) fetchCurrentWeatherByCoordinates(w http.ResponseWriter, r *http.Request) {
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

	record, err := h.services.CurrentWeatherService.FetchByCoordinates(ctx, userID, req.Latitude, req.Longitude)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusCreated)
}

func (h *Handler) listCurrentWeather(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.listOwnerID(w, r)
	if !ok {
		return
	}

	records, err := h.services.CurrentWeatherService.List(ctx, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CurrentWeatherList{Weathers: records, Length: len(records)}, http.StatusOK)
}

func (h *Handler) getCurrentWeather(w http.ResponseWriter, r *http.Request) {
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

	record, err := h.services.CurrentWeatherService.Get(ctx, id, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) updateCurrentWeather(w http.ResponseWriter, r *http.Request) {
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

	var update models.CurrentWeatherUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.writeBadJSON(w, r, err)
		return
	}
	update.ID = id
	update.UserID = userID

	record, err := h.services.CurrentWeatherService.Update(ctx, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) deleteCurrentWeather(w http.ResponseWriter, r *http.Request) {
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

	if err := h.services.CurrentWeatherService.Delete(ctx, id, userID); err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", id).Msg("current weather record deleted")
	w.WriteHeader(http.StatusNoContent)
}
