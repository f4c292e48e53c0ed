package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lcmendes/weather-gist/internal/logger"
	"github.com/lcmendes/weather-gist/internal/utils"
	"github.com/lcmendes/weather-gist/models"
)

var errInvalidIDParam = errors.New("invalid id parameter")

// idParam parses the {id} URL parameter as a positive int64.
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidIDParam
	}
	return id, nil
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeStatus(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadJSON(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeValidationError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateProfile(ctx, userID, req.Name, req.Email)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", userID).Msg("profile updated")
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.services.UserService.ListUsers(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserList{Users: users, Length: len(users)}, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		h.writeStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.services.UserService.GetUser(ctx, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idParam(r)
	if err != nil {
		h.writeStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, id); err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", id).Msg("user deleted")
	w.WriteHeader(http.StatusNoContent)
}
