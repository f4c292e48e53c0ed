package http

import (
	"encoding/json"
	"net/http"

	"github.com/lcmendes/weather-gist/internal/logger"
	"github.com/lcmendes/weather-gist/internal/utils"
	"github.com/lcmendes/weather-gist/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadJSON(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeValidationError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", registeredUser.ID).Str("email", registeredUser.Email).Msg("user registered")
	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadJSON(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeValidationError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", token.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.LoginResponse{
		AccessToken: token.SignedString,
		TokenType:   "Bearer",
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, _ := utils.GetUserIDFromContext(ctx)
	tokenID, ok := utils.GetTokenIDFromContext(ctx)
	if !ok {
		h.writeStatus(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	if err := h.services.AuthService.Logout(ctx, models.Token{TokenID: tokenID, UserID: userID}); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "logged out"}, http.StatusOK)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadJSON(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeValidationError(w, r, err)
		return
	}

	if err := h.services.AuthService.ForgotPassword(ctx, req.Email); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "reset PIN sent"}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadJSON(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeValidationError(w, r, err)
		return
	}

	if err := h.services.AuthService.ResetPassword(ctx, req.Email, req.PIN, req.NewPassword); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "password reset"}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeStatus(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadJSON(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeValidationError(w, r, err)
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, userID, req.OldPassword, req.NewPassword); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "password changed"}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeStatus(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	user, err := h.services.UserService.GetUser(ctx, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
