package http

import (
	"errors"
	"net/http"

	"github.com/lcmendes/weather-gist/internal/adapter"
	"github.com/lcmendes/weather-gist/internal/logger"
	"github.com/lcmendes/weather-gist/internal/service"
	"github.com/lcmendes/weather-gist/internal/store"
	"github.com/lcmendes/weather-gist/internal/utils"
	"github.com/lcmendes/weather-gist/internal/weather"
	"github.com/lcmendes/weather-gist/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrInvalidPin:              http.StatusBadRequest,
	service.ErrExpiredPin:              http.StatusBadRequest,

	store.ErrUserAlreadyExists:      http.StatusConflict,
	store.ErrNoUserWasFound:         http.StatusNotFound,
	store.ErrWeatherRecordNotFound:  http.StatusNotFound,
	store.ErrForecastRecordNotFound: http.StatusNotFound,
	store.ErrGistCommentNotFound:    http.StatusNotFound,
	store.ErrNothingToUpdate:        http.StatusBadRequest,

	adapter.ErrUpstreamTimeout: http.StatusGatewayTimeout,
	adapter.ErrUpstream:        http.StatusBadGateway,
	adapter.ErrGistPublish:     http.StatusBadGateway,
	adapter.ErrGistEdit:        http.StatusBadGateway,
	adapter.ErrGistDelete:      http.StatusBadGateway,

	weather.ErrInsufficientForecastData: http.StatusBadGateway,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

var statusCodeNames = map[int]string{
	http.StatusBadRequest:          "bad_request",
	http.StatusUnauthorized:        "unauthorized",
	http.StatusForbidden:           "forbidden",
	http.StatusNotFound:            "not_found",
	http.StatusConflict:            "conflict",
	http.StatusBadGateway:          "bad_gateway",
	http.StatusGatewayTimeout:      "gateway_timeout",
	http.StatusInternalServerError: "internal_error",
}

// writeStatus writes the uniform error body for failures detected at the
// boundary itself, before any service call.
func (h *Handler) writeStatus(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.ErrorResponse{
		Code:    statusCodeNames[status],
		Message: message,
	}, status)
}

// writeError maps err to its HTTP status and writes the uniform error body.
// Internal errors are logged with their cause but reported without detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)

	response := models.ErrorResponse{
		Code:    statusCodeNames[status],
		Message: err.Error(),
	}
	if status == http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed with internal error")
		response.Message = http.StatusText(http.StatusInternalServerError)
	}

	// surface the provider status code on upstream failures
	var upstreamErr *adapter.UpstreamError
	if errors.As(err, &upstreamErr) {
		response.Details = map[string]any{"upstream_status": upstreamErr.Code}
	}

	utils.WriteJSON(w, response, status)
}

// writeValidationError reports request payloads that fail validation tags.
func (h *Handler) writeValidationError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	log.Err(err).Str("uri", r.RequestURI).Msg("request payload failed validation")

	utils.WriteJSON(w, models.ErrorResponse{
		Code:    statusCodeNames[http.StatusBadRequest],
		Message: "invalid request payload",
		Details: err.Error(),
	}, http.StatusBadRequest)
}

// writeBadJSON rejects requests whose bodies cannot be decoded.
func (h *Handler) writeBadJSON(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	log.Err(err).Str("uri", r.RequestURI).Msg("invalid JSON was passed")

	utils.WriteJSON(w, models.ErrorResponse{
		Code:    statusCodeNames[http.StatusBadRequest],
		Message: "invalid JSON was passed",
	}, http.StatusBadRequest)
}
