package http

import (
	"context"
	"net/http"

	"github.com/lcmendes/weather-gist/internal/logger"
	"github.com/lcmendes/weather-gist/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken] and rejects tokens whose
// jti claim was revoked by a logout. On success the authenticated user's ID,
// email and token ID are stored in the request context under the utils
// context keys before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following
// cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token.
//   - The token is expired, malformed or carries the wrong issuer.
//   - The token was revoked by a logout ([ErrTokenRevoked]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			h.writeStatus(w, http.StatusUnauthorized, ErrEmptyAuthorizationHeader.Error())
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			h.writeStatus(w, http.StatusUnauthorized, err.Error())
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			h.writeStatus(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
			return
		}

		revoked, err := h.services.AuthService.IsTokenRevoked(ctx, token.TokenID)
		if err != nil {
			log.Err(err).Msg("revocation check failed")
			h.writeStatus(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			return
		}
		if revoked {
			log.Err(ErrTokenRevoked).Str("jti", token.TokenID).Send()
			h.writeStatus(w, http.StatusUnauthorized, ErrTokenRevoked.Error())
			return
		}

		// Store the authenticated identity in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.UserEmailCtxKey, token.Email)
		ctx = context.WithValue(ctx, utils.TokenIDCtxKey, token.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
