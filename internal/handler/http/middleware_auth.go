package http

import (
	"context"
	"errors"
	"net/http"

	"blogkeeper/internal/logger"
	"blogkeeper/internal/service"
	"blogkeeper/internal/utils"
	"blogkeeper/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and — on success — stores
// the authenticated user's identity in the request context under
// [utils.IdentityCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent.
//   - The header value cannot be parsed as a bearer token.
//   - The token has expired ([service.ErrTokenIsExpired]).
//   - The token is otherwise invalid or cannot be parsed.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Str("path", r.URL.Path).Str("ip", r.RemoteAddr).Msg("auth attempt without token")
			h.writeNoToken(w, r)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(ErrInvalidAuthorizationHeader).Str("path", r.URL.Path).Str("ip", r.RemoteAddr).Send()
			h.writeNoToken(w, r)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenIsExpired) {
				log.Warn().Err(err).Str("ip", r.RemoteAddr).Msg("token expired")
			} else {
				log.Warn().Err(err).Str("ip", r.RemoteAddr).Msg("invalid token attempt")
			}
			h.writeError(w, r, err)
			return
		}

		log.Debug().
			Int64("user_id", token.Identity.UserID).
			Str("username", token.Identity.Username).
			Msg("user authenticated")

		next.ServeHTTP(w, r.WithContext(
			context.WithValue(ctx, utils.IdentityCtxKey, token.Identity),
		))
	})
}

// writeNoToken reports a request that never presented a usable credential.
// Kept apart from the normalizer because "no token" is not a token error.
func (h *Handler) writeNoToken(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, models.ErrorResponse{
		Success: false,
		Error:   "No token, authorization denied",
	}, http.StatusUnauthorized); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}
