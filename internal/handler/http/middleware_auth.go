package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It reads the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the token subject in the
// request context under [utils.UsernameCtxKey] before delegating to next.
//
// Requests are rejected with 401 Unauthorized when:
//   - the header is absent ([ErrEmptyAuthorizationHeader]);
//   - the header is not "Bearer <token>" ([ErrInvalidAuthorizationHeader]);
//   - the token signature, issuer or expiry does not verify.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Msg("request rejected")
			h.writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			h.writeError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.UsernameCtxKey, token.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token from a raw
// "Authorization" header value.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}

	return tokenString, nil
}
