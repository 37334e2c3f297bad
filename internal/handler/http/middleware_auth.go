// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/vmelikhov/orderdesk/internal/logger"
	"github.com/vmelikhov/orderdesk/internal/utils"
)

// auth is an HTTP middleware that resolves JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// resolves it to a user record via [service.AuthService.ResolveToken], and —
// on success — stores the authenticated user in the request context under
// [utils.UserCtxKey] before delegating to the next handler.
//
// The middleware never short-circuits. When the header is absent, the token
// cannot be parsed, verification fails, or the token's subject no longer
// exists, the request proceeds WITHOUT an attached user and the protected
// handler decides whether that is fatal. Absence and verification failure
// are deliberately indistinguishable downstream.
//
// All skip events are logged at debug level using the context-scoped logger
// obtained via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Msg("proceeding unauthenticated")
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.ResolveToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("bearer token did not resolve, proceeding unauthenticated")
			next.ServeHTTP(w, r)
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserCtxKey, &user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
