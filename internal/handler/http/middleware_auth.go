// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cipherhold/cipherhold/internal/logger"
	"github.com/cipherhold/cipherhold/internal/token"
)

// auth enforces JWT bearer authentication. On success the caller's user id is
// stored in the request context for downstream handlers; every rejection is a
// 401 with the reason logged through the context-scoped logger.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		userID, err := h.tokens.Parse(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, token.ErrTokenExpired):
				log.Err(err).Msg("token expired")
				http.Error(w, token.ErrTokenExpired.Error(), http.StatusUnauthorized)
			default:
				log.Err(err).Msg("error occurred during parsing token")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), userID)))
	})
}

// getTokenFromAuthHeader extracts the bearer token from a raw
// "Authorization: <scheme> <token>" header value.
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
