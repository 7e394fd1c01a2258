// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package http

import (
	"fmt"
	"net/http"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, verifies it
// via AuthService.ParseToken and, on success, stores the caller's identity
// in the request context with [utils.WithIdentity].
//
// A missing header, a scheme other than Bearer or a missing token is
// rejected with 401 "Access token required". A token that fails
// verification gets 403 "Invalid or expired token".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeMessage(w, r, http.StatusUnauthorized, msgAccessTokenRequired)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)).Send()
			writeMessage(w, r, http.StatusUnauthorized, msgAccessTokenRequired)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token verification failed")
			writeMessage(w, r, http.StatusForbidden, msgInvalidToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}
