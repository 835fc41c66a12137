// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Miguel Velasco

package http

import (
	"context"
	"net/http"

	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/internal/utils"
)

// auth is an HTTP middleware guarding the per-user API surface.
//
// It extracts the bearer token from the "Authorization" header, decodes it,
// and checks that its subject matches the currently active session. On
// success the verified email is stored in the request context under
// [utils.UserCtxKey] before delegating to the next handler.
//
// The token is an opaque identifier, not a signed credential: the check
// here is possession plus a match against server-side session state, which
// is all the demo threat model calls for.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()

		token, err := utils.DecodeSessionToken(tokenString)
		if err != nil {
			log.Err(err).Msg("presented token cannot be decoded")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		activeUser, ok := h.services.SessionService.ActiveUser(ctx)
		if !ok || !h.services.SessionService.IsAuthenticated(ctx) || token.Subject != activeUser {
			log.Err(ErrSessionMismatch).Str("subject", token.Subject).Send()
			http.Error(w, ErrSessionMismatch.Error(), http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.UserCtxKey, token.Subject)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
