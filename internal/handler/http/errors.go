// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Miguel Velasco

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be parsed as a bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrSessionMismatch is returned when the presented token decodes fine
	// but does not belong to the currently active session.
	ErrSessionMismatch = errors.New("token does not match the active session")
)
