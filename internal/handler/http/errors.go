// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package http

import "errors"

// Sentinel errors of the transport layer. Callers can match against them
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidRequestBody is returned when a request body is not valid
	// JSON for the expected shape.
	ErrInvalidRequestBody = errors.New("invalid request body")

	ErrNoIdentityInContext = errors.New("no identity in request context")
)
