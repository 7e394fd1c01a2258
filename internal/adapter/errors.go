// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package adapter

import "errors"

// Rate provider failures. They never reach API clients; the rates service
// logs them and falls back.
var (
	ErrUpstreamUnavailable = errors.New("rate provider unreachable")
	ErrUpstreamInvalidBody = errors.New("rate provider returned no rates object")
)

// API client failures mapped from response status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
)
