// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package client

import "errors"

var (
	ErrNotLoggedIn    = errors.New("not logged in, run `easy-travel login` first")
	ErrSessionExpired = errors.New("session expired, please log in again")
	ErrInvalidTripID  = errors.New("trip id must be an integer")
)
