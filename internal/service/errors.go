// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for an unknown email and for
	// a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNoFieldsToUpdate is returned by TripService.Update for an update
	// that carries no field.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
