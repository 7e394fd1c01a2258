// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user with the same
	// (normalized) email is already registered.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrUserNotFound is returned when no user matches the lookup, or when a
	// trip references a user that no longer exists.
	ErrUserNotFound = errors.New("user not found")

	// ErrTripNotFound is returned when a trip does not exist or is owned by
	// another user.
	ErrTripNotFound = errors.New("trip not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// without a result set (DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
