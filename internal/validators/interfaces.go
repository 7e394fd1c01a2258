// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

// Package validators checks request inputs before they reach the store.
//
// A failed check returns a *ValidationError listing every violated field,
// not only the first. It unwraps to ErrValidationFailed, so callers can
// match it with errors.Is and read the fields with errors.As.
package validators

import "context"

// Validator checks a request model. When fields are given, only those
// checks run; otherwise every check for the model's type runs.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
