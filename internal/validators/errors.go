// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package validators

import (
	"errors"
	"strings"

	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidationFailed is the sentinel every *ValidationError unwraps to.
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError lists every invalid field of one input.
type ValidationError struct {
	Fields []models.FieldError
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []models.FieldError{{Field: field, Message: message}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// fieldErrors accumulates field violations in input order.
type fieldErrors []models.FieldError

func (f *fieldErrors) add(field, message string) {
	*f = append(*f, models.FieldError{Field: field, Message: message})
}

// err returns nil when nothing was recorded.
func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}
