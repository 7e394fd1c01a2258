// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package validators

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

// Field name constants used to specify which fields should be validated.
const (
	FieldEmail = "email"
	// FieldPassword applies the registration password policy.
	FieldPassword = "password"
	// FieldPasswordPresent only requires a password to be supplied (login).
	FieldPasswordPresent = "password_present"

	FieldTitle       = "title"
	FieldLocation    = "location"
	FieldPrice       = "price"
	FieldDescription = "description"

	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	// FieldSpan bounds the number of days between start and end date.
	FieldSpan = "span"
)

const (
	maxTitleLength       = 200
	maxLocationLength    = 200
	maxDescriptionLength = 2000
	minPasswordLength    = 6

	dateLayout = "2006-01-02"
)

// RequestValidator implements [Validator] for every request model of the
// API: credentials, trip inputs and updates, and timeseries queries. Both
// value and pointer forms are accepted.
type RequestValidator struct {
	rules             *validator.Validate
	maxTimeseriesDays int
}

// NewRequestValidator constructs a RequestValidator. maxTimeseriesDays
// caps the span of a timeseries request; zero disables the check.
func NewRequestValidator(maxTimeseriesDays int) Validator {
	return &RequestValidator{
		rules:             validator.New(),
		maxTimeseriesDays: maxTimeseriesDays,
	}
}

// Validate dispatches validation on the dynamic type of obj.
//
// Supported types:
//   - models.Credentials / *models.Credentials
//   - models.TripInput / *models.TripInput
//   - models.TripUpdate / *models.TripUpdate
//   - models.TimeseriesRequest / *models.TimeseriesRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.TripInput:
		return v.validateTripInput(ctx, value, fields...)
	case *models.TripInput:
		return v.validateTripInput(ctx, *value, fields...)

	case models.TripUpdate:
		return v.validateTripUpdate(ctx, value)
	case *models.TripUpdate:
		return v.validateTripUpdate(ctx, *value)

	case models.TimeseriesRequest:
		return v.validateTimeseriesRequest(ctx, value, fields...)
	case *models.TimeseriesRequest:
		return v.validateTimeseriesRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// check reports whether value satisfies the validator/v10 tag.
func (v *RequestValidator) check(value any, tag string) bool {
	return v.rules.Var(value, tag) == nil
}

// checkText validates a free-text field after trimming.
func (v *RequestValidator) checkText(errs *fieldErrors, field, label, value string, required bool, maxLen int) {
	value = strings.TrimSpace(value)
	if required && !v.check(value, "required") {
		errs.add(field, label+" is required")
		return
	}
	if limit := strconv.Itoa(maxLen); !v.check(value, "max="+limit) {
		errs.add(field, label+" must be at most "+limit+" characters")
	}
}
