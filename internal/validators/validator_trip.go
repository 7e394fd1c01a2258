// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package validators

import (
	"context"

	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

// validateTripInput validates a create body. Title, location and price are
// required; description is optional.
//
// Default validated fields (when none specified): Title, Location, Price,
// Description. Every violated field is reported.
func (v *RequestValidator) validateTripInput(_ context.Context, in models.TripInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldLocation, FieldPrice, FieldDescription}
	}

	var errs fieldErrors
	for _, f := range fields {
		switch f {
		case FieldTitle:
			v.checkText(&errs, FieldTitle, "Title", deref(in.Title), true, maxTitleLength)
		case FieldLocation:
			v.checkText(&errs, FieldLocation, "Location", deref(in.Location), true, maxLocationLength)
		case FieldPrice:
			v.checkPrice(&errs, in.Price, in.PriceMalformed)
		case FieldDescription:
			if in.Description != nil {
				v.checkText(&errs, FieldDescription, "Description", *in.Description, false, maxDescriptionLength)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

// validateTripUpdate applies the create rules to the fields present in u
// only. An empty update is valid here; the service rejects it separately.
func (v *RequestValidator) validateTripUpdate(_ context.Context, u models.TripUpdate) error {
	var errs fieldErrors
	if u.Title != nil {
		v.checkText(&errs, FieldTitle, "Title", *u.Title, true, maxTitleLength)
	}
	if u.Location != nil {
		v.checkText(&errs, FieldLocation, "Location", *u.Location, true, maxLocationLength)
	}
	if u.Price != nil || u.PriceMalformed {
		v.checkPrice(&errs, u.Price, u.PriceMalformed)
	}
	if u.Description != nil {
		v.checkText(&errs, FieldDescription, "Description", *u.Description, false, maxDescriptionLength)
	}
	return errs.err()
}

func (v *RequestValidator) checkPrice(errs *fieldErrors, price *float64, malformed bool) {
	if malformed {
		errs.add(FieldPrice, "Price must be a number")
		return
	}
	if price == nil || !v.check(*price, "gte=0") {
		errs.add(FieldPrice, "Price must be a non-negative number")
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
