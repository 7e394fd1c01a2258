// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package validators

import (
	"context"
	"strconv"
	"time"

	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

// validateTimeseriesRequest requires both dates in YYYY-MM-DD form and,
// when a maximum is configured, a span of at most maxTimeseriesDays.
//
// Default validated fields (when none specified): StartDate, EndDate, Span.
func (v *RequestValidator) validateTimeseriesRequest(_ context.Context, r models.TimeseriesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStartDate, FieldEndDate, FieldSpan}
	}

	var errs fieldErrors
	for _, f := range fields {
		switch f {
		case FieldStartDate:
			v.checkDate(&errs, FieldStartDate, r.StartDate)
		case FieldEndDate:
			v.checkDate(&errs, FieldEndDate, r.EndDate)
		case FieldSpan:
			if v.maxTimeseriesDays <= 0 {
				continue
			}
			start, err1 := time.Parse(dateLayout, r.StartDate)
			end, err2 := time.Parse(dateLayout, r.EndDate)
			if err1 != nil || err2 != nil {
				continue
			}
			if days := int(end.Sub(start).Hours() / 24); days > v.maxTimeseriesDays {
				errs.add(FieldEndDate, "Date range must not exceed "+strconv.Itoa(v.maxTimeseriesDays)+" days")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func (v *RequestValidator) checkDate(errs *fieldErrors, field, value string) {
	if !v.check(value, "required") {
		errs.add(field, field+" is required")
		return
	}
	if !v.check(value, "datetime="+dateLayout) {
		errs.add(field, field+" must be a date in YYYY-MM-DD format")
	}
}
