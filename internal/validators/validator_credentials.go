// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package validators

import (
	"context"
	"strconv"
	"strings"

	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

// validateCredentials validates a register or login body.
//
// Default validated fields (when none specified): Email, Password.
// Login passes FieldEmail and FieldPasswordPresent instead, so an existing
// account with a short legacy password can still sign in.
func (v *RequestValidator) validateCredentials(_ context.Context, c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	var errs fieldErrors
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !v.check(strings.TrimSpace(c.Email), "required,email") {
				errs.add(FieldEmail, "Invalid email")
			}
		case FieldPassword:
			if !v.check(c.Password, "min="+strconv.Itoa(minPasswordLength)) {
				errs.add(FieldPassword, "Password must be at least "+strconv.Itoa(minPasswordLength)+" characters")
			}
		case FieldPasswordPresent:
			if !v.check(c.Password, "required") {
				errs.add(FieldPassword, "Password is required")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}
