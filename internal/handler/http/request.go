// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/utils"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/validators"
	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

// decodeJSON decodes the request body into dst. An empty body leaves dst
// untouched so that validation reports the missing fields.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
}

// tripIDFromPath parses the {id} path parameter.
func tripIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, validators.NewValidationError("id", "Invalid trip ID")
	}
	return id, nil
}

// identityFromRequest returns the identity stored by the auth middleware.
func identityFromRequest(r *http.Request) (models.Identity, error) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		return models.Identity{}, ErrNoIdentityInContext
	}
	return identity, nil
}
