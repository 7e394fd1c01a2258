// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package http

import (
	"errors"
	"net/http"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/service"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/store"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/utils"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/validators"
	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

const (
	msgValidationFailed    = "Validation failed"
	msgInternalServerError = "Internal server error"
	msgAccessTokenRequired = "Access token required"
	msgInvalidToken        = "Invalid or expired token"
)

type statusMessage struct {
	status  int
	message string
}

var errorStatusMap = map[error]statusMessage{
	ErrInvalidRequestBody:  {http.StatusBadRequest, "Invalid request body"},
	ErrNoIdentityInContext: {http.StatusUnauthorized, msgAccessTokenRequired},

	service.ErrNoFieldsToUpdate:   {http.StatusBadRequest, "No fields to update"},
	service.ErrInvalidCredentials: {http.StatusUnauthorized, "Invalid credentials"},

	store.ErrEmailAlreadyExists: {http.StatusBadRequest, "Email already registered"},
	store.ErrTripNotFound:       {http.StatusNotFound, "Trip not found"},
	store.ErrUserNotFound:       {http.StatusNotFound, "User not found"},
}

// errorResponse maps err to a status code and response body. Unknown errors
// become 500; their text is only echoed when development is set.
func errorResponse(err error, development bool) (int, models.ErrorResponse) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, models.ErrorResponse{
			Error:   msgValidationFailed,
			Details: validationErr.Fields,
		}
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: "Request body too large"}
	}

	for target, sm := range errorStatusMap {
		if errors.Is(err, target) {
			return sm.status, models.ErrorResponse{Error: sm.message}
		}
	}

	body := models.ErrorResponse{Error: msgInternalServerError}
	if development {
		body.Message = err.Error()
	}
	return http.StatusInternalServerError, body
}

// writeError logs err through the request logger and writes the mapped
// response.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, body := errorResponse(err, h.development)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, body, status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}

// writeMessage writes {"error": message} with status.
func writeMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	if _, err := utils.WriteJSON(w, models.ErrorResponse{Error: message}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
