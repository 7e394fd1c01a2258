// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package http

import (
	"net/http"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/utils"
	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		h.writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, creds)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")

	utils.WriteJSON(w, models.RegisterResponse{
		Message: "User registered successfully",
		UserID:  registeredUser.UserID,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		h.writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Message: "Login successful",
		Token:   token.String(),
		User: models.Identity{
			UserID: foundUser.UserID,
			Email:  foundUser.Email,
		},
	}, http.StatusOK)
}
