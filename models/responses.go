// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package models

// MessageResponse is a body carrying a single human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    Identity `json:"user"`
}

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every error response. Details is set for
// validation failures; Message only in development mode.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
	Message string       `json:"message,omitempty"`
}
