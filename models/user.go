// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package models

import "time"

// User represents an account entity used for authentication and as the owner
// of trips.
type User struct {
	// UserID is the store-assigned unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique, normalized (trimmed, lower-cased) login.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password. It is never
	// serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// Credentials is the register/login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Identity is the verified caller attached to a request by the auth
// middleware.
type Identity struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
}
