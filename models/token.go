// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set of a session credential. UserID and Email are
// carried as the custom "userId" and "email" claims; the registered "sub"
// claim holds the same user id.
type Claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Token wraps a signed session credential.
type Token struct {
	// Claims are the claims the token was signed with.
	Claims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// GetUserID returns the user id, preferring the "userId" claim and falling
// back to the "sub" claim.
func (t *Token) GetUserID() (int64, error) {
	if t.Claims.UserID != 0 {
		return t.Claims.UserID, nil
	}

	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
