// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

// Package utils holds small helpers shared across the server and client:
// request identity in context, bcrypt hashing, JSON response writing, the
// resty client constructor, JWT issuing and parsing, trace ids, and the
// first-success fallback combinator.
package utils

import (
	"context"

	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

type contextKey string

func (c contextKey) String() string {
	return "easy-travel context key " + string(c)
}

var identityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying the verified caller.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey, identity)
}

// GetIdentityFromContext returns the identity stored by WithIdentity.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey).(models.Identity)
	return identity, ok
}
