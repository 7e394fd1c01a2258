// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package client

// SessionStore keeps the session token between command invocations.
type SessionStore interface {
	// Load returns the stored token or ErrNotLoggedIn.
	Load() (string, error)
	Save(token string) error
	// Clear removes the stored token. Clearing an empty store is not an
	// error.
	Clear() error
}
