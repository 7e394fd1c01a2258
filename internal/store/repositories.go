// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package store

import "github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"

// Repositories groups every repository backed by one database.
type Repositories struct {
	UserRepository UserRepository
	TripRepository TripRepository
}

// NewRepositories builds all repositories on top of db.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
		TripRepository: NewTripRepository(db, logger),
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
