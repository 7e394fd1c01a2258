// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package store

import (
	"context"
	"time"

	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

// UserRepository persists user accounts.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// TripRepository persists trips. Every method is scoped to the owner: rows
// of other users are never read, changed or deleted.
type TripRepository interface {
	ListTrips(ctx context.Context, userID int64) ([]models.Trip, error)
	GetTrip(ctx context.Context, userID, tripID int64) (models.Trip, error)
	CreateTrip(ctx context.Context, trip models.Trip) (models.Trip, error)
	UpdateTrip(ctx context.Context, userID, tripID int64, update models.TripUpdate, updatedAt time.Time) (models.Trip, error)
	DeleteTrip(ctx context.Context, userID, tripID int64) error
}
