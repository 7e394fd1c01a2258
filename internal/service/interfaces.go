// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package service

import (
	"context"

	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, checks credentials and manages session
// tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Identity, error)
}

// TripService manages the trips of one owner at a time. The owner id always
// comes from the verified session, never from request input.
type TripService interface {
	List(ctx context.Context, userID int64) ([]models.Trip, error)
	Get(ctx context.Context, userID, tripID int64) (models.Trip, error)
	Create(ctx context.Context, userID int64, in models.TripInput) (models.Trip, error)
	Update(ctx context.Context, userID, tripID int64, update models.TripUpdate) (models.Trip, error)
	Delete(ctx context.Context, userID, tripID int64) error
}

// RatesService serves exchange rates. Provider failures never surface as
// errors; only invalid input does.
type RatesService interface {
	// Static returns a copy of the built-in rate table.
	Static() models.RateTable
	// Latest returns rates relative to base from the first provider that
	// answers, or the built-in table.
	Latest(ctx context.Context, base string) models.RatesResult
	// Timeseries returns daily rates for the requested range from the first
	// provider that answers, or a flat series derived from the built-in
	// table.
	Timeseries(ctx context.Context, req models.TimeseriesRequest) (models.RatesResult, error)
}

// PasswordHasher is the slow one-way function protecting stored passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}

// TokenIssuer signs and verifies session credentials.
type TokenIssuer interface {
	Issue(identity models.Identity) (models.Token, error)
	Parse(tokenString string) (models.Identity, error)
}
