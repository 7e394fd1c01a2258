// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

// Package adapter holds the outbound HTTP integrations of the application.
//
// [RateProvider] fetches exchange-rate documents from third-party feeds for
// the rates service. [APIAdapter] is the client side of the easy-travel API
// used by the command-line client.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RateProvider fetches one exchange-rate document.
type RateProvider interface {
	// FetchRates GETs url and returns its body unchanged when it is a JSON
	// object with an object-valued "rates" member. Any other outcome is an
	// error wrapping one of the ErrUpstream* values.
	FetchRates(ctx context.Context, url string) (json.RawMessage, error)
}

// APIAdapter is the client side of the easy-travel HTTP API.
type APIAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "".
	Token() string

	// Register creates an account and returns the new user id.
	Register(ctx context.Context, creds models.Credentials) (int64, error)

	// Login authenticates, stores the returned token via SetToken and
	// returns the full response.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	ListTrips(ctx context.Context) ([]models.Trip, error)
	GetTrip(ctx context.Context, id int64) (models.Trip, error)
	CreateTrip(ctx context.Context, in models.TripInput) (models.Trip, error)
	UpdateTrip(ctx context.Context, id int64, update models.TripUpdate) (models.Trip, error)
	DeleteTrip(ctx context.Context, id int64) error

	// StaticRates returns the server's built-in rate table.
	StaticRates(ctx context.Context) (models.RateTable, error)

	// LatestRates returns rates relative to base.
	LatestRates(ctx context.Context, base string) (models.LatestRates, error)

	// Timeseries returns daily rates for the requested range.
	Timeseries(ctx context.Context, req models.TimeseriesRequest) (models.Timeseries, error)
}
