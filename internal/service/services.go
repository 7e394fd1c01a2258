// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

// Package service holds the application logic between the HTTP handlers and
// the store: credential checks and session tokens, ownership-scoped trip
// management, and the exchange-rate aggregator with provider fallback.
package service

import (
	"fmt"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/adapter"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/config"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/store"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/utils"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/validators"
)

type Services struct {
	AuthService  AuthService
	TripService  TripService
	RatesService RatesService
}

func NewServices(repositories *store.Repositories, rateProvider adapter.RateProvider, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator(cfg.Rates.MaxTimeseriesDays)

	authService, err := NewAuthService(
		repositories.UserRepository,
		utils.NewBcryptHasher(cfg.App.BcryptCost),
		utils.NewJWTIssuer(cfg.App.TokenIssuer, cfg.App.TokenSignKey, cfg.App.TokenDuration),
		validator,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	tripService := NewTripValidationService(validator).Wrap(NewTripService(repositories.TripRepository, logger))

	return &Services{
		AuthService:  authService,
		TripService:  tripService,
		RatesService: NewRatesService(rateProvider, validator, cfg.Rates, logger),
	}, nil
}
