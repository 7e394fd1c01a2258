// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package service

import (
	"context"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/validators"
	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

// TripValidationService validates inputs before delegating to the wrapped
// TripService. Reads and deletes pass straight through.
type TripValidationService struct {
	inner     TripService
	validator validators.Validator
}

func NewTripValidationService(validator validators.Validator) TripServiceWrapper {
	return &TripValidationService{
		validator: validator,
	}
}

func (v *TripValidationService) List(ctx context.Context, userID int64) ([]models.Trip, error) {
	return v.inner.List(ctx, userID)
}

func (v *TripValidationService) Get(ctx context.Context, userID, tripID int64) (models.Trip, error) {
	return v.inner.Get(ctx, userID, tripID)
}

func (v *TripValidationService) Create(ctx context.Context, userID int64, in models.TripInput) (models.Trip, error) {
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Trip{}, err
	}
	return v.inner.Create(ctx, userID, in)
}

// Update rejects an empty update with ErrNoFieldsToUpdate, then validates
// the present fields.
func (v *TripValidationService) Update(ctx context.Context, userID, tripID int64, update models.TripUpdate) (models.Trip, error) {
	if update.IsEmpty() {
		return models.Trip{}, ErrNoFieldsToUpdate
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Trip{}, err
	}
	return v.inner.Update(ctx, userID, tripID, update)
}

func (v *TripValidationService) Delete(ctx context.Context, userID, tripID int64) error {
	return v.inner.Delete(ctx, userID, tripID)
}

func (v *TripValidationService) Wrap(wrapped TripService) TripService {
	v.inner = wrapped
	return v
}
