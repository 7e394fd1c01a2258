// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/store"
	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

type tripService struct {
	tripRepository store.TripRepository

	now    func() time.Time
	logger *logger.Logger
}

// NewTripService returns the TripService backed by tripRepository. It
// performs no input validation; wrap it with NewTripValidationService.
func NewTripService(tripRepository store.TripRepository, logger *logger.Logger) TripService {
	return &tripService{
		tripRepository: tripRepository,
		now:            time.Now,
		logger:         logger,
	}
}

func (t *tripService) List(ctx context.Context, userID int64) ([]models.Trip, error) {
	return t.tripRepository.ListTrips(ctx, userID)
}

func (t *tripService) Get(ctx context.Context, userID, tripID int64) (models.Trip, error) {
	return t.tripRepository.GetTrip(ctx, userID, tripID)
}

// Create stores in for userID with created_at and updated_at both set to
// the current time. Text fields are trimmed; a missing description is
// stored as "".
func (t *tripService) Create(ctx context.Context, userID int64, in models.TripInput) (models.Trip, error) {
	now := t.now().UTC()
	trip := models.Trip{
		UserID:      userID,
		Title:       trimmed(in.Title),
		Location:    trimmed(in.Location),
		Description: trimmed(in.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Price != nil {
		trip.Price = *in.Price
	}

	created, err := t.tripRepository.CreateTrip(ctx, trip)
	if err != nil {
		return models.Trip{}, fmt.Errorf("trip creation failed: %w", err)
	}
	return created, nil
}

// Update writes the fields present in update and refreshes updated_at.
func (t *tripService) Update(ctx context.Context, userID, tripID int64, update models.TripUpdate) (models.Trip, error) {
	if update.IsEmpty() {
		return models.Trip{}, ErrNoFieldsToUpdate
	}

	update.Title = trimmedPtr(update.Title)
	update.Location = trimmedPtr(update.Location)
	update.Description = trimmedPtr(update.Description)

	return t.tripRepository.UpdateTrip(ctx, userID, tripID, update, t.now().UTC())
}

func (t *tripService) Delete(ctx context.Context, userID, tripID int64) error {
	return t.tripRepository.DeleteTrip(ctx, userID, tripID)
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
