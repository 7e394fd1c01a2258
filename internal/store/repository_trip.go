// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

// tripRepository is the SQL implementation of [TripRepository]. Every
// statement carries the owner predicate, so ownership is enforced by the
// database in the same statement that reads or writes the row.
type tripRepository struct {
	*DB
	logger *logger.Logger
}

// NewTripRepository constructs a [TripRepository] backed by db.
func NewTripRepository(db *DB, logger *logger.Logger) TripRepository {
	logger.Debug().Msg("creating trip repository")
	return &tripRepository{
		DB:     db,
		logger: logger,
	}
}

// ListTrips returns the trips of userID, newest first. The result is never
// nil.
func (t *tripRepository) ListTrips(ctx context.Context, userID int64) ([]models.Trip, error) {
	log := logger.FromContext(ctx)

	query, args, err := t.queries().buildSelectTripsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.ListTrips").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := t.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*tripRepository.ListTrips").
			Int64("user_id", userID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	trips := make([]models.Trip, 0)
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			log.Err(err).Str("func", "*tripRepository.ListTrips").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		trips = append(trips, trip)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*tripRepository.ListTrips").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return trips, nil
}

// GetTrip returns the trip tripID if userID owns it, [ErrTripNotFound]
// otherwise.
func (t *tripRepository) GetTrip(ctx context.Context, userID, tripID int64) (models.Trip, error) {
	query, args, err := t.queries().buildSelectTripQuery(userID, tripID)
	if err != nil {
		return models.Trip{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return t.queryTrip(ctx, "*tripRepository.GetTrip", query, args)
}

// CreateTrip inserts trip and returns the stored row. A trip whose owner
// no longer exists yields [ErrUserNotFound], whether the driver reports the
// violation when the statement runs or when the row is scanned.
func (t *tripRepository) CreateTrip(ctx context.Context, trip models.Trip) (models.Trip, error) {
	query, args, err := t.queries().buildInsertTripQuery(trip)
	if err != nil {
		return models.Trip{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := t.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		return models.Trip{}, t.createTripError(ctx, trip.UserID, ErrExecutingQuery, err)
	}

	created, err := scanTrip(row)
	if err != nil {
		return models.Trip{}, t.createTripError(ctx, trip.UserID, ErrScanningRow, err)
	}

	return created, nil
}

func (t *tripRepository) createTripError(ctx context.Context, userID int64, kind, err error) error {
	log := logger.FromContext(ctx)

	if t.errorClassifier.Classify(err) == ForeignKeyViolation {
		log.Warn().Int64("user_id", userID).Str("func", "*tripRepository.CreateTrip").Msg("owner does not exist")
		return ErrUserNotFound
	}

	log.Err(err).Str("func", "*tripRepository.CreateTrip").Msg("failed to insert trip")
	return fmt.Errorf("%w: %w", kind, err)
}

// UpdateTrip applies update to the trip in a single statement and returns
// the new row, or [ErrTripNotFound] when no row matched id and owner.
func (t *tripRepository) UpdateTrip(ctx context.Context, userID, tripID int64, update models.TripUpdate, updatedAt time.Time) (models.Trip, error) {
	query, args, err := t.queries().buildUpdateTripQuery(userID, tripID, update, updatedAt)
	if err != nil {
		return models.Trip{}, err
	}

	return t.queryTrip(ctx, "*tripRepository.UpdateTrip", query, args)
}

// DeleteTrip removes the trip, or returns [ErrTripNotFound] when no row
// matched id and owner.
func (t *tripRepository) DeleteTrip(ctx context.Context, userID, tripID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := t.queries().buildDeleteTripQuery(userID, tripID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := t.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*tripRepository.DeleteTrip").
			Int64("user_id", userID).
			Int64("trip_id", tripID).
			Msg("failed to delete trip")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTripNotFound
	}

	return nil
}

func (t *tripRepository) queryTrip(ctx context.Context, funcName, query string, args []any) (models.Trip, error) {
	log := logger.FromContext(ctx)

	row := t.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return models.Trip{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	trip, err := scanTrip(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Trip{}, ErrTripNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to scan row")
		return models.Trip{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return trip, nil
}

func scanTrip(s rowScanner) (models.Trip, error) {
	var trip models.Trip
	err := s.Scan(
		&trip.ID,
		&trip.UserID,
		&trip.Title,
		&trip.Location,
		&trip.Price,
		&trip.Description,
		&trip.CreatedAt,
		&trip.UpdatedAt,
	)
	return trip, err
}
