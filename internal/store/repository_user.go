// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user and returns the stored row with its assigned id.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver error → wrapped [ErrExecutingQuery] or [ErrScanningRow].
//
// Drivers report constraint violations of INSERT … RETURNING either when the
// statement runs or when the returned row is stepped inside Scan, so both
// paths are classified.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries().buildInsertUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		return models.User{}, r.createUserError(ctx, ErrExecutingQuery, err)
	}

	created, err := scanUser(row)
	if err != nil {
		return models.User{}, r.createUserError(ctx, ErrScanningRow, err)
	}

	return created, nil
}

func (r *userRepository) createUserError(ctx context.Context, kind, err error) error {
	log := logger.FromContext(ctx)

	if r.db.errorClassifier.Classify(err) == UniqueViolation {
		log.Debug().Str("func", "*userRepository.CreateUser").Msg("email already registered")
		return ErrEmailAlreadyExists
	}

	log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
	return fmt.Errorf("%w: %w", kind, err)
}

// FindUserByEmail returns the user registered with email, or
// [ErrUserNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries().buildSelectUserByEmailQuery(email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	found, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

func scanUser(s rowScanner) (models.User, error) {
	var user models.User
	err := s.Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	return user, err
}
