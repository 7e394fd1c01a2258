// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

//go:build cgo

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/config"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteRepositories(t *testing.T) (*DB, *Repositories) {
	t.Helper()

	cfg := config.DB{DSN: filepath.Join(t.TempDir(), "trips.sqlite")}
	db, err := NewConnection(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.Equal(t, DialectSQLite, db.Dialect())
	require.NoError(t, db.Migrate())

	return db, NewRepositories(db, logger.Nop())
}

func TestSQLite_TripLifecycle(t *testing.T) {
	ctx := context.Background()
	_, repos := newSQLiteRepositories(t)
	now := time.Now().UTC().Truncate(time.Second)

	owner, err := repos.UserRepository.CreateUser(ctx, models.User{Email: "a@example.com", PasswordHash: "h", CreatedAt: now})
	require.NoError(t, err)
	other, err := repos.UserRepository.CreateUser(ctx, models.User{Email: "b@example.com", PasswordHash: "h", CreatedAt: now})
	require.NoError(t, err)

	_, err = repos.UserRepository.CreateUser(ctx, models.User{Email: "a@example.com", PasswordHash: "h", CreatedAt: now})
	require.ErrorIs(t, err, ErrEmailAlreadyExists)

	first, err := repos.TripRepository.CreateTrip(ctx, models.Trip{
		UserID: owner.UserID, Title: "Paris", Location: "France", Price: 1000, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	second, err := repos.TripRepository.CreateTrip(ctx, models.Trip{
		UserID: owner.UserID, Title: "Rome", Location: "Italy", Price: 800, CreatedAt: now.Add(time.Second), UpdatedAt: now.Add(time.Second),
	})
	require.NoError(t, err)

	trips, err := repos.TripRepository.ListTrips(ctx, owner.UserID)
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, second.ID, trips[0].ID)
	assert.Equal(t, first.ID, trips[1].ID)

	foreign, err := repos.TripRepository.ListTrips(ctx, other.UserID)
	require.NoError(t, err)
	assert.Empty(t, foreign)

	_, err = repos.TripRepository.GetTrip(ctx, other.UserID, first.ID)
	assert.ErrorIs(t, err, ErrTripNotFound)

	price := 1500.0
	updated, err := repos.TripRepository.UpdateTrip(ctx, owner.UserID, first.ID, models.TripUpdate{Price: &price}, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1500.0, updated.Price)
	assert.Equal(t, "Paris", updated.Title)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	_, err = repos.TripRepository.UpdateTrip(ctx, other.UserID, first.ID, models.TripUpdate{Price: &price}, now)
	assert.ErrorIs(t, err, ErrTripNotFound)

	assert.ErrorIs(t, repos.TripRepository.DeleteTrip(ctx, other.UserID, first.ID), ErrTripNotFound)
	require.NoError(t, repos.TripRepository.DeleteTrip(ctx, owner.UserID, first.ID))
	assert.ErrorIs(t, repos.TripRepository.DeleteTrip(ctx, owner.UserID, first.ID), ErrTripNotFound)
}

func TestSQLite_DeletingUserCascadesToTrips(t *testing.T) {
	ctx := context.Background()
	db, repos := newSQLiteRepositories(t)
	now := time.Now().UTC()

	owner, err := repos.UserRepository.CreateUser(ctx, models.User{Email: "c@example.com", PasswordHash: "h", CreatedAt: now})
	require.NoError(t, err)
	_, err = repos.TripRepository.CreateTrip(ctx, models.Trip{UserID: owner.UserID, Title: "x", Location: "y", CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", owner.UserID)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM trips").Scan(&count))
	assert.Zero(t, count)

	_, err = repos.TripRepository.CreateTrip(ctx, models.Trip{UserID: owner.UserID, Title: "x", Location: "y", CreatedAt: now, UpdatedAt: now})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
