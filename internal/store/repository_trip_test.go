// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTripRepo(t *testing.T, dialect Dialect) (TripRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t, dialect)
	return NewTripRepository(db, logger.Nop()), mock
}

func tripRow(rows *sqlmock.Rows, id, userID int64, title string, ts time.Time) *sqlmock.Rows {
	return rows.AddRow(id, userID, title, "Somewhere", 12.5, "", ts, ts)
}

func TestListTrips_Success(t *testing.T) {
	repo, mock := newTestTripRepo(t, DialectPostgres)
	now := time.Now().UTC()

	rows := sqlmock.NewRows(tripColumns)
	tripRow(rows, 2, 7, "newer", now)
	tripRow(rows, 1, 7, "older", now.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta("FROM trips WHERE user_id = $1 ORDER BY created_at DESC, id DESC")).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	trips, err := repo.ListTrips(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, "newer", trips[0].Title)
	assert.Equal(t, int64(7), trips[1].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTrips_EmptyIsNotNil(t *testing.T) {
	repo, mock := newTestTripRepo(t, DialectPostgres)

	mock.ExpectQuery("FROM trips").WillReturnRows(sqlmock.NewRows(tripColumns))

	trips, err := repo.ListTrips(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, trips)
	assert.Empty(t, trips)
}

func TestListTrips_QueryError(t *testing.T) {
	repo, mock := newTestTripRepo(t, DialectPostgres)

	mock.ExpectQuery("FROM trips").WillReturnError(errors.New("boom"))

	_, err := repo.ListTrips(context.Background(), 7)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListTrips_RowError(t *testing.T) {
	repo, mock := newTestTripRepo(t, DialectPostgres)
	now := time.Now()

	rows := sqlmock.NewRows(tripColumns)
	tripRow(rows, 1, 7, "a", now)
	rows.RowError(0, errors.New("broken row"))
	mock.ExpectQuery("FROM trips").WillReturnRows(rows)

	_, err := repo.ListTrips(context.Background(), 7)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestGetTrip(t *testing.T) {
	query := regexp.QuoteMeta("FROM trips WHERE id = ? AND user_id = ?")

	t.Run("owned", func(t *testing.T) {
		repo, mock := newTestTripRepo(t, DialectSQLite)
		rows := tripRow(sqlmock.NewRows(tripColumns), 3, 7, "mine", time.Now())
		mock.ExpectQuery(query).WithArgs(int64(3), int64(7)).WillReturnRows(rows)

		trip, err := repo.GetTrip(context.Background(), 7, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(3), trip.ID)
		assert.Equal(t, "mine", trip.Title)
	})

	t.Run("missing or foreign", func(t *testing.T) {
		repo, mock := newTestTripRepo(t, DialectSQLite)
		mock.ExpectQuery(query).WithArgs(int64(3), int64(8)).WillReturnRows(sqlmock.NewRows(tripColumns))

		_, err := repo.GetTrip(context.Background(), 8, 3)
		assert.ErrorIs(t, err, ErrTripNotFound)
	})
}

func TestCreateTrip(t *testing.T) {
	now := time.Now().UTC()
	trip := models.Trip{UserID: 7, Title: "Paris", Location: "France", Price: 12.5, CreatedAt: now, UpdatedAt: now}
	query := regexp.QuoteMeta("INSERT INTO trips (user_id,title,location,price,description,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING")

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestTripRepo(t, DialectPostgres)
		rows := sqlmock.NewRows(tripColumns).AddRow(10, 7, "Paris", "France", 12.5, "", now, now)
		mock.ExpectQuery(query).
			WithArgs(int64(7), "Paris", "France", 12.5, "", now, now).
			WillReturnRows(rows)

		created, err := repo.CreateTrip(context.Background(), trip)
		require.NoError(t, err)
		assert.Equal(t, int64(10), created.ID)
		assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	})

	t.Run("owner deleted, reported on scan", func(t *testing.T) {
		repo, mock := newTestTripRepo(t, DialectPostgres)
		rows := sqlmock.NewRows(tripColumns).
			AddRow(10, 7, "Paris", "France", 12.5, "", now, now).
			RowError(0, pgError(pgerrcode.ForeignKeyViolation))
		mock.ExpectQuery(query).WillReturnRows(rows)

		_, err := repo.CreateTrip(context.Background(), trip)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("owner deleted, reported on execute", func(t *testing.T) {
		repo, mock := newTestTripRepo(t, DialectPostgres)
		mock.ExpectQuery(query).WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

		_, err := repo.CreateTrip(context.Background(), trip)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("other row error", func(t *testing.T) {
		repo, mock := newTestTripRepo(t, DialectPostgres)
		rows := sqlmock.NewRows(tripColumns).
			AddRow(10, 7, "Paris", "France", 12.5, "", now, now).
			RowError(0, errors.New("connection reset"))
		mock.ExpectQuery(query).WillReturnRows(rows)

		_, err := repo.CreateTrip(context.Background(), trip)
		assert.ErrorIs(t, err, ErrScanningRow)
	})
}

func TestUpdateTrip(t *testing.T) {
	now := time.Now().UTC()
	price := 50.0
	update := models.TripUpdate{Price: &price}
	query := regexp.QuoteMeta("UPDATE trips SET price = $1, updated_at = $2 WHERE id = $3 AND user_id = $4 RETURNING")

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestTripRepo(t, DialectPostgres)
		created := now.Add(-time.Hour)
		rows := sqlmock.NewRows(tripColumns).AddRow(3, 7, "Paris", "France", 50.0, "", created, now)
		mock.ExpectQuery(query).WithArgs(50.0, now, int64(3), int64(7)).WillReturnRows(rows)

		trip, err := repo.UpdateTrip(context.Background(), 7, 3, update, now)
		require.NoError(t, err)
		assert.Equal(t, 50.0, trip.Price)
		assert.Equal(t, now, trip.UpdatedAt)
		assert.Equal(t, created, trip.CreatedAt)
	})

	t.Run("not owned", func(t *testing.T) {
		repo, mock := newTestTripRepo(t, DialectPostgres)
		mock.ExpectQuery(query).WithArgs(50.0, now, int64(3), int64(8)).WillReturnRows(sqlmock.NewRows(tripColumns))

		_, err := repo.UpdateTrip(context.Background(), 8, 3, update, now)
		assert.ErrorIs(t, err, ErrTripNotFound)
	})

	t.Run("empty update never reaches the database", func(t *testing.T) {
		repo, mock := newTestTripRepo(t, DialectPostgres)

		_, err := repo.UpdateTrip(context.Background(), 7, 3, models.TripUpdate{}, now)
		assert.ErrorIs(t, err, ErrBuildingSQLQuery)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteTrip(t *testing.T) {
	query := regexp.QuoteMeta("DELETE FROM trips WHERE id = $1 AND user_id = $2")

	tests := []struct {
		name    string
		result  driver.Result
		execErr error
		wantErr error
	}{
		{name: "deleted", result: sqlmock.NewResult(0, 1)},
		{name: "not found", result: sqlmock.NewResult(0, 0), wantErr: ErrTripNotFound},
		{name: "exec error", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
		{name: "rows affected error", result: sqlmock.NewErrorResult(errors.New("n/a")), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestTripRepo(t, DialectPostgres)
			exp := mock.ExpectExec(query).WithArgs(int64(3), int64(7))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.DeleteTrip(context.Background(), 7, 3)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
