// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/linguangsen637-crypto/an-easy-travel-website/models"
)

const (
	usersTable = "users"
	tripsTable = "trips"
)

var (
	userColumns = []string{"id", "email", "password", "created_at"}
	tripColumns = []string{"id", "user_id", "title", "location", "price", "description", "created_at", "updated_at"}
)

// queryBuilder renders every statement of the store with the placeholder
// format of one dialect.
type queryBuilder struct {
	sb sq.StatementBuilderType
}

func newQueryBuilder(dialect Dialect) queryBuilder {
	return queryBuilder{sb: sq.StatementBuilder.PlaceholderFormat(dialect.placeholder())}
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func (q queryBuilder) buildInsertUserQuery(user models.User) (string, []any, error) {
	return q.sb.
		Insert(usersTable).
		Columns("email", "password", "created_at").
		Values(user.Email, user.PasswordHash, user.CreatedAt).
		Suffix(returning(userColumns)).
		ToSql()
}

func (q queryBuilder) buildSelectUserByEmailQuery(email string) (string, []any, error) {
	return q.sb.
		Select(userColumns...).
		From(usersTable).
		Where("email = ?", email).
		ToSql()
}

func (q queryBuilder) buildSelectTripsQuery(userID int64) (string, []any, error) {
	return q.sb.
		Select(tripColumns...).
		From(tripsTable).
		Where("user_id = ?", userID).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func (q queryBuilder) buildSelectTripQuery(userID, tripID int64) (string, []any, error) {
	return q.sb.
		Select(tripColumns...).
		From(tripsTable).
		Where("id = ?", tripID).
		Where("user_id = ?", userID).
		ToSql()
}

func (q queryBuilder) buildInsertTripQuery(trip models.Trip) (string, []any, error) {
	return q.sb.
		Insert(tripsTable).
		Columns("user_id", "title", "location", "price", "description", "created_at", "updated_at").
		Values(trip.UserID, trip.Title, trip.Location, trip.Price, trip.Description, trip.CreatedAt, trip.UpdatedAt).
		Suffix(returning(tripColumns)).
		ToSql()
}

// buildUpdateTripQuery writes only the fields present in update plus
// updated_at. Column names come from a fixed list, never from input.
func (q queryBuilder) buildUpdateTripQuery(userID, tripID int64, update models.TripUpdate, updatedAt time.Time) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	builder := q.sb.Update(tripsTable)
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Location != nil {
		builder = builder.Set("location", *update.Location)
	}
	if update.Price != nil {
		builder = builder.Set("price", *update.Price)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}

	return builder.
		Set("updated_at", updatedAt).
		Where("id = ?", tripID).
		Where("user_id = ?", userID).
		Suffix(returning(tripColumns)).
		ToSql()
}

func (q queryBuilder) buildDeleteTripQuery(userID, tripID int64) (string, []any, error) {
	return q.sb.
		Delete(tripsTable).
		Where("id = ?", tripID).
		Where("user_id = ?", userID).
		ToSql()
}
