// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/config"
	"github.com/linguangsen637-crypto/an-easy-travel-website/internal/logger"
	"github.com/linguangsen637-crypto/an-easy-travel-website/migrations"
)

// Dialect identifies the SQL backend behind a DB. Its value is the
// database/sql driver name.
type Dialect string

const (
	// DialectPostgres is PostgreSQL through the pgx stdlib driver.
	DialectPostgres Dialect = migrations.DialectPostgres
	// DialectSQLite is SQLite through mattn/go-sqlite3.
	DialectSQLite Dialect = migrations.DialectSQLite
)

func (d Dialect) placeholder() sq.PlaceholderFormat {
	if d == DialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// DialectFromDSN selects PostgreSQL for postgres:// and postgresql:// URLs
// and SQLite for everything else.
func DialectFromDSN(dsn string) Dialect {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

// DB is a database handle bound to its dialect.
type DB struct {
	*sql.DB
	dialect         Dialect
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

// NewDB wraps an open connection. It is used by the connect functions and
// by tests that supply a mocked *sql.DB.
func NewDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	var classifier ErrorClassifier = NewSQLiteErrorClassifier()
	if dialect == DialectPostgres {
		classifier = NewPostgresErrorClassifier()
	}

	return &DB{
		DB:              conn,
		dialect:         dialect,
		errorClassifier: classifier,
		logger:          log,
	}
}

// NewConnection opens the database selected by cfg.DSN and verifies it is
// reachable.
func NewConnection(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch DialectFromDSN(cfg.DSN) {
	case DialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

// Dialect returns the SQL backend of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded schema migrations for the dialect of db.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, string(db.dialect)); err != nil {
		return fmt.Errorf("error migrating %s database: %w", db.dialect, err)
	}
	return nil
}

func (db *DB) queries() queryBuilder {
	return newQueryBuilder(db.dialect)
}
