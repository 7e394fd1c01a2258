// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

// Package migrations embeds the SQL schema of every supported database
// dialect and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Supported dialects. The values are goose dialect names.
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

var (
	// ErrNilDB is returned when Migrate is called without a connection.
	ErrNilDB = errors.New("migration error: db is nil")
	// ErrUnknownDialect is returned for dialects without embedded migrations.
	ErrUnknownDialect = errors.New("migration error: unknown dialect")
)

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// Migrate applies every pending migration of dialect to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return ErrNilDB
	}

	fsys, err := Files(dialect)
	if err != nil {
		return err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Files returns the migration files of dialect.
func Files(dialect string) (fs.FS, error) {
	var dir string
	switch dialect {
	case DialectPostgres:
		dir = "postgres"
	case DialectSQLite:
		dir = "sqlite"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}

	return fs.Sub(embedMigrations, dir)
}
