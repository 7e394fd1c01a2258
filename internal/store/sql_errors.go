// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by
// [ErrorClassifier.Classify]. It tells repositories which domain error a
// failed statement maps to.
type ErrorClassification int

const (
	// Unclassified is any error without a domain meaning.
	Unclassified ErrorClassification = iota

	// UniqueViolation means an INSERT or UPDATE hit a UNIQUE constraint.
	UniqueViolation

	// ForeignKeyViolation means a referenced row does not exist.
	ForeignKeyViolation

	// Retryable means the operation may succeed if attempted again (e.g.
	// after a transient connection loss, a deadlock or a busy database).
	Retryable
)

// ErrorClassifier maps driver errors to an [ErrorClassification].
type ErrorClassifier interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassifier] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassifier]. Errors that are not a
// *pgconn.PgError are [Unclassified].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}
	return Unclassified
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation

	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation

	// Class 08 — connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		// Class 40 — transaction rollback
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		// Class 57 — operator intervention
		pgerrcode.CannotConnectNow:
		return Retryable
	}

	return Unclassified
}

// SQLiteErrorClassifier implements [ErrorClassifier] for mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassifier].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return Unclassified
	}

	switch {
	case liteErr.ExtendedCode == sqlite3.ErrConstraintUnique,
		liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case liteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	case liteErr.Code == sqlite3.ErrBusy, liteErr.Code == sqlite3.ErrLocked:
		return Retryable
	}

	return Unclassified
}
