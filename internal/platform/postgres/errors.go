package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/avatar-api/internal/store"
)

// PostgreSQL error codes
const (
	// invalidTextRepresentationCode is raised when a value cannot be cast,
	// e.g. a malformed UUID literal.
	invalidTextRepresentationCode = "22P02"

	// serializationFailureCode is raised when a REPEATABLE READ transaction
	// cannot be serialized against concurrent writers.
	serializationFailureCode = "40001"

	// queryCanceledCode is raised when a statement is cancelled, including
	// by statement_timeout.
	queryCanceledCode = "57014"

	// connectionExceptionClass prefixes the SQLSTATE codes for lost or
	// refused connections.
	connectionExceptionClass = "08"
)

// MapError maps a database error to an appropriate store error.
// It wraps the original error to preserve context for logging.
// This function should be used in all database operations to ensure consistent error handling.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == invalidTextRepresentationCode:
			return fmt.Errorf("%w: invalid value (%s): %v", store.ErrInvalidEntity, pgErr.ColumnName, err)
		case pgErr.Code == serializationFailureCode:
			return fmt.Errorf("%w: serialization failure: %v", store.ErrTransactionFailed, err)
		}
	}

	// Return the original error for errors that don't have specific mappings
	return err
}

// IsQueryCanceled reports whether err is a PostgreSQL statement cancellation.
func IsQueryCanceled(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == queryCanceledCode
}

// IsConnectionError reports whether err carries a connection exception SQLSTATE.
func IsConnectionError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, connectionExceptionClass)
}

// IsNotFoundError checks if the given error represents a "not found" scenario.
// This handles both sql.ErrNoRows and errors that are or wrap store.ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, store.ErrNotFound)
}
