// Package postgres provides PostgreSQL implementations of the store
// interfaces.
package postgres

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/autoescuela/clientes-api/internal/store"
)

// PostgreSQL error codes
const uniqueViolationCode = "23505" // unique_violation

// IsUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation, such as a duplicate correo address.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// MapError translates low-level database errors into store sentinel errors
// so that callers never depend on driver-specific error types.
func MapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return store.ErrClienteNotFound
	case IsUniqueViolation(err):
		return store.ErrCorreoExists
	default:
		return err
	}
}
