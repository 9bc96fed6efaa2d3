package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/autoescuela/clientes-api/internal/platform/postgres"
	"github.com/autoescuela/clientes-api/internal/store"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_clientes_correo"}
	assert.True(t, postgres.IsUniqueViolation(uniqueErr))
	assert.True(t, postgres.IsUniqueViolation(fmt.Errorf("insert failed: %w", uniqueErr)))

	assert.False(t, postgres.IsUniqueViolation(nil))
	assert.False(t, postgres.IsUniqueViolation(errors.New("plain error")))
	assert.False(t, postgres.IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "nil stays nil",
			err:  nil,
			want: nil,
		},
		{
			name: "no rows maps to cliente not found",
			err:  sql.ErrNoRows,
			want: store.ErrClienteNotFound,
		},
		{
			name: "unique violation maps to correo exists",
			err:  &pgconn.PgError{Code: "23505"},
			want: store.ErrCorreoExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := postgres.MapError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}

	// Unrelated errors pass through unchanged.
	plain := errors.New("connection reset")
	assert.Equal(t, plain, postgres.MapError(plain))
}
