package service

import (
	"context"
	"database/sql"

	"github.com/autoescuela/clientes-api/internal/store"
)

// SetRunInTx overrides the transaction seam so external-package tests can
// run service methods without a real database.
func (s *ClienteServiceImpl) SetRunInTx(fn func(ctx context.Context, db *sql.DB, fn store.TxFn) error) {
	s.runInTx = fn
}
