package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/autoescuela/clientes-api/internal/domain"
	"github.com/autoescuela/clientes-api/internal/service/auth"
	"github.com/autoescuela/clientes-api/internal/store"
)

// PostgresClienteStore implements the store.ClienteStore interface
// using a PostgreSQL database as the storage backend.
type PostgresClienteStore struct {
	db     store.DBTX
	hasher auth.PasswordHasher
	logger *slog.Logger
}

// NewPostgresClienteStore creates a new PostgreSQL implementation of the
// ClienteStore interface. It accepts a database connection or transaction
// managed by the caller, and the password hasher used to derive secrets at
// the write boundary. If logger is nil, the default logger is used.
func NewPostgresClienteStore(
	db store.DBTX,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) *PostgresClienteStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if hasher == nil {
		panic("hasher cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresClienteStore{
		db:     db,
		hasher: hasher,
		logger: logger.With(slog.String("component", "cliente_store")),
	}
}

// Ensure PostgresClienteStore implements store.ClienteStore interface
var _ store.ClienteStore = (*PostgresClienteStore)(nil)

// Create implements store.ClienteStore.Create.
// It derives the password hash before the INSERT, so the plaintext never
// crosses the store boundary into SQL. A duplicate correo is detected by the
// database's unique constraint and reported as store.ErrCorreoExists; there
// is no racy existence pre-check.
func (s *PostgresClienteStore) Create(ctx context.Context, cliente *domain.Cliente) error {
	if err := cliente.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	if cliente.Password == "" {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, domain.ErrEmptyPassword)
	}

	hashed, err := s.hasher.Hash(ctx, cliente.Password)
	if err != nil {
		return store.NewStoreError("cliente", "create", "failed to derive password hash", err)
	}
	cliente.HashedPassword = hashed
	cliente.Password = "" // plaintext is no longer needed past this point

	query := `
		INSERT INTO clientes (id, nombre, correo, num_lic, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = s.db.ExecContext(ctx, query,
		cliente.ID,
		cliente.Nombre,
		cliente.Correo,
		cliente.NumLic,
		cliente.HashedPassword,
		cliente.CreatedAt,
		cliente.UpdatedAt,
	)
	if err != nil {
		if mapped := MapError(err); mapped != err {
			return mapped
		}
		s.logger.Error("failed to insert cliente",
			slog.String("error", err.Error()),
			slog.String("cliente_id", cliente.ID.String()))
		return store.NewStoreError("cliente", "create", "failed to insert row", err)
	}

	s.logger.Debug("cliente created",
		slog.String("cliente_id", cliente.ID.String()))

	return nil
}

// GetByID implements store.ClienteStore.GetByID.
func (s *PostgresClienteStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Cliente, error) {
	query := `
		SELECT id, nombre, correo, num_lic, hashed_password, created_at, updated_at
		FROM clientes
		WHERE id = $1`

	return s.scanCliente(s.db.QueryRowContext(ctx, query, id))
}

// GetByCorreo implements store.ClienteStore.GetByCorreo.
// The returned cliente includes the hashed password so callers can verify
// credentials; it must never be serialized outward.
func (s *PostgresClienteStore) GetByCorreo(ctx context.Context, correo string) (*domain.Cliente, error) {
	query := `
		SELECT id, nombre, correo, num_lic, hashed_password, created_at, updated_at
		FROM clientes
		WHERE correo = $1`

	return s.scanCliente(s.db.QueryRowContext(ctx, query, correo))
}

// List implements store.ClienteStore.List.
// The hashed_password column is excluded from the SELECT, so the secret never
// leaves the store boundary on this path.
func (s *PostgresClienteStore) List(ctx context.Context) ([]*domain.Cliente, error) {
	query := `
		SELECT id, nombre, correo, num_lic, created_at, updated_at
		FROM clientes
		ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		s.logger.Error("failed to list clientes",
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("cliente", "list", "failed to query rows", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Error("failed to close rows",
				slog.String("error", closeErr.Error()))
		}
	}()

	clientes := make([]*domain.Cliente, 0)
	for rows.Next() {
		var (
			cliente   domain.Cliente
			createdAt time.Time
			updatedAt time.Time
		)
		if err := rows.Scan(
			&cliente.ID,
			&cliente.Nombre,
			&cliente.Correo,
			&cliente.NumLic,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, store.NewStoreError("cliente", "list", "failed to scan row", err)
		}
		cliente.CreatedAt = createdAt.UTC()
		cliente.UpdatedAt = updatedAt.UTC()
		clientes = append(clientes, &cliente)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("cliente", "list", "row iteration failed", err)
	}

	return clientes, nil
}

// WithTx implements store.ClienteStore.WithTx.
func (s *PostgresClienteStore) WithTx(tx *sql.Tx) store.ClienteStore {
	return &PostgresClienteStore{
		db:     tx,
		hasher: s.hasher,
		logger: s.logger,
	}
}

// scanCliente scans a single cliente row, mapping sql.ErrNoRows to the
// store's not-found sentinel.
func (s *PostgresClienteStore) scanCliente(row *sql.Row) (*domain.Cliente, error) {
	var (
		cliente   domain.Cliente
		createdAt time.Time
		updatedAt time.Time
	)
	err := row.Scan(
		&cliente.ID,
		&cliente.Nombre,
		&cliente.Correo,
		&cliente.NumLic,
		&cliente.HashedPassword,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if mapped := MapError(err); mapped != err {
			return nil, mapped
		}
		return nil, store.NewStoreError("cliente", "get", "failed to scan row", err)
	}
	cliente.CreatedAt = createdAt.UTC()
	cliente.UpdatedAt = updatedAt.UTC()

	return &cliente, nil
}
