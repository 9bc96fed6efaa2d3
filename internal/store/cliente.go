package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/autoescuela/clientes-api/internal/domain"
)

// ClienteStore defines the interface for cliente data persistence.
type ClienteStore interface {
	// Create saves a new cliente to the store.
	// It derives the password hash internally before the write, so plaintext
	// never reaches the database under any code path.
	// Returns ErrCorreoExists if the correo is already taken.
	// Returns validation errors from the domain Cliente if data is invalid.
	Create(ctx context.Context, cliente *domain.Cliente) error

	// GetByID retrieves a cliente by their unique ID.
	// Returns ErrClienteNotFound if the cliente does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Cliente, error)

	// GetByCorreo retrieves a cliente by their correo address.
	// Returns ErrClienteNotFound if the cliente does not exist.
	// The returned cliente includes the hashed password for credential
	// verification; callers must never serialize it outward.
	GetByCorreo(ctx context.Context, correo string) (*domain.Cliente, error)

	// List retrieves all clientes, projected without the hashed password.
	// The secret column is excluded at the SELECT level, not at
	// serialization time.
	List(ctx context.Context) ([]*domain.Cliente, error)

	// WithTx returns a new ClienteStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) ClienteStore
}
