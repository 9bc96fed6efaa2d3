// Package mocks provides hand-written test doubles for the application's
// interfaces.
package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"

	"github.com/autoescuela/clientes-api/internal/domain"
	"github.com/autoescuela/clientes-api/internal/store"
)

// MockClienteStore implements store.ClienteStore for testing using an
// in-memory map keyed by correo.
type MockClienteStore struct {
	mu       sync.Mutex
	clientes map[string]*domain.Cliente

	// Optional overrides for individual methods
	CreateFn      func(ctx context.Context, cliente *domain.Cliente) error
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.Cliente, error)
	GetByCorreoFn func(ctx context.Context, correo string) (*domain.Cliente, error)
	ListFn        func(ctx context.Context) ([]*domain.Cliente, error)
}

// NewMockClienteStore creates an empty in-memory cliente store.
func NewMockClienteStore() *MockClienteStore {
	return &MockClienteStore{
		clientes: make(map[string]*domain.Cliente),
	}
}

// Ensure MockClienteStore implements store.ClienteStore interface
var _ store.ClienteStore = (*MockClienteStore)(nil)

// Seed inserts a cliente directly, bypassing hashing. Tests provide the
// hashed password themselves.
func (m *MockClienteStore) Seed(cliente *domain.Cliente) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clientes[cliente.Correo] = cliente
}

// Create implements store.ClienteStore.Create. Like the real store, it
// simulates hashing at the write boundary by moving the plaintext into the
// hashed field with a marker prefix, and enforces correo uniqueness.
func (m *MockClienteStore) Create(ctx context.Context, cliente *domain.Cliente) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, cliente)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.clientes[cliente.Correo]; exists {
		return store.ErrCorreoExists
	}

	stored := *cliente
	stored.HashedPassword = "hashed:" + stored.Password
	stored.Password = ""
	m.clientes[stored.Correo] = &stored

	cliente.HashedPassword = stored.HashedPassword
	cliente.Password = ""
	return nil
}

// GetByID implements store.ClienteStore.GetByID.
func (m *MockClienteStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Cliente, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, cliente := range m.clientes {
		if cliente.ID == id {
			copied := *cliente
			return &copied, nil
		}
	}
	return nil, store.ErrClienteNotFound
}

// GetByCorreo implements store.ClienteStore.GetByCorreo.
func (m *MockClienteStore) GetByCorreo(ctx context.Context, correo string) (*domain.Cliente, error) {
	if m.GetByCorreoFn != nil {
		return m.GetByCorreoFn(ctx, correo)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cliente, ok := m.clientes[correo]
	if !ok {
		return nil, store.ErrClienteNotFound
	}
	copied := *cliente
	return &copied, nil
}

// List implements store.ClienteStore.List. The returned clientes carry no
// hashed password, mirroring the real store's projection.
func (m *MockClienteStore) List(ctx context.Context) ([]*domain.Cliente, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	clientes := make([]*domain.Cliente, 0, len(m.clientes))
	for _, cliente := range m.clientes {
		copied := *cliente
		copied.HashedPassword = ""
		clientes = append(clientes, &copied)
	}
	return clientes, nil
}

// WithTx implements store.ClienteStore.WithTx. The mock has no transaction
// semantics; it returns itself.
func (m *MockClienteStore) WithTx(tx *sql.Tx) store.ClienteStore {
	return m
}
