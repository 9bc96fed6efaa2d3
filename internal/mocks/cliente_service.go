package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/autoescuela/clientes-api/internal/domain"
	"github.com/autoescuela/clientes-api/internal/service"
	"github.com/autoescuela/clientes-api/internal/store"
)

// MockClienteService implements service.ClienteService for handler tests.
// The default implementation keeps clientes in memory and mimics the real
// service's behavior: domain validation, correo uniqueness, merged
// invalid-credentials failures, and secret-free projections.
type MockClienteService struct {
	// Optional overrides for individual methods
	RegisterFn func(ctx context.Context, input service.RegisterInput) (*domain.Cliente, error)
	LoginFn    func(ctx context.Context, correo, password string) (string, *domain.Cliente, error)
	ListFn     func(ctx context.Context) ([]*domain.Cliente, error)
	GetFn      func(ctx context.Context, id uuid.UUID) (*domain.Cliente, error)

	// Token is returned by the default Login implementation.
	Token string

	mu       sync.Mutex
	clientes map[string]*domain.Cliente
}

// NewMockClienteService creates an empty in-memory cliente service issuing
// the given token on login.
func NewMockClienteService(token string) *MockClienteService {
	return &MockClienteService{
		Token:    token,
		clientes: make(map[string]*domain.Cliente),
	}
}

// Ensure MockClienteService implements service.ClienteService interface
var _ service.ClienteService = (*MockClienteService)(nil)

// Register implements service.ClienteService.Register.
func (m *MockClienteService) Register(
	ctx context.Context,
	input service.RegisterInput,
) (*domain.Cliente, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, input)
	}

	cliente, err := domain.NewCliente(input.Nombre, input.Correo, input.NumLic, input.Password)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.clientes[cliente.Correo]; exists {
		return nil, store.ErrCorreoExists
	}

	stored := *cliente
	stored.HashedPassword = "hashed:" + stored.Password
	stored.Password = ""
	m.clientes[stored.Correo] = &stored

	projected := stored
	projected.HashedPassword = ""
	return &projected, nil
}

// Login implements service.ClienteService.Login.
func (m *MockClienteService) Login(
	ctx context.Context,
	correo, password string,
) (string, *domain.Cliente, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, correo, password)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cliente, ok := m.clientes[correo]
	if !ok || cliente.HashedPassword != "hashed:"+password {
		return "", nil, service.ErrInvalidCredentials
	}

	projected := *cliente
	projected.HashedPassword = ""
	return m.Token, &projected, nil
}

// List implements service.ClienteService.List.
func (m *MockClienteService) List(ctx context.Context) ([]*domain.Cliente, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	clientes := make([]*domain.Cliente, 0, len(m.clientes))
	for _, cliente := range m.clientes {
		projected := *cliente
		projected.HashedPassword = ""
		clientes = append(clientes, &projected)
	}
	return clientes, nil
}

// Get implements service.ClienteService.Get.
func (m *MockClienteService) Get(ctx context.Context, id uuid.UUID) (*domain.Cliente, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, cliente := range m.clientes {
		if cliente.ID == id {
			projected := *cliente
			projected.HashedPassword = ""
			return &projected, nil
		}
	}
	return nil, store.ErrClienteNotFound
}
