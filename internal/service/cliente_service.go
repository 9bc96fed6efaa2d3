package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/autoescuela/clientes-api/internal/domain"
	"github.com/autoescuela/clientes-api/internal/service/auth"
	"github.com/autoescuela/clientes-api/internal/store"
)

// ClienteService provides the credential lifecycle operations: registration,
// login with token issuance, and listing.
type ClienteService interface {
	// Register validates the registration input, persists a new cliente with
	// a derived secret, and returns the created entity.
	// Returns a domain validation error (wrapping domain.ErrValidation or a
	// field sentinel) if any field is invalid, or store.ErrCorreoExists if
	// the correo is already registered.
	Register(ctx context.Context, input RegisterInput) (*domain.Cliente, error)

	// Login verifies the supplied credentials and, on success, issues a
	// signed access token bound to the cliente's identity.
	// Returns ErrInvalidCredentials for an unknown correo or a wrong
	// password, without distinguishing the two.
	Login(ctx context.Context, correo, password string) (string, *domain.Cliente, error)

	// List returns all clientes, projected without their secrets.
	List(ctx context.Context) ([]*domain.Cliente, error)

	// Get retrieves a single cliente by ID, without their secret.
	// Returns store.ErrClienteNotFound if no cliente matches.
	Get(ctx context.Context, id uuid.UUID) (*domain.Cliente, error)
}

// RegisterInput carries the plaintext registration fields.
type RegisterInput struct {
	Nombre   string
	Correo   string
	NumLic   string
	Password string
}

// ClienteServiceImpl implements the ClienteService interface.
type ClienteServiceImpl struct {
	clienteStore     store.ClienteStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	db               *sql.DB
	logger           *slog.Logger

	// runInTx is a seam for testing store.RunInTransaction.
	runInTx func(ctx context.Context, db *sql.DB, fn store.TxFn) error
}

// NewClienteService creates a new ClienteService.
func NewClienteService(
	clienteStore store.ClienteStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	db *sql.DB,
	logger *slog.Logger,
) *ClienteServiceImpl {
	return &ClienteServiceImpl{
		clienteStore:     clienteStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		db:               db,
		logger:           logger.With("component", "cliente_service"),
		runInTx:          store.RunInTransaction,
	}
}

// Ensure ClienteServiceImpl implements ClienteService interface
var _ ClienteService = (*ClienteServiceImpl)(nil)

// Register creates a new cliente. Secret derivation happens inside the store's
// write path; this layer never sees the derived hash. Duplicate correos are
// detected by the database unique constraint, so concurrent registrations with
// the same correo cannot both succeed.
func (s *ClienteServiceImpl) Register(
	ctx context.Context,
	input RegisterInput,
) (*domain.Cliente, error) {
	cliente, err := domain.NewCliente(input.Nombre, input.Correo, input.NumLic, input.Password)
	if err != nil {
		s.logger.Debug("registration rejected by validation",
			"error", err)
		return nil, err
	}

	err = s.runInTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.clienteStore.WithTx(tx).Create(ctx, cliente)
	})
	if err != nil {
		if errors.Is(err, store.ErrCorreoExists) {
			s.logger.Debug("attempted to register duplicate correo")
			return nil, err
		}
		s.logger.Error("failed to save cliente",
			"error", err,
			"cliente_id", cliente.ID)
		return nil, fmt.Errorf("failed to register cliente: %w", err)
	}

	// Callers receive the projection fields only; the derived secret stays
	// behind the store boundary.
	cliente.HashedPassword = ""

	s.logger.Info("cliente registered",
		"cliente_id", cliente.ID)

	return cliente, nil
}

// Login verifies credentials and issues an access token. An unknown correo
// and a failed password comparison collapse into the same
// ErrInvalidCredentials, so responses for the two cases are
// indistinguishable.
func (s *ClienteServiceImpl) Login(
	ctx context.Context,
	correo, password string,
) (string, *domain.Cliente, error) {
	cliente, err := s.clienteStore.GetByCorreo(ctx, correo)
	if err != nil {
		if errors.Is(err, store.ErrClienteNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to look up cliente for login",
			"error", err)
		return "", nil, fmt.Errorf("failed to authenticate cliente: %w", err)
	}

	if err := s.passwordVerifier.Compare(cliente.HashedPassword, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, cliente.ID, cliente.Correo)
	if err != nil {
		s.logger.Error("failed to generate access token",
			"error", err,
			"cliente_id", cliente.ID)
		return "", nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	// The secret has served its purpose; nothing past this point may read it.
	cliente.HashedPassword = ""

	s.logger.Info("cliente logged in",
		"cliente_id", cliente.ID)

	return token, cliente, nil
}

// List returns all clientes. The store projection already excludes the
// hashed password column.
func (s *ClienteServiceImpl) List(ctx context.Context) ([]*domain.Cliente, error) {
	clientes, err := s.clienteStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list clientes",
			"error", err)
		return nil, fmt.Errorf("failed to list clientes: %w", err)
	}

	return clientes, nil
}

// Get retrieves a cliente by ID for the authenticated profile endpoint.
func (s *ClienteServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Cliente, error) {
	cliente, err := s.clienteStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrClienteNotFound) {
			return nil, err
		}
		s.logger.Error("failed to retrieve cliente",
			"error", err,
			"cliente_id", id)
		return nil, fmt.Errorf("failed to retrieve cliente: %w", err)
	}

	cliente.HashedPassword = ""

	return cliente, nil
}
