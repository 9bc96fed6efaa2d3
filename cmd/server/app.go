package main

import (
	"database/sql"
	"log/slog"

	"github.com/autoescuela/clientes-api/internal/api"
	apiMiddleware "github.com/autoescuela/clientes-api/internal/api/middleware"
	"github.com/autoescuela/clientes-api/internal/config"
	"github.com/autoescuela/clientes-api/internal/platform/postgres"
	"github.com/autoescuela/clientes-api/internal/service"
	"github.com/autoescuela/clientes-api/internal/service/auth"
)

// application holds the composed dependency graph of the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	jwtService     auth.JWTService
	clienteService service.ClienteService

	clienteHandler *api.ClienteHandler
	authMiddleware *apiMiddleware.AuthMiddleware
}

// newApplication wires all application components from configuration and an
// open database connection. A missing or short JWT secret fails here, at
// startup, rather than falling back to any default key.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, err
	}

	hasher := auth.NewBcryptHasher(cfg.Auth.BCryptCost)
	verifier := auth.NewBcryptVerifier()

	clienteStore := postgres.NewPostgresClienteStore(db, hasher, logger)
	clienteService := service.NewClienteService(clienteStore, jwtService, verifier, db, logger)

	return &application{
		config:         cfg,
		logger:         logger,
		db:             db,
		jwtService:     jwtService,
		clienteService: clienteService,
		clienteHandler: api.NewClienteHandler(clienteService, logger),
		authMiddleware: apiMiddleware.NewAuthMiddleware(jwtService),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
