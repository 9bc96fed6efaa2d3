// Package main implements the entry point for the clientes API server,
// which handles cliente registration, login with JWT issuance, and the
// administrative listing endpoint.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/autoescuela/clientes-api/internal/config"
	"github.com/autoescuela/clientes-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// run loads configuration, wires the application, and serves HTTP until
// shutdown. Returned errors are fatal startup or shutdown failures.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return err
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	ctx := context.Background()

	db, err := setupAppDatabase(ctx, cfg, appLogger)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return err
	}

	router := app.setupRouter()
	return app.startHTTPServer(ctx, router)
}
