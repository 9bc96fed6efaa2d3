package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apiMiddleware "github.com/autoescuela/clientes-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	r.Route("/api/clientes", func(r chi.Router) {
		// Public endpoints
		r.Post("/", app.clienteHandler.Register)
		r.Post("/login", app.clienteHandler.Login)
		r.Get("/", app.clienteHandler.List)

		// Protected endpoints
		r.Group(func(r chi.Router) {
			r.Use(app.authMiddleware.Authenticate)
			r.Get("/me", app.clienteHandler.Profile)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
