// Package middleware provides HTTP middleware for the API layer.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/autoescuela/clientes-api/internal/api/shared"
	"github.com/autoescuela/clientes-api/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that attaches a trace ID and a
// trace-annotated logger to every request context, so logs and error
// responses can be correlated.
func NewTraceMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())

			requestLogger := log.With(
				slog.String("trace_id", shared.GetTraceID(ctx)),
			)
			ctx = logger.WithLogger(ctx, requestLogger)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
