package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/autoescuela/clientes-api/internal/api/shared"
	"github.com/autoescuela/clientes-api/internal/redact"
	"github.com/autoescuela/clientes-api/internal/service/auth"
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates JWT tokens from the Authorization header and
// adds the cliente ID to the request context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Se requiere el encabezado Authorization")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Formato de autorización inválido")
			return
		}

		token := parts[1]

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch err {
			case auth.ErrExpiredToken:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expirado")
			case auth.ErrInvalidToken, auth.ErrTokenNotYetValid:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token inválido")
			default:
				slog.Error("failed to validate token", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Error de autenticación")
			}
			return
		}

		ctx := context.WithValue(r.Context(), shared.ClienteIDContextKey, claims.ClienteID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClienteID extracts the authenticated cliente ID from the request
// context. Returns the ID and a boolean indicating if it was found.
func GetClienteID(r *http.Request) (uuid.UUID, bool) {
	clienteID, ok := r.Context().Value(shared.ClienteIDContextKey).(uuid.UUID)
	return clienteID, ok
}
