package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoescuela/clientes-api/internal/api/middleware"
	"github.com/autoescuela/clientes-api/internal/api/shared"
	"github.com/autoescuela/clientes-api/internal/mocks"
	"github.com/autoescuela/clientes-api/internal/service/auth"
)

// nextHandler records whether the protected handler was reached and with
// which cliente ID.
type nextHandler struct {
	called    bool
	clienteID uuid.UUID
	idFound   bool
}

func (h *nextHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.clienteID, h.idFound = middleware.GetClienteID(r)
	w.WriteHeader(http.StatusOK)
}

func doAuthenticatedRequest(t *testing.T, jwtService *mocks.MockJWTService, authHeader string) (*httptest.ResponseRecorder, *nextHandler) {
	t.Helper()

	next := &nextHandler{}
	handler := middleware.NewAuthMiddleware(jwtService).Authenticate(next)

	req := httptest.NewRequest(http.MethodGet, "/api/clientes/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder, next
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	t.Run("valid token passes cliente ID to handler", func(t *testing.T) {
		clienteID := uuid.New()
		jwtService := &mocks.MockJWTService{
			Claims: &auth.Claims{ClienteID: clienteID, Correo: "a@x.com"},
		}

		recorder, next := doAuthenticatedRequest(t, jwtService, "Bearer sometoken")

		assert.Equal(t, http.StatusOK, recorder.Code)
		require.True(t, next.called)
		assert.True(t, next.idFound)
		assert.Equal(t, clienteID, next.clienteID)
	})

	t.Run("missing header", func(t *testing.T) {
		jwtService := &mocks.MockJWTService{}

		recorder, next := doAuthenticatedRequest(t, jwtService, "")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, next.called)

		var resp shared.ErrorResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "Se requiere el encabezado Authorization", resp.Error)
	})

	t.Run("malformed header", func(t *testing.T) {
		jwtService := &mocks.MockJWTService{}

		for _, header := range []string{
			"sometoken",
			"Basic sometoken",
			"Bearer",
			"Bearer token extra",
		} {
			recorder, next := doAuthenticatedRequest(t, jwtService, header)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code, "header %q", header)
			assert.False(t, next.called, "header %q", header)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrExpiredToken}

		recorder, next := doAuthenticatedRequest(t, jwtService, "Bearer expiredtoken")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, next.called)

		var resp shared.ErrorResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "Token expirado", resp.Error)
	})

	t.Run("invalid token", func(t *testing.T) {
		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken}

		recorder, next := doAuthenticatedRequest(t, jwtService, "Bearer garbage")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, next.called)

		var resp shared.ErrorResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "Token inválido", resp.Error)
	})

	t.Run("unexpected validation failure", func(t *testing.T) {
		jwtService := &mocks.MockJWTService{ValidateErr: errors.New("keystore unavailable")}

		recorder, next := doAuthenticatedRequest(t, jwtService, "Bearer sometoken")

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.False(t, next.called)
		assert.NotContains(t, recorder.Body.String(), "keystore")
	})
}

func TestGetClienteID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := middleware.GetClienteID(req)
	assert.False(t, ok)
}
