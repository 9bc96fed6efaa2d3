package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoescuela/clientes-api/internal/api"
	"github.com/autoescuela/clientes-api/internal/api/shared"
	"github.com/autoescuela/clientes-api/internal/domain"
	"github.com/autoescuela/clientes-api/internal/mocks"
	"github.com/autoescuela/clientes-api/internal/service"
)

func postJSON(t *testing.T, handler http.HandlerFunc, target string, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payloadBytes, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	handler(recorder, req)
	return recorder
}

func TestRegisterHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid registration",
			payload: map[string]interface{}{
				"nombre":   "Ana",
				"correo":   "a@x.com",
				"numLic":   "L1",
				"password": "pw1",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "missing nombre",
			payload: map[string]interface{}{
				"correo":   "a@x.com",
				"numLic":   "L1",
				"password": "pw1",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing correo",
			payload: map[string]interface{}{
				"nombre":   "Ana",
				"numLic":   "L1",
				"password": "pw1",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing numLic",
			payload: map[string]interface{}{
				"nombre":   "Ana",
				"correo":   "a@x.com",
				"password": "pw1",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"nombre": "Ana",
				"correo": "a@x.com",
				"numLic": "L1",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid correo",
			payload: map[string]interface{}{
				"nombre":   "Ana",
				"correo":   "not-an-email",
				"numLic":   "L1",
				"password": "pw1",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := api.NewClienteHandler(mocks.NewMockClienteService("test-token"), slog.Default())

			recorder := postJSON(t, handler.Register, "/api/clientes", tt.payload)
			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp api.RegisterResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, "Cliente registrado exitosamente", resp.Mensaje)
				assert.NotEqual(t, uuid.Nil, resp.Cliente.ID)
				assert.Equal(t, "Ana", resp.Cliente.Nombre)
				assert.Equal(t, "a@x.com", resp.Cliente.Correo)
				assert.Equal(t, "L1", resp.Cliente.NumLic)
			}
		})
	}

	t.Run("duplicate correo", func(t *testing.T) {
		clienteService := mocks.NewMockClienteService("test-token")
		handler := api.NewClienteHandler(clienteService, slog.Default())

		payload := map[string]interface{}{
			"nombre": "Ana", "correo": "a@x.com", "numLic": "L1", "password": "pw1",
		}
		recorder := postJSON(t, handler.Register, "/api/clientes", payload)
		require.Equal(t, http.StatusCreated, recorder.Code)

		recorder = postJSON(t, handler.Register, "/api/clientes", payload)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var resp shared.ErrorResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, api.MsgCorreoDuplicado, resp.Error)
	})

	t.Run("malformed body", func(t *testing.T) {
		handler := api.NewClienteHandler(mocks.NewMockClienteService("test-token"), slog.Default())

		req := httptest.NewRequest(http.MethodPost, "/api/clientes", bytes.NewBufferString("{not json"))
		recorder := httptest.NewRecorder()
		handler.Register(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("service failure", func(t *testing.T) {
		clienteService := mocks.NewMockClienteService("test-token")
		clienteService.RegisterFn = func(ctx context.Context, input service.RegisterInput) (*domain.Cliente, error) {
			return nil, errors.New("connection refused")
		}
		handler := api.NewClienteHandler(clienteService, slog.Default())

		recorder := postJSON(t, handler.Register, "/api/clientes", map[string]interface{}{
			"nombre": "Ana", "correo": "a@x.com", "numLic": "L1", "password": "pw1",
		})
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)

		// Internal detail must not leak.
		assert.NotContains(t, recorder.Body.String(), "connection refused")
	})
}

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	newHandlerWithAna := func(t *testing.T) *api.ClienteHandler {
		t.Helper()
		clienteService := mocks.NewMockClienteService("test-token")
		handler := api.NewClienteHandler(clienteService, slog.Default())
		recorder := postJSON(t, handler.Register, "/api/clientes", map[string]interface{}{
			"nombre": "Ana", "correo": "a@x.com", "numLic": "L1", "password": "pw1",
		})
		require.Equal(t, http.StatusCreated, recorder.Code)
		return handler
	}

	t.Run("valid login", func(t *testing.T) {
		handler := newHandlerWithAna(t)

		recorder := postJSON(t, handler.Login, "/api/clientes/login", map[string]interface{}{
			"correo": "a@x.com", "password": "pw1",
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp api.LoginResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "Login exitoso", resp.Mensaje)
		assert.Equal(t, "test-token", resp.Token)
		assert.Equal(t, "a@x.com", resp.Cliente.Correo)
	})

	t.Run("missing fields", func(t *testing.T) {
		handler := newHandlerWithAna(t)

		for _, payload := range []map[string]interface{}{
			{"password": "pw1"},
			{"correo": "a@x.com"},
			{},
		} {
			recorder := postJSON(t, handler.Login, "/api/clientes/login", payload)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		}
	})

	t.Run("wrong password and unknown correo are indistinguishable", func(t *testing.T) {
		handler := newHandlerWithAna(t)

		wrongPassword := postJSON(t, handler.Login, "/api/clientes/login", map[string]interface{}{
			"correo": "a@x.com", "password": "wrong",
		})
		unknownCorreo := postJSON(t, handler.Login, "/api/clientes/login", map[string]interface{}{
			"correo": "nadie@x.com", "password": "pw1",
		})

		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownCorreo.Code)

		var wrongResp, unknownResp shared.ErrorResponse
		require.NoError(t, json.NewDecoder(wrongPassword.Body).Decode(&wrongResp))
		require.NoError(t, json.NewDecoder(unknownCorreo.Body).Decode(&unknownResp))
		assert.Equal(t, api.MsgCredencialesInvalidas, wrongResp.Error)
		assert.Equal(t, wrongResp.Error, unknownResp.Error)
	})

	t.Run("service failure", func(t *testing.T) {
		clienteService := mocks.NewMockClienteService("test-token")
		clienteService.LoginFn = func(ctx context.Context, correo, password string) (string, *domain.Cliente, error) {
			return "", nil, errors.New("connection refused")
		}
		handler := api.NewClienteHandler(clienteService, slog.Default())

		recorder := postJSON(t, handler.Login, "/api/clientes/login", map[string]interface{}{
			"correo": "a@x.com", "password": "pw1",
		})
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestListHandler(t *testing.T) {
	t.Parallel()

	t.Run("empty listing", func(t *testing.T) {
		handler := api.NewClienteHandler(mocks.NewMockClienteService("test-token"), slog.Default())

		req := httptest.NewRequest(http.MethodGet, "/api/clientes", nil)
		recorder := httptest.NewRecorder()
		handler.List(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp api.ListResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "Clientes encontrados", resp.Mensaje)
		assert.Empty(t, resp.Clientes)
	})

	t.Run("listing never exposes secrets", func(t *testing.T) {
		clienteService := mocks.NewMockClienteService("test-token")
		handler := api.NewClienteHandler(clienteService, slog.Default())

		for _, correo := range []string{"a@x.com", "b@x.com", "c@x.com"} {
			recorder := postJSON(t, handler.Register, "/api/clientes", map[string]interface{}{
				"nombre": "Cliente", "correo": correo, "numLic": "L1", "password": "pw-" + correo,
			})
			require.Equal(t, http.StatusCreated, recorder.Code)
		}

		req := httptest.NewRequest(http.MethodGet, "/api/clientes", nil)
		recorder := httptest.NewRecorder()
		handler.List(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		body := recorder.Body.String()
		assert.NotContains(t, body, "password")
		assert.NotContains(t, body, "hashed:")

		var resp api.ListResponse
		require.NoError(t, json.NewDecoder(bytes.NewBufferString(body)).Decode(&resp))
		require.Len(t, resp.Clientes, 3)
		for _, item := range resp.Clientes {
			assert.False(t, item.CreatedAt.IsZero())
			assert.False(t, item.UpdatedAt.IsZero())
		}
	})

	t.Run("store failure", func(t *testing.T) {
		clienteService := mocks.NewMockClienteService("test-token")
		clienteService.ListFn = func(ctx context.Context) ([]*domain.Cliente, error) {
			return nil, errors.New("connection refused")
		}
		handler := api.NewClienteHandler(clienteService, slog.Default())

		req := httptest.NewRequest(http.MethodGet, "/api/clientes", nil)
		recorder := httptest.NewRecorder()
		handler.List(recorder, req)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "connection refused")
	})
}

func TestProfileHandler(t *testing.T) {
	t.Parallel()

	t.Run("authenticated cliente", func(t *testing.T) {
		clienteService := mocks.NewMockClienteService("test-token")
		handler := api.NewClienteHandler(clienteService, slog.Default())

		recorder := postJSON(t, handler.Register, "/api/clientes", map[string]interface{}{
			"nombre": "Ana", "correo": "a@x.com", "numLic": "L1", "password": "pw1",
		})
		require.Equal(t, http.StatusCreated, recorder.Code)

		var registered api.RegisterResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&registered))

		req := httptest.NewRequest(http.MethodGet, "/api/clientes/me", nil)
		ctx := context.WithValue(req.Context(), shared.ClienteIDContextKey, registered.Cliente.ID)
		recorder = httptest.NewRecorder()
		handler.Profile(recorder, req.WithContext(ctx))

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp api.ProfileResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, registered.Cliente.ID, resp.Cliente.ID)
		assert.Equal(t, "a@x.com", resp.Cliente.Correo)
	})

	t.Run("missing identity", func(t *testing.T) {
		handler := api.NewClienteHandler(mocks.NewMockClienteService("test-token"), slog.Default())

		req := httptest.NewRequest(http.MethodGet, "/api/clientes/me", nil)
		recorder := httptest.NewRecorder()
		handler.Profile(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("unknown cliente", func(t *testing.T) {
		handler := api.NewClienteHandler(mocks.NewMockClienteService("test-token"), slog.Default())

		req := httptest.NewRequest(http.MethodGet, "/api/clientes/me", nil)
		ctx := context.WithValue(req.Context(), shared.ClienteIDContextKey, uuid.New())
		recorder := httptest.NewRecorder()
		handler.Profile(recorder, req.WithContext(ctx))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
