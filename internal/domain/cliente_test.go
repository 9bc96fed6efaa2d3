package domain_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoescuela/clientes-api/internal/domain"
)

func TestNewCliente(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		nombre   string
		correo   string
		numLic   string
		password string
		wantErr  error
	}{
		{
			name:     "valid cliente",
			nombre:   "Ana",
			correo:   "a@x.com",
			numLic:   "L1",
			password: "pw1",
			wantErr:  nil,
		},
		{
			name:     "empty nombre",
			nombre:   "",
			correo:   "a@x.com",
			numLic:   "L1",
			password: "pw1",
			wantErr:  domain.ErrEmptyNombre,
		},
		{
			name:     "whitespace nombre",
			nombre:   "   ",
			correo:   "a@x.com",
			numLic:   "L1",
			password: "pw1",
			wantErr:  domain.ErrEmptyNombre,
		},
		{
			name:     "empty correo",
			nombre:   "Ana",
			correo:   "",
			numLic:   "L1",
			password: "pw1",
			wantErr:  domain.ErrEmptyCorreo,
		},
		{
			name:     "malformed correo",
			nombre:   "Ana",
			correo:   "not-an-email",
			numLic:   "L1",
			password: "pw1",
			wantErr:  domain.ErrInvalidCorreo,
		},
		{
			name:     "correo with dotless domain",
			nombre:   "Ana",
			correo:   "a@localhost",
			numLic:   "L1",
			password: "pw1",
			wantErr:  domain.ErrInvalidCorreo,
		},
		{
			name:     "empty numLic",
			nombre:   "Ana",
			correo:   "a@x.com",
			numLic:   "",
			password: "pw1",
			wantErr:  domain.ErrEmptyNumLic,
		},
		{
			name:     "empty password",
			nombre:   "Ana",
			correo:   "a@x.com",
			numLic:   "L1",
			password: "",
			wantErr:  domain.ErrEmptyPassword,
		},
		{
			name:     "password over bcrypt limit",
			nombre:   "Ana",
			correo:   "a@x.com",
			numLic:   "L1",
			password: strings.Repeat("x", 73),
			wantErr:  domain.ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cliente, err := domain.NewCliente(tt.nombre, tt.correo, tt.numLic, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, cliente)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cliente)
			assert.NotEmpty(t, cliente.ID)
			assert.Equal(t, tt.nombre, cliente.Nombre)
			assert.Equal(t, tt.correo, cliente.Correo)
			assert.Equal(t, tt.numLic, cliente.NumLic)
			assert.False(t, cliente.CreatedAt.IsZero())
			assert.False(t, cliente.UpdatedAt.IsZero())
		})
	}
}

func TestValidateLoadedCliente(t *testing.T) {
	t.Parallel()

	// A cliente loaded from the store has no plaintext password, only the
	// derived secret.
	cliente, err := domain.NewCliente("Ana", "a@x.com", "L1", "pw1")
	require.NoError(t, err)

	cliente.Password = ""
	cliente.HashedPassword = "$2a$10$abcdefghijklmnopqrstuvwxyz012345678901234567890123456"
	assert.NoError(t, cliente.Validate())

	cliente.HashedPassword = ""
	assert.ErrorIs(t, cliente.Validate(), domain.ErrEmptyPassword)
}

func TestClienteJSONNeverContainsSecrets(t *testing.T) {
	t.Parallel()

	cliente, err := domain.NewCliente("Ana", "a@x.com", "L1", "pw1")
	require.NoError(t, err)
	cliente.HashedPassword = "$2a$10$somethinghashed"

	data, err := json.Marshal(cliente)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "pw1")
	assert.NotContains(t, string(data), "somethinghashed")
	assert.NotContains(t, string(data), "password")
}
