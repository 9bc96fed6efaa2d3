package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/autoescuela/clientes-api/internal/domain"
)

// Common request/response structures. JSON field names follow the public
// transport contract (nombre, correo, numLic, mensaje, ...).

// RegisterClienteRequest defines the payload for the registration endpoint.
type RegisterClienteRequest struct {
	Nombre   string `json:"nombre"   validate:"required"`
	Correo   string `json:"correo"   validate:"required,email"`
	NumLic   string `json:"numLic"   validate:"required"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Correo   string `json:"correo"   validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ClienteResponse is the projection of a cliente returned by the
// registration, login, and profile endpoints. It never carries secret
// material.
type ClienteResponse struct {
	ID     uuid.UUID `json:"id"`
	Nombre string    `json:"nombre"`
	Correo string    `json:"correo"`
	NumLic string    `json:"numLic"`
}

// ClienteListItem is the projection returned by the listing endpoint,
// including the store-managed timestamps.
type ClienteListItem struct {
	ID        uuid.UUID `json:"id"`
	Nombre    string    `json:"nombre"`
	Correo    string    `json:"correo"`
	NumLic    string    `json:"numLic"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegisterResponse defines the successful response for the registration
// endpoint.
type RegisterResponse struct {
	Mensaje string          `json:"mensaje"`
	Cliente ClienteResponse `json:"cliente"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	Mensaje string          `json:"mensaje"`
	Token   string          `json:"token"`
	Cliente ClienteResponse `json:"cliente"`
}

// ListResponse defines the successful response for the listing endpoint.
type ListResponse struct {
	Mensaje  string            `json:"mensaje"`
	Clientes []ClienteListItem `json:"clientes"`
}

// ProfileResponse defines the successful response for the profile endpoint.
type ProfileResponse struct {
	Mensaje string          `json:"mensaje"`
	Cliente ClienteResponse `json:"cliente"`
}

// toClienteResponse projects a domain cliente into its public
// representation.
func toClienteResponse(cliente *domain.Cliente) ClienteResponse {
	return ClienteResponse{
		ID:     cliente.ID,
		Nombre: cliente.Nombre,
		Correo: cliente.Correo,
		NumLic: cliente.NumLic,
	}
}

// toClienteListItems projects domain clientes into their listing
// representation.
func toClienteListItems(clientes []*domain.Cliente) []ClienteListItem {
	items := make([]ClienteListItem, 0, len(clientes))
	for _, cliente := range clientes {
		items = append(items, ClienteListItem{
			ID:        cliente.ID,
			Nombre:    cliente.Nombre,
			Correo:    cliente.Correo,
			NumLic:    cliente.NumLic,
			CreatedAt: cliente.CreatedAt,
			UpdatedAt: cliente.UpdatedAt,
		})
	}
	return items
}
