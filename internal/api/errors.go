package api

import (
	"errors"
	"net/http"

	"github.com/autoescuela/clientes-api/internal/domain"
	"github.com/autoescuela/clientes-api/internal/service"
	"github.com/autoescuela/clientes-api/internal/store"
)

// User-facing messages for the public API. Internal error detail is never
// exposed to the caller.
const (
	MsgCamposObligatorios    = "Todos los campos son obligatorios"
	MsgCorreoPasswordFaltan  = "Correo y contraseña son requeridos"
	MsgCorreoDuplicado       = "Ya existe un cliente registrado con este correo"
	MsgCredencialesInvalidas = "Credenciales inválidas"
	MsgCuerpoInvalido        = "Cuerpo de la petición inválido"
	MsgClienteNoEncontrado   = "Cliente no encontrado"
)

// isValidationError reports whether the error comes from domain validation
// of the registration fields.
func isValidationError(err error) bool {
	for _, sentinel := range []error{
		domain.ErrValidation,
		domain.ErrEmptyNombre,
		domain.ErrEmptyCorreo,
		domain.ErrInvalidCorreo,
		domain.ErrEmptyNumLic,
		domain.ErrEmptyPassword,
		domain.ErrPasswordTooLong,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes. This prevents leaking internal error types or messages to clients.
//
// A duplicate correo maps to 400 rather than 409: the public contract
// reports registration conflicts as a plain bad request with its own
// message.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrCorreoExists):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrClienteNotFound):
		return http.StatusNotFound

	case isValidationError(err):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// error. The fallback is used for unexpected failures, so each endpoint can
// report a generic operation-specific message.
func GetSafeErrorMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return MsgCredencialesInvalidas

	case errors.Is(err, store.ErrCorreoExists):
		return MsgCorreoDuplicado

	case errors.Is(err, store.ErrClienteNotFound):
		return MsgClienteNoEncontrado

	case isValidationError(err):
		return MsgCamposObligatorios

	default:
		return fallback
	}
}
