package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Cliente represents a registered client of the driving school.
// It contains the client's identity, business license number, and
// authentication details.
type Cliente struct {
	ID             uuid.UUID `json:"id"`
	Nombre         string    `json:"nombre"`
	Correo         string    `json:"correo"`
	NumLic         string    `json:"numLic"`
	Password       string    `json:"-"` // Plaintext password, only populated between registration and hashing
	HashedPassword string    `json:"-"` // Never expose the derived secret in JSON
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewCliente creates a new Cliente with the given registration fields.
// It generates a new UUID for the cliente ID and sets the creation/update
// timestamps. Returns an error if validation fails.
//
// NOTE: This function only sets up the cliente structure with the plaintext
// password. The store is responsible for hashing the password before
// persisting the cliente.
func NewCliente(nombre, correo, numLic, password string) (*Cliente, error) {
	cliente := &Cliente{
		ID:        uuid.New(),
		Nombre:    nombre,
		Correo:    correo,
		NumLic:    numLic,
		Password:  password, // Plaintext - must be hashed before storage
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := cliente.Validate(); err != nil {
		return nil, err
	}

	return cliente, nil
}

// Validate checks if the Cliente has valid data.
// Returns an error if any field fails validation.
func (c *Cliente) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyClienteID
	}

	if strings.TrimSpace(c.Nombre) == "" {
		return ErrEmptyNombre
	}

	if c.Correo == "" {
		return ErrEmptyCorreo
	}

	if !validateCorreoFormat(c.Correo) {
		return ErrInvalidCorreo
	}

	if strings.TrimSpace(c.NumLic) == "" {
		return ErrEmptyNumLic
	}

	if c.Password != "" {
		// bcrypt silently truncates input beyond 72 bytes
		if len(c.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else {
		// When no plaintext password is provided, the cliente must already
		// carry a derived secret (the case for rows loaded from the store).
		if c.HashedPassword == "" {
			return ErrEmptyPassword
		}
	}

	return nil
}

// validateCorreoFormat performs basic validation of the correo format:
// a local part, an @, and a domain containing an interior dot.
func validateCorreoFormat(correo string) bool {
	atIndex := strings.Index(correo, "@")
	if atIndex <= 0 || atIndex == len(correo)-1 {
		return false
	}

	domain := correo[atIndex+1:]
	if strings.Contains(domain, "@") {
		return false
	}

	dotIndex := strings.Index(domain, ".")
	return dotIndex > 0 && dotIndex < len(domain)-1
}
