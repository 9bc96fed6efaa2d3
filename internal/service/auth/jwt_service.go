package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT access tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token bound to the cliente's
	// identity. Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, clienteID uuid.UUID, correo string) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns an error if validation fails (expired, invalid
	// signature, malformed, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the custom claims structure for the access tokens.
// It extends standard JWT registered claims with application-specific fields.
type Claims struct {
	// ClienteID is the unique identifier of the cliente the token was
	// issued for.
	ClienteID uuid.UUID `json:"cid,omitempty"`

	// Correo is the cliente's correo address at issuance time.
	Correo string `json:"correo,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
