// Package service provides application-level services for managing clientes.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped with context via fmt.Errorf("%w")
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrInvalidCredentials indicates a failed login attempt. An unknown
	// correo and a wrong password both produce this same error: the split is
	// deliberately not exposed, so callers cannot enumerate registered
	// correos. API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
