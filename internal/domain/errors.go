// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCorreo is returned when a correo address is malformed.
	ErrInvalidCorreo = errors.New("invalid correo format")

	// ErrEmptyClienteID is returned when a cliente ID is missing.
	ErrEmptyClienteID = errors.New("cliente ID cannot be empty")

	// ErrEmptyNombre is returned when the display name is missing.
	ErrEmptyNombre = errors.New("nombre cannot be empty")

	// ErrEmptyCorreo is returned when the correo address is missing.
	ErrEmptyCorreo = errors.New("correo cannot be empty")

	// ErrEmptyNumLic is returned when the license number is missing.
	ErrEmptyNumLic = errors.New("numLic cannot be empty")

	// ErrEmptyPassword is returned when the password is missing.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrPasswordTooLong is returned when the password exceeds bcrypt's
	// 72-byte input limit.
	ErrPasswordTooLong = errors.New("password must be at most 72 characters long")

	// ErrEmptyHashedPassword is returned when a persisted cliente is missing
	// its derived secret.
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)
