package mocks

import (
	"context"
	"errors"
)

// MockPasswordVerifier implements auth.PasswordVerifier for testing.
type MockPasswordVerifier struct {
	// ShouldSucceed determines whether the password comparison should succeed
	ShouldSucceed bool

	// CompareFn allows for custom comparison logic in tests
	CompareFn func(hashedPassword, password string) error

	// CompareCalledWith stores the arguments passed to Compare for verification
	CompareCalledWith struct {
		HashedPassword string
		Password       string
	}

	// CompareCallCount tracks how many times Compare was called
	CompareCallCount int
}

// Compare implements the auth.PasswordVerifier interface.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.CompareCalledWith.HashedPassword = hashedPassword
	m.CompareCalledWith.Password = password
	m.CompareCallCount++

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}

	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}

// MockPasswordHasher implements auth.PasswordHasher for testing.
type MockPasswordHasher struct {
	// HashFn allows for custom hashing logic in tests
	HashFn func(ctx context.Context, password string) (string, error)

	// Err is returned from Hash when set
	Err error
}

// Hash implements the auth.PasswordHasher interface. The default
// implementation prefixes the plaintext so tests can assert that derivation
// happened without paying for bcrypt.
func (m *MockPasswordHasher) Hash(ctx context.Context, password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(ctx, password)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return "hashed:" + password, nil
}
