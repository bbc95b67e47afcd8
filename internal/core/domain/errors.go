package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNoSession indicates no authenticated session is stored.
	// Callers must treat this as a forced sign-out, never as inline text.
	ErrNoSession = errors.New("no active session")

	// ErrUnauthorized indicates the remote API rejected the session token.
	// Discovered reactively via a 401 response; resolves to a forced sign-out.
	ErrUnauthorized = errors.New("session token rejected")

	// ErrNotFound indicates a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCategory indicates an unrecognised catalog category.
	ErrInvalidCategory = errors.New("invalid category")
)
