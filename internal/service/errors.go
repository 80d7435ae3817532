package service

import "errors"

// Sentinel errors shared across services so controllers can map them to
// HTTP codes without string matching.
var (
	// ErrInvalidCredentials is returned for both unknown usernames and
	// wrong passwords. The two cases must stay indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTooManyAttempts = errors.New("too many login attempts, try again later")
	ErrForbidden       = errors.New("access denied")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("already exists")
)
