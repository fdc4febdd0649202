package clicker

import "errors"

var (
	// ErrStateNotFound is returned by stores for sessions that were never saved.
	ErrStateNotFound = errors.New("clicker state not found")

	ErrUnknownPowerUp    = errors.New("unknown power-up")
	ErrInvalidMultiplier = errors.New("multiplier must be between 1 and 1000000")
	ErrInvalidSession    = errors.New("invalid session id")
	ErrUnknownStore      = errors.New("unknown clicker store")

	ErrLoadState = errors.New("failed to load clicker state")
	ErrSaveState = errors.New("failed to save clicker state")
)
