package store

import "errors"

var (
	// ErrMetaNotFound is returned when the vault has no bootstrap row yet.
	ErrMetaNotFound = errors.New("vault meta not found")

	// ErrMetaExists is returned when a second bootstrap row is attempted.
	// The salt row is written once per vault and never replaced.
	ErrMetaExists = errors.New("vault meta already exists")

	// ErrNotFound is returned when no row matches the requested item ID.
	ErrNotFound = errors.New("item not found")
)
