package service

import "errors"

var (
	// ErrVaultNotInitialized is returned when an operation needs the salt
	// row and none exists yet.
	ErrVaultNotInitialized = errors.New("vault is not initialized")

	// ErrVaultAlreadyInitialized is returned by Init when a salt row
	// already exists. The salt is immutable: regenerating it would orphan
	// every record it protects.
	ErrVaultAlreadyInitialized = errors.New("vault is already initialized")

	// ErrItemNotFound is returned when no vault item matches the given ID.
	ErrItemNotFound = errors.New("vault item not found")
)
