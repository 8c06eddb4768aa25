package config

import "errors"

// Validation errors returned by [VaultConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidCryptoConfigs indicates invalid key-stretching settings
	// (non-positive iterations, wrong key length, or a salt below 16 bytes).
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
