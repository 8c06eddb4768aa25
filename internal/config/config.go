// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// VaultConfig is the top-level configuration container for the vault
// client. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file, in that order of
// precedence (later layers fill gaps, they do not override).
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type VaultConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"VAULT_APP_"`

	// Crypto holds the key-stretching policy. The defaults follow current
	// OWASP guidance; deployments may raise the iteration count.
	Crypto Crypto `envPrefix:"VAULT_CRYPTO_"`

	// Storage holds the local vault database settings.
	Storage Storage `envPrefix:"VAULT_STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// populated via the VAULT_CONFIG env variable or the -c/-config flag.
	JSONFilePath string `env:"VAULT_CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Role is the label attached to every log entry (e.g. "vaultctl").
	// Env: VAULT_APP_ROLE
	Role string `env:"ROLE"`
}

// Crypto holds the key-stretching parameters.
type Crypto struct {
	// KDFIterations is the PBKDF2-SHA256 iteration count used when the
	// vault is created. Existing vaults keep the count persisted beside
	// their salt. Env: VAULT_CRYPTO_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// KeyLength is the derived key size in bytes.
	// Env: VAULT_CRYPTO_KEY_LENGTH
	KeyLength int `env:"KEY_LENGTH"`

	// SaltLength is the generated salt size in bytes.
	// Env: VAULT_CRYPTO_SALT_LENGTH
	SaltLength int `env:"SALT_LENGTH"`
}

// Storage holds the local database settings.
type Storage struct {
	// DSN is the sqlite database file path.
	// Env: VAULT_STORAGE_DSN
	DSN string `env:"DSN"`
}

// defaults returns the baseline configuration merged in as the last layer.
func defaults() *VaultConfig {
	return &VaultConfig{
		App: App{
			Role: "vaultctl",
		},
		Crypto: Crypto{
			KDFIterations: 600_000,
			KeyLength:     32,
			SaltLength:    16,
		},
		Storage: Storage{
			DSN: "vault.db",
		},
	}
}

// GetConfig builds the final configuration: env variables first, then
// flags, then the optional JSON file, then defaults.
func GetConfig() (*VaultConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
