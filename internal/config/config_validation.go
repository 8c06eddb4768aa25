// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [VaultConfig] satisfies the
// invariants the engine depends on before it is used at startup.
func (cfg *VaultConfig) validate() error {
	if cfg.Crypto.KDFIterations <= 0 {
		return ErrInvalidCryptoConfigs
	}
	if cfg.Crypto.KeyLength != 32 {
		// AES-256 only; other key sizes are a misconfiguration, not an option.
		return ErrInvalidCryptoConfigs
	}
	if cfg.Crypto.SaltLength < 16 {
		return ErrInvalidCryptoConfigs
	}

	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
