// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, 600_000, cfg.Crypto.KDFIterations)
	assert.Equal(t, 32, cfg.Crypto.KeyLength)
	assert.Equal(t, 16, cfg.Crypto.SaltLength)
	assert.Equal(t, "vault.db", cfg.Storage.DSN)
	assert.Equal(t, "vaultctl", cfg.App.Role)
}

func TestBuild_EnvOverridesDefaults(t *testing.T) {
	setEnvVars(t, map[string]string{
		"VAULT_CRYPTO_KDF_ITERATIONS": "900000",
		"VAULT_STORAGE_DSN":           "/custom/vault.db",
	})

	cfg, err := newConfigBuilder().
		withEnv().
		withDefaults().
		build()
	require.NoError(t, err)

	// Env wins where set, defaults fill the rest.
	assert.Equal(t, 900_000, cfg.Crypto.KDFIterations)
	assert.Equal(t, "/custom/vault.db", cfg.Storage.DSN)
	assert.Equal(t, 32, cfg.Crypto.KeyLength)
	assert.Equal(t, "vaultctl", cfg.App.Role)
}

func TestBuild_JSONLayerFillsGaps(t *testing.T) {
	path := writeJSONConfig(t, `{"app": {"role": "from-json"}, "storage": {"dsn": "/json/vault.db"}}`)
	setEnvVars(t, map[string]string{
		"VAULT_CONFIG":      path,
		"VAULT_STORAGE_DSN": "/env/vault.db",
	})

	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
	require.NoError(t, err)

	// Env already set the DSN; JSON only fills the role.
	assert.Equal(t, "/env/vault.db", cfg.Storage.DSN)
	assert.Equal(t, "from-json", cfg.App.Role)
}

func TestBuild_ValidationRejectsBadCrypto(t *testing.T) {
	cases := []struct {
		name string
		cfg  *VaultConfig
	}{
		{"zero iterations", &VaultConfig{
			Crypto:  Crypto{KDFIterations: 0, KeyLength: 32, SaltLength: 16},
			Storage: Storage{DSN: "vault.db"},
		}},
		{"wrong key length", &VaultConfig{
			Crypto:  Crypto{KDFIterations: 600_000, KeyLength: 16, SaltLength: 16},
			Storage: Storage{DSN: "vault.db"},
		}},
		{"short salt", &VaultConfig{
			Crypto:  Crypto{KDFIterations: 600_000, KeyLength: 32, SaltLength: 8},
			Storage: Storage{DSN: "vault.db"},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.cfg.validate(), ErrInvalidCryptoConfigs)
		})
	}
}

func TestBuild_ValidationRejectsEmptyDSN(t *testing.T) {
	cfg := &VaultConfig{
		Crypto: Crypto{KDFIterations: 600_000, KeyLength: 32, SaltLength: 16},
	}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}
