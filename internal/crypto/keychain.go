// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Params holds the key-stretching policy. The values are deployment
// configuration, not constants: the iteration count in particular is
// expected to be raised over time, with the value in force at vault
// creation persisted beside the salt.
type Params struct {
	// Iterations is the PBKDF2-SHA256 iteration count.
	Iterations int

	// KeyLength is the derived key size in bytes.
	KeyLength int

	// SaltLength is the generated salt size in bytes.
	SaltLength int
}

// DefaultParams returns the current policy defaults:
//   - 600,000 iterations (OWASP recommendation for PBKDF2-SHA256);
//   - 32-byte key (AES-256);
//   - 16-byte salt.
func DefaultParams() Params {
	return Params{
		Iterations: 600_000,
		KeyLength:  32, // 256 bits
		SaltLength: 16,
	}
}

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	params Params
	random RandomSource
}

// NewKeyChain constructs a [KeyChain] with the given stretching parameters,
// drawing salts from random.
func NewKeyChain(params Params, random RandomSource) KeyChain {
	return &keyChain{params: params, random: random}
}

// GenerateSalt implements [KeyChain]. It reads SaltLength random bytes from
// the injected source and returns them base64-encoded. Returns an error if
// the random read fails.
func (k *keyChain) GenerateSalt() (string, error) {
	salt, err := k.random.Bytes(k.params.SaltLength)
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

// DeriveKey implements [KeyChain]. It stretches the password with
// PBKDF2-SHA256 under the configured iteration count into a KeyLength-byte
// key. The same (password, salt, params) always yields the same key.
func (k *keyChain) DeriveKey(password, salt string) ([]byte, error) {
	rawSalt, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return nil, fmt.Errorf("decode salt: %w", err)
	}
	return pbkdf2.Key([]byte(password), rawSalt, k.params.Iterations, k.params.KeyLength, sha256.New), nil
}

// HashPasswordForAuth implements [KeyChain]. The verifier is one extra
// PBKDF2 round over the stretched key, with the password itself as the
// salt. The construction domain-separates the verifier from the vault key:
// the server-side value is one-way in the key, so storing or leaking it
// surrenders neither the key nor a substitute for it.
func (k *keyChain) HashPasswordForAuth(password, salt string) (string, error) {
	key, err := k.DeriveKey(password, salt)
	if err != nil {
		return "", fmt.Errorf("derive key for auth hash: %w", err)
	}
	defer SecureZero(key)

	authHash := pbkdf2.Key(key, []byte(password), 1, k.params.KeyLength, sha256.New)
	return base64.StdEncoding.EncodeToString(authHash), nil
}
