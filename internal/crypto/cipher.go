// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-secret-vault/models"
)

// gcmCipher is the private AES-256-GCM implementation of [Cipher].
type gcmCipher struct {
	random RandomSource
}

// NewCipher constructs a [Cipher] that draws nonces from random.
func NewCipher(random RandomSource) Cipher {
	return &gcmCipher{random: random}
}

// Encrypt implements [Cipher]. The nonce is returned as a separate field
// rather than prefixed to the ciphertext, matching the <field>_encrypted /
// <field>_iv persisted shape. The GCM tag stays embedded at the end of the
// ciphertext, so tampering with either value fails tag verification.
func (c *gcmCipher) Encrypt(plaintext string, key []byte) (models.EncryptedBlob, error) {
	if strings.TrimSpace(plaintext) == "" {
		return models.EncryptedBlob{}, ErrEmptyPlaintext
	}

	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedBlob{}, err
	}

	nonce, err := c.random.Bytes(gcm.NonceSize())
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	return models.EncryptedBlob{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		IV:         base64.StdEncoding.EncodeToString(nonce),
	}, nil
}

// Decrypt implements [Cipher]. Malformed input is rejected as
// [ErrMalformedCiphertext] before any cipher work; a failed tag check is
// reported as [ErrDecryptionFailed] without distinguishing wrong key from
// altered data.
func (c *gcmCipher) Decrypt(ciphertext, iv string, key []byte) (string, error) {
	if ciphertext == "" || iv == "" {
		return "", ErrMalformedCiphertext
	}

	rawCiphertext, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode ciphertext: %w", ErrMalformedCiphertext, err)
	}
	nonce, err := base64.StdEncoding.DecodeString(iv)
	if err != nil {
		return "", fmt.Errorf("%w: decode iv: %w", ErrMalformedCiphertext, err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	if len(nonce) != gcm.NonceSize() || len(rawCiphertext) < gcm.Overhead() {
		return "", ErrMalformedCiphertext
	}

	plaintext, err := gcm.Open(nil, nonce, rawCiphertext, nil)
	if err != nil {
		// Wrong key and tampered data are indistinguishable here and must
		// stay that way in anything user-facing.
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("%w: got %d bytes, want 32", ErrInvalidKeyLength, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
