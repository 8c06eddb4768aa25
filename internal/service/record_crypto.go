// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/models"
)

type recordCipherService struct {
	cipher crypto.Cipher
}

// NewRecordCipherService constructs a [RecordCipher] on top of the given
// authenticated cipher.
func NewRecordCipherService(cipher crypto.Cipher) RecordCipher {
	return &recordCipherService{cipher: cipher}
}

// EncryptFields implements [RecordCipher]. Every encrypted field draws its
// own nonce inside the cipher, so fields carry no ordering dependency.
func (s *recordCipherService) EncryptFields(record map[string]string, key []byte) (models.EncryptedRecord, error) {
	encrypted := make(models.EncryptedRecord, len(record)*2)

	for field, value := range record {
		if strings.TrimSpace(value) == "" {
			// Absent and empty are the same thing: no blob, no iv.
			continue
		}

		blob, err := s.cipher.Encrypt(value, key)
		if err != nil {
			return nil, fmt.Errorf("encrypt field %q: %w", field, err)
		}
		encrypted.Set(field, blob)
	}

	return encrypted, nil
}

// DecryptFields implements [RecordCipher]. Fields are processed in sorted
// order so a multi-field failure always reports the same field.
func (s *recordCipherService) DecryptFields(record models.EncryptedRecord, key []byte) (map[string]string, error) {
	fields := record.Fields()
	sort.Strings(fields)

	plaintext := make(map[string]string, len(fields))
	for _, field := range fields {
		blob, ok := record.Get(field)
		if !ok {
			continue
		}

		value, err := s.cipher.Decrypt(blob.Ciphertext, blob.IV, key)
		if err != nil {
			return nil, fmt.Errorf("decrypt field %q: %w", field, err)
		}
		plaintext[field] = value
	}

	return plaintext, nil
}
