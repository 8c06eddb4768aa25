// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Suffixes of the two companion values stored per encrypted field.
const (
	EncryptedSuffix = "_encrypted"
	IVSuffix        = "_iv"
)

// EncryptedBlob is the result of one authenticated encryption call:
// the ciphertext (with the GCM tag embedded) and the nonce used for it,
// both base64-encoded so they are safe to store and transport as text.
type EncryptedBlob struct {
	Ciphertext string `json:"ciphertext"`
	IV         string `json:"iv"`
}

// EncryptedRecord maps "<field>_encrypted" and "<field>_iv" keys to their
// encoded values. Fields that were empty at encryption time have no entries
// at all. The record is safe to persist as-is: without the key it is noise.
type EncryptedRecord map[string]string

// Set stores the blob under the field's companion keys.
func (r EncryptedRecord) Set(field string, blob EncryptedBlob) {
	r[field+EncryptedSuffix] = blob.Ciphertext
	r[field+IVSuffix] = blob.IV
}

// Get returns the blob stored for field and whether both companion values
// are present and non-empty.
func (r EncryptedRecord) Get(field string) (EncryptedBlob, bool) {
	ct, okCT := r[field+EncryptedSuffix]
	iv, okIV := r[field+IVSuffix]
	if !okCT || !okIV || ct == "" || iv == "" {
		return EncryptedBlob{}, false
	}
	return EncryptedBlob{Ciphertext: ct, IV: iv}, true
}

// Fields returns the names of all fields that have a complete
// ciphertext/iv pair in the record.
func (r EncryptedRecord) Fields() []string {
	fields := make([]string, 0, len(r)/2)
	for key := range r {
		name, found := strings.CutSuffix(key, EncryptedSuffix)
		if !found {
			continue
		}
		if _, ok := r.Get(name); ok {
			fields = append(fields, name)
		}
	}
	return fields
}
