// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Well-known credential field names. The engine itself accepts any field
// name; these are the ones the CLI and the import pipeline produce.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldEmail    = "email"
	FieldURL      = "url"
	FieldNotes    = "notes"
)

// Credential is a plaintext vault entry as supplied by the caller.
// Fields holds the sensitive named values; Name is the display label and is
// stored in the clear so entries can be listed without unlocking every row.
type Credential struct {
	Name   string
	Fields map[string]string
}

// VaultItem is a persisted vault entry: the clear display name plus the
// per-field encrypted record. Plaintext never appears here.
type VaultItem struct {
	ID        string
	Name      string
	Record    EncryptedRecord
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VaultMeta is the single per-vault bootstrap row: the immutable salt and
// the key-stretching iteration count the vault was created with. Persisting
// the iterations beside the salt lets the default be raised later without
// orphaning existing vaults.
type VaultMeta struct {
	Salt          string
	KDFIterations int
	CreatedAt     time.Time
}
