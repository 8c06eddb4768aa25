package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/models"
)

// RecordCipher encrypts and decrypts structured records field by field.
// Each field gets its own blob and nonce, so records stay independently
// decryptable per field while sharing one key.
type RecordCipher interface {
	// EncryptFields encrypts every present, non-empty field of record and
	// stores the result under "<field>_encrypted"/"<field>_iv" keys.
	// Empty or whitespace-only fields are skipped entirely: "no value"
	// produces no blob at all, it is not encrypted as an empty string.
	EncryptFields(record map[string]string, key []byte) (models.EncryptedRecord, error)

	// DecryptFields reverses EncryptFields. A failure on any single field
	// aborts the whole record: a partially decryptable record is a
	// security event, not a normal condition.
	DecryptFields(record models.EncryptedRecord, key []byte) (map[string]string, error)
}

// Vault is the caller-facing composition of the engine: key chain, record
// cipher and the local store. It owns the salt bootstrap and hands out
// unlock sessions; it never retains plaintext or keys itself.
type Vault interface {
	// Init creates the vault metadata row: a fresh salt plus the
	// key-stretching iteration count in force. Fails if already initialized.
	Init(ctx context.Context) (models.VaultMeta, error)

	// Unlock derives the encryption key from the master password and the
	// persisted salt and wraps it in a session. Closing the session is the
	// caller's responsibility.
	Unlock(ctx context.Context, masterPassword string) (*crypto.Session, error)

	// AddCredential encrypts and persists a credential under the session key.
	AddCredential(ctx context.Context, session *crypto.Session, credential models.Credential) (models.VaultItem, error)

	// GetCredential loads and decrypts one credential by item ID.
	GetCredential(ctx context.Context, session *crypto.Session, id string) (models.Credential, error)

	// ListCredentials returns the stored items without decrypting them.
	ListCredentials(ctx context.Context) ([]models.VaultItem, error)

	// DeleteCredential removes one item by ID.
	DeleteCredential(ctx context.Context, id string) error

	// AuthHash computes the server-side login verifier for the persisted
	// salt. The returned value is the only derived material that may ever
	// leave the device.
	AuthHash(ctx context.Context, masterPassword string) (string, error)
}
