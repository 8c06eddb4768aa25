package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mocks.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-secret-vault/models"
)

// VaultRepository persists the vault bootstrap row and the encrypted items.
// Everything stored here is either public (salt, iteration count, display
// names, timestamps) or ciphertext; the repository never sees plaintext
// field values or keys.
type VaultRepository interface {
	SaveMeta(ctx context.Context, meta models.VaultMeta) error
	GetMeta(ctx context.Context) (models.VaultMeta, error)

	SaveItem(ctx context.Context, item models.VaultItem) error
	GetItem(ctx context.Context, id string) (models.VaultItem, error)
	GetAllItems(ctx context.Context) ([]models.VaultItem, error)
	DeleteItem(ctx context.Context, id string) error
}
