// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/store"
	"github.com/MKhiriev/go-secret-vault/models"
)

type vaultService struct {
	params       crypto.Params
	keyChain     crypto.KeyChain
	recordCipher RecordCipher
	repository   store.VaultRepository
	logger       *logger.Logger
}

// NewVaultService wires the key chain, the record cipher and the local
// repository into the caller-facing [Vault].
func NewVaultService(params crypto.Params, keyChain crypto.KeyChain, recordCipher RecordCipher, repository store.VaultRepository, logger *logger.Logger) Vault {
	return &vaultService{
		params:       params,
		keyChain:     keyChain,
		recordCipher: recordCipher,
		repository:   repository,
		logger:       logger,
	}
}

// Init implements [Vault]. The meta row is written exactly once; the
// iteration count in force at creation is persisted beside the salt so a
// later policy bump cannot orphan this vault.
func (v *vaultService) Init(ctx context.Context) (models.VaultMeta, error) {
	salt, err := v.keyChain.GenerateSalt()
	if err != nil {
		return models.VaultMeta{}, fmt.Errorf("generate vault salt: %w", err)
	}

	meta := models.VaultMeta{
		Salt:          salt,
		KDFIterations: v.params.Iterations,
		CreatedAt:     time.Now().UTC(),
	}

	if err = v.repository.SaveMeta(ctx, meta); err != nil {
		if errors.Is(err, store.ErrMetaExists) {
			return models.VaultMeta{}, ErrVaultAlreadyInitialized
		}
		return models.VaultMeta{}, fmt.Errorf("save vault meta: %w", err)
	}

	v.logger.Info().Int("kdf_iterations", meta.KDFIterations).Msg("vault initialized")
	return meta, nil
}

// Unlock implements [Vault]. Derivation runs under the iteration count the
// vault was created with, not the current default.
func (v *vaultService) Unlock(ctx context.Context, masterPassword string) (*crypto.Session, error) {
	meta, err := v.loadMeta(ctx)
	if err != nil {
		return nil, err
	}

	keyChain := v.keyChainFor(meta)
	key, err := keyChain.DeriveKey(masterPassword, meta.Salt)
	if err != nil {
		return nil, fmt.Errorf("derive vault key: %w", err)
	}

	return crypto.NewSession(key), nil
}

// AuthHash implements [Vault].
func (v *vaultService) AuthHash(ctx context.Context, masterPassword string) (string, error) {
	meta, err := v.loadMeta(ctx)
	if err != nil {
		return "", err
	}

	hash, err := v.keyChainFor(meta).HashPasswordForAuth(masterPassword, meta.Salt)
	if err != nil {
		return "", fmt.Errorf("compute auth hash: %w", err)
	}
	return hash, nil
}

// AddCredential implements [Vault].
func (v *vaultService) AddCredential(ctx context.Context, session *crypto.Session, credential models.Credential) (models.VaultItem, error) {
	if credential.Name == "" {
		return models.VaultItem{}, fmt.Errorf("credential name is required")
	}

	key, err := session.Key()
	if err != nil {
		return models.VaultItem{}, err
	}

	record, err := v.recordCipher.EncryptFields(credential.Fields, key)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("encrypt credential fields: %w", err)
	}

	now := time.Now().UTC()
	item := models.VaultItem{
		ID:        newItemID(),
		Name:      credential.Name,
		Record:    record,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = v.repository.SaveItem(ctx, item); err != nil {
		return models.VaultItem{}, fmt.Errorf("save vault item: %w", err)
	}

	v.logger.Debug().Str("id", item.ID).Msg("credential stored")
	return item, nil
}

// GetCredential implements [Vault]. A decryption failure on any field of
// the record propagates; no partially blank credential is ever returned.
func (v *vaultService) GetCredential(ctx context.Context, session *crypto.Session, id string) (models.Credential, error) {
	key, err := session.Key()
	if err != nil {
		return models.Credential{}, err
	}

	item, err := v.repository.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Credential{}, ErrItemNotFound
		}
		return models.Credential{}, fmt.Errorf("load vault item: %w", err)
	}

	fields, err := v.recordCipher.DecryptFields(item.Record, key)
	if err != nil {
		return models.Credential{}, fmt.Errorf("decrypt credential fields: %w", err)
	}

	return models.Credential{Name: item.Name, Fields: fields}, nil
}

// ListCredentials implements [Vault].
func (v *vaultService) ListCredentials(ctx context.Context) ([]models.VaultItem, error) {
	items, err := v.repository.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vault items: %w", err)
	}
	return items, nil
}

// DeleteCredential implements [Vault].
func (v *vaultService) DeleteCredential(ctx context.Context, id string) error {
	if err := v.repository.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("delete vault item: %w", err)
	}
	return nil
}

func (v *vaultService) loadMeta(ctx context.Context) (models.VaultMeta, error) {
	meta, err := v.repository.GetMeta(ctx)
	if err != nil {
		if errors.Is(err, store.ErrMetaNotFound) {
			return models.VaultMeta{}, ErrVaultNotInitialized
		}
		return models.VaultMeta{}, fmt.Errorf("load vault meta: %w", err)
	}
	return meta, nil
}

// keyChainFor returns a key chain bound to the iteration count persisted
// for this vault, falling back to the configured chain when the stored
// value matches.
func (v *vaultService) keyChainFor(meta models.VaultMeta) crypto.KeyChain {
	if meta.KDFIterations == v.params.Iterations || meta.KDFIterations <= 0 {
		return v.keyChain
	}
	params := v.params
	params.Iterations = meta.KDFIterations
	return crypto.NewKeyChain(params, crypto.NewOSRandomSource())
}

func newItemID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
