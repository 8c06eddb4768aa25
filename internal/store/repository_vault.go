// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/models"
)

type vaultRepository struct {
	*DB
	logger *logger.Logger
}

// NewVaultRepository constructs the sqlite-backed [VaultRepository].
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	return &vaultRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *vaultRepository) SaveMeta(ctx context.Context, meta models.VaultMeta) error {
	log := logger.FromContext(ctx)

	if _, err := r.GetMeta(ctx); err == nil {
		return ErrMetaExists
	} else if !errors.Is(err, ErrMetaNotFound) {
		return err
	}

	query, args, err := buildInsertMetaQuery(meta)
	if err != nil {
		return fmt.Errorf("build insert meta query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "vaultRepository.SaveMeta").
			Msg("failed to insert vault meta")
		return fmt.Errorf("failed to save vault meta: %w", err)
	}

	return nil
}

func (r *vaultRepository) GetMeta(ctx context.Context) (models.VaultMeta, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMetaQuery()
	if err != nil {
		return models.VaultMeta{}, fmt.Errorf("build select meta query: %w", err)
	}

	var meta models.VaultMeta
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&meta.Salt, &meta.KDFIterations, &meta.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VaultMeta{}, ErrMetaNotFound
		}
		log.Err(err).
			Str("func", "vaultRepository.GetMeta").
			Msg("failed to scan vault meta row")
		return models.VaultMeta{}, fmt.Errorf("failed to scan vault meta: %w", err)
	}

	return meta, nil
}

func (r *vaultRepository) SaveItem(ctx context.Context, item models.VaultItem) error {
	log := logger.FromContext(ctx)

	record, err := json.Marshal(item.Record)
	if err != nil {
		return fmt.Errorf("encode item record: %w", err)
	}

	query, args, err := buildUpsertItemQuery(item, record)
	if err != nil {
		return fmt.Errorf("build upsert item query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "vaultRepository.SaveItem").
			Str("id", item.ID).
			Msg("failed to upsert vault item")
		return fmt.Errorf("failed to save vault item (id=%s): %w", item.ID, err)
	}

	return nil
}

func (r *vaultRepository) GetItem(ctx context.Context, id string) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemQuery(id)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("build select item query: %w", err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)
	item, err := scanItem(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VaultItem{}, ErrNotFound
		}
		log.Err(err).
			Str("func", "vaultRepository.GetItem").
			Str("id", id).
			Msg("failed to scan vault item row")
		return models.VaultItem{}, fmt.Errorf("failed to scan vault item: %w", err)
	}

	return item, nil
}

func (r *vaultRepository) GetAllItems(ctx context.Context) ([]models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllItemsQuery()
	if err != nil {
		return nil, fmt.Errorf("build select all items query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.GetAllItems").
			Msg("failed to query vault items")
		return nil, fmt.Errorf("failed to query vault items: %w", err)
	}
	defer rows.Close()

	var items []models.VaultItem
	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			log.Err(err).
				Str("func", "vaultRepository.GetAllItems").
				Msg("failed to scan vault item row")
			return nil, fmt.Errorf("failed to scan vault item row: %w", err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vault items: %w", err)
	}

	return items, nil
}

func (r *vaultRepository) DeleteItem(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(id)
	if err != nil {
		return fmt.Errorf("build delete item query: %w", err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.DeleteItem").
			Str("id", id).
			Msg("failed to delete vault item")
		return fmt.Errorf("failed to delete vault item (id=%s): %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete vault item rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func scanItem(scan func(dest ...any) error) (models.VaultItem, error) {
	var (
		item models.VaultItem
		raw  []byte
	)
	if err := scan(&item.ID, &item.Name, &raw, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return models.VaultItem{}, err
	}
	if err := json.Unmarshal(raw, &item.Record); err != nil {
		return models.VaultItem{}, fmt.Errorf("decode item record: %w", err)
	}
	return item, nil
}
