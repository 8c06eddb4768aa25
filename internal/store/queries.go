// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-secret-vault/models"
)

var itemColumns = []string{"id", "name", "record", "created_at", "updated_at"}

func buildInsertMetaQuery(meta models.VaultMeta) (string, []any, error) {
	return sq.Insert("vault_meta").
		Columns("salt", "kdf_iterations", "created_at").
		Values(meta.Salt, meta.KDFIterations, meta.CreatedAt).
		ToSql()
}

func buildSelectMetaQuery() (string, []any, error) {
	return sq.Select("salt", "kdf_iterations", "created_at").
		From("vault_meta").
		Limit(1).
		ToSql()
}

func buildUpsertItemQuery(item models.VaultItem, record []byte) (string, []any, error) {
	return sq.Insert("vault_items").
		Columns(itemColumns...).
		Values(item.ID, item.Name, record, item.CreatedAt, item.UpdatedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			record = excluded.record,
			updated_at = excluded.updated_at`).
		ToSql()
}

func buildSelectItemQuery(id string) (string, []any, error) {
	return sq.Select(itemColumns...).
		From("vault_items").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectAllItemsQuery() (string, []any, error) {
	return sq.Select(itemColumns...).
		From("vault_items").
		OrderBy("name ASC").
		ToSql()
}

func buildDeleteItemQuery(id string) (string, []any, error) {
	return sq.Delete("vault_items").
		Where(sq.Eq{"id": id}).
		ToSql()
}
