// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-secret-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertMetaQuery(t *testing.T) {
	meta := models.VaultMeta{
		Salt:          "c2FsdA==",
		KDFIterations: 600_000,
		CreatedAt:     time.Now().UTC(),
	}

	query, args, err := buildInsertMetaQuery(meta)
	require.NoError(t, err)

	require.Len(t, args, 3)
	assert.Equal(t, "c2FsdA==", args[0])
	assert.Equal(t, 600_000, args[1])

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into vault_meta")
	assert.Contains(t, q, "salt")
	assert.Contains(t, q, "kdf_iterations")
	assert.Contains(t, q, "created_at")
}

func Test_buildSelectMetaQuery(t *testing.T) {
	query, args, err := buildSelectMetaQuery()
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)
	assert.Contains(t, q, "select")
	assert.Contains(t, q, "from vault_meta")
	assert.Contains(t, q, "limit 1")
}

func Test_buildUpsertItemQuery(t *testing.T) {
	item := models.VaultItem{
		ID:        "0190a5c0-0000-7000-8000-000000000000",
		Name:      "example.com",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	query, args, err := buildUpsertItemQuery(item, []byte(`{}`))
	require.NoError(t, err)

	require.Len(t, args, 5)
	assert.Equal(t, item.ID, args[0])
	assert.Equal(t, item.Name, args[1])

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into vault_items")
	assert.Contains(t, q, "on conflict (id) do update")
	assert.Contains(t, q, "record")
}

func Test_buildSelectItemQuery(t *testing.T) {
	query, args, err := buildSelectItemQuery("some-id")
	require.NoError(t, err)

	require.Len(t, args, 1)
	assert.Equal(t, "some-id", args[0])

	q := strings.ToLower(query)
	assert.Contains(t, q, "from vault_items")
	assert.Contains(t, q, "where")
	assert.Contains(t, q, "id")
	for _, column := range itemColumns {
		assert.Contains(t, q, column)
	}
}

func Test_buildSelectAllItemsQuery(t *testing.T) {
	query, args, err := buildSelectAllItemsQuery()
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from vault_items")
	assert.Contains(t, q, "order by name")
}

func Test_buildDeleteItemQuery(t *testing.T) {
	query, args, err := buildDeleteItemQuery("some-id")
	require.NoError(t, err)

	require.Len(t, args, 1)
	assert.Equal(t, "some-id", args[0])

	q := strings.ToLower(query)
	assert.Contains(t, q, "delete from vault_items")
	assert.Contains(t, q, "where")
}
