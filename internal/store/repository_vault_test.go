// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (VaultRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logger.Nop()
	return NewVaultRepository(&DB{DB: db, logger: log}, log), mock
}

func metaRows(meta models.VaultMeta) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"salt", "kdf_iterations", "created_at"}).
		AddRow(meta.Salt, meta.KDFIterations, meta.CreatedAt)
}

func itemRows(t *testing.T, items ...models.VaultItem) *sqlmock.Rows {
	t.Helper()

	rows := sqlmock.NewRows(itemColumns)
	for _, item := range items {
		record, err := json.Marshal(item.Record)
		require.NoError(t, err)
		rows.AddRow(item.ID, item.Name, record, item.CreatedAt, item.UpdatedAt)
	}
	return rows
}

func TestVaultRepository_SaveMeta(t *testing.T) {
	repo, mock := newMockRepository(t)

	meta := models.VaultMeta{
		Salt:          "c2FsdA==",
		KDFIterations: 600_000,
		CreatedAt:     time.Now().UTC(),
	}

	selectQuery, _, err := buildSelectMetaQuery()
	require.NoError(t, err)
	insertQuery, _, err := buildInsertMetaQuery(meta)
	require.NoError(t, err)

	mock.ExpectQuery(selectQuery).
		WillReturnRows(sqlmock.NewRows([]string{"salt", "kdf_iterations", "created_at"}))
	mock.ExpectExec(insertQuery).
		WithArgs(meta.Salt, meta.KDFIterations, meta.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.SaveMeta(context.Background(), meta)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_SaveMeta_AlreadyInitialized(t *testing.T) {
	repo, mock := newMockRepository(t)

	existing := models.VaultMeta{Salt: "c2FsdA==", KDFIterations: 600_000, CreatedAt: time.Now().UTC()}
	selectQuery, _, err := buildSelectMetaQuery()
	require.NoError(t, err)

	mock.ExpectQuery(selectQuery).WillReturnRows(metaRows(existing))

	err = repo.SaveMeta(context.Background(), models.VaultMeta{Salt: "b3RoZXI="})
	assert.ErrorIs(t, err, ErrMetaExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_GetMeta(t *testing.T) {
	repo, mock := newMockRepository(t)

	want := models.VaultMeta{Salt: "c2FsdA==", KDFIterations: 600_000, CreatedAt: time.Now().UTC()}
	selectQuery, _, err := buildSelectMetaQuery()
	require.NoError(t, err)

	mock.ExpectQuery(selectQuery).WillReturnRows(metaRows(want))

	got, err := repo.GetMeta(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_GetMeta_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	selectQuery, _, err := buildSelectMetaQuery()
	require.NoError(t, err)

	mock.ExpectQuery(selectQuery).
		WillReturnRows(sqlmock.NewRows([]string{"salt", "kdf_iterations", "created_at"}))

	_, err = repo.GetMeta(context.Background())
	assert.ErrorIs(t, err, ErrMetaNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_SaveItem(t *testing.T) {
	repo, mock := newMockRepository(t)

	item := models.VaultItem{
		ID:   "0190a5c0-0000-7000-8000-000000000000",
		Name: "example.com",
		Record: models.EncryptedRecord{
			"username_encrypted": "Y3Q=",
			"username_iv":        "aXY=",
		},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	record, err := json.Marshal(item.Record)
	require.NoError(t, err)
	upsertQuery, _, err := buildUpsertItemQuery(item, record)
	require.NoError(t, err)

	mock.ExpectExec(upsertQuery).
		WithArgs(item.ID, item.Name, record, item.CreatedAt, item.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.SaveItem(context.Background(), item)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_GetItem(t *testing.T) {
	repo, mock := newMockRepository(t)

	want := models.VaultItem{
		ID:   "0190a5c0-0000-7000-8000-000000000000",
		Name: "example.com",
		Record: models.EncryptedRecord{
			"password_encrypted": "Y3Q=",
			"password_iv":        "aXY=",
		},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	selectQuery, _, err := buildSelectItemQuery(want.ID)
	require.NoError(t, err)

	mock.ExpectQuery(selectQuery).
		WithArgs(want.ID).
		WillReturnRows(itemRows(t, want))

	got, err := repo.GetItem(context.Background(), want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_GetItem_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	selectQuery, _, err := buildSelectItemQuery("missing-id")
	require.NoError(t, err)

	mock.ExpectQuery(selectQuery).
		WithArgs("missing-id").
		WillReturnRows(sqlmock.NewRows(itemColumns))

	_, err = repo.GetItem(context.Background(), "missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_GetAllItems(t *testing.T) {
	repo, mock := newMockRepository(t)

	now := time.Now().UTC()
	first := models.VaultItem{
		ID:        "0190a5c0-0000-7000-8000-000000000001",
		Name:      "bank",
		Record:    models.EncryptedRecord{"notes_encrypted": "Y3Q=", "notes_iv": "aXY="},
		CreatedAt: now,
		UpdatedAt: now,
	}
	second := models.VaultItem{
		ID:        "0190a5c0-0000-7000-8000-000000000002",
		Name:      "mail",
		Record:    models.EncryptedRecord{"email_encrypted": "Y3Q=", "email_iv": "aXY="},
		CreatedAt: now,
		UpdatedAt: now,
	}

	selectQuery, _, err := buildSelectAllItemsQuery()
	require.NoError(t, err)

	mock.ExpectQuery(selectQuery).WillReturnRows(itemRows(t, first, second))

	items, err := repo.GetAllItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.VaultItem{first, second}, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_GetAllItems_Empty(t *testing.T) {
	repo, mock := newMockRepository(t)

	selectQuery, _, err := buildSelectAllItemsQuery()
	require.NoError(t, err)

	mock.ExpectQuery(selectQuery).WillReturnRows(sqlmock.NewRows(itemColumns))

	items, err := repo.GetAllItems(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_DeleteItem(t *testing.T) {
	repo, mock := newMockRepository(t)

	deleteQuery, _, err := buildDeleteItemQuery("some-id")
	require.NoError(t, err)

	mock.ExpectExec(deleteQuery).
		WithArgs("some-id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.DeleteItem(context.Background(), "some-id")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_DeleteItem_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	deleteQuery, _, err := buildDeleteItemQuery("missing-id")
	require.NoError(t, err)

	mock.ExpectExec(deleteQuery).
		WithArgs("missing-id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.DeleteItem(context.Background(), "missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_SaveItem_ExecError(t *testing.T) {
	repo, mock := newMockRepository(t)

	item := models.VaultItem{ID: "broken", Name: "broken", Record: models.EncryptedRecord{}}
	record, err := json.Marshal(item.Record)
	require.NoError(t, err)
	upsertQuery, _, err := buildUpsertItemQuery(item, record)
	require.NoError(t, err)

	mock.ExpectExec(upsertQuery).WillReturnError(errors.New("disk I/O error"))

	err = repo.SaveItem(context.Background(), item)
	assert.ErrorContains(t, err, "failed to save vault item")
	assert.NoError(t, mock.ExpectationsWereMet())
}
