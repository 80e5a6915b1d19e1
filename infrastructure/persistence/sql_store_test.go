package persistence

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLStore_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewSQLStore(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT storage_value FROM client_storage WHERE storage_key = $1`)).
		WithArgs("cf_token").
		WillReturnRows(sqlmock.NewRows([]string{"storage_value"}).AddRow("abc"))

	value, ok, err := store.Get(context.Background(), "cf_token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", value)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_GetMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewSQLStore(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT storage_value FROM client_storage`)).
		WithArgs("cf_connections").
		WillReturnError(sql.ErrNoRows)

	value, ok, err := store.Get(context.Background(), "cf_connections")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_GetError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewSQLStore(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT storage_value FROM client_storage`)).
		WillReturnError(assert.AnError)

	_, ok, err := store.Get(context.Background(), "cf_token")
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, ok)
}

func TestSQLStore_SetUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewSQLStore(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO client_storage (storage_key, storage_value, updated_at) VALUES ($1, $2, $3) ON CONFLICT (storage_key) DO UPDATE SET`)).
		WithArgs("cf_token", "abc", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Set(context.Background(), "cf_token", "abc"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewSQLStore(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM client_storage WHERE storage_key = $1`)).
		WithArgs("cf_token").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Delete(context.Background(), "cf_token"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureStorageSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS client_storage`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, EnsureStorageSchema(db))
	require.NoError(t, mock.ExpectationsWereMet())
}
