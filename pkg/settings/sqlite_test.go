package settings

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NameForge/pkg/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store, err := NewSQLiteStore(db)
	require.NoError(t, err)
	return store
}

func TestSQLiteStoreDefaultWhenEmpty(t *testing.T) {
	store := newTestStore(t)

	loaded, err := store.GetUserSettings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded.APIKey, "a fresh store reads as the default record")
}

func TestSQLiteStoreReadYourWrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveUserSettings(ctx, "sk-test-abc123"))

	loaded, err := store.GetUserSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sk-test-abc123", loaded.APIKey)
}

func TestSQLiteStoreOverwrite(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveUserSettings(ctx, "first"))
	require.NoError(t, store.SaveUserSettings(ctx, "second"))

	loaded, err := store.GetUserSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", loaded.APIKey)
}

func TestSQLiteStoreSavesEmptyKey(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveUserSettings(ctx, "something"))
	require.NoError(t, store.SaveUserSettings(ctx, ""))

	loaded, err := store.GetUserSettings(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.APIKey, "clearing the key persists an empty value")
}

func TestStorageErrorMessage(t *testing.T) {
	err := NewStorageError("disk full")
	assert.EqualError(t, err, "disk full")
}
