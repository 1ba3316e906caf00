package history

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NameForge/pkg/generate"
	"NameForge/pkg/storage"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := NewSQLiteRepository(db)
	require.NoError(t, err)
	return repo
}

func TestSQLiteRepositoryEmptyList(t *testing.T) {
	repo := newTestRepo(t)

	results, err := repo.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSQLiteRepositorySaveAndList(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, &generate.Result{
		ID:        "r1",
		Prompt:    "a bakery",
		Name:      "Warm Crust",
		Elapsed:   1200 * time.Millisecond,
		CreatedAt: created,
	}))

	results, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "r1", results[0].ID)
	assert.Equal(t, "a bakery", results[0].Prompt)
	assert.Equal(t, "Warm Crust", results[0].Name)
	assert.Equal(t, 1200*time.Millisecond, results[0].Elapsed)
	assert.True(t, results[0].CreatedAt.Equal(created))
}

func TestSQLiteRepositoryListNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Save(ctx, &generate.Result{
			ID:        fmt.Sprintf("r%d", i),
			Prompt:    "p",
			Name:      fmt.Sprintf("name %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	results, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "r2", results[0].ID)
	assert.Equal(t, "r0", results[2].ID)
}

func TestSQLiteRepositoryListLimit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Save(ctx, &generate.Result{
			ID:        fmt.Sprintf("r%d", i),
			Prompt:    "p",
			Name:      "n",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	results, err := repo.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// Non-positive limit falls back to the default window.
	results, err = repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, results, 5)
}
