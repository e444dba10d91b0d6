package db

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()

	database, err := New(ctx, filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	return database
}

func TestCreateAndList(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	run := &Run{
		Mode:           "scene",
		Path:           "/scenes/shot.ma",
		Status:         "ok",
		Message:        "Processed 1 files, cleaned 2 issues",
		CleanedCount:   2,
		ProcessedCount: 1,
	}
	require.NoError(t, database.Create(ctx, run))
	assert.NotZero(t, run.ID)

	runs, err := database.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, "scene", got.Mode)
	assert.Equal(t, "/scenes/shot.ma", got.Path)
	assert.Equal(t, "ok", got.Status)
	assert.Equal(t, 2, got.CleanedCount)
	assert.Equal(t, 1, got.ProcessedCount)
	assert.False(t, got.RunDate.IsZero())
}

func TestListNewestFirstWithLimit(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		require.NoError(t, database.Create(ctx, &Run{
			Mode:    "user",
			Status:  "ok",
			RunDate: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	runs, err := database.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.True(t, runs[0].RunDate.After(runs[1].RunDate) || runs[0].RunDate.Equal(runs[1].RunDate))
}

func TestListEmpty(t *testing.T) {
	database := newTestDB(t)

	runs, err := database.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestPrune(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, database.Create(ctx, &Run{
		Mode:    "scene",
		Status:  "ok",
		RunDate: time.Now().UTC().Add(-48 * time.Hour),
	}))
	require.NoError(t, database.Create(ctx, &Run{
		Mode:   "scene",
		Status: "ok",
	}))

	removed, err := database.Prune(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	runs, err := database.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestSanitizeMessage(t *testing.T) {
	assert.Equal(t, "a b", SanitizeMessage("a\nb\n"))
	assert.Equal(t, "", SanitizeMessage("\n\n"))

	long := strings.Repeat("x", 600)
	assert.Len(t, SanitizeMessage(long), 500)
}
