package blobstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mauv0809/wordle-tribble/internal/blobstore"
	"github.com/mauv0809/wordle-tribble/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "scores.msgpack.zst")

	store, err := blobstore.NewFile(path)
	require.NoError(t, err)

	t.Run("missing file is not found", func(t *testing.T) {
		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})

	t.Run("saves and loads", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, []byte("first")))
		data, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []byte("first"), data)
	})

	t.Run("save replaces the previous blob", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, []byte("second")))
		data, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), data)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "No temp files should be left behind")
	})

	t.Run("a second store reads the same file", func(t *testing.T) {
		other, err := blobstore.NewFile(path)
		require.NoError(t, err)
		data, err := other.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), data)
	})

	t.Run("cancelled context does not write", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		assert.Error(t, store.Save(cctx, []byte("third")))
		data, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), data)
	})
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.msgpack.zst")
	require.NoError(t, os.WriteFile(path, []byte("not zstd"), 0o600))

	store, err := blobstore.NewFile(path)
	require.NoError(t, err)
	_, err = store.Load(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, blobstore.ErrNotFound)
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	db, teardown, err := database.InitDB(filepath.Join(t.TempDir(), "test.db"), "", "")
	require.NoError(t, err)
	defer teardown()

	store := blobstore.NewSQLite(db, "scores")

	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	require.NoError(t, store.Save(ctx, []byte{0x01, 0x02}))
	require.NoError(t, store.Save(ctx, []byte{0x03}))

	data, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03}, data)

	var rows int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&rows))
	assert.Equal(t, 1, rows, "Only one row should exist per blob name")

	other := blobstore.NewSQLite(db, "other")
	_, err = other.Load(ctx)
	assert.ErrorIs(t, err, blobstore.ErrNotFound, "Blobs are keyed by name")
}
