package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tropicaldog17/cryptofolio/internal/db"
)

// testKVContract exercises the behavior every KV must share.
func testKVContract(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	_, err := kv.Get(ctx, "crypto-transactions")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Put(ctx, "crypto-transactions", []byte(`[{"id":"a"}]`)))
	got, err := kv.Get(ctx, "crypto-transactions")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(got))

	require.NoError(t, kv.Put(ctx, "crypto-transactions", []byte(`[]`)))
	got, err = kv.Get(ctx, "crypto-transactions")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got), "second put replaces the record")

	_, err = kv.Get(ctx, "other")
	assert.ErrorIs(t, err, ErrNotFound, "keys are independent")
}

func TestMemoryKV(t *testing.T) {
	testKVContract(t, NewMemoryKV())
}

func TestMemoryKVFailPuts(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Put(ctx, "k", []byte("old")))

	quota := errors.New("quota exceeded")
	kv.FailPuts(quota)
	assert.ErrorIs(t, kv.Put(ctx, "k", []byte("new")), quota)

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "old", string(got), "failed put leaves the record untouched")

	kv.FailPuts(nil)
	require.NoError(t, kv.Put(ctx, "k", []byte("new")))
}

func TestMemoryKVCopiesValues(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	v := []byte("abc")
	require.NoError(t, kv.Put(ctx, "k", v))
	v[0] = 'x'

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestFileKV(t *testing.T) {
	kv, err := NewFileKV(filepath.Join(t.TempDir(), "store"))
	require.NoError(t, err)
	testKVContract(t, kv)
}

func TestFileKVLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	require.NoError(t, err)
	require.NoError(t, kv.Put(context.Background(), "a/b", []byte("v")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a%2Fb.json", entries[0].Name())
}

func TestFileKVCancelledContext(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, kv.Put(ctx, "k", []byte("v")), context.Canceled)
}

func TestGormKVSQLite(t *testing.T) {
	database, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer database.Close()

	kv, err := NewGormKV(database)
	require.NoError(t, err)
	testKVContract(t, kv)

	var count int64
	require.NoError(t, database.Model(&Record{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "upsert keeps a single row per key")
}

func TestGormKVSQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.db")
	ctx := context.Background()

	database, err := db.OpenSQLite(path)
	require.NoError(t, err)
	kv, err := NewGormKV(database)
	require.NoError(t, err)
	require.NoError(t, kv.Put(ctx, "k", []byte("persisted")))
	require.NoError(t, database.Close())

	reopened, err := db.OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()
	kv, err = NewGormKV(reopened)
	require.NoError(t, err)

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "persisted", string(got))
}
