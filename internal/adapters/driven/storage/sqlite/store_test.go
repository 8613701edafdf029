package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// TestStore_PutGet tests basic storage and retrieval
func TestStore_PutGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "lugal", "𒈗"))

	glyph, ok, err := store.Get(ctx, "lugal")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "𒈗", glyph)
}

// TestStore_GetMissing tests a miss
func TestStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	_, ok, err := store.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestStore_Upsert tests that Put replaces an existing mapping
func TestStore_Upsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "lugal", "old"))
	require.NoError(t, store.Put(ctx, "lugal", "𒈗"))

	glyph, ok, err := store.Get(ctx, "lugal")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "𒈗", glyph)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// TestStore_Delete tests removal, including of an absent sign
func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "lugal", "𒈗"))
	require.NoError(t, store.Delete(ctx, "lugal"))
	require.NoError(t, store.Delete(ctx, "absent"))

	_, ok, err := store.Get(ctx, "lugal")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestStore_All tests listing every mapping
func TestStore_All(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "lugal", "𒈗"))
	require.NoError(t, store.Put(ctx, "a", "𒀀"))

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"lugal": "𒈗", "a": "𒀀"}, all)
}

// TestStore_Path tests the database location
func TestStore_Path(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "signs.db"), store.Path())
}

// TestStore_Reopen tests that data persists and migrations are
// idempotent across reopens
func TestStore_Reopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "lugal", "𒈗"))
	require.NoError(t, store.Close())

	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	glyph, ok, err := store.Get(ctx, "lugal")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "𒈗", glyph)
}
