package doc

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "test.sqlite"), time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "file:///a.json", `{"a":1}`))

	text, revision, err := store.Load(ctx, "file:///a.json")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, text)
	assert.Equal(t, int64(1), revision)
}

func TestStoreSaveBumpsRevision(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "file:///a.json", `{"a":1}`))
	require.NoError(t, store.Save(ctx, "file:///a.json", `{"a":2}`))

	text, revision, err := store.Load(ctx, "file:///a.json")
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, text)
	assert.Equal(t, int64(2), revision)
}

func TestStoreLoadMissingDocument(t *testing.T) {
	store := newTestStore(t)

	_, _, err := store.Load(context.Background(), "file:///missing.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "file:///a.json", "{}"))
	require.NoError(t, store.Delete(ctx, "file:///a.json"))

	_, _, err := store.Load(ctx, "file:///a.json")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing document is not an error.
	require.NoError(t, store.Delete(ctx, "file:///a.json"))
}
