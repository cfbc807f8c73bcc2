package blob

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_RoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	data := []byte("Date,Amount\n2024-01-01,5.00\n")
	require.NoError(t, store.Put(ctx, "stmt-1.csv", data))

	got, err := store.Get(ctx, "stmt-1.csv")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	require.NoError(t, store.Delete(ctx, "stmt-1.csv"))
	_, err = store.Get(ctx, "stmt-1.csv")
	assert.Error(t, err)
}

func TestLocalStore_OverwriteReplaces(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k", []byte("one")))
	require.NoError(t, store.Put(ctx, "k", []byte("two")))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), got)
}

func TestLocalStore_RejectsPathLikeKeys(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"", "../escape", "a/b", `a\b`} {
		assert.Error(t, store.Put(ctx, key, []byte("x")), key)
		_, err := store.Get(ctx, key)
		assert.Error(t, err, key)
	}
}
