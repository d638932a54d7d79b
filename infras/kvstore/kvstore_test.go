package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	t.Run("missing key reports not ok", func(t *testing.T) {
		value, ok, err := store.Get(ctx, "travelease:missing")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, value)
	})

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "travelease:users", []byte(`[{"id":1}]`)))

		value, ok, err := store.Get(ctx, "travelease:users")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `[{"id":1}]`, string(value))
	})

	t.Run("returned value is a copy", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "travelease:session", []byte(`{"id":1}`)))

		value, _, err := store.Get(ctx, "travelease:session")
		require.NoError(t, err)
		value[0] = 'x'

		again, _, err := store.Get(ctx, "travelease:session")
		require.NoError(t, err)
		assert.Equal(t, `{"id":1}`, string(again))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "travelease:wishlist", []byte(`[]`)))
		require.NoError(t, store.Delete(ctx, "travelease:wishlist"))

		_, ok, err := store.Get(ctx, "travelease:wishlist")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete of missing key is a no-op", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "travelease:never"))
	})
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	require.NoError(t, err)

	t.Run("missing key reports not ok", func(t *testing.T) {
		_, ok, err := store.Get(ctx, "travelease:missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "travelease:bookings", []byte(`[{"id":7}]`)))

		value, ok, err := store.Get(ctx, "travelease:bookings")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `[{"id":7}]`, string(value))
	})

	t.Run("entries survive reopening the store", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "travelease:history", []byte(`[{"id":3}]`)))

		reopened, err := NewFileStore(dir)
		require.NoError(t, err)

		value, ok, err := reopened.Get(ctx, "travelease:history")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `[{"id":3}]`, string(value))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "travelease:seq:users", []byte(`5`)))
		require.NoError(t, store.Delete(ctx, "travelease:seq:users"))

		_, ok, err := store.Get(ctx, "travelease:seq:users")
		require.NoError(t, err)
		assert.False(t, ok)

		assert.NoError(t, store.Delete(ctx, "travelease:seq:users"))
	})
}
