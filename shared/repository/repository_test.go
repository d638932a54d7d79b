package repository

import (
	"context"
	"testing"
	"travelease/infras/kvstore"
	"travelease/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestCollection(t *testing.T) {
	ctx := context.Background()

	t.Run("GetAll on an unwritten key returns an empty collection", func(t *testing.T) {
		coll := NewCollection[testItem]("items", kvstore.NewMemoryStore(), mocks.NewOtel())

		items, err := coll.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.NotNil(t, items)
	})

	t.Run("ReplaceAll then GetAll preserves items and order", func(t *testing.T) {
		coll := NewCollection[testItem]("items", kvstore.NewMemoryStore(), mocks.NewOtel())

		want := []testItem{{ID: 1, Name: "first"}, {ID: 2, Name: "second"}}
		require.NoError(t, coll.ReplaceAll(ctx, want))

		got, err := coll.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Append keeps existing items", func(t *testing.T) {
		coll := NewCollection[testItem]("items", kvstore.NewMemoryStore(), mocks.NewOtel())

		require.NoError(t, coll.Append(ctx, testItem{ID: 1, Name: "first"}))
		require.NoError(t, coll.Append(ctx, testItem{ID: 2, Name: "second"}))

		got, err := coll.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "first", got[0].Name)
		assert.Equal(t, "second", got[1].Name)
	})

	t.Run("ReplaceAll with nil stores an empty collection", func(t *testing.T) {
		coll := NewCollection[testItem]("items", kvstore.NewMemoryStore(), mocks.NewOtel())

		require.NoError(t, coll.ReplaceAll(ctx, []testItem{{ID: 1}}))
		require.NoError(t, coll.ReplaceAll(ctx, nil))

		got, err := coll.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("NextID is monotonic and survives deletions", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		coll := NewCollection[testItem]("items", store, mocks.NewOtel())

		first, err := coll.NextID(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, first)

		second, err := coll.NextID(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, second)

		// Emptying the collection must not reset the counter.
		require.NoError(t, coll.ReplaceAll(ctx, nil))

		third, err := coll.NextID(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, third)
	})

	t.Run("collections with different names do not collide", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		left := NewCollection[testItem]("left", store, mocks.NewOtel())
		right := NewCollection[testItem]("right", store, mocks.NewOtel())

		require.NoError(t, left.Append(ctx, testItem{ID: 1}))

		items, err := right.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestSingleton(t *testing.T) {
	ctx := context.Background()

	t.Run("Get before Put reports not ok", func(t *testing.T) {
		single := NewSingleton[testItem]("session", kvstore.NewMemoryStore(), mocks.NewOtel())

		_, ok, err := single.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Put then Get round trips", func(t *testing.T) {
		single := NewSingleton[testItem]("session", kvstore.NewMemoryStore(), mocks.NewOtel())

		require.NoError(t, single.Put(ctx, testItem{ID: 9, Name: "active"}))

		got, ok, err := single.Get(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, testItem{ID: 9, Name: "active"}, got)
	})

	t.Run("Clear removes the value and tolerates repeats", func(t *testing.T) {
		single := NewSingleton[testItem]("session", kvstore.NewMemoryStore(), mocks.NewOtel())

		require.NoError(t, single.Put(ctx, testItem{ID: 9}))
		require.NoError(t, single.Clear(ctx))

		_, ok, err := single.Get(ctx)
		require.NoError(t, err)
		assert.False(t, ok)

		assert.NoError(t, single.Clear(ctx))
	})
}

func TestCollectionKey(t *testing.T) {
	assert.Equal(t, "travelease:users", CollectionKey("users"))
	assert.Equal(t, "travelease:seq:users", sequenceKey("users"))
}
