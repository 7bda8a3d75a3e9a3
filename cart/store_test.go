package cart

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/models"
)

type fakeKV struct {
	data map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) Get(ctx context.Context, key string) *redis.StringCmd {
	if v, ok := f.data[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeKV) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeKV) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(f.data, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestStore_AddAndList(t *testing.T) {
	store := NewStore(newFakeKV())
	ctx := context.Background()

	err := store.Add(ctx, 1, models.CartItem{ID: 10, Title: "A", Price: 10.00})
	require.NoError(t, err)
	err = store.Add(ctx, 1, models.CartItem{ID: 20, Title: "B", Price: 5.50})
	require.NoError(t, err)

	items, err := store.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, uint(10), items[0].ID)
	assert.Equal(t, uint(20), items[1].ID)
}

func TestStore_AddDuplicateRejected(t *testing.T) {
	store := NewStore(newFakeKV())
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, 1, models.CartItem{ID: 10, Title: "A", Price: 10.00}))

	err := store.Add(ctx, 1, models.CartItem{ID: 10, Title: "A", Price: 10.00})
	assert.ErrorIs(t, err, ErrDuplicateItem)

	items, err := store.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestStore_RemoveAbsentIsNoOp(t *testing.T) {
	store := NewStore(newFakeKV())
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, 1, models.CartItem{ID: 10, Title: "A", Price: 10.00}))
	require.NoError(t, store.Remove(ctx, 1, 999))

	items, err := store.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint(10), items[0].ID)
}

func TestStore_Remove(t *testing.T) {
	store := NewStore(newFakeKV())
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, 1, models.CartItem{ID: 10, Title: "A", Price: 10.00}))
	require.NoError(t, store.Add(ctx, 1, models.CartItem{ID: 20, Title: "B", Price: 5.50}))
	require.NoError(t, store.Remove(ctx, 1, 10))

	items, err := store.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint(20), items[0].ID)
}

func TestStore_ListEmptyCart(t *testing.T) {
	store := NewStore(newFakeKV())

	items, err := store.List(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStore_CartsAreIsolatedPerUser(t *testing.T) {
	store := NewStore(newFakeKV())
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, 1, models.CartItem{ID: 10, Title: "A", Price: 10.00}))
	require.NoError(t, store.Add(ctx, 2, models.CartItem{ID: 20, Title: "B", Price: 5.50}))

	items1, err := store.List(ctx, 1)
	require.NoError(t, err)
	items2, err := store.List(ctx, 2)
	require.NoError(t, err)

	require.Len(t, items1, 1)
	require.Len(t, items2, 1)
	assert.Equal(t, uint(10), items1[0].ID)
	assert.Equal(t, uint(20), items2[0].ID)
}

func TestStore_Clear(t *testing.T) {
	store := NewStore(newFakeKV())
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, 1, models.CartItem{ID: 10, Title: "A", Price: 10.00}))
	require.NoError(t, store.Clear(ctx, 1))

	items, err := store.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}
