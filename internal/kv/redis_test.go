package kv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis server and returns a RedisStore instance
func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client), mr
}

func TestRedisStore_GetMissingKey(t *testing.T) {
	store, _ := setupTestRedis(t)

	_, err := store.Get(context.Background(), "orders:nobody")

	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRedisStore_SetThenGet(t *testing.T) {
	store, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "orders:u1", `["a"]`))

	value, err := store.Get(ctx, "orders:u1")
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, value)
}

func TestRedisStore_Remove(t *testing.T) {
	store, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "orders:u1", "x"))
	require.NoError(t, store.Remove(ctx, "orders:u1"))

	_, err := store.Get(ctx, "orders:u1")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRedisStore_RemoveMissingKeyIsNoError(t *testing.T) {
	store, _ := setupTestRedis(t)

	assert.NoError(t, store.Remove(context.Background(), "orders:ghost"))
}

func TestRedisStore_GetAfterServerError(t *testing.T) {
	store, mr := setupTestRedis(t)
	mr.Close()

	_, err := store.Get(context.Background(), "orders:u1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrKeyNotFound)
}
