package kv

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return NewRedis(client), mr
}

func testStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "key", []byte("value")))

	got, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got)

	require.NoError(t, store.Set(ctx, "key", []byte("replaced")))
	got, err = store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("replaced"), got)

	require.NoError(t, store.Delete(ctx, "key"))
	_, err = store.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is not an error.
	require.NoError(t, store.Delete(ctx, "key"))
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemory())
}

func TestRedisStore(t *testing.T) {
	store, _ := newRedisStore(t)
	testStore(t, store)
}

func TestMemoryIsolatesValues(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	original := []byte("value")
	require.NoError(t, store.Set(ctx, "key", original))

	// Mutating the caller's slice after Set must not reach the store.
	original[0] = 'X'
	got, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got)

	// Mutating the returned slice must not corrupt the stored value.
	got[0] = 'Y'
	again, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), again)
}

func TestRedisStorePersistsWithoutTTL(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "key", []byte("value")))

	// Expiry is enforced by readers, never by the backend.
	assert.Equal(t, time.Duration(0), mr.TTL("key"))
}

func TestRedisStoreUnavailable(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	mr.Close()

	_, err := store.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrUnavailable)

	err = store.Set(ctx, "key", []byte("value"))
	assert.ErrorIs(t, err, ErrUnavailable)

	err = store.Delete(ctx, "key")
	assert.ErrorIs(t, err, ErrUnavailable)
}
