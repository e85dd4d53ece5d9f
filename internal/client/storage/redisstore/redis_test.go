package redisstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/tarotvn/tarot-client/internal/client/storage"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := NewWithClient(client)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	got, err := s.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	require.Nil(t, got, "absent key reads as nil")

	require.NoError(t, s.Set(ctx, storage.KeyToken, []byte("tok")))
	got, err = s.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("tok"), got)

	require.NoError(t, s.Delete(ctx, storage.KeyToken))
	got, err = s.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestStore_SetPairAndClear(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.SetPair(ctx, []byte("tok"), []byte(`{"id":"1"}`)))

	tok, err := s.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("tok"), tok)

	require.NoError(t, s.Clear(ctx))
	for _, key := range []string{storage.KeyToken, storage.KeyUser} {
		got, err := s.Get(ctx, key)
		require.NoError(t, err)
		require.Nil(t, got)
	}
}

func TestStore_ClearOnlyTouchesNamespace(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := NewWithClient(client)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, client.Set(ctx, "other:data", "keep", 0).Err())
	require.NoError(t, s.Set(ctx, storage.KeyToken, []byte("tok")))
	require.NoError(t, s.Clear(ctx))

	keep, err := client.Get(ctx, "other:data").Result()
	require.NoError(t, err)
	require.Equal(t, "keep", keep)
}
