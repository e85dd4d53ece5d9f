package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tarotvn/tarot-client/internal/client/storage"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), "file:sessionstate?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Clear(context.Background())
		_ = s.Close()
	})
	return s
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	got, err := s.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, s.Set(ctx, storage.KeyToken, []byte("tok")))
	require.NoError(t, s.Set(ctx, storage.KeyToken, []byte("tok-2")), "upsert replaces")

	got, err = s.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("tok-2"), got)

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

	user, err := s.Get(ctx, storage.KeyUser)
	require.NoError(t, err)
	require.Equal(t, []byte(`{"id":"1"}`), user)

	require.NoError(t, s.Clear(ctx))
	for _, key := range []string{storage.KeyToken, storage.KeyUser} {
		got, err := s.Get(ctx, key)
		require.NoError(t, err)
		require.Nil(t, got)
	}
}
