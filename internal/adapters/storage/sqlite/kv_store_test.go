package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"pet-adoption-catalog/internal/domain/viewed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *KVStore {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "recent.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestKVStore_GetSetUpsert(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, found, err := s.Get(ctx, "viewed_pets:v1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "viewed_pets:v1", `["1"]`))
	require.NoError(t, s.Set(ctx, "viewed_pets:v1", `["2","1"]`))

	v, found, err := s.Get(ctx, "viewed_pets:v1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `["2","1"]`, v)

	require.Error(t, s.Set(ctx, "", "x"))
}

func TestKVStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "recent.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	svc, err := viewed.NewService(s, viewed.Options{Cap: 3})
	require.NoError(t, err)
	for _, id := range []string{"1", "2", "3", "4"} {
		require.NoError(t, svc.AddViewed(ctx, "v1", id))
	}
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()
	assert.Equal(t, path, reopened.Path())

	svc, err = viewed.NewService(reopened, viewed.Options{Cap: 3})
	require.NoError(t, err)
	ids, err := svc.List(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "3", "2"}, ids)
}

func TestKVStore_CloseNil(t *testing.T) {
	var s *KVStore
	assert.NoError(t, s.Close())
}
