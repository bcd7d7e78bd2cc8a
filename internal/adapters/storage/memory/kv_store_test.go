package memory

import (
	"context"
	"testing"

	"pet-adoption-catalog/internal/domain/viewed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore_GetSet(t *testing.T) {
	ctx := context.Background()
	s := NewKVStore()

	_, found, err := s.Get(ctx, "viewed_pets:v1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "viewed_pets:v1", `["1"]`))
	require.NoError(t, s.Set(ctx, "viewed_pets:v1", `["2","1"]`))

	v, found, err := s.Get(ctx, "viewed_pets:v1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `["2","1"]`, v)

	require.Error(t, s.Set(ctx, " ", "x"))
}

func TestKVStore_BacksRecencyService(t *testing.T) {
	ctx := context.Background()
	s := NewKVStore()

	svc, err := viewed.NewService(s, viewed.Options{Cap: 3})
	require.NoError(t, err)
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, svc.AddViewed(ctx, "v1", id))
	}

	raw, found, err := s.Get(ctx, viewed.StorageKey("v1"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"d", "c", "b"}, viewed.Decode(raw))
}
