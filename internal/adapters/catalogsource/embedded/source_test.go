package embedded

import (
	"context"
	"testing"

	"pet-adoption-catalog/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledCatalogDecodes(t *testing.T) {
	raw, err := New().Fetch(context.Background())
	require.NoError(t, err)

	list, err := pets.Decode(raw)
	require.NoError(t, err)
	require.NotEmpty(t, list)

	rex, ok := pets.GetByID(list, "1")
	require.True(t, ok, "numeric ids are exposed as strings")
	assert.Equal(t, "Rex", rex.FirstName)

	for _, p := range list {
		assert.NotEmpty(t, p.FirstName, "pet %s", p.ID)
		assert.NotZero(t, p.BirthYear, "pet %s", p.ID)
	}
}

func TestFetchReturnsCopy(t *testing.T) {
	ctx := context.Background()
	a, err := New().Fetch(ctx)
	require.NoError(t, err)
	a[0] = 'X'

	b, err := New().Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, byte('['), b[0])
}

func TestFetchHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
