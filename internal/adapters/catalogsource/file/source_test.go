package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_Fetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pets.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":1,"birthYear":2020}]`), 0o600))

	src, err := New(path)
	require.NoError(t, err)

	raw, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"birthYear":2020}]`, string(raw))
}

func TestSource_MissingFile(t *testing.T) {
	src, err := New(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	_, err = src.Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNew_RequiresPath(t *testing.T) {
	_, err := New("  ")
	require.Error(t, err)
}
