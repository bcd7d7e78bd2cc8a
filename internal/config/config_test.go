package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) lookupFunc {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 3, cfg.Recency.Cap)
	assert.Equal(t, 12, cfg.Server.PageSize)
	assert.Equal(t, SourceEmbedded, cfg.Catalog.Source)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9090"
  read_timeout: 2s
recency:
  cap: 10
catalog:
  source: file
  path: /srv/pets.json
storage:
  driver: sqlite
  sqlite_path: /tmp/recent.db
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout, "unset keys keep defaults")
	assert.Equal(t, 10, cfg.Recency.Cap)
	assert.Equal(t, SourceFile, cfg.Catalog.Source)
	assert.Equal(t, "/srv/pets.json", cfg.Catalog.Path)
	assert.Equal(t, StorageSQLite, cfg.Storage.Driver)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(envMap(map[string]string{
		"PORT":                   "7070",
		"LOG_LEVEL":              "debug",
		"CATALOG_SOURCE":         "http",
		"CATALOG_URL":            "https://cdn.example.org/data/pets.json",
		"RECENCY_CAP":            "5",
		"ADOPTIONS_RATE_PER_MIN": "0",
		"CATALOG_S3_PATH_STYLE":  "TRUE",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, SourceHTTP, cfg.Catalog.Source)
	assert.Equal(t, 5, cfg.Recency.Cap)
	assert.Equal(t, 0, cfg.Adoptions.RatePerMinute)
	assert.True(t, cfg.Catalog.S3.PathStyle)
	require.NoError(t, cfg.Validate())
}

func TestApplyEnv_DSNImpliesPostgres(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.applyEnv(envMap(map[string]string{"DB_DSN": "postgres://localhost/pets"})))
	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)

	cfg = Default()
	require.NoError(t, cfg.applyEnv(envMap(map[string]string{
		"DB_DSN":         "postgres://localhost/pets",
		"STORAGE_DRIVER": "sqlite",
	})))
	assert.Equal(t, StorageSQLite, cfg.Storage.Driver)
}

func TestApplyEnv_BadInteger(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(envMap(map[string]string{"RECENCY_CAP": "three"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RECENCY_CAP")
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Recency.Cap = 0
	cfg.Server.PageSize = 0
	cfg.Catalog.Source = SourceS3
	cfg.Storage.Driver = StoragePostgres

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"recency.cap", "server.page_size", "catalog.s3", "storage.dsn"} {
		assert.Contains(t, err.Error(), want)
	}

	cfg = Default()
	cfg.Catalog.Source = "ftp"
	cfg.Storage.Driver = "redis"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown catalog.source "ftp"`)
	assert.Contains(t, err.Error(), `unknown storage.driver "redis"`)
}
