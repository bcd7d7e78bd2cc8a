package main

import (
	"context"
	"fmt"
	"io"

	"pet-adoption-catalog/internal/adapters/catalogsource/embedded"
	"pet-adoption-catalog/internal/adapters/catalogsource/file"
	"pet-adoption-catalog/internal/adapters/catalogsource/remote"
	s3src "pet-adoption-catalog/internal/adapters/catalogsource/s3"
	mem "pet-adoption-catalog/internal/adapters/storage/memory"
	pg "pet-adoption-catalog/internal/adapters/storage/postgres"
	"pet-adoption-catalog/internal/adapters/storage/sqlite"
	"pet-adoption-catalog/internal/config"
	"pet-adoption-catalog/internal/domain/pets"
	"pet-adoption-catalog/internal/domain/viewed"
	"pet-adoption-catalog/internal/platform/logger"
)

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, out io.Writer) logger.Logger {
	app := cfg.Log.App
	if app == "" {
		app = appName
	}
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    app,
		Output: out,
	})
}

func buildSource(ctx context.Context, cfg *config.Config) (pets.Source, error) {
	switch cfg.Catalog.Source {
	case config.SourceEmbedded, "":
		return embedded.New(), nil
	case config.SourceFile:
		return file.New(cfg.Catalog.Path)
	case config.SourceHTTP:
		return remote.New(remote.Config{URL: cfg.Catalog.URL, Path: cfg.Catalog.Path, Timeout: cfg.Catalog.Timeout})
	case config.SourceS3:
		return s3src.New(ctx, s3src.Config{
			Bucket:    cfg.Catalog.S3.Bucket,
			Key:       cfg.Catalog.S3.Key,
			Region:    cfg.Catalog.S3.Region,
			Endpoint:  cfg.Catalog.S3.Endpoint,
			PathStyle: cfg.Catalog.S3.PathStyle,
		})
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

// buildStorage devuelve el storage de recientes y su closer (no-op para memory).
func buildStorage(ctx context.Context, cfg *config.Config) (viewed.Storage, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Storage.Driver {
	case config.StorageMemory, "":
		return mem.NewKVStore(), noop, nil
	case config.StorageSQLite:
		s, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.StoragePostgres:
		db, err := pg.Open(cfg.Storage.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		s := pg.NewKVStore(db)
		if err := s.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return s, db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
