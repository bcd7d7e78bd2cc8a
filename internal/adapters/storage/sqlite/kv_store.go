package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pet-adoption-catalog/internal/domain/viewed"

	_ "modernc.org/sqlite" // driver sqlite en Go puro
)

// KVStore persiste las listas de recientes en un archivo SQLite local.
type KVStore struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

var _ viewed.Storage = (*KVStore)(nil)

// Open abre (o crea) la base en path y asegura el esquema.
func Open(ctx context.Context, path string) (*KVStore, error) {
	if strings.TrimSpace(path) == "" {
		path = "pet-adoption.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// sqlite serializa escrituras; una conexión evita SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS visitor_state (
		state_key  TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create visitor_state: %w", err)
	}

	return &KVStore{db: db, path: path, now: time.Now}, nil
}

func (s *KVStore) Path() string { return s.path }

func (s *KVStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM visitor_state WHERE state_key = ?`, key,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("select visitor_state: %w", err)
	}
	return payload, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("key required")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitor_state (state_key, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(state_key) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, key, value, s.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("upsert visitor_state: %w", err)
	}
	return nil
}
