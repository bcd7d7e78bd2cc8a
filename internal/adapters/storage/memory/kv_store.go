package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-adoption-catalog/internal/domain/viewed"
)

// KVStore guarda las listas de recientes en memoria del proceso (modo dev o
// cuando no hay storage durable configurado). Se pierde al reiniciar.
type KVStore struct {
	mu    sync.RWMutex
	byKey map[string]string
}

var _ viewed.Storage = (*KVStore)(nil)

func NewKVStore() *KVStore {
	return &KVStore{
		byKey: make(map[string]string),
	}
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byKey[key]
	return v, ok, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("key required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byKey[key] = value
	return nil
}
