package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"pet-adoption-catalog/internal/domain/pets"
)

// Source lee el catálogo desde un archivo JSON local.
type Source struct {
	path string
}

var _ pets.Source = (*Source)(nil)

func New(path string) (*Source, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("catalog file path required")
	}
	return &Source{path: path}, nil
}

func (s *Source) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return b, nil
}
