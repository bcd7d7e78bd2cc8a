package remote

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption-catalog/internal/domain/pets"
	"pet-adoption-catalog/internal/platform/httpclient"
)

// Source descarga el catálogo desde una URL (p.ej. el /data/pets.json de un CDN).
type Source struct {
	client *httpclient.Client
	target string // URL absoluta o path relativo a client.BaseURL
}

var _ pets.Source = (*Source)(nil)

type Config struct {
	URL string
	// Path opcional: si se define, URL es la base del sitio y Path el
	// documento relativo a ella ("/data/pets.json").
	Path    string
	Timeout time.Duration
}

func New(cfg Config) (*Source, error) {
	u := strings.TrimSpace(cfg.URL)
	if u == "" {
		return nil, errors.New("catalog url required")
	}
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return &Source{client: httpclient.New(cfg.Timeout), target: u}, nil
	}
	c, err := httpclient.NewWithBaseURL(u, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &Source{client: c, target: path}, nil
}

// NewWithClient permite inyectar el cliente (tests con httptest).
func NewWithClient(c *httpclient.Client, url string) *Source {
	return &Source{client: c, target: strings.TrimSpace(url)}
}

func (s *Source) Fetch(ctx context.Context) ([]byte, error) {
	b, err := s.client.Get(ctx, s.target, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	return b, nil
}
