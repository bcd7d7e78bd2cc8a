package pets

import "context"

// Source entrega el documento JSON crudo del catálogo.
// Implementaciones en adapters/catalogsource (embebido, archivo, http, s3).
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// SourceFunc adapta una función a Source (útil en tests).
type SourceFunc func(ctx context.Context) ([]byte, error)

func (f SourceFunc) Fetch(ctx context.Context) ([]byte, error) { return f(ctx) }
