package viewed

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-adoption-catalog/internal/domain/pets"
	"pet-adoption-catalog/internal/platform/logger"
	"pet-adoption-catalog/internal/platform/metrics"

	lru "github.com/hashicorp/golang-lru/v2"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

const defaultCachedVisitors = 4096

// Catalog es lo mínimo que necesitamos del store de pets para resolver ids.
type Catalog interface {
	Load(ctx context.Context) []pets.Pet
}

// Service mantiene un Tracker por visitante. Los trackers viven en un LRU en
// memoria: si el storage falla (lectura o escritura) se loguea y el visitante
// sigue con su lista en memoria mientras no sea desalojado.
type Service struct {
	storage Storage
	cap     int
	log     logger.Logger
	metrics *metrics.Metrics

	// mu serializa lectura-modificación-escritura de cada lista.
	mu       sync.Mutex
	trackers *lru.Cache[string, *Tracker]
}

type Options struct {
	Cap            int // default DefaultCap
	CachedVisitors int // default 4096
	Logger         logger.Logger
	Metrics        *metrics.Metrics
}

func NewService(storage Storage, opts Options) (*Service, error) {
	if storage == nil {
		return nil, errors.New("viewed: storage required")
	}
	if opts.Cap < 1 {
		opts.Cap = DefaultCap
	}
	if opts.CachedVisitors < 1 {
		opts.CachedVisitors = defaultCachedVisitors
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	cache, err := lru.New[string, *Tracker](opts.CachedVisitors)
	if err != nil {
		return nil, err
	}

	return &Service{
		storage:  storage,
		cap:      opts.Cap,
		log:      opts.Logger.With(map[string]any{"component": "recency"}),
		metrics:  opts.Metrics,
		trackers: cache,
	}, nil
}

func (s *Service) Cap() int { return s.cap }

// AddViewed pone petID al frente de la lista del visitante y persiste.
// Un fallo de escritura no se propaga: queda solo en memoria.
func (s *Service) AddViewed(ctx context.Context, visitorID, petID string) error {
	visitorID = strings.TrimSpace(visitorID)
	petID = strings.TrimSpace(petID)
	if visitorID == "" || petID == "" {
		return ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tracker(ctx, visitorID)
	t.Add(petID)
	s.persist(ctx, visitorID, t)

	if s.metrics != nil {
		s.metrics.ViewsRecorded.Inc()
	}
	return nil
}

func (s *Service) IsViewed(ctx context.Context, visitorID, petID string) (bool, error) {
	visitorID = strings.TrimSpace(visitorID)
	if visitorID == "" {
		return false, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tracker(ctx, visitorID).IsViewed(strings.TrimSpace(petID)), nil
}

// Clear vacía la lista y persiste el estado vacío.
func (s *Service) Clear(ctx context.Context, visitorID string) error {
	visitorID = strings.TrimSpace(visitorID)
	if visitorID == "" {
		return ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tracker(ctx, visitorID)
	t.Clear()
	s.persist(ctx, visitorID, t)
	return nil
}

// List devuelve los ids, más reciente primero.
func (s *Service) List(ctx context.Context, visitorID string) ([]string, error) {
	visitorID = strings.TrimSpace(visitorID)
	if visitorID == "" {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tracker(ctx, visitorID).IDs(), nil
}

// Recent resuelve la lista del visitante a registros completos, en orden.
// Ids que ya no están en el catálogo se omiten. limit <= 0 => todos.
func (s *Service) Recent(ctx context.Context, visitorID string, catalog Catalog, limit int) ([]pets.Pet, error) {
	ids, err := s.List(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return Resolve(ctx, ids, catalog), nil
}

// Resolve mapea ids a pets del catálogo conservando el orden. Los ids que ya
// no están en el catálogo se omiten.
func Resolve(ctx context.Context, ids []string, catalog Catalog) []pets.Pet {
	if len(ids) == 0 {
		return []pets.Pet{}
	}
	all := catalog.Load(ctx)
	out := make([]pets.Pet, 0, len(ids))
	for _, id := range ids {
		if p, ok := pets.GetByID(all, id); ok {
			out = append(out, p)
		}
	}
	return out
}

// tracker devuelve el tracker en memoria o lo inicializa desde storage.
// Requiere s.mu tomado.
func (s *Service) tracker(ctx context.Context, visitorID string) *Tracker {
	if t, ok := s.trackers.Get(visitorID); ok {
		return t
	}

	var ids []string
	raw, found, err := s.storage.Get(ctx, StorageKey(visitorID))
	switch {
	case err != nil:
		s.log.Warn("recency storage read failed", map[string]any{"visitor_id": visitorID, "error": err})
		s.storageFailure("get")
	case found:
		ids = Decode(raw)
	}

	t := NewTracker(s.cap, ids)
	s.trackers.Add(visitorID, t)
	return t
}

// persist escribe la lista; los fallos se loguean y se ignoran.
// Requiere s.mu tomado.
func (s *Service) persist(ctx context.Context, visitorID string, t *Tracker) {
	if err := s.storage.Set(ctx, StorageKey(visitorID), Encode(t.IDs())); err != nil {
		s.log.Warn("recency storage write failed", map[string]any{"visitor_id": visitorID, "error": err})
		s.storageFailure("set")
	}
}

func (s *Service) storageFailure(op string) {
	if s.metrics != nil {
		s.metrics.StorageFailures.WithLabelValues(op).Inc()
	}
}
