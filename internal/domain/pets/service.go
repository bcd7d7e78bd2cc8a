package pets

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"pet-adoption-catalog/internal/platform/logger"
	"pet-adoption-catalog/internal/platform/metrics"

	"golang.org/x/sync/singleflight"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Store es la única fuente de verdad del catálogo durante la vida del proceso.
// Se construye una vez en el arranque y se inyecta a los handlers:
// carga una vez, lee muchas.
type Store struct {
	src     Source
	log     logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time

	loadTimeout time.Duration

	group singleflight.Group

	mu     sync.RWMutex
	loaded bool
	cache  []Pet
}

type StoreOptions struct {
	Logger  logger.Logger
	Metrics *metrics.Metrics // opcional
	Now     func() time.Time // nil => time.Now

	// LoadTimeout acota la carga compartida de la fuente. 0 => DefaultLoadTimeout.
	LoadTimeout time.Duration
}

const DefaultLoadTimeout = 30 * time.Second

func NewStore(src Source, opts StoreOptions) *Store {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	timeout := opts.LoadTimeout
	if timeout <= 0 {
		timeout = DefaultLoadTimeout
	}
	return &Store{
		src:         src,
		log:         log.With(map[string]any{"component": "catalog"}),
		metrics:     opts.Metrics,
		now:         now,
		loadTimeout: timeout,
	}
}

// Now expone el reloj del store para derivar edades de forma consistente.
func (s *Store) Now() time.Time {
	return s.now()
}

// Load devuelve el catálogo completo. La primera llamada parsea la fuente y
// memoiza; llamadas concurrentes durante esa carga comparten el mismo parse.
// Si la fuente falla o está malformada devuelve vacío y loguea: el caller
// trata vacío como "sin datos". El fallo no se memoiza.
//
// La carga compartida no hereda la cancelación del primer caller: un caller
// cancelado recibe vacío, los demás siguen esperando el resultado.
func (s *Store) Load(ctx context.Context) []Pet {
	s.mu.RLock()
	if s.loaded {
		out := slices.Clone(s.cache)
		s.mu.RUnlock()
		return out
	}
	s.mu.RUnlock()

	ch := s.group.DoChan("catalog", func() (any, error) {
		// otra goroutine pudo terminar la carga mientras esperábamos
		s.mu.RLock()
		if s.loaded {
			defer s.mu.RUnlock()
			return s.cache, nil
		}
		s.mu.RUnlock()

		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.loadTimeout)
		defer cancel()

		list, err := s.fetch(fetchCtx)
		if err != nil {
			s.log.Error("catalog load failed", map[string]any{"error": err})
			s.observeLoad("error", 0)
			return nil, err
		}

		s.mu.Lock()
		s.cache = list
		s.loaded = true
		s.mu.Unlock()
		return list, nil
	})

	select {
	case <-ctx.Done():
		return []Pet{}
	case res := <-ch:
		if res.Err != nil {
			return []Pet{}
		}
		return slices.Clone(res.Val.([]Pet))
	}
}

func (s *Store) fetch(ctx context.Context) ([]Pet, error) {
	if s.src == nil {
		return nil, errors.New("catalog source not configured")
	}
	raw, err := s.src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	list, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	s.log.Info("catalog loaded", map[string]any{"pets": len(list)})
	s.observeLoad("ok", len(list))
	return list, nil
}

func (s *Store) observeLoad(result string, size int) {
	if s.metrics == nil {
		return
	}
	s.metrics.CatalogLoads.WithLabelValues(result).Inc()
	if result == "ok" {
		s.metrics.CatalogSize.Set(float64(size))
	}
}

func (s *Store) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	p, ok := GetByID(s.Load(ctx), id)
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

// Options son los valores distintos para poblar los controles de filtro.
type Options struct {
	AnimalTypes []string
	Genders     []string
	AgeBrackets []AgeBracket
}

func (s *Store) Options(ctx context.Context) Options {
	list := s.Load(ctx)
	return Options{
		AnimalTypes: UniqueAnimalTypes(list),
		Genders:     UniqueGenders(list),
		AgeBrackets: slices.Clone(AllBrackets),
	}
}

// Search aplica Query sobre el catálogo y pagina el resultado.
func (s *Store) Search(ctx context.Context, c Criteria, page, pageSize int) Page {
	return Paginate(Query(s.Load(ctx), c, s.now()), page, pageSize)
}
