package router

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	_ "pet-adoption-catalog/docs"
	"pet-adoption-catalog/internal/adapters/catalogsource/embedded"
	mem "pet-adoption-catalog/internal/adapters/storage/memory"
	pg "pet-adoption-catalog/internal/adapters/storage/postgres"
	"pet-adoption-catalog/internal/domain/adoptions"
	"pet-adoption-catalog/internal/domain/pets"
	"pet-adoption-catalog/internal/domain/viewed"
	"pet-adoption-catalog/internal/middleware"
	"pet-adoption-catalog/internal/platform/logger"
	"pet-adoption-catalog/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger  logger.Logger    // nil => nop
	Metrics *metrics.Metrics // nil => registry propio

	// Catálogo: si no viene Store ni Source, se usa el JSON embebido.
	Store  *pets.Store
	Source pets.Source
	Now    func() time.Time // reloj del store creado acá; nil => time.Now

	// Storage de recientes. Si no viene, usa Postgres con DB; si tampoco, in-memory.
	Storage viewed.Storage
	DB      *sql.DB

	RecencyCap     int
	CachedVisitors int
	PageSize       int

	// TrustProxy toma la IP del cliente de X-Forwarded-For/X-Real-IP.
	// Sin él se usa la dirección del socket.
	TrustProxy bool

	// AdoptionsPerMinute por IP; 0 = sin límite.
	AdoptionsPerMinute int
	AdoptionsBurst     int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	if opts.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestLog(log, m))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Visitor())

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	store := opts.Store
	if store == nil {
		src := opts.Source
		if src == nil {
			src = embedded.New()
		}
		store = pets.NewStore(src, pets.StoreOptions{Logger: log, Metrics: m, Now: opts.Now})
	}

	storage := opts.Storage
	if storage == nil {
		if opts.DB != nil {
			storage = pg.NewKVStore(opts.DB)
		} else {
			storage = mem.NewKVStore()
		}
	}

	viewedSvc, err := viewed.NewService(storage, viewed.Options{
		Cap:            opts.RecencyCap,
		CachedVisitors: opts.CachedVisitors,
		Logger:         log,
		Metrics:        m,
	})
	if err != nil {
		// solo falla con storage nil, que ya se resolvió arriba
		panic(fmt.Sprintf("router: recency service: %v", err))
	}
	adoptionsSvc := adoptions.NewService(store, log, m)

	// Rutas por módulo
	pets.RegisterRoutes(r, store, pets.HandlerOptions{
		PageSize: opts.PageSize,
		Views:    viewedSvc,
		Logger:   log,
	})
	viewed.RegisterRoutes(r, viewedSvc, store)

	var limit func(http.Handler) http.Handler
	if opts.AdoptionsPerMinute > 0 {
		limit = middleware.NewRateLimiter(opts.AdoptionsPerMinute, opts.AdoptionsBurst).Middleware
	}
	adoptions.RegisterRoutes(r, adoptionsSvc, limit)

	return r
}
