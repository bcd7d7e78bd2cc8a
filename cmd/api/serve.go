package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-adoption-catalog/internal/domain/pets"
	"pet-adoption-catalog/internal/platform/logger"
	"pet-adoption-catalog/internal/platform/metrics"
	"pet-adoption-catalog/internal/router"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(configPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), *configPath, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr / PORT)")
	return cmd
}

func runServe(ctx context.Context, configPath, addrOverride string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if addrOverride != "" {
		cfg.Server.Addr = addrOverride
	}

	log := newLogger(cfg, nil)
	defer syncLogger(log)

	m := metrics.New()

	src, err := buildSource(ctx, cfg)
	if err != nil {
		return err
	}
	storage, closeStorage, err := buildStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStorage(); err != nil {
			log.Warn("close storage failed", map[string]any{"error": err})
		}
	}()

	store := pets.NewStore(src, pets.StoreOptions{Logger: log, Metrics: m})
	// Precarga: si la fuente está rota se ve en el arranque, no en el primer request.
	if n := len(store.Load(ctx)); n == 0 {
		log.Warn("catalog is empty", map[string]any{"source": cfg.Catalog.Source})
	} else {
		log.Info("catalog loaded", map[string]any{"source": cfg.Catalog.Source, "pets": n})
	}

	r := router.NewRouter(router.Options{
		Logger:             log,
		Metrics:            m,
		Store:              store,
		Storage:            storage,
		RecencyCap:         cfg.Recency.Cap,
		CachedVisitors:     cfg.Recency.CachedVisitors,
		PageSize:           cfg.Server.PageSize,
		TrustProxy:         cfg.Server.TrustProxy,
		AdoptionsPerMinute: cfg.Adoptions.RatePerMinute,
		AdoptionsBurst:     cfg.Adoptions.Burst,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Server.Addr, "storage": cfg.Storage.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"error": err})
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func syncLogger(log logger.Logger) {
	if z, ok := log.(*logger.ZapLogger); ok {
		_ = z.Sync()
	}
}
