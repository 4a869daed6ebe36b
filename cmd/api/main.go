package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"pawfect-match/internal/adapters/storage"
	"pawfect-match/internal/config"
	"pawfect-match/internal/platform/logger"
	"pawfect-match/internal/router"
)

// @title Pawfect Match API
// @version 1.0
// @description Gestión de adopciones de mascotas: mascotas, adoptantes, adopciones y disponibilidad.
// @BasePath /
func main() {
	_ = godotenv.Load() // .env opcional

	cfg := config.Load()
	log := logger.New(cfg.Logger())

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", map[string]any{"err": err})
		os.Exit(1)
	}

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", map[string]any{"err": err})
		os.Exit(1)
	}
	log.Info("server exited properly", nil)
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := storage.Open(ctx, cfg.Storage(), log)
	if err != nil {
		return err
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Warn("closing store", map[string]any{"err": err})
		}
	}()

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Backend:        backend,
			Logger:         log,
			AuthRequired:   cfg.AuthRequired,
			MetricsEnabled: cfg.MetricsEnabled,
			SwaggerEnabled: cfg.SwaggerEnabled,
		}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "store": backend.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
