package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/amaumene/appredirect/internal/config"
	"github.com/amaumene/appredirect/internal/domain"
	"github.com/amaumene/appredirect/internal/handler"
	"github.com/amaumene/appredirect/internal/source"
	"github.com/amaumene/appredirect/internal/storage"
	log "github.com/sirupsen/logrus"
	"github.com/timshannon/bolthold"
)

const dbFilePermissions = 0666

type App struct {
	cfg    *config.Config
	server *http.Server
	store  *bolthold.Store
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	store, err := bolthold.Open(cfg.DBPath(), dbFilePermissions, nil)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	mappingSource, err := source.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating mapping source: %w", err)
	}

	app := &App{
		cfg:   cfg,
		store: store,
	}
	app.setupHTTPServer(mappingSource)

	return app, nil
}

func (a *App) setupHTTPServer(mappingSource domain.MappingSource) {
	httpHandler := handler.NewHTTPHandler(mappingSource, storage.NewHitRepository(a.store))

	mux := http.NewServeMux()
	httpHandler.RegisterRoutes(mux)

	a.server = &http.Server{
		Addr:         a.cfg.ServerAddr,
		Handler:      mux,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.startServer()

	return a.waitForShutdown(ctx, cancel)
}

func (a *App) startServer() {
	log.WithFields(log.Fields{
		"component": "server",
		"address":   a.cfg.ServerAddr,
	}).Info("http server listening")

	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithFields(log.Fields{
			"component": "server",
			"error":     err,
		}).Fatal("http server failed to start")
	}
}

func (a *App) waitForShutdown(ctx context.Context, cancel context.CancelFunc) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-ctx.Done():
		log.WithField("reason", "context_cancelled").Info("initiating graceful shutdown")
	case sig := <-sigChan:
		log.WithField("signal", sig).Info("received shutdown signal")
	}

	cancel()
	return a.shutdown()
}

func (a *App) shutdown() error {
	log.Info("graceful shutdown started")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		log.WithFields(log.Fields{
			"component": "server",
			"error":     err,
		}).Error("http server shutdown failed")
	}

	if err := a.store.Close(); err != nil {
		log.WithFields(log.Fields{
			"component": "database",
			"error":     err,
		}).Error("database connection close failed")
		return err
	}

	log.Info("graceful shutdown completed")
	return nil
}
