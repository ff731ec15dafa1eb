package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tvarnsen/indyplan/internal/catalog"
	"github.com/tvarnsen/indyplan/internal/config"
	"github.com/tvarnsen/indyplan/internal/industry"
	"github.com/tvarnsen/indyplan/internal/invention"
	"github.com/tvarnsen/indyplan/internal/pricing"
	"github.com/tvarnsen/indyplan/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	store, err := catalog.NewSQLiteStore(cfg.CatalogDBPath)
	if err != nil {
		slog.Error("Failed to open catalog database", "error", err, "path", cfg.CatalogDBPath)
		os.Exit(1)
	}
	defer store.Close()

	cache := catalog.NewCached(store, cfg.CacheSize, cfg.CacheTTL)
	prices := pricing.NewClient(cfg.MarketBaseURL, cfg.MarketTTL)
	reporter := pricing.NewReporter(prices, cache)

	refresher := pricing.NewRefresher(prices, cfg.MarketTTL)
	refresher.Start()
	defer refresher.Stop()

	industrySvc := industry.NewService(cache, reporter)
	inventionSvc := invention.NewService(cache)

	srv := server.NewServer(cfg.Port, store, cache, industrySvc, inventionSvc, prices)

	// Serve until interrupted, then drain in-flight requests.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			slog.Error("Shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}
