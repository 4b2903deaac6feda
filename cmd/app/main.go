package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arenatools/questplanner/internal/config"
	"github.com/arenatools/questplanner/internal/ev"
	"github.com/arenatools/questplanner/internal/planner"
	"github.com/arenatools/questplanner/internal/rewards"
	"github.com/arenatools/questplanner/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	envWarnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Fatalf("Environment validation failed: %v", err)
	}

	initLogger(cfg)

	for _, warning := range envWarnings {
		slog.Warn(warning)
	}

	tables, err := rewards.NewSource(cfg.RewardTablePath)
	if err != nil {
		log.Fatalf("Failed to load reward tables: %v", err)
	}
	slog.Info("Reward tables loaded",
		"path", cfg.RewardTablePath,
		"version", tables.Table().Version(),
		"queues", tables.Table().Len())

	calc := ev.NewCalculator(tables)
	plannerService := planner.NewService(tables, calc, planner.DefaultConfig())

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, tables, calc, plannerService)

	// Run the server in the background so we can wait for shutdown signals
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatalf("Server failed: %v", err)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
