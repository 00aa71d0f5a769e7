package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/R-Gerard/Roguelike-sub001/internal/bootstrap"
	"github.com/R-Gerard/Roguelike-sub001/internal/config"
	"github.com/R-Gerard/Roguelike-sub001/internal/handler"
	"github.com/R-Gerard/Roguelike-sub001/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Simulation failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx := context.Background()
	sim, err := bootstrap.NewSimulation(ctx, cfg)
	if err != nil {
		return err
	}

	rep, err := sim.Run(ctx, cfg.Turns)
	if err != nil {
		return err
	}
	slog.Info("Run report",
		"seed", rep.Seed,
		"turns", rep.Turns,
		"spawned", rep.Spawned,
		"refused", rep.Refused,
		"killed", rep.Killed,
		"collected", rep.Collected,
		"discarded", rep.Discarded,
		"looted", rep.Looted,
		"fired", rep.Fired,
		"reloaded", rep.Reloaded,
		"consumed", rep.Consumed,
		"carried", rep.Carried,
		"alive", rep.Alive,
		"stats", rep.Stats)

	if !cfg.DebugServerEnabled() {
		return nil
	}

	// The engine is single threaded. The server only starts once the run
	// is over, so every request reads a finished world.
	srv := server.NewServer(cfg.HTTPAddr, server.Deps{
		Templates: sim.Catalog,
		Regions:   sim.Engine,
		Checkers:  []handler.HealthChecker{sim.Catalog},
		Version:   cfg.Version,
		Seed:      sim.Seed,
	})

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-stop:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, srv)
	return nil
}
