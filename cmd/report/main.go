// Package main is the entry point for the student-reports CLI.
//
// The program performs one run: it fetches the full student list from
// the configured registry endpoint, executes the five report queries
// over the in-memory snapshot, and prints one line per result. Any
// failure in the fetch aborts the whole batch and the process exits
// non-zero.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/campus-hub/student-reports/config"
	"github.com/campus-hub/student-reports/internal/application/report"
	"github.com/campus-hub/student-reports/internal/infrastructure/external/registry"
	"github.com/campus-hub/student-reports/internal/infrastructure/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := setupLogger(cfg)
	log.Info("starting student-reports",
		"env", cfg.App.Environment,
		"registry_url", cfg.Registry.URL,
	)

	clientCfg := registry.DefaultClientConfig(cfg.Registry.URL)
	clientCfg.Timeout = cfg.Registry.RequestTimeout
	clientCfg.Logger = log

	client := registry.NewClient(clientCfg)
	source := service.NewRegistryAdapter(client)

	runner := report.NewRunner(source, log, os.Stdout, report.Options{
		City:       cfg.Report.City,
		NamePrefix: cfg.Report.NamePrefix,
	})

	return runner.Run(ctx)
}

// setupLogger returns a *slog.Logger configured from the observability
// settings: text handler for development, JSON for log aggregation.
func setupLogger(cfg *config.Config) *slog.Logger {
	level := parseLevel(cfg.Observability.LogLevel)
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Observability.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
