// Package main is the entry point for the studio site server.
//
// main stays small: read configuration, build the logger and the store, hand
// them to internal/server, and block until shutdown. Everything testable lives
// in the internal packages.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sakif/filmstudio/internal/config"
	"github.com/sakif/filmstudio/internal/repository"
	"github.com/sakif/filmstudio/internal/repository/memory"
	"github.com/sakif/filmstudio/internal/repository/sqlite"
	"github.com/sakif/filmstudio/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet: its level and format come from the config we failed to read.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := newLogger(cfg, os.Stdout)

	store, err := openStore(cfg)
	if err != nil {
		logger.Error("failed to open store",
			slog.String("storage", cfg.Storage),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
	logger.Info("store ready", slog.String("storage", cfg.Storage))

	srv := server.New(server.Config{
		Addr:            cfg.Addr(),
		StaticDir:       cfg.StaticDir,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, store, logger)

	// Start() blocks until the server is shut down (via Ctrl+C or SIGTERM)
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newLogger builds the process logger. Config.Validate has already checked
// the level, so the error from SlogLevel can't happen here.
func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	level, _ := cfg.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// openStore creates the one storage instance the process uses.
func openStore(cfg config.Config) (repository.Store, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		return sqlite.New(cfg.DBPath)
	default:
		return memory.New(), nil
	}
}
