// Package config loads server configuration from environment variables.
//
// All settings have defaults, so `go run ./cmd/server` works with an empty
// environment: port 5000, in-memory storage, front-end from dist/public.
package config

import (
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage backends accepted by STORAGE.
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

// Config holds everything cmd/server needs to build the process.
type Config struct {
	Host            string        `env:"HOST"             envDefault:"0.0.0.0"`
	Port            int           `env:"PORT"             envDefault:"5000"`
	StaticDir       string        `env:"STATIC_DIR"       envDefault:"dist/public"`
	Storage         string        `env:"STORAGE"          envDefault:"memory"`
	DBPath          string        `env:"DB_PATH"          envDefault:":memory:"`
	LogLevel        string        `env:"LOG_LEVEL"        envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT"       envDefault:"text"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load reads the process environment.
func Load() (Config, error) {
	return load(env.Options{})
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	cfg.Storage = strings.ToLower(cfg.Storage)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values that would only fail later, at startup.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config: PORT %d out of range 1-65535", c.Port)
	}
	switch c.Storage {
	case StorageMemory, StorageSQLite:
	default:
		return fmt.Errorf("config: unknown STORAGE %q (want %q or %q)", c.Storage, StorageMemory, StorageSQLite)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown LOG_FORMAT %q (want \"text\" or \"json\")", c.LogFormat)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

// Addr is the listen address in host:port form.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// SlogLevel parses LOG_LEVEL ("debug", "info", "warn", "error", any case).
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}
