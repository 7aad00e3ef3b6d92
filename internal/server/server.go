// Package server sets up the HTTP server, router, and all route definitions.
//
// This package is the wiring layer. It decides which URL patterns map to which
// handlers, what middleware runs on them, and how the server starts and stops.
//
// DEPENDENCY INJECTION FLOW:
//
//	cmd/server builds:  Config, *slog.Logger, repository.Store
//	server.New builds:  Store → ContactService/ProjectService → handlers → routes
//
// The store is created exactly once per process and injected here. Tests build
// a fresh store per case, so no state leaks between them.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/filmstudio/internal/handler"
	"github.com/sakif/filmstudio/internal/middleware"
	"github.com/sakif/filmstudio/internal/repository"
	"github.com/sakif/filmstudio/internal/service"
)

// Config holds server configuration.
type Config struct {
	Addr            string        // host:port to listen on
	StaticDir       string        // built front-end; skipped if it has no index.html
	ShutdownTimeout time.Duration // grace period for in-flight requests
}

// Server represents the HTTP server and all its dependencies.
//
// The Server owns the store: Start closes it after the HTTP server has
// drained, so no handler can touch a closed store.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
	store  repository.Store
}

// New wires the store into services, handlers and routes.
func New(cfg Config, store repository.Store, logger *slog.Logger) *Server {
	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		store:  store,
	}
	s.setupRoutes()
	return s
}

// Handler exposes the router, for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes configures all middleware and route handlers.
//
// ROUTE STRUCTURE:
// POST   /api/contact          → submit the contact form (JSON)
// GET    /api/projects         → list the showcase (JSON array)
// GET    /api/projects/{id}    → one project (JSON)
// GET    /*                    → built front-end, index.html fallback
//
// MIDDLEWARE ORDER MATTERS:
// 1. RequestID — tags the request (our xid-based one, read by Logger)
// 2. RealIP — extracts real client IP from proxy headers
// 3. Logger — logs each request with timing info
// 4. Recoverer — turns a panic into a 500 (inside Logger, so the 500 is logged)
func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(chimiddleware.Recoverer)

	contactHandler := handler.NewContactHandler(service.NewContactService(s.store, s.logger), s.logger)
	projectHandler := handler.NewProjectHandler(service.NewProjectService(s.store, s.logger), s.logger)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/contact", contactHandler.HandleSubmit)
		r.Get("/projects", projectHandler.HandleList)
		r.Get("/projects/{id}", projectHandler.HandleGet)
	})

	if s.config.StaticDir == "" {
		return
	}
	site, err := handler.NewSiteHandler(s.config.StaticDir, s.logger)
	if err != nil {
		// The API still works without a front-end, e.g. during local
		// development with a separate dev server.
		s.logger.Warn("front-end not served",
			slog.String("dir", s.config.StaticDir),
			slog.String("error", err.Error()),
		)
		return
	}
	s.router.Method(http.MethodGet, "/*", site)
	s.router.Method(http.MethodHead, "/*", site)
}

// Start starts the HTTP server and blocks until SIGINT/SIGTERM or a listen
// error, then shuts down gracefully and closes the store.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run is Start with the shutdown trigger supplied by the caller: the server
// stops when ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	defer func() {
		if err := s.store.Close(); err != nil {
			s.logger.Error("closing store", slog.String("error", err.Error()))
		}
	}()

	srv := &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("serving", slog.String("addr", s.config.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

	case <-ctx.Done():
		s.logger.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
