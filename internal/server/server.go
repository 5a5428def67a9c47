// Package server serves the miniart gallery over HTTP.
//
// Routes:
//
//	GET /                    gallery page (?random=N for N random tiles)
//	GET /tile                a single tile fragment (?format=html|css|json, ?strict)
//	GET /web/mini-art-bw.js  the custom element module
//	GET /healthz             build info and cache status
//
// Every tile on a page is rendered server side as declarative shadow DOM;
// the script upgrades the same hosts in the browser without rebuilding
// them.
package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/miniart/internal/config"
	"github.com/matzehuels/miniart/pkg/pipeline"
	"github.com/matzehuels/miniart/pkg/render/element"
)

// Server is the gallery HTTP server.
type Server struct {
	cfg    *config.Config
	runner *pipeline.Runner
	logger *log.Logger
	page   *template.Template
	router chi.Router
}

// New creates a server rendering through runner. A nil cfg uses
// config.Default.
func New(cfg *config.Config, runner *pipeline.Runner, logger *log.Logger) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	page, err := parsePage()
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	s := &Server{
		cfg:    cfg,
		runner: runner,
		logger: logger.WithPrefix("http"),
		page:   page,
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if d := s.cfg.Server.RequestTimeout.Duration; d > 0 {
		r.Use(middleware.Timeout(d))
	}

	r.Get("/", s.handleGallery)
	r.Get("/tile", s.handleTile)
	r.Get(element.ScriptPath, s.handleScript)
	r.Get("/healthz", s.handleHealth)
	r.NotFound(s.handleNotFound)
	return r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on the configured address until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is like ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       s.cfg.Server.ReadTimeout.Duration,
		WriteTimeout:      s.cfg.Server.WriteTimeout.Duration,
		IdleTimeout:       s.cfg.Server.IdleTimeout.Duration,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := s.cfg.Server.ShutdownTimeout.Duration
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
