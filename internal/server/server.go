// Package server exposes one org chart over HTTP.
//
// Routes:
//
//	GET  /chart          chart document (JSON)
//	GET  /chart.{ext}    chart as json, yaml, dot, svg, or txt
//	GET  /history        undo and redo stacks
//	POST /moves          {"employeeId": 12, "supervisorId": 3}
//	POST /undo
//	POST /redo
//	GET  /healthz
//	GET  /metrics        Prometheus metrics, when a gatherer is configured
//
// Render routes accept ?detailed=true and ?highlight=3,12. Errors are JSON
// objects {"code": ..., "message": ...} with the status chosen by
// [errors.HTTPStatus].
package server

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/orgchart/pkg/cache"
	"github.com/matzehuels/orgchart/pkg/orgchart"
)

const shutdownTimeout = 5 * time.Second

// Config configures a [Server].
type Config struct {
	// Chart is the chart served. The server takes over all access to it.
	Chart *orgchart.Chart

	// Cache stores rendered artifacts. Nil disables caching.
	Cache    cache.Cache
	CacheTTL time.Duration

	// Logger receives request logs. Nil discards them.
	Logger *log.Logger

	// Gatherer enables GET /metrics when set.
	Gatherer prometheus.Gatherer
}

// Server serializes HTTP access to a single chart.
type Server struct {
	mu       sync.RWMutex
	chart    *orgchart.Chart
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *log.Logger
	gatherer prometheus.Gatherer
}

// New creates a server for cfg.Chart.
func New(cfg Config) *Server {
	s := &Server{
		chart:    cfg.Chart,
		cache:    cfg.Cache,
		cacheTTL: cfg.CacheTTL,
		logger:   cfg.Logger,
		gatherer: cfg.Gatherer,
	}
	if s.cache == nil {
		s.cache = cache.NewNullCache()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.requestLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/chart", s.handleRender("json"))
	r.Get("/chart.{ext}", s.handleRenderExt)
	r.Get("/history", s.handleHistory)
	r.Post("/moves", s.handleMove)
	r.Post("/undo", s.handleUndo)
	r.Post("/redo", s.handleRedo)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
