// Package server provides the HTTP server and routing for the judgment
// service.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/aivend/judge/internal/catalog"
	"github.com/aivend/judge/internal/engine"
	"github.com/aivend/judge/internal/events"
	"github.com/aivend/judge/internal/work"
)

// Config holds server configuration
type Config struct {
	Log             zerolog.Logger
	Catalog         *catalog.Catalog
	Engine          *engine.Engine
	Pool            *work.Pool
	Bus             *events.Bus
	Events          *events.Manager
	Port            int
	CORSOrigins     []string
	CORSCredentials bool
	DevMode         bool
}

// Server represents the HTTP server
type Server struct {
	router  *chi.Mux
	server  *http.Server
	log     zerolog.Logger
	catalog *catalog.Catalog
	engine  *engine.Engine
	pool    *work.Pool
	bus     *events.Bus
	events  *events.Manager
	started time.Time
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		log:     cfg.Log.With().Str("component", "server").Logger(),
		catalog: cfg.Catalog,
		engine:  cfg.Engine,
		pool:    cfg.Pool,
		bus:     cfg.Bus,
		events:  cfg.Events,
		started: time.Now(),
	}

	s.setupMiddleware(cfg)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // streaming endpoints manage their own lifetime
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(cfg Config) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// CORS
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: cfg.CORSCredentials,
		MaxAge:           300,
	}))

	// Compress responses
	if !cfg.DevMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	// Health check
	s.router.Get("/health", s.handleHealth)

	// API routes
	s.router.Route("/api", func(r chi.Router) {
		// Event streams first: they hold the connection open and must not
		// run under the request timeout.
		r.Get("/events/stream", s.handleEventStream)
		r.Get("/events/ws", s.handleEventWebsocket)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			r.Get("/test", s.handleTest)
			r.Post("/judge", s.handleJudge)
			r.Post("/judge/loadcell", s.handleJudgeLoadcell)
			r.Post("/judge/batch", s.handleJudgeBatch)
			r.Post("/simulate", s.handleSimulate)
			r.Get("/products", s.handleProducts)
			r.Get("/products/{id}", s.handleProduct)
			r.Get("/health", s.handleHealth)
			r.Get("/system/status", s.handleSystemStatus)
		})
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// Router exposes the handler tree for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
