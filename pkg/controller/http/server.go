package http

import (
	"context"
	"net/http"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/simplecounter/pkg/domain/interfaces"
)

// config holds internal HTTP server configuration
type config struct {
	addr         string
	allowedHosts []string
	readinessUC  interfaces.ReadinessUseCase
	sentry       bool
	now          func() time.Time
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithAllowedHosts restricts the Host header. Entries are exact host names or
// "*.suffix" patterns. No restriction applies when empty.
func WithAllowedHosts(hosts []string) Option {
	return func(c *config) {
		c.allowedHosts = hosts
	}
}

// WithReadiness enables GET /health/ready backed by the given use case
func WithReadiness(uc interfaces.ReadinessUseCase) Option {
	return func(c *config) {
		c.readinessUC = uc
	}
}

// WithSentry enables Sentry request instrumentation. sentry.Init must have been called.
func WithSentry(enabled bool) Option {
	return func(c *config) {
		c.sentry = enabled
	}
}

// WithClock replaces the clock used for health timestamps
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, opts ...Option) (*Server, error) {
	// Default configuration
	cfg := &config{
		addr: "localhost:8080",
		now:  time.Now,
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	if _, err := loadOpenAPI(ctx); err != nil {
		return nil, goerr.Wrap(err, "invalid embedded OpenAPI document")
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	if cfg.sentry {
		router.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	}
	router.Use(HostAuthorization(cfg.allowedHosts))
	router.Use(CrossOriginProtection())
	router.Use(middleware.GetHead)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, goerr.New("not found"), http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, goerr.New("method not allowed"), http.StatusMethodNotAllowed)
	})

	// Health check
	router.Get("/health", newHealthHandler(cfg.now).ServeHTTP)
	if cfg.readinessUC != nil {
		router.Get("/health/ready", newReadinessHandler(cfg.readinessUC).ServeHTTP)
	}

	router.Get("/openapi.yaml", handleOpenAPI)

	// Counter resources; routed but not implemented yet
	router.Get("/", handleNotImplemented("counters#index"))
	router.Route("/counters", func(r chi.Router) {
		r.Get("/", handleNotImplemented("counters#index"))
		r.Post("/", handleNotImplemented("counters#create"))
		r.Get("/{id}", handleNotImplemented("counters#show"))
	})
	router.Route("/api/v1/counters", func(r chi.Router) {
		r.Get("/{id}", handleNotImplemented("api/v1/counters#show"))
		r.Put("/{id}", handleNotImplemented("api/v1/counters#update"))
		r.Patch("/{id}", handleNotImplemented("api/v1/counters#update"))
	})

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
