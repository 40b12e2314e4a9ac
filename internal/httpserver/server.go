package httpserver

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/kyoma102/AI-tools-navigation/internal/catalog"
	"github.com/kyoma102/AI-tools-navigation/internal/config"
	"github.com/kyoma102/AI-tools-navigation/internal/i18n"
	"github.com/kyoma102/AI-tools-navigation/internal/metrics"
	"github.com/kyoma102/AI-tools-navigation/internal/middleware"
	"github.com/kyoma102/AI-tools-navigation/internal/observability"
	"github.com/kyoma102/AI-tools-navigation/internal/pages"
)

const (
	defaultReadTimeout    = 15 * time.Second
	defaultWriteTimeout   = 15 * time.Second
	defaultIdleTimeout    = 60 * time.Second
	defaultHandlerTimeout = 30 * time.Second
)

// CatalogLoader yields the catalog for one request. *catalog.Loader is the
// production implementation.
type CatalogLoader interface {
	Load(ctx context.Context) catalog.Catalog
}

// Config holds runtime options for the web HTTP server.
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	Loader    CatalogLoader
	Bundle    *i18n.Bundle
	Shells    *Shells
	Metrics   *metrics.Metrics
	Logger    *zap.Logger
	Site      config.SiteConfig
	Analytics config.AnalyticsConfig
	Limits    pages.Limits
	Dev       bool
	// H2C serves HTTP/2 without TLS, as Cloud Run does end to end.
	H2C bool
}

type server struct {
	loader    CatalogLoader
	bundle    *i18n.Bundle
	shells    *Shells
	metrics   *metrics.Metrics
	site      config.SiteConfig
	analytics config.AnalyticsConfig
	limits    pages.Limits
	dev       bool
}

type emptyLoader struct{}

func (emptyLoader) Load(context.Context) catalog.Catalog { return catalog.Empty() }

// New constructs the HTTP server with middleware stack and routes.
func New(cfg Config) *http.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &server{
		loader:    cfg.Loader,
		bundle:    cfg.Bundle,
		shells:    cfg.Shells,
		metrics:   cfg.Metrics,
		site:      cfg.Site,
		analytics: cfg.Analytics,
		limits:    cfg.Limits,
		dev:       cfg.Dev,
	}
	if s.loader == nil {
		s.loader = emptyLoader{}
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; only deploy behind a proxy that sets it.
	router.Use(chimw.RealIP)
	router.Use(observability.InjectLoggerMiddleware(logger))
	router.Use(observability.RequestLoggerMiddleware)
	router.Use(observability.RecoveryMiddleware)
	if s.metrics != nil {
		router.Use(s.metrics.Middleware)
	}
	router.Use(chimw.Compress(5))
	router.Use(chimw.Timeout(defaultHandlerTimeout))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if s.metrics != nil {
		router.Handle("/metrics", s.metrics.Handler())
	}
	router.Handle("/assets/*", middleware.AssetsWithCache("/assets", filepath.Join(cfg.Site.PublicDir, "assets")))

	router.Group(func(r chi.Router) {
		r.Use(middleware.HTMX)
		r.Use(middleware.Locale(s.bundle))
		r.Use(middleware.VaryLocale)

		r.Get("/", s.home)
		r.Get("/categories", s.categories)
		r.Get("/search", s.search)
		r.Get("/tools", s.tools)
		r.Get("/tools/results", s.toolsResults)
		r.Get("/tool-detail", s.toolDetail)
	})

	var handler http.Handler = router
	if cfg.H2C {
		handler = h2c.NewHandler(router, &http2.Server{})
	}

	return &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       orDefault(cfg.ReadTimeout, defaultReadTimeout),
		WriteTimeout:      orDefault(cfg.WriteTimeout, defaultWriteTimeout),
		IdleTimeout:       orDefault(cfg.IdleTimeout, defaultIdleTimeout),
	}
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
