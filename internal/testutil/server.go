package testutil

import (
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kyoma102/AI-tools-navigation/internal/config"
	"github.com/kyoma102/AI-tools-navigation/internal/httpserver"
	"github.com/kyoma102/AI-tools-navigation/internal/metrics"
	"github.com/kyoma102/AI-tools-navigation/internal/pages"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithLoader overrides the catalog loader.
func WithLoader(loader httpserver.CatalogLoader) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Loader = loader
	}
}

// WithMetrics wires a metrics collector.
func WithMetrics(m *metrics.Metrics) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Metrics = m
	}
}

// WithBaseURL sets the absolute site URL used for canonical links.
func WithBaseURL(url string) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Site.BaseURL = url
	}
}

// NewConfig returns the server configuration used by NewServer, backed by
// the shipped templates and locales and the fixture catalog.
func NewConfig(t testing.TB, opts ...ServerOption) httpserver.Config {
	t.Helper()

	bundle := Bundle(t)
	shells, err := httpserver.NewShells(filepath.Join(Root(), "templates"), bundle, true)
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}
	cfg := httpserver.Config{
		Address: ":0",
		Loader:  StaticLoader{Catalog: Catalog()},
		Bundle:  bundle,
		Shells:  shells,
		Metrics: metrics.New(prometheus.NewRegistry()),
		Site: config.SiteConfig{
			Name:      "AI工具导航",
			PublicDir: filepath.Join(Root(), "public"),
		},
		Limits: pages.DefaultLimits,
		Dev:    true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// NewServer constructs an httptest server running the web HTTP stack with sensible defaults.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	srv := httpserver.New(NewConfig(t, opts...))
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
