package main

import (
	"flag"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kyoma102/AI-tools-navigation/internal/catalog"
	"github.com/kyoma102/AI-tools-navigation/internal/config"
	"github.com/kyoma102/AI-tools-navigation/internal/testutil"
)

func testConfig(t *testing.T, source string) config.Config {
	t.Helper()
	root := testutil.Root()
	cfg, err := config.Load(config.WithoutSystemEnv(), config.WithEnvFile(""), config.WithEnvMap(map[string]string{
		"WEB_CATALOG_SOURCE": source,
		"WEB_TEMPLATES_DIR":  filepath.Join(root, "templates"),
		"WEB_PUBLIC_DIR":     filepath.Join(root, "public"),
		"WEB_LOCALES_DIR":    filepath.Join(root, "locales"),
		"WEB_DEV":            "true",
	}))
	require.NoError(t, err)
	return cfg
}

func TestApplyFlagsOverrideConfig(t *testing.T) {
	cfg := testConfig(t, "tools.json")
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	applyFlags(&cfg, fs, []string{"-addr", "127.0.0.1:9999", "-templates", "tmpl", "-catalog", "gs://b/o.json"})

	require.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
	require.Equal(t, "tmpl", cfg.Site.TemplatesDir)
	require.Equal(t, "gs://b/o.json", cfg.Catalog.Source)
	require.Equal(t, filepath.Join(testutil.Root(), "public"), cfg.Site.PublicDir)
}

func TestBuildServesShippedCatalog(t *testing.T) {
	cfg := testConfig(t, filepath.Join(testutil.Root(), "public", "assets", "tools.json"))
	srv, loader, err := build(cfg, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, "file", loader.Source().Name())

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tool-detail?id=chatgpt", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	doc := testutil.ParseHTML(t, rec.Body.Bytes())
	require.Equal(t, "ChatGPT", doc.Find("#tool-header .tool-name").Text())

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "aitools_catalog_tools 10")
	require.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestBuildAppliesSubsetLimits(t *testing.T) {
	cfg := testConfig(t, filepath.Join(testutil.Root(), "public", "assets", "tools.json"))
	cfg.Catalog.NewLimit = 1
	cfg.Catalog.FeaturedLimit = 3
	srv, _, err := build(cfg, zap.NewNop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	doc := testutil.ParseHTML(t, rec.Body.Bytes())
	require.Equal(t, 1, doc.Find("#new-tools .tool-card").Length())
	require.Equal(t, 3, doc.Find("#featured-tools .tool-card").Length())
}

func TestBuildMissingCatalogServesEmptyStates(t *testing.T) {
	cfg := testConfig(t, filepath.Join(t.TempDir(), "missing.json"))
	srv, _, err := build(cfg, zap.NewNop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, testutil.ParseHTML(t, rec.Body.Bytes()).Find("#tools-container .empty-state").Length())
}

func TestBuildRejectsBadTemplatesDir(t *testing.T) {
	cfg := testConfig(t, "tools.json")
	cfg.Site.TemplatesDir = t.TempDir()
	_, _, err := build(cfg, zap.NewNop())
	require.Error(t, err)
}

func TestBuildRejectsUnsupportedSource(t *testing.T) {
	cfg := testConfig(t, "ftp://example.com/tools.json")
	_, _, err := build(cfg, zap.NewNop())
	require.ErrorIs(t, err, catalog.ErrUnsupportedSource)
}
