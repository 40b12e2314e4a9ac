package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %s", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Catalog.Source != "public/assets/tools.json" {
		t.Errorf("unexpected catalog source: %s", cfg.Catalog.Source)
	}
	if cfg.Catalog.CacheTTL != 30*time.Second {
		t.Errorf("unexpected cache ttl: %s", cfg.Catalog.CacheTTL)
	}
	if !cfg.Catalog.Watch {
		t.Errorf("expected catalog watch enabled by default")
	}
	if cfg.Catalog.FeaturedLimit != 4 || cfg.Catalog.NewLimit != 4 || cfg.Catalog.RelatedLimit != 4 {
		t.Errorf("unexpected limits: %d/%d/%d", cfg.Catalog.FeaturedLimit, cfg.Catalog.NewLimit, cfg.Catalog.RelatedLimit)
	}
	if cfg.I18n.Default != "zh" {
		t.Errorf("expected default lang zh, got %s", cfg.I18n.Default)
	}
	if len(cfg.I18n.Supported) != 2 || cfg.I18n.Supported[1] != "en" {
		t.Errorf("unexpected supported langs: %v", cfg.I18n.Supported)
	}
	if cfg.Dev {
		t.Errorf("expected dev mode off by default")
	}
}

func TestLoadWithOverrides(t *testing.T) {
	env := map[string]string{
		"PORT":                      "9000",
		"WEB_SERVER_READ_TIMEOUT":   "20s",
		"WEB_CATALOG_SOURCE":        "gs://catalog-bucket/tools.json",
		"WEB_CATALOG_CACHE_TTL":     "0s",
		"WEB_CATALOG_WATCH":         "off",
		"WEB_DEFAULT_LANG":          "EN",
		"WEB_SUPPORTED_LANGS":       "en, zh ,",
		"WEB_BASE_URL":              "https://tools.example.com/",
		"WEB_DEV":                   "1",
		"WEB_CATALOG_RELATED_LIMIT": "6",
		"WEB_CATALOG_NEW_LIMIT":     "2",
	}
	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("expected PORT to drive addr, got %s", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 20*time.Second {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Catalog.Source != "gs://catalog-bucket/tools.json" {
		t.Errorf("unexpected source: %s", cfg.Catalog.Source)
	}
	if cfg.Catalog.CacheTTL != 0 {
		t.Errorf("expected cache disabled, got %s", cfg.Catalog.CacheTTL)
	}
	if cfg.Catalog.Watch {
		t.Errorf("expected watch disabled")
	}
	if cfg.I18n.Default != "en" {
		t.Errorf("expected lowercased default lang, got %s", cfg.I18n.Default)
	}
	if len(cfg.I18n.Supported) != 2 {
		t.Errorf("unexpected supported langs: %v", cfg.I18n.Supported)
	}
	if cfg.Site.BaseURL != "https://tools.example.com" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.Site.BaseURL)
	}
	if !cfg.Dev {
		t.Errorf("expected dev mode on")
	}
	if cfg.Catalog.RelatedLimit != 6 {
		t.Errorf("unexpected related limit: %d", cfg.Catalog.RelatedLimit)
	}
	if cfg.Catalog.NewLimit != 2 || cfg.Catalog.FeaturedLimit != 4 {
		t.Errorf("expected new limit independent of featured, got new=%d featured=%d", cfg.Catalog.NewLimit, cfg.Catalog.FeaturedLimit)
	}
}

func TestLoadExplicitAddrBeatsPort(t *testing.T) {
	env := map[string]string{"PORT": "9000", "WEB_SERVER_ADDR": "127.0.0.1:7000"}
	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:7000" {
		t.Fatalf("unexpected addr: %s", cfg.Server.Addr)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# local overrides\nexport WEB_SITE_NAME=\"Tool Atlas\"\nWEB_CATALOG_SOURCE=https://cdn.example.com/tools.json\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}

	cfg, err := Load(WithEnvFile(path), WithoutSystemEnv(), WithEnvMap(map[string]string{
		"WEB_CATALOG_SOURCE": "override.json",
	}))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Site.Name != "Tool Atlas" {
		t.Errorf("expected dotenv site name, got %q", cfg.Site.Name)
	}
	if cfg.Catalog.Source != "override.json" {
		t.Errorf("expected env map to win over dotenv, got %q", cfg.Catalog.Source)
	}
}

func TestLoadValidation(t *testing.T) {
	env := map[string]string{
		"WEB_CATALOG_FETCH_TIMEOUT":  "-1s",
		"WEB_DEFAULT_LANG":           "fr",
		"WEB_CATALOG_FEATURED_LIMIT": "0",
		"WEB_SERVER_WRITE_TIMEOUT":   "0s",
		"WEB_CATALOG_RELATED_LIMIT":  "-2",
		"WEB_SERVER_IDLE_TIMEOUT":    "bogus",
		"WEB_CATALOG_NEW_LIMIT":      "0",
	}
	_, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	want := map[string]bool{
		"Catalog.FetchTimeout":  true,
		"I18n.Supported":        true,
		"Catalog.FeaturedLimit": true,
		"Server.WriteTimeout":   true,
		"Catalog.RelatedLimit":  true,
		"Catalog.NewLimit":      true,
	}
	fields := verr.Fields()
	if len(fields) != len(want) {
		t.Fatalf("unexpected fields: %v", fields)
	}
	for _, f := range fields {
		if !want[f] {
			t.Errorf("unexpected field %s", f)
		}
	}
}
