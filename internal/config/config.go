package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultEnvFile        = ".env"
	defaultAddr           = ":8080"
	defaultReadTimeout    = 15 * time.Second
	defaultWriteTimeout   = 15 * time.Second
	defaultIdleTimeout    = 60 * time.Second
	defaultCatalogSource  = "public/assets/tools.json"
	defaultCacheTTL       = 30 * time.Second
	defaultFetchTimeout   = 5 * time.Second
	defaultTemplatesDir   = "templates"
	defaultPublicDir      = "public"
	defaultLocalesDir     = "locales"
	defaultLang           = "zh"
	defaultSiteName       = "AI工具导航"
	defaultFeaturedLimit  = 4
	defaultNewLimit       = 4
	defaultRelatedLimit   = 4
	defaultLogLevel       = "info"
	defaultSupportedLangs = "zh,en"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	Site      SiteConfig
	I18n      I18nConfig
	Analytics AnalyticsConfig
	LogLevel  string
	Dev       bool
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// CatalogConfig describes where the catalog document lives and how it is cached.
type CatalogConfig struct {
	Source        string
	CacheTTL      time.Duration
	FetchTimeout  time.Duration
	Watch         bool
	FeaturedLimit int
	NewLimit      int
	RelatedLimit  int
}

// SiteConfig holds page-level settings and asset locations.
type SiteConfig struct {
	Name         string
	BaseURL      string
	TemplatesDir string
	PublicDir    string
}

// I18nConfig lists the locale files and languages served.
type I18nConfig struct {
	Dir       string
	Default   string
	Supported []string
}

// AnalyticsConfig holds client instrumentation identifiers surfaced to page shells.
type AnalyticsConfig struct {
	GA4MeasurementID string
}

// ValidationError is returned when required configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map. Values in the map take precedence over
// system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the configuration by combining defaults, .env overrides, environment
// variables and explicit maps.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}

	// Cloud Run injects PORT; an explicit WEB_SERVER_ADDR still wins.
	addr := defaultAddr
	if port := stringWithDefault(lookup, "PORT", ""); port != "" {
		addr = ":" + port
	}

	cfg := Config{
		Server: ServerConfig{
			Addr:         stringWithDefault(lookup, "WEB_SERVER_ADDR", addr),
			ReadTimeout:  durationWithDefault(lookup, "WEB_SERVER_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: durationWithDefault(lookup, "WEB_SERVER_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:  durationWithDefault(lookup, "WEB_SERVER_IDLE_TIMEOUT", defaultIdleTimeout),
		},
		Catalog: CatalogConfig{
			Source:        strings.TrimSpace(stringWithDefault(lookup, "WEB_CATALOG_SOURCE", defaultCatalogSource)),
			CacheTTL:      durationWithDefault(lookup, "WEB_CATALOG_CACHE_TTL", defaultCacheTTL),
			FetchTimeout:  durationWithDefault(lookup, "WEB_CATALOG_FETCH_TIMEOUT", defaultFetchTimeout),
			Watch:         boolWithDefault(lookup, "WEB_CATALOG_WATCH", true),
			FeaturedLimit: intWithDefault(lookup, "WEB_CATALOG_FEATURED_LIMIT", defaultFeaturedLimit),
			NewLimit:      intWithDefault(lookup, "WEB_CATALOG_NEW_LIMIT", defaultNewLimit),
			RelatedLimit:  intWithDefault(lookup, "WEB_CATALOG_RELATED_LIMIT", defaultRelatedLimit),
		},
		Site: SiteConfig{
			Name:         stringWithDefault(lookup, "WEB_SITE_NAME", defaultSiteName),
			BaseURL:      strings.TrimRight(stringWithDefault(lookup, "WEB_BASE_URL", ""), "/"),
			TemplatesDir: stringWithDefault(lookup, "WEB_TEMPLATES_DIR", defaultTemplatesDir),
			PublicDir:    stringWithDefault(lookup, "WEB_PUBLIC_DIR", defaultPublicDir),
		},
		I18n: I18nConfig{
			Dir:       stringWithDefault(lookup, "WEB_LOCALES_DIR", defaultLocalesDir),
			Default:   strings.ToLower(stringWithDefault(lookup, "WEB_DEFAULT_LANG", defaultLang)),
			Supported: csvWithDefault(lookup, "WEB_SUPPORTED_LANGS", defaultSupportedLangs),
		},
		Analytics: AnalyticsConfig{
			GA4MeasurementID: stringWithDefault(lookup, "WEB_ANALYTICS_GA_ID", ""),
		},
		LogLevel: stringWithDefault(lookup, "LOG_LEVEL", defaultLogLevel),
		Dev:      boolWithDefault(lookup, "WEB_DEV", false),
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	var missing []string

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		missing = append(missing, "Server.Addr")
	}
	if cfg.Server.ReadTimeout <= 0 {
		missing = append(missing, "Server.ReadTimeout")
	}
	if cfg.Server.WriteTimeout <= 0 {
		missing = append(missing, "Server.WriteTimeout")
	}
	if cfg.Catalog.Source == "" {
		missing = append(missing, "Catalog.Source")
	}
	if cfg.Catalog.CacheTTL < 0 {
		missing = append(missing, "Catalog.CacheTTL")
	}
	if cfg.Catalog.FetchTimeout <= 0 {
		missing = append(missing, "Catalog.FetchTimeout")
	}
	if cfg.Catalog.FeaturedLimit <= 0 {
		missing = append(missing, "Catalog.FeaturedLimit")
	}
	if cfg.Catalog.NewLimit <= 0 {
		missing = append(missing, "Catalog.NewLimit")
	}
	if cfg.Catalog.RelatedLimit <= 0 {
		missing = append(missing, "Catalog.RelatedLimit")
	}
	if cfg.I18n.Default == "" {
		missing = append(missing, "I18n.Default")
	} else if !contains(cfg.I18n.Supported, cfg.I18n.Default) {
		missing = append(missing, "I18n.Supported")
	}

	if len(missing) > 0 {
		return &ValidationError{fields: missing}
	}
	return nil
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	file, err := os.Open(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	values := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		if key == "" {
			continue
		}
		values[key] = strings.Trim(strings.TrimSpace(parts[1]), "\"'")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", absPath, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func intWithDefault(lookup func(string) (string, bool), key string, fallback int) int {
	if value, ok := lookup(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}

func csvWithDefault(lookup func(string) (string, bool), key, fallback string) []string {
	raw, ok := lookup(key)
	if !ok || strings.TrimSpace(raw) == "" {
		raw = fallback
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.ToLower(strings.TrimSpace(part))
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
