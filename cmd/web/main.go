package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/kyoma102/AI-tools-navigation/internal/catalog"
	"github.com/kyoma102/AI-tools-navigation/internal/config"
	"github.com/kyoma102/AI-tools-navigation/internal/httpserver"
	"github.com/kyoma102/AI-tools-navigation/internal/i18n"
	"github.com/kyoma102/AI-tools-navigation/internal/metrics"
	"github.com/kyoma102/AI-tools-navigation/internal/observability"
	"github.com/kyoma102/AI-tools-navigation/internal/pages"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "web: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(&cfg, flag.CommandLine, os.Args[1:])

	logger, err := observability.NewLoggerWithLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, loader, err := build(cfg, logger)
	if err != nil {
		return err
	}

	if src, ok := loader.Source().(catalog.FileSource); ok && cfg.Catalog.Watch {
		go func() {
			if err := catalog.Watch(ctx, src.Path, loader, logger); err != nil {
				logger.Warn("catalog watch stopped", zap.String("path", src.Path), zap.Error(err))
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("web listening",
			zap.String("addr", cfg.Server.Addr),
			zap.String("catalog_source", cfg.Catalog.Source),
			zap.Bool("dev", cfg.Dev),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// applyFlags lets command line flags override the address and asset
// directories resolved from the environment.
func applyFlags(cfg *config.Config, fs *flag.FlagSet, args []string) {
	fs.StringVar(&cfg.Server.Addr, "addr", cfg.Server.Addr, "HTTP listen address")
	fs.StringVar(&cfg.Site.TemplatesDir, "templates", cfg.Site.TemplatesDir, "templates directory")
	fs.StringVar(&cfg.Site.PublicDir, "public", cfg.Site.PublicDir, "public assets directory")
	fs.StringVar(&cfg.Catalog.Source, "catalog", cfg.Catalog.Source, "catalog source (path, file://, http(s)://, gs://, firestore://)")
	_ = fs.Parse(args)
}

// build wires configuration into a ready-to-serve HTTP server.
func build(cfg config.Config, logger *zap.Logger) (*http.Server, *catalog.Loader, error) {
	bundle, err := i18n.Load(cfg.I18n.Dir, cfg.I18n.Default, cfg.I18n.Supported)
	if err != nil {
		return nil, nil, err
	}

	source, err := catalog.ParseSource(cfg.Catalog.Source, catalog.SourceOptions{Timeout: cfg.Catalog.FetchTimeout})
	if err != nil {
		return nil, nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	loader := catalog.NewLoader(source,
		catalog.WithLogger(logger.Named("catalog")),
		catalog.WithCacheTTL(cfg.Catalog.CacheTTL),
		catalog.WithFetchTimeout(cfg.Catalog.FetchTimeout),
		catalog.WithObserver(m),
	)

	// Parse templates once in production; dev mode reparses per request.
	shells, err := httpserver.NewShells(cfg.Site.TemplatesDir, bundle, cfg.Dev)
	if err != nil {
		return nil, nil, fmt.Errorf("parse templates: %w", err)
	}

	srv := httpserver.New(httpserver.Config{
		Address:      cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Loader:       loader,
		Bundle:       bundle,
		Shells:       shells,
		Metrics:      m,
		Logger:       logger,
		Site:         cfg.Site,
		Analytics:    cfg.Analytics,
		Limits: pages.Limits{
			Featured: cfg.Catalog.FeaturedLimit,
			New:      cfg.Catalog.NewLimit,
			Related:  cfg.Catalog.RelatedLimit,
		},
		Dev: cfg.Dev,
		H2C: true,
	})
	return srv, loader, nil
}
