package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kyoma102/AI-tools-navigation/internal/catalog"
	"github.com/kyoma102/AI-tools-navigation/internal/config"
	"github.com/kyoma102/AI-tools-navigation/internal/observability"
)

type cliOptions struct {
	source     string
	timeout    time.Duration
	jsonOutput bool
	verbose    bool
	cfg        config.Config
	logger     *zap.Logger
}

func newRootCommand() *cobra.Command {
	opts := cliOptions{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Inspect and export the AI tools catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			if !cmd.Flags().Changed("source") {
				opts.source = cfg.Catalog.Source
			}
			if !cmd.Flags().Changed("timeout") {
				opts.timeout = cfg.Catalog.FetchTimeout
			}
			if opts.verbose {
				logger, err := observability.NewLoggerWithLevel("debug")
				if err != nil {
					return err
				}
				opts.logger = logger
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = opts.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&opts.source, "source", "", "catalog source (path, file://, http(s)://, gs://, firestore://); defaults to WEB_CATALOG_SOURCE")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "fetch timeout; defaults to WEB_CATALOG_FETCH_TIMEOUT")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "output JSON")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log to stdout")

	root.AddCommand(
		newValidateCmd(&opts),
		newExportCmd(&opts),
	)
	return root
}

// fetch loads the catalog once with errors surfaced rather than absorbed.
func (o *cliOptions) fetch(ctx context.Context) (catalog.Catalog, catalog.Source, error) {
	source, err := catalog.ParseSource(o.source, catalog.SourceOptions{Timeout: o.timeout})
	if err != nil {
		return catalog.Catalog{}, nil, err
	}
	loader := catalog.NewLoader(source,
		catalog.WithLogger(o.logger),
		catalog.WithCacheTTL(0),
		catalog.WithFetchTimeout(o.timeout),
	)
	c, err := loader.Fetch(ctx)
	return c, source, err
}
