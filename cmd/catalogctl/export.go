package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kyoma102/AI-tools-navigation/internal/catalog"
	"github.com/kyoma102/AI-tools-navigation/internal/httpserver"
	"github.com/kyoma102/AI-tools-navigation/internal/i18n"
	"github.com/kyoma102/AI-tools-navigation/internal/nav"
	"github.com/kyoma102/AI-tools-navigation/internal/pages"
	"github.com/kyoma102/AI-tools-navigation/internal/render"
	"github.com/kyoma102/AI-tools-navigation/internal/seo"
)

type exportOptions struct {
	templatesDir string
	localesDir   string
	lang         string
}

// exporter renders page shells to static files.
type exporter struct {
	dir     string
	lang    string
	site    string
	baseURL string
	limits  pages.Limits
	shells  *httpserver.Shells
	view    *render.View
	catalog catalog.Catalog
	logger  *zap.Logger
}

func newExportCmd(opts *cliOptions) *cobra.Command {
	var eo exportOptions
	cmd := &cobra.Command{
		Use:   "export <dir>",
		Short: "Render static pages for the home page, every category and every tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if eo.templatesDir == "" {
				eo.templatesDir = cfg.Site.TemplatesDir
			}
			if eo.localesDir == "" {
				eo.localesDir = cfg.I18n.Dir
			}

			c, _, err := opts.fetch(cmd.Context())
			if err != nil {
				return fmt.Errorf("load %s: %w", opts.source, err)
			}
			bundle, err := i18n.Load(eo.localesDir, cfg.I18n.Default, cfg.I18n.Supported)
			if err != nil {
				return err
			}
			lang := bundle.Fallback()
			if eo.lang != "" {
				normalized, ok := bundle.Normalize(eo.lang)
				if !ok {
					return fmt.Errorf("unsupported language %q", eo.lang)
				}
				lang = normalized
			}
			shells, err := httpserver.NewShells(eo.templatesDir, bundle, false)
			if err != nil {
				return fmt.Errorf("parse templates: %w", err)
			}

			ex := &exporter{
				dir:     args[0],
				lang:    lang,
				site:    cfg.Site.Name,
				baseURL: cfg.Site.BaseURL,
				limits: pages.Limits{
					Featured: cfg.Catalog.FeaturedLimit,
					New:      cfg.Catalog.NewLimit,
					Related:  cfg.Catalog.RelatedLimit,
				},
				shells:  shells,
				view:    render.NewView(bundle, lang),
				catalog: c,
				logger:  opts.logger,
			}
			n, err := ex.run()
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"dir": ex.dir, "pages": n, "lang": lang})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d pages to %s\n", n, ex.dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&eo.templatesDir, "templates", "", "templates directory; defaults to WEB_TEMPLATES_DIR")
	cmd.Flags().StringVar(&eo.localesDir, "locales", "", "locales directory; defaults to WEB_LOCALES_DIR")
	cmd.Flags().StringVar(&eo.lang, "lang", "", "page language; defaults to WEB_DEFAULT_LANG")
	return cmd
}

type exportJob struct {
	file  string
	page  string
	path  string
	title string
	desc  string
	fill  func(*render.Document)
}

func (e *exporter) jobs() []exportJob {
	v, c := e.view, e.catalog
	jobs := []exportJob{
		{
			file: "index.html", page: "home", path: "/",
			title: e.site, desc: v.T("home.description"),
			fill: func(doc *render.Document) { pages.Home(doc, v, c, e.limits) },
		},
		{
			file: "categories.html", page: "categories", path: "/categories",
			title: v.TF("categories.page_title", "site", e.site), desc: v.T("categories.description"),
			fill: func(doc *render.Document) { pages.Categories(doc, v, c, catalog.Filter{}) },
		},
		{
			file: "tools.html", page: "tools", path: "/tools",
			title: v.TF("tools.page_title", "site", e.site), desc: v.T("tools.description"),
			fill: func(doc *render.Document) { pages.Tools(doc, v, c, catalog.Filter{}) },
		},
	}
	// Listing pages sit at the root, so record pages in categories/ and tools/
	// can never overwrite them. Duplicate ids keep the first record.
	seen := make(map[string]bool)
	claim := func(file string) bool {
		if seen[file] {
			e.logger.Warn("duplicate id skipped in export", zap.String("file", file))
			return false
		}
		seen[file] = true
		return true
	}
	for _, cat := range c.Categories {
		file := filepath.Join("categories", url.PathEscape(cat.ID)+".html")
		if !claim(file) {
			continue
		}
		f := catalog.Filter{CategoryID: cat.ID}
		jobs = append(jobs, exportJob{
			file: file, page: "categories", path: "/categories",
			title: cat.Name + " - " + e.site, desc: cat.Description,
			fill: func(doc *render.Document) { pages.Categories(doc, v, c, f) },
		})
	}
	for _, tool := range c.Tools {
		id := tool.ID
		file := filepath.Join("tools", url.PathEscape(id)+".html")
		if !claim(file) {
			continue
		}
		jobs = append(jobs, exportJob{
			file: file, page: "tool-detail", path: "/tool-detail",
			title: v.TF("detail.page_title", "name", tool.Name, "site", e.site), desc: tool.Description,
			fill: func(doc *render.Document) {
				pages.Detail(doc, v, c, id, pages.DetailOptions{SiteName: e.site, Limits: e.limits})
			},
		})
	}
	return jobs
}

func (e *exporter) run() (int, error) {
	for _, sub := range []string{"", "categories", "tools"} {
		if err := os.MkdirAll(filepath.Join(e.dir, sub), 0o755); err != nil {
			return 0, err
		}
	}

	jobs := e.jobs()
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, job := range jobs {
		g.Go(func() error { return e.write(job) })
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(jobs), nil
}

func (e *exporter) write(job exportJob) error {
	data := httpserver.PageData{
		Title:       job.title,
		Lang:        e.lang,
		SiteName:    e.site,
		Path:        job.path,
		Nav:         nav.Build(job.path),
		Breadcrumbs: nav.Breadcrumbs(job.path),
		SEO:         seo.NewMeta(job.title, job.desc, seo.Absolute(e.baseURL, job.path)),
	}
	doc, err := e.shells.Render(job.page, data)
	if err != nil {
		return fmt.Errorf("render %s: %w", job.file, err)
	}
	job.fill(doc)

	target := filepath.Join(e.dir, job.file)
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := doc.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", target, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	e.logger.Debug("page exported", zap.String("file", target))
	return nil
}
