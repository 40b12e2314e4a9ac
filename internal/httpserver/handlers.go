package httpserver

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"github.com/kyoma102/AI-tools-navigation/internal/catalog"
	"github.com/kyoma102/AI-tools-navigation/internal/format"
	"github.com/kyoma102/AI-tools-navigation/internal/middleware"
	"github.com/kyoma102/AI-tools-navigation/internal/nav"
	"github.com/kyoma102/AI-tools-navigation/internal/observability"
	"github.com/kyoma102/AI-tools-navigation/internal/pages"
	"github.com/kyoma102/AI-tools-navigation/internal/render"
	"github.com/kyoma102/AI-tools-navigation/internal/seo"
)

// Page shell names under templates/pages.
const (
	pageHome       = "home"
	pageCategories = "categories"
	pageTools      = "tools"
	pageDetail     = "tool-detail"
)

func (s *server) view(r *http.Request) *render.View {
	return render.NewView(s.bundle, middleware.Lang(r, s.bundle.Fallback()))
}

// writePage renders the shell for page, lets fill populate its mount points
// and writes the result with status.
func (s *server) writePage(w http.ResponseWriter, r *http.Request, status int, page string, data PageData, fill func(*render.Document)) {
	doc, err := s.shells.Render(page, data)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	fill(doc)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := doc.WriteTo(w); err != nil {
		observability.FromContext(r.Context()).Warn("write page failed", zap.String("page", page), zap.Error(err))
	}
}

func (s *server) fail(w http.ResponseWriter, r *http.Request, err error) {
	observability.FromContext(r.Context()).Error("render failed", zap.Error(err))
	middleware.WriteError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

func (s *server) observeEmpty(page string, res catalog.Result) {
	if s.metrics != nil && len(res.Tools) == 0 {
		s.metrics.ObserveEmptyResult(page)
	}
}

func (s *server) home(w http.ResponseWriter, r *http.Request) {
	c := s.loader.Load(r.Context())
	v := s.view(r)

	data := s.pageData(r, s.site.Name, v.T("home.description"))
	data.JSONLD = append(data.JSONLD, seo.Script(seo.WebSite(
		s.site.Name,
		seo.Absolute(s.site.BaseURL, "/"),
		seo.Absolute(s.site.BaseURL, "/search?q="),
	)))

	s.writePage(w, r, http.StatusOK, pageHome, data, func(doc *render.Document) {
		pages.Home(doc, v, c, s.limits)
	})
}

func (s *server) categories(w http.ResponseWriter, r *http.Request) {
	c := s.loader.Load(r.Context())
	v := s.view(r)
	f := catalog.FilterFromQuery(r.URL.Query())

	data := s.pageData(r, v.TF("categories.page_title", "site", s.site.Name), v.T("categories.description"))
	data.Query = f.TrimmedQuery()

	s.writePage(w, r, http.StatusOK, pageCategories, data, func(doc *render.Document) {
		res := pages.Categories(doc, v, c, f)
		if res.Title != "" {
			doc.SetTitle(res.Title + " - " + s.site.Name)
		}
		s.observeEmpty(pageCategories, res)
	})
}

// search turns the header search form into a categories listing.
func (s *server) search(w http.ResponseWriter, r *http.Request) {
	target := "/categories"
	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		target += "?q=" + url.QueryEscape(q)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *server) tools(w http.ResponseWriter, r *http.Request) {
	c := s.loader.Load(r.Context())
	v := s.view(r)
	f := catalog.FilterFromQuery(r.URL.Query())

	data := s.pageData(r, v.TF("tools.page_title", "site", s.site.Name), v.T("tools.description"))
	data.Query = f.TrimmedQuery()

	s.writePage(w, r, http.StatusOK, pageTools, data, func(doc *render.Document) {
		s.observeEmpty(pageTools, pages.Tools(doc, v, c, f))
	})
}

// toolsResults answers the live controls with the card list and an
// out-of-band result count.
func (s *server) toolsResults(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsHTMX(r.Context()) && r.URL.Query().Get("partial") != "1" {
		middleware.WriteError(w, r, http.StatusBadRequest, "htmx request required")
		return
	}
	c := s.loader.Load(r.Context())
	f := catalog.FilterFromQuery(r.URL.Query())

	fragment, res := pages.ToolsResults(s.view(r), c, f)
	s.observeEmpty("tools_results", res)

	push := "/tools"
	if q := f.Values().Encode(); q != "" {
		push += "?" + q
	}
	w.Header().Set("HX-Push-Url", push)
	templ.Handler(fragment, templ.WithErrorHandler(s.renderError)).ServeHTTP(w, r)
}

// renderError lets fragment render failures answer like page failures.
func (s *server) renderError(_ *http.Request, err error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.fail(w, r, err)
	})
}

func (s *server) toolDetail(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	c := s.loader.Load(r.Context())
	v := s.view(r)

	tool, err := c.ToolByID(id)
	if err != nil {
		observability.FromContext(r.Context()).Info("tool not found", zap.String("tool_id", id))
		data := s.pageData(r, v.TF("notfound.page_title", "site", s.site.Name), "")
		data.SEO.Robots = "noindex"
		s.writePage(w, r, http.StatusNotFound, pageDetail, data, func(doc *render.Document) {
			pages.Detail(doc, v, c, id, pages.DetailOptions{SiteName: s.site.Name, Limits: s.limits})
		})
		return
	}

	data := s.pageData(r, v.TF("detail.page_title", "name", tool.Name, "site", s.site.Name), format.Truncate(tool.Description, render.DescriptionLimit))
	if len(tool.Screenshots) > 0 {
		data.SEO = data.SEO.WithImage(seo.Absolute(s.site.BaseURL, tool.Screenshots[0]))
	}
	var category *catalog.Category
	if cat, err := c.CategoryByName(tool.Category); err == nil {
		category = &cat
	}
	crumbs := nav.ToolCrumbs(tool, category)
	data.Breadcrumbs = crumbs
	data.JSONLD = append(data.JSONLD,
		seo.Script(seo.SoftwareApplication(tool, data.SEO.Canonical)),
		seo.Script(seo.BreadcrumbList(s.breadcrumbItems(v, crumbs))),
	)

	s.writePage(w, r, http.StatusOK, pageDetail, data, func(doc *render.Document) {
		pages.Detail(doc, v, c, id, pages.DetailOptions{SiteName: s.site.Name, Limits: s.limits})
	})
}

func (s *server) breadcrumbItems(v *render.View, crumbs []nav.Crumb) []seo.BreadcrumbItem {
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for _, c := range crumbs {
		name := c.Label
		if c.LabelKey != "" {
			name = v.T(c.LabelKey)
		}
		item := ""
		if c.Href != "" {
			item = seo.Absolute(s.site.BaseURL, c.Href)
		}
		items = append(items, seo.BreadcrumbItem{Name: name, Item: item})
	}
	return items
}
