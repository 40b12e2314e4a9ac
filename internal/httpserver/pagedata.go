package httpserver

import (
	"html/template"
	"net/http"

	"github.com/kyoma102/AI-tools-navigation/internal/config"
	"github.com/kyoma102/AI-tools-navigation/internal/middleware"
	"github.com/kyoma102/AI-tools-navigation/internal/nav"
	"github.com/kyoma102/AI-tools-navigation/internal/seo"
)

// PageData is the view model every page shell receives.
type PageData struct {
	Title       string
	Lang        string
	SiteName    string
	Path        string
	Query       string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb
	SEO         seo.Meta
	JSONLD      []template.JS
	Analytics   config.AnalyticsConfig
	Dev         bool
}

func (s *server) pageData(r *http.Request, title, description string) PageData {
	lang := middleware.Lang(r, s.bundle.Fallback())
	canonical := seo.Absolute(s.site.BaseURL, r.URL.RequestURI())
	return PageData{
		Title:       title,
		Lang:        lang,
		SiteName:    s.site.Name,
		Path:        r.URL.Path,
		Nav:         nav.Build(r.URL.Path),
		Breadcrumbs: nav.Breadcrumbs(r.URL.Path),
		SEO:         seo.NewMeta(title, description, canonical),
		Analytics:   s.analytics,
		Dev:         s.dev,
	}
}
