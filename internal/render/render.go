package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/kyoma102/AI-tools-navigation/internal/catalog"
	"github.com/kyoma102/AI-tools-navigation/internal/format"
	"github.com/kyoma102/AI-tools-navigation/internal/i18n"
)

//go:embed fragments/*.tmpl
var fragmentFS embed.FS

// PlaceholderImage is shown for tools without screenshots.
const PlaceholderImage = "/assets/img/placeholder.svg"

// DescriptionLimit is the rune budget of a card description.
const DescriptionLimit = 100

var fragments = template.Must(template.New("fragments").Funcs(template.FuncMap{
	"iconPath": IconPath,
	"rating":   format.Rating,
	"count":    format.Count,
	"detailURL": func(id string) string {
		return "/tool-detail?id=" + url.QueryEscape(id)
	},
	"categoryURL": func(id string) string {
		if id == "" || id == catalog.AllCategories {
			return "/categories"
		}
		return "/categories?category=" + url.QueryEscape(id)
	},
	"liveURL": func(id string) string {
		return "/tools/results?category=" + url.QueryEscape(id)
	},
}).ParseFS(fragmentFS, "fragments/*.tmpl"))

// Link selects where a card points.
type Link int

const (
	// LinkDetail points at the tool detail page.
	LinkDetail Link = iota
	// LinkExternal points at the tool's own site in a new tab.
	LinkExternal
)

// Badge is the single label shown on a card.
type Badge string

const (
	BadgeNone    Badge = ""
	BadgePopular Badge = "popular"
	BadgeNew     Badge = "new"
)

// BadgeFor returns the badge for t. Popular wins over new.
func BadgeFor(t catalog.Tool) Badge {
	switch {
	case t.IsPopular:
		return BadgePopular
	case t.IsNew:
		return BadgeNew
	default:
		return BadgeNone
	}
}

// View renders fragments with labels in one language.
type View struct {
	lang   string
	bundle *i18n.Bundle
}

// NewView binds bundle to lang. A nil bundle renders translation keys.
func NewView(bundle *i18n.Bundle, lang string) *View {
	return &View{lang: lang, bundle: bundle}
}

// Lang returns the bound language.
func (v *View) Lang() string { return v.lang }

// T translates key.
func (v *View) T(key string) string { return v.bundle.T(v.lang, key) }

// TF translates key with {name} substitutions.
func (v *View) TF(key string, args ...string) string { return v.bundle.TF(v.lang, key, args...) }

// Message translates a catalog message.
func (v *View) Message(m catalog.Message) string { return v.TF(m.Key, m.Args...) }

// SearchTitle is the localized heading for an active text query.
func (v *View) SearchTitle(query string) string {
	return v.TF("results.title", "q", query)
}

// Resolve runs catalog.ResolveTitled with this view's search heading.
func (v *View) Resolve(c catalog.Catalog, f catalog.Filter) catalog.Result {
	return catalog.ResolveTitled(c, f, v.SearchTitle)
}

func (v *View) execute(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		// Fragment data is fully typed, so this only fires on a broken template.
		panic(fmt.Sprintf("render %s: %v", name, err))
	}
	return template.HTML(strings.TrimSpace(buf.String()))
}

type cardData struct {
	V        *View
	Tool     catalog.Tool
	Thumb    string
	Badge    Badge
	Summary  string
	External bool
}

// Card projects one tool into a card.
func (v *View) Card(t catalog.Tool, link Link) template.HTML {
	thumb := PlaceholderImage
	if len(t.Screenshots) > 0 && strings.TrimSpace(t.Screenshots[0]) != "" {
		thumb = t.Screenshots[0]
	}
	return v.execute("card", cardData{
		V:        v,
		Tool:     t,
		Thumb:    thumb,
		Badge:    BadgeFor(t),
		Summary:  format.Truncate(t.Description, DescriptionLimit),
		External: link == LinkExternal,
	})
}

// Cards renders every tool as a card, or the empty state when there are none.
func (v *View) Cards(tools []catalog.Tool, link Link) template.HTML {
	if len(tools) == 0 {
		return v.EmptyState()
	}
	var b strings.Builder
	for _, t := range tools {
		b.WriteString(string(v.Card(t, link)))
		b.WriteByte('\n')
	}
	return template.HTML(b.String())
}

// EmptyState is the fixed no-results placeholder.
func (v *View) EmptyState() template.HTML {
	return v.execute("empty_state", struct{ V *View }{v})
}

type tagData struct {
	ID     string
	Label  string
	Active bool
}

// CategoryTags renders the "all" tag followed by one tag per category.
// active is the current category id; empty or unknown ids highlight "all".
func (v *View) CategoryTags(categories []catalog.Category, active string) template.HTML {
	known := hasCategory(categories, active)
	tags := []tagData{{ID: catalog.AllCategories, Label: v.T("categories.all"), Active: !known}}
	for _, c := range categories {
		tags = append(tags, tagData{ID: c.ID, Label: c.Name, Active: known && c.ID == active})
	}
	return v.execute("category_tags", struct {
		V    *View
		Tags []tagData
	}{v, tags})
}

// CategoryGrid renders one tile per category with its icon.
func (v *View) CategoryGrid(categories []catalog.Category) template.HTML {
	if len(categories) == 0 {
		return v.EmptyState()
	}
	return v.execute("category_grid", struct {
		V          *View
		Categories []catalog.Category
	}{v, categories})
}

type liveControlsData struct {
	V        *View
	Buttons  []tagData
	Selected string
	Query    string
}

func (v *View) liveControls(categories []catalog.Category, selected string, query string) liveControlsData {
	if !hasCategory(categories, selected) {
		selected = catalog.AllCategories
	}
	buttons := []tagData{{ID: catalog.AllCategories, Label: v.T("categories.all"), Active: selected == catalog.AllCategories}}
	for _, c := range categories {
		buttons = append(buttons, tagData{ID: c.ID, Label: c.Name, Active: c.ID == selected})
	}
	return liveControlsData{V: v, Buttons: buttons, Selected: selected, Query: query}
}

// LiveControls renders the category buttons of the live tools page.
func (v *View) LiveControls(categories []catalog.Category, selected string, query string) template.HTML {
	return v.execute("live_controls", v.liveControls(categories, selected, query))
}

// LiveControlsOOB renders the controls wrapped for an out-of-band swap into
// the live-controls mount point.
func (v *View) LiveControlsOOB(categories []catalog.Category, selected string, query string) template.HTML {
	return v.execute("live_controls_oob", v.liveControls(categories, selected, query))
}

// ResultCount renders the live result counter. oob marks it for an htmx
// out-of-band swap.
func (v *View) ResultCount(n int, oob bool) template.HTML {
	return v.execute("result_count", struct {
		V     *View
		Count int
		OOB   bool
	}{v, n, oob})
}

// ResultCountText is the plain counter label.
func (v *View) ResultCountText(n int) string {
	return v.TF("results.count", "count", format.Count(n))
}

// NotFound is shown in place of the detail page for an unknown id.
func (v *View) NotFound(id string) template.HTML {
	return v.execute("not_found", struct {
		V  *View
		ID string
	}{v, id})
}

func hasCategory(categories []catalog.Category, id string) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
