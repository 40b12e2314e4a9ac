// Package pages fills page shells for each route. Every entry point takes a
// catalog loaded once for the request and writes into the mount points that
// exist in the shell.
package pages

import (
	"strconv"

	"github.com/kyoma102/AI-tools-navigation/internal/catalog"
	"github.com/kyoma102/AI-tools-navigation/internal/nav"
	"github.com/kyoma102/AI-tools-navigation/internal/render"
)

// Limits bounds the curated subsets.
type Limits struct {
	Featured int
	New      int
	Related  int
}

// DefaultLimits matches the home and detail page layouts.
var DefaultLimits = Limits{Featured: 4, New: 4, Related: 4}

func (l Limits) withDefaults() Limits {
	if l.Featured <= 0 {
		l.Featured = DefaultLimits.Featured
	}
	if l.New <= 0 {
		l.New = DefaultLimits.New
	}
	if l.Related <= 0 {
		l.Related = DefaultLimits.Related
	}
	return l
}

// Home fills the featured, new and category sections. Cards link to the
// tools' own sites.
func Home(doc *render.Document, v *render.View, c catalog.Catalog, limits Limits) {
	limits = limits.withDefaults()
	doc.Mount(render.MountFeaturedTools, v.Cards(catalog.Featured(c, limits.Featured), render.LinkExternal))
	doc.Mount(render.MountNewTools, v.Cards(catalog.Newest(c, limits.New), render.LinkExternal))
	doc.Mount(render.MountCategories, v.CategoryGrid(c.Categories))
}

// Categories fills the category browser and returns the resolved listing.
func Categories(doc *render.Document, v *render.View, c catalog.Catalog, f catalog.Filter) catalog.Result {
	res := v.Resolve(c, f)

	doc.Mount(render.MountCategoryTags, v.CategoryTags(c.Categories, f.CategoryID))
	if res.Title != "" {
		doc.SetText(render.MountCategoryTitle, res.Title)
	}
	if res.Category != nil {
		doc.SetText(render.MountCategoryDesc, res.Description)
	}
	if res.Query != "" {
		doc.SetAttr(render.MountSearchInput, "value", res.Query)
	}
	doc.Mount(render.MountToolsContainer, v.Cards(res.Tools, render.LinkDetail))
	return res
}

// Tools fills the live tools page for the initial selection.
func Tools(doc *render.Document, v *render.View, c catalog.Catalog, f catalog.Filter) catalog.Result {
	res := v.Resolve(c, f)

	doc.Mount(render.MountLiveControls, v.LiveControls(c.Categories, f.CategoryID, res.Query))
	doc.SetAttr(render.MountSearchInput, "value", res.Query)
	doc.Mount(render.MountToolsContainer, v.Cards(res.Tools, render.LinkDetail))
	doc.SetText(render.MountResultCount, v.ResultCountText(len(res.Tools)))
	doc.SetAttr(render.MountResultCount, "data-count", strconv.Itoa(len(res.Tools)))
	return res
}

// ToolsResults is the htmx response for a live selection change: the card
// list plus out-of-band swaps for the result count and the controls.
func ToolsResults(v *render.View, c catalog.Catalog, f catalog.Filter) (render.Fragment, catalog.Result) {
	res := v.Resolve(c, f)
	return render.Fragment{
		v.Cards(res.Tools, render.LinkDetail),
		v.ResultCount(len(res.Tools), true),
		v.LiveControlsOOB(c.Categories, f.CategoryID, res.Query),
	}, res
}

// DetailOptions configures the detail page.
type DetailOptions struct {
	SiteName string
	Limits   Limits
}

// Detail fills the tool detail sections. When id matches no tool it writes
// the not-found fragment into the main content and returns false.
func Detail(doc *render.Document, v *render.View, c catalog.Catalog, id string, opts DetailOptions) (catalog.Tool, bool) {
	limits := opts.Limits.withDefaults()

	tool, err := c.ToolByID(id)
	if err != nil {
		doc.Mount(render.MountMainContent, v.NotFound(id))
		doc.SetTitle(v.TF("notfound.page_title", "site", opts.SiteName))
		return catalog.Tool{}, false
	}

	doc.SetTitle(v.TF("detail.page_title", "name", tool.Name, "site", opts.SiteName))

	var category *catalog.Category
	if cat, err := c.CategoryByName(tool.Category); err == nil {
		category = &cat
	}
	doc.Mount(render.MountBreadcrumb, v.Breadcrumb(nav.ToolCrumbs(tool, category)))
	doc.Mount(render.MountToolHeader, v.ToolHeader(tool))
	doc.Mount(render.MountToolDescription, v.ToolDescription(tool))
	doc.Mount(render.MountUseCases, v.UseCases(tool))
	doc.Mount(render.MountScreenshots, v.Screenshots(tool))
	doc.Mount(render.MountPricing, v.Pricing(tool))
	doc.Mount(render.MountFeatures, v.Features(tool))
	doc.Mount(render.MountRelatedTools, v.RelatedTools(catalog.Related(c, tool, limits.Related)))
	doc.Mount(render.MountReviews, v.Reviews(catalog.SampleReviews()))
	doc.Mount(render.MountFAQ, v.FAQ(catalog.FAQ(tool)))
	return tool, true
}
