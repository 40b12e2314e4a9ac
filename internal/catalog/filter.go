package catalog

import (
	"net/url"
	"strings"
)

// AllCategories is the live-selection id meaning "no category facet".
const AllCategories = "all"

// Filter is the active selection derived from the URL or the live controls.
type Filter struct {
	CategoryID string
	Query      string
}

// FilterFromQuery reads the category and q parameters.
func FilterFromQuery(values url.Values) Filter {
	return Filter{
		CategoryID: strings.TrimSpace(values.Get("category")),
		Query:      values.Get("q"),
	}
}

// HasCategory reports whether the filter names a concrete category id.
func (f Filter) HasCategory() bool {
	return f.CategoryID != "" && f.CategoryID != AllCategories
}

// TrimmedQuery returns the text facet as matched.
func (f Filter) TrimmedQuery() string {
	return strings.TrimSpace(f.Query)
}

// Values encodes the filter back into query parameters.
func (f Filter) Values() url.Values {
	v := url.Values{}
	if f.HasCategory() {
		v.Set("category", f.CategoryID)
	}
	if q := f.TrimmedQuery(); q != "" {
		v.Set("q", q)
	}
	return v
}

// Result is the outcome of resolving a Filter against a Catalog.
type Result struct {
	Tools []Tool
	// Category is set only when the category facet resolved.
	Category    *Category
	Query       string
	Title       string
	Description string
}

// TitleFunc produces the heading shown while a text query is active.
type TitleFunc func(query string) string

// DefaultSearchTitle is the heading used by Resolve.
func DefaultSearchTitle(query string) string {
	return "搜索结果: \"" + query + "\""
}

// Resolve applies the category and text facets.
func Resolve(c Catalog, f Filter) Result {
	return ResolveTitled(c, f, DefaultSearchTitle)
}

// ResolveTitled is Resolve with a caller-supplied search heading.
func ResolveTitled(c Catalog, f Filter, searchTitle TitleFunc) Result {
	res := Result{Query: f.TrimmedQuery()}

	var categoryName string
	if f.HasCategory() {
		if cat, err := c.CategoryByID(f.CategoryID); err == nil {
			res.Category = &cat
			res.Title = cat.Name
			res.Description = cat.Description
			categoryName = cat.Name
		}
	}
	if res.Query != "" {
		if searchTitle == nil {
			searchTitle = DefaultSearchTitle
		}
		res.Title = searchTitle(res.Query)
	}

	needle := strings.ToLower(res.Query)
	res.Tools = make([]Tool, 0, len(c.Tools))
	for _, t := range c.Tools {
		if res.Category != nil && t.Category != categoryName {
			continue
		}
		if needle != "" && !matchesText(t, needle) {
			continue
		}
		res.Tools = append(res.Tools, t)
	}
	return res
}

// matchesText reports whether the lowercased needle occurs in the tool's
// name, description or any tag.
func matchesText(t Tool, needle string) bool {
	if strings.Contains(strings.ToLower(t.Name), needle) ||
		strings.Contains(strings.ToLower(t.Description), needle) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
