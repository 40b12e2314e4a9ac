package nav

import (
	"net/url"
	"path"
	"strings"

	"github.com/kyoma102/AI-tools-navigation/internal/catalog"
)

// Item represents a top-level navigation item.
type Item struct {
	Path     string // e.g. "/categories"
	LabelKey string // i18n key, e.g. "nav.categories"
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	LabelKey string
	Active   bool
}

// Crumb represents a breadcrumb entry. If LabelKey is empty, use Label.
type Crumb struct {
	Href     string
	LabelKey string
	Label    string
	Active   bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/", LabelKey: "nav.home"},
	{Path: "/categories", LabelKey: "nav.categories"},
	{Path: "/tools", LabelKey: "nav.tools"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:     it.Path,
			LabelKey: it.LabelKey,
			Active:   isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds breadcrumb entries from the current path, starting
// with Home and using nav label keys for known sections.
func Breadcrumbs(currentPath string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", LabelKey: "nav.home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")
	href := ""
	for i, part := range parts {
		if part == "" {
			continue
		}
		href += "/" + part
		c := Crumb{Href: href, Label: titleFromSegment(part), Active: i == len(parts)-1}
		if i == 0 {
			for _, it := range Main {
				if it.Path == href {
					c.LabelKey = it.LabelKey
					break
				}
			}
		}
		crumbs = append(crumbs, c)
	}
	return crumbs
}

// ToolCrumbs builds Home > Categories > <category> > <tool>. The category
// link is left without an id when the tool's category name matches no category.
func ToolCrumbs(tool catalog.Tool, category *catalog.Category) []Crumb {
	catHref := "/categories?category="
	if category != nil {
		catHref += url.QueryEscape(category.ID)
	}
	return []Crumb{
		{Href: "/", LabelKey: "nav.home"},
		{Href: "/categories", LabelKey: "nav.categories"},
		{Href: catHref, Label: tool.Category},
		{Label: tool.Name, Active: true},
	}
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
