package seo

import (
	"encoding/json"
	"html/template"

	"github.com/kyoma102/AI-tools-navigation/internal/catalog"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Script marshals v for embedding inside a ld+json script element.
func Script(v any) template.JS {
	return template.JS(JSON(v))
}

// WebSite returns a minimal WebSite schema with optional SearchAction.
func WebSite(name, url, searchActionURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if searchActionURL != "" {
		m["potentialAction"] = map[string]any{
			"@type":       "SearchAction",
			"target":      searchActionURL + "{search_term_string}",
			"query-input": "required name=search_term_string",
		}
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		entry := map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
		}
		if it.Item != "" {
			entry["item"] = it.Item
		}
		el = append(el, entry)
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// SoftwareApplication describes a catalog tool. The rating block is omitted
// for tools without reviews.
func SoftwareApplication(t catalog.Tool, pageURL string) map[string]any {
	m := map[string]any{
		"@context":            "https://schema.org",
		"@type":               "SoftwareApplication",
		"name":                t.Name,
		"description":         t.Description,
		"applicationCategory": t.Category,
	}
	if pageURL != "" {
		m["url"] = pageURL
	}
	if t.URL != "" {
		m["sameAs"] = t.URL
	}
	if t.Developer != "" {
		m["author"] = map[string]any{"@type": "Organization", "name": t.Developer}
	}
	if t.Pricing.HasFree {
		m["offers"] = map[string]any{"@type": "Offer", "price": "0"}
	}
	if t.ReviewCount > 0 {
		m["aggregateRating"] = map[string]any{
			"@type":       "AggregateRating",
			"ratingValue": t.Rating,
			"reviewCount": t.ReviewCount,
			"bestRating":  5,
		}
	}
	return m
}
