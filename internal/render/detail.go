package render

import (
	"html/template"
	"strings"

	"github.com/kyoma102/AI-tools-navigation/internal/catalog"
	"github.com/kyoma102/AI-tools-navigation/internal/format"
	"github.com/kyoma102/AI-tools-navigation/internal/nav"
)

type toolData struct {
	V    *View
	Tool catalog.Tool
}

// Breadcrumb renders crumbs, translating label keys.
func (v *View) Breadcrumb(crumbs []nav.Crumb) template.HTML {
	type crumb struct {
		Href   string
		Label  string
		Active bool
	}
	items := make([]crumb, 0, len(crumbs))
	for _, c := range crumbs {
		label := c.Label
		if c.LabelKey != "" {
			label = v.T(c.LabelKey)
		}
		items = append(items, crumb{Href: c.Href, Label: label, Active: c.Active})
	}
	return v.execute("breadcrumb", struct {
		V      *View
		Crumbs []crumb
	}{v, items})
}

// ToolHeader renders name, developer, tags, rating and the visit link.
func (v *View) ToolHeader(t catalog.Tool) template.HTML {
	return v.execute("tool_header", struct {
		V     *View
		Tool  catalog.Tool
		Stars template.HTML
	}{v, t, v.Stars(t.Rating)})
}

// ToolDescription renders the long description as sanitized Markdown,
// falling back to the short description.
func (v *View) ToolDescription(t catalog.Tool) template.HTML {
	body := t.LongDescription
	if strings.TrimSpace(body) == "" {
		body = t.Description
	}
	return v.execute("tool_description", struct {
		V    *View
		Body template.HTML
	}{v, Markdown(body)})
}

// UseCases renders the use case list.
func (v *View) UseCases(t catalog.Tool) template.HTML {
	return v.execute("use_cases", toolData{v, t})
}

// Screenshots renders the screenshot gallery or a textual fallback.
func (v *View) Screenshots(t catalog.Tool) template.HTML {
	return v.execute("screenshots", toolData{v, t})
}

// Pricing renders the pricing summary.
func (v *View) Pricing(t catalog.Tool) template.HTML {
	return v.execute("pricing", toolData{v, t})
}

// Features renders the feature list.
func (v *View) Features(t catalog.Tool) template.HTML {
	return v.execute("features", toolData{v, t})
}

// RelatedTools renders related tool summaries or a textual fallback.
func (v *View) RelatedTools(related []catalog.Tool) template.HTML {
	return v.execute("related_tools", struct {
		V     *View
		Tools []catalog.Tool
	}{v, related})
}

// Reviews renders the review list.
func (v *View) Reviews(reviews []catalog.Review) template.HTML {
	type review struct {
		catalog.Review
		Body  string
		Date  string
		Stars template.HTML
	}
	items := make([]review, 0, len(reviews))
	for _, r := range reviews {
		items = append(items, review{
			Review: r,
			Body:   v.Message(r.Body),
			Date:   format.Date(r.Date, v.lang),
			Stars:  v.Stars(r.Rating),
		})
	}
	return v.execute("reviews", struct {
		V       *View
		Reviews []review
	}{v, items})
}

// FAQ renders the question list.
func (v *View) FAQ(entries []catalog.FAQEntry) template.HTML {
	type item struct {
		Question string
		Answer   string
		Last     bool
	}
	items := make([]item, 0, len(entries))
	for i, e := range entries {
		var answer strings.Builder
		for _, part := range e.Answer {
			answer.WriteString(v.Message(part))
		}
		items = append(items, item{
			Question: v.Message(e.Question),
			Answer:   answer.String(),
			Last:     i == len(entries)-1,
		})
	}
	return v.execute("faq", struct {
		V     *View
		Items []item
	}{v, items})
}
