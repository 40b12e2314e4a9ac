package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Mount point ids shared by page shells and page entry points.
const (
	MountToolsContainer  = "tools-container"
	MountCategoryTags    = "category-tags"
	MountCategoryTitle   = "category-title"
	MountCategoryDesc    = "category-description"
	MountSearchInput     = "search-input"
	MountFeaturedTools   = "featured-tools"
	MountNewTools        = "new-tools"
	MountCategories      = "categories"
	MountBreadcrumb      = "breadcrumb"
	MountToolHeader      = "tool-header"
	MountToolDescription = "tool-description"
	MountUseCases        = "use-cases"
	MountScreenshots     = "screenshots"
	MountPricing         = "pricing"
	MountFeatures        = "features"
	MountRelatedTools    = "related-tools"
	MountReviews         = "reviews"
	MountFAQ             = "faq"
	MountMainContent     = "main-content"
	MountResultCount     = "result-count"
	MountLiveControls    = "live-controls"
)

// Document is a parsed page shell whose mount points are filled in place.
// Every mutator reports whether the mount point existed; a missing mount
// point is skipped.
type Document struct {
	doc *goquery.Document
}

// ParseDocument parses a page shell.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse page shell: %w", err)
	}
	return &Document{doc: goquery.NewDocumentFromNode(root)}, nil
}

// ParseDocumentString parses a page shell held in memory.
func ParseDocumentString(src string) (*Document, error) {
	return ParseDocument(strings.NewReader(src))
}

func (d *Document) mount(id string) *goquery.Selection {
	return d.doc.Find("#" + id).First()
}

// Has reports whether the mount point exists.
func (d *Document) Has(id string) bool {
	return d.mount(id).Length() > 0
}

// Mount replaces the children of the mount point with html.
func (d *Document) Mount(id string, fragment template.HTML) bool {
	sel := d.mount(id)
	if sel.Length() == 0 {
		return false
	}
	sel.SetHtml(string(fragment))
	return true
}

// SetText replaces the mount point's content with escaped text.
func (d *Document) SetText(id, text string) bool {
	sel := d.mount(id)
	if sel.Length() == 0 {
		return false
	}
	sel.SetText(text)
	return true
}

// SetAttr sets an attribute on the mount point.
func (d *Document) SetAttr(id, attr, value string) bool {
	sel := d.mount(id)
	if sel.Length() == 0 {
		return false
	}
	sel.SetAttr(attr, value)
	return true
}

// SetTitle replaces the document title.
func (d *Document) SetTitle(title string) bool {
	sel := d.doc.Find("title").First()
	if sel.Length() == 0 {
		return false
	}
	sel.SetText(title)
	return true
}

// Text returns the text content of a mount point.
func (d *Document) Text(id string) string {
	return d.mount(id).Text()
}

// HTML returns the inner HTML of a mount point.
func (d *Document) HTML(id string) string {
	h, _ := d.mount(id).Html()
	return h
}

// WriteTo serializes the whole document.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, n := range d.doc.Nodes {
		if err := html.Render(&buf, n); err != nil {
			return 0, err
		}
	}
	return buf.WriteTo(w)
}

// String serializes the whole document.
func (d *Document) String() string {
	var buf bytes.Buffer
	_, _ = d.WriteTo(&buf)
	return buf.String()
}
