package testutil

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// ParseHTML parses a response body, either a full page shell or an htmx
// fragment, into a goquery document.
func ParseHTML(t testing.TB, body []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	require.NoError(t, err, "parse html")
	return doc
}

// ParseMarkup parses anything that renders itself to markup, such as a
// render.Document after its mount points are filled or a render.Fragment.
func ParseMarkup(t testing.TB, markup fmt.Stringer) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup.String()))
	require.NoError(t, err, "parse markup")
	return doc
}

// MountPoint returns the element with the given id and fails the test unless
// exactly one exists.
func MountPoint(t testing.TB, doc *goquery.Document, id string) *goquery.Selection {
	t.Helper()

	sel := doc.Find("#" + id)
	require.Equal(t, 1, sel.Length(), "mount point #%s", id)
	return sel
}
