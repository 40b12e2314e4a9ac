package render

import (
	"bytes"
	"html/template"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdownOnce   sync.Once
	markdownEngine goldmark.Markdown
	markdownPolicy *bluemonday.Policy
)

// Markdown converts src to sanitized HTML. Plain text comes back as a
// single paragraph.
func Markdown(src string) template.HTML {
	markdownOnce.Do(func() {
		markdownEngine = goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough))
		markdownPolicy = bluemonday.UGCPolicy()
		markdownPolicy.RequireNoFollowOnLinks(true)
		markdownPolicy.AddTargetBlankToFullyQualifiedLinks(true)
	})
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(markdownPolicy.SanitizeBytes(buf.Bytes()))
}
