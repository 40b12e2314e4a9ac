package seo

import (
	"strings"

	"github.com/kyoma102/AI-tools-navigation/internal/format"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
}

type Twitter struct {
	Card  string
	Image string
}

// Meta is rendered into the head of every page shell.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
}

// NewMeta fills the social cards from the page title and description.
func NewMeta(title, description, canonical string) Meta {
	description = format.Truncate(strings.TrimSpace(description), 160)
	return Meta{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Type:        "website",
			URL:         canonical,
		},
		Twitter: Twitter{Card: "summary"},
	}
}

// WithImage sets the preview image on both social cards.
func (m Meta) WithImage(url string) Meta {
	if url == "" {
		return m
	}
	m.OG.Image = url
	m.Twitter.Image = url
	m.Twitter.Card = "summary_large_image"
	return m
}

// Absolute joins a site base URL and a root-relative path. An empty base
// leaves the path untouched.
func Absolute(baseURL, path string) string {
	if baseURL == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}
