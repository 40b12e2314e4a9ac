package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Source fetches a whole catalog document.
type Source interface {
	// Name identifies the source in logs and metrics.
	Name() string
	Fetch(ctx context.Context) (Catalog, error)
}

// SourceOptions tunes sources built by ParseSource.
type SourceOptions struct {
	HTTPClient *http.Client
	Timeout    time.Duration
}

// ParseSource builds a Source from a location string: a file path, an
// http(s) URL, gs://bucket/object or firestore://project-id.
func ParseSource(raw string, opts SourceOptions) (Source, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty location", ErrUnsupportedSource)
	}
	if !strings.Contains(raw, "://") {
		return FileSource{Path: raw}, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedSource, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "file":
		return FileSource{Path: u.Path}, nil
	case "http", "https":
		client := opts.HTTPClient
		if client == nil {
			timeout := opts.Timeout
			if timeout <= 0 {
				timeout = 5 * time.Second
			}
			client = &http.Client{Timeout: timeout}
		}
		return &HTTPSource{URL: raw, Client: client}, nil
	case "gs":
		object := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || object == "" {
			return nil, fmt.Errorf("%w: gs location needs bucket and object", ErrUnsupportedSource)
		}
		return &GCSSource{Bucket: u.Host, Object: object}, nil
	case "firestore":
		if u.Host == "" {
			return nil, fmt.Errorf("%w: firestore location needs a project id", ErrUnsupportedSource)
		}
		return &FirestoreSource{ProjectID: u.Host}, nil
	default:
		return nil, fmt.Errorf("%w: scheme %q", ErrUnsupportedSource, u.Scheme)
	}
}

// FileSource reads a JSON or YAML document from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return "file" }

func (s FileSource) Fetch(ctx context.Context) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return Catalog{}, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return Catalog{}, fmt.Errorf("open catalog %s: %w", s.Path, err)
	}
	defer f.Close()
	return Decode(f, FormatFromName(s.Path))
}

// HTTPSource fetches the document with a GET request.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s *HTTPSource) Name() string { return "http" }

func (s *HTTPSource) Fetch(ctx context.Context) (Catalog, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return Catalog{}, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return Catalog{}, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return Catalog{}, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}
	format := FormatFromContentType(resp.Header.Get("Content-Type"), FormatFromName(req.URL.Path))
	return Decode(resp.Body, format)
}
