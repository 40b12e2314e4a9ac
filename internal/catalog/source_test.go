package catalog

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mustLoadFixture(t *testing.T) Catalog {
	t.Helper()
	c, err := FileSource{Path: filepath.Join("testdata", "catalog.json")}.Fetch(context.Background())
	require.NoError(t, err)
	return c
}

func TestParseSource(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want Source
		err  bool
	}{
		{raw: "public/assets/tools.json", want: FileSource{Path: "public/assets/tools.json"}},
		{raw: "file:///srv/tools.yaml", want: FileSource{Path: "/srv/tools.yaml"}},
		{raw: "gs://catalog-bucket/data/tools.json", want: &GCSSource{Bucket: "catalog-bucket", Object: "data/tools.json"}},
		{raw: "firestore://tools-prod", want: &FirestoreSource{ProjectID: "tools-prod"}},
		{raw: "gs://bucket-only", err: true},
		{raw: "firestore://", err: true},
		{raw: "ftp://example.com/tools.json", err: true},
		{raw: "  ", err: true},
	}
	for _, tc := range cases {
		got, err := ParseSource(tc.raw, SourceOptions{})
		if tc.err {
			require.ErrorIs(t, err, ErrUnsupportedSource, tc.raw)
			continue
		}
		require.NoError(t, err, tc.raw)
		require.Equal(t, tc.want, got, tc.raw)
	}

	src, err := ParseSource("https://cdn.example.com/tools.json", SourceOptions{Timeout: time.Second})
	require.NoError(t, err)
	httpSrc, ok := src.(*HTTPSource)
	require.True(t, ok)
	require.Equal(t, time.Second, httpSrc.Client.Timeout)
	require.Equal(t, "http", src.Name())
}

func TestFileSourceDecodesJSONAndYAML(t *testing.T) {
	t.Parallel()

	c := mustLoadFixture(t)
	require.Len(t, c.Tools, 3)
	require.Len(t, c.Categories, 3)
	mj, err := c.ToolByID("midjourney")
	require.NoError(t, err)
	require.NotNil(t, mj.Screenshots)
	require.Empty(t, mj.Screenshots)
	require.True(t, mj.Pricing.HasFreeTrial)

	y, err := FileSource{Path: filepath.Join("testdata", "catalog.yaml")}.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, y.Tools, 1)
	require.Equal(t, []string{"copy", "marketing"}, y.Tools[0].Tags)
	require.Equal(t, 90, y.Tools[0].ReviewCount)

	_, err = c.ToolByID("missing")
	require.ErrorIs(t, err, ErrNotFound)
	cat, err := c.CategoryByName("编程")
	require.NoError(t, err)
	require.Equal(t, "code", cat.ID)
}

func TestFileSourceErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := FileSource{Path: filepath.Join(dir, "missing.json")}.Fetch(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o600))
	_, err = FileSource{Path: bad}.Fetch(context.Background())
	require.Error(t, err)
}

func TestHTTPSource(t *testing.T) {
	t.Parallel()

	fixture, err := os.ReadFile(filepath.Join("testdata", "catalog.json"))
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tools.json":
			if r.Header.Get("Accept") != "application/json" {
				http.Error(w, "bad accept", http.StatusNotAcceptable)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(fixture)
		case "/tools.yaml":
			w.Header().Set("Content-Type", "application/yaml")
			_, _ = w.Write([]byte("tools:\n  - id: y\n    name: Yaml Tool\ncategories: []\n"))
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	t.Cleanup(srv.Close)

	src := &HTTPSource{URL: srv.URL + "/tools.json", Client: srv.Client()}
	c, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, c.Tools, 3)

	y, err := (&HTTPSource{URL: srv.URL + "/tools.yaml", Client: srv.Client()}).Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Yaml Tool", y.Tools[0].Name)

	_, err = (&HTTPSource{URL: srv.URL + "/broken", Client: srv.Client()}).Fetch(context.Background())
	require.Error(t, err)
	require.False(t, errors.Is(err, context.Canceled))
}

func TestDecodeRejectsEmptyDocuments(t *testing.T) {
	t.Parallel()

	for _, format := range []Format{FormatJSON, FormatYAML} {
		_, err := Decode(strings.NewReader(""), format)
		require.ErrorIs(t, err, io.EOF, "format %s", format)
	}
}
