package catalog

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
)

// GCSSource reads the document from a Cloud Storage object. The client is
// created per fetch unless one is supplied.
type GCSSource struct {
	Bucket string
	Object string
	Client *storage.Client
}

func (s *GCSSource) Name() string { return "gcs" }

func (s *GCSSource) Fetch(ctx context.Context) (Catalog, error) {
	client := s.Client
	if client == nil {
		c, err := storage.NewClient(ctx)
		if err != nil {
			return Catalog{}, fmt.Errorf("gcs client: %w", err)
		}
		defer c.Close()
		client = c
	}
	reader, err := client.Bucket(s.Bucket).Object(s.Object).NewReader(ctx)
	if err != nil {
		return Catalog{}, fmt.Errorf("open gs://%s/%s: %w", s.Bucket, s.Object, err)
	}
	defer reader.Close()

	format := FormatFromContentType(reader.Attrs.ContentType, FormatFromName(s.Object))
	return Decode(reader, format)
}
