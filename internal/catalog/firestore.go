package catalog

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const (
	toolsCollection      = "tools"
	categoriesCollection = "categories"
)

// FirestoreSource assembles the catalog from the tools and categories
// collections. Documents without an id field use their document ID.
type FirestoreSource struct {
	ProjectID string
	Client    *firestore.Client
}

func (s *FirestoreSource) Name() string { return "firestore" }

func (s *FirestoreSource) Fetch(ctx context.Context) (Catalog, error) {
	client := s.Client
	if client == nil {
		c, err := firestore.NewClient(ctx, s.ProjectID)
		if err != nil {
			return Catalog{}, fmt.Errorf("firestore client: %w", err)
		}
		defer c.Close()
		client = c
	}

	tools, err := readCollection(ctx, client, toolsCollection, func(snap *firestore.DocumentSnapshot) (Tool, error) {
		var t Tool
		if err := snap.DataTo(&t); err != nil {
			return Tool{}, err
		}
		if t.ID == "" {
			t.ID = snap.Ref.ID
		}
		return t, nil
	})
	if err != nil {
		return Catalog{}, err
	}
	categories, err := readCollection(ctx, client, categoriesCollection, func(snap *firestore.DocumentSnapshot) (Category, error) {
		var c Category
		if err := snap.DataTo(&c); err != nil {
			return Category{}, err
		}
		if c.ID == "" {
			c.ID = snap.Ref.ID
		}
		return c, nil
	})
	if err != nil {
		return Catalog{}, err
	}
	return Catalog{Tools: tools, Categories: categories}.normalize(), nil
}

func readCollection[T any](ctx context.Context, client *firestore.Client, name string, decode func(*firestore.DocumentSnapshot) (T, error)) ([]T, error) {
	iter := client.Collection(name).OrderBy(firestore.DocumentID, firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var out []T
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("firestore %s: %w", name, err)
		}
		item, err := decode(snap)
		if err != nil {
			return nil, fmt.Errorf("firestore %s/%s: %w", name, snap.Ref.ID, err)
		}
		out = append(out, item)
	}
	return out, nil
}
