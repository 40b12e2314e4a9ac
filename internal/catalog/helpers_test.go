package catalog

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// scenarioCatalog is the minimal catalog used by the resolver scenarios.
func scenarioCatalog() Catalog {
	return Catalog{
		Tools: []Tool{
			{ID: "a", Name: "Foo", Category: "Writing", Tags: []string{"x"}},
		},
		Categories: []Category{
			{ID: "cat1", Name: "Writing"},
		},
	}.normalize()
}

type stubSource struct {
	mu      sync.Mutex
	catalog Catalog
	err     error
	delay   time.Duration
	calls   atomic.Int32
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Fetch(ctx context.Context) (Catalog, error) {
	s.calls.Add(1)
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return Catalog{}, ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog, s.err
}

func (s *stubSource) set(c Catalog, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = c
	s.err = err
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []observedFetch
}

type observedFetch struct {
	source     string
	tools      int
	categories int
	err        error
}

func (o *recordingObserver) ObserveFetch(source string, tools, categories int, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, observedFetch{source: source, tools: tools, categories: categories, err: err})
}
