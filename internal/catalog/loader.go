package catalog

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	loadKey        = "catalog"
	defaultTimeout = 5 * time.Second
)

// Observer receives the outcome of every fetch.
type Observer interface {
	ObserveFetch(source string, tools, categories int, elapsed time.Duration, err error)
}

// Loader fetches the catalog from a Source. Load never fails: any fetch or
// parse error is logged and replaced by Empty().
type Loader struct {
	source   Source
	logger   *zap.Logger
	observer Observer
	ttl      time.Duration
	timeout  time.Duration
	now      func() time.Time

	group singleflight.Group

	mu         sync.Mutex
	cached     Catalog
	expires    time.Time
	hasCached  bool
	generation uint64
}

// LoaderOption customises a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger used for fetch diagnostics.
func WithLogger(logger *zap.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithCacheTTL keeps a successfully loaded catalog for d. Zero disables caching.
func WithCacheTTL(d time.Duration) LoaderOption {
	return func(l *Loader) {
		if d >= 0 {
			l.ttl = d
		}
	}
}

// WithFetchTimeout bounds a single fetch.
func WithFetchTimeout(d time.Duration) LoaderOption {
	return func(l *Loader) {
		if d > 0 {
			l.timeout = d
		}
	}
}

// WithObserver reports fetch outcomes to o.
func WithObserver(o Observer) LoaderOption {
	return func(l *Loader) {
		l.observer = o
	}
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) LoaderOption {
	return func(l *Loader) {
		if now != nil {
			l.now = now
		}
	}
}

// NewLoader constructs a Loader reading from source.
func NewLoader(source Source, opts ...LoaderOption) *Loader {
	l := &Loader{
		source:  source,
		logger:  zap.NewNop(),
		timeout: defaultTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Source returns the configured source.
func (l *Loader) Source() Source { return l.source }

// Load returns the catalog, or an empty catalog when it cannot be fetched.
func (l *Loader) Load(ctx context.Context) Catalog {
	if c, ok := l.cachedCatalog(); ok {
		return c
	}

	l.mu.Lock()
	gen := l.generation
	l.mu.Unlock()

	v, _, _ := l.group.Do(loadKey, func() (any, error) {
		c, err := l.Fetch(ctx)
		if err != nil {
			l.logger.Warn("catalog load failed, serving empty catalog",
				zap.String("source", l.source.Name()),
				zap.Error(err),
			)
			return Empty(), nil
		}
		for _, issue := range c.Validate() {
			l.logger.Warn("catalog issue",
				zap.String("kind", string(issue.Kind)),
				zap.String("id", issue.ID),
				zap.String("detail", issue.Detail),
			)
		}
		l.store(gen, c)
		return c, nil
	})
	c, ok := v.(Catalog)
	if !ok {
		return Empty()
	}
	return c
}

// Fetch reads the catalog from the source, surfacing errors. It bypasses the cache.
func (l *Loader) Fetch(ctx context.Context) (Catalog, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	// Concurrent callers share this fetch, so one cancelled request must not fail the rest.
	fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
	defer cancel()

	start := l.now()
	c, err := l.source.Fetch(fetchCtx)
	elapsed := l.now().Sub(start)
	if l.observer != nil {
		l.observer.ObserveFetch(l.source.Name(), len(c.Tools), len(c.Categories), elapsed, err)
	}
	if err != nil {
		return Catalog{}, err
	}
	return c.normalize(), nil
}

// Invalidate drops the cached catalog. A fetch already in flight when
// Invalidate is called does not repopulate the cache.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.generation++
	l.hasCached = false
	l.cached = Catalog{}
	l.mu.Unlock()
	l.group.Forget(loadKey)
}

func (l *Loader) cachedCatalog() (Catalog, bool) {
	if l.ttl <= 0 {
		return Catalog{}, false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.hasCached || !l.now().Before(l.expires) {
		return Catalog{}, false
	}
	return l.cached, true
}

func (l *Loader) store(gen uint64, c Catalog) {
	if l.ttl <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.generation {
		return
	}
	l.cached = c
	l.hasCached = true
	l.expires = l.now().Add(l.ttl)
}
