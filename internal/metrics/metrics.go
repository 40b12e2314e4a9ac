package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes catalog and HTTP instrumentation.
type Metrics struct {
	gatherer prometheus.Gatherer

	fetchDuration   *prometheus.HistogramVec
	fetchFailures   *prometheus.CounterVec
	catalogTools    prometheus.Gauge
	catalogCats     prometheus.Gauge
	emptyResults    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New registers the collectors with registry. A nil registry uses a fresh one.
func New(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	factory := promauto.With(registry)

	return &Metrics{
		gatherer: registry,
		fetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aitools_catalog_fetch_duration_seconds",
				Help:    "Duration of catalog fetches in seconds",
				Buckets: []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"source", "status"},
		),
		fetchFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aitools_catalog_fetch_failures_total",
				Help: "Catalog fetches that fell back to the empty catalog",
			},
			[]string{"source"},
		),
		catalogTools: factory.NewGauge(prometheus.GaugeOpts{
			Name: "aitools_catalog_tools",
			Help: "Number of tools in the last successfully fetched catalog",
		}),
		catalogCats: factory.NewGauge(prometheus.GaugeOpts{
			Name: "aitools_catalog_categories",
			Help: "Number of categories in the last successfully fetched catalog",
		}),
		emptyResults: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aitools_empty_results_total",
				Help: "Filtered listings that rendered the empty state",
			},
			[]string{"page"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aitools_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method", "status"},
		),
	}
}

// ObserveFetch implements catalog.Observer.
func (m *Metrics) ObserveFetch(source string, tools, categories int, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
		m.fetchFailures.WithLabelValues(source).Inc()
	} else {
		m.catalogTools.Set(float64(tools))
		m.catalogCats.Set(float64(categories))
	}
	m.fetchDuration.WithLabelValues(source, status).Observe(elapsed.Seconds())
}

// ObserveEmptyResult counts a listing that rendered the empty state.
func (m *Metrics) ObserveEmptyResult(page string) {
	m.emptyResults.WithLabelValues(page).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Middleware records request latency labelled by chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requestDuration.WithLabelValues(route, r.Method, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
	})
}
