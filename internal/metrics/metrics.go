// Package metrics exposes Prometheus counters and histograms for the HTTP surface and the model backend.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a registry and the collectors registered on it.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	backendCalls    *prometheus.HistogramVec
	fallbacks       *prometheus.CounterVec
	keywordLookups  *prometheus.CounterVec
}

// New creates the collectors on a fresh registry, together with the Go runtime and process collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "resume_tailor_http_requests_total",
			Help: "Total HTTP requests by route, method and status code",
		}, []string{"route", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "resume_tailor_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		backendCalls: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "resume_tailor_backend_call_duration_seconds",
			Help:    "Model backend call latency by provider, operation and outcome",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 20, 30, 60},
		}, []string{"provider", "operation", "outcome"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "resume_tailor_backend_fallbacks_total",
			Help: "Deterministic fallbacks served by operation and reason",
		}, []string{"operation", "reason"}),
		keywordLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "resume_tailor_keyword_lookups_total",
			Help: "Keyword lookups against resumes by outcome",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		m.requests,
		m.requestDuration,
		m.backendCalls,
		m.fallbacks,
		m.keywordLookups,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records a finished HTTP request
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveBackendCall records one model backend call
func (m *Metrics) ObserveBackendCall(provider, operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.backendCalls.WithLabelValues(provider, operation, outcome).Observe(elapsed.Seconds())
}

// IncFallback records a fallback served instead of a model answer
func (m *Metrics) IncFallback(operation, reason string) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(operation, reason).Inc()
}

// RecordKeywordLookups records found and missing keyword counts for one analysis
func (m *Metrics) RecordKeywordLookups(found, missing int) {
	if m == nil {
		return
	}
	m.keywordLookups.WithLabelValues("found").Add(float64(found))
	m.keywordLookups.WithLabelValues("missing").Add(float64(missing))
}
