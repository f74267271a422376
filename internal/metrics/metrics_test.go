package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.IncFallback("extract_keywords", "unavailable")
	m.IncFallback("extract_keywords", "unavailable")
	m.IncFallback("tailor_resume", "parse_failure")
	m.RecordKeywordLookups(3, 2)
	m.ObserveRequest("/health", http.MethodGet, http.StatusOK, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.fallbacks.WithLabelValues("extract_keywords", "unavailable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fallbacks.WithLabelValues("tailor_resume", "parse_failure")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.keywordLookups.WithLabelValues("found")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.keywordLookups.WithLabelValues("missing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/health", "GET", "200")))
}

func TestMetrics_BackendHistogram(t *testing.T) {
	m := New()
	m.ObserveBackendCall("ollama", "tailor_resume", "ok", 2*time.Second)

	assert.Equal(t, 1, testutil.CollectAndCount(m.backendCalls, "resume_tailor_backend_call_duration_seconds"))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.IncFallback("analyze_sections", "unavailable")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `resume_tailor_backend_fallbacks_total{operation="analyze_sections",reason="unavailable"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncFallback("x", "y")
		m.ObserveRequest("/", "GET", 200, time.Millisecond)
		m.ObserveBackendCall("p", "o", "ok", time.Millisecond)
		m.RecordKeywordLookups(1, 1)
	})
	assert.Nil(t, m.Registry())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
