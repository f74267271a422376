package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/logger"
	"github.com/jonathan/resume-tailor/internal/server/ratelimit"
)

func TestRequestID_Generated(t *testing.T) {
	ts := newTestServer(t, nil)

	w := ts.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))

	id := w.Header().Get(RequestIDHeader)
	assert.Len(t, id, 36)

	entries := ts.logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, id, entries[0].ContextMap()[logger.FieldRequestID])
	assert.EqualValues(t, http.StatusOK, entries[0].ContextMap()["status"])
}

func TestRequestID_Propagated(t *testing.T) {
	ts := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w := ts.do(t, req)
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLength+1))
	w = ts.do(t, req)
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestCORS(t *testing.T) {
	ts := newTestServer(t, nil)

	w := ts.do(t, httptest.NewRequest(http.MethodOptions, "/resume/analyze", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")

	w = ts.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	ts := newTestServer(t, nil, func(cfg *Config) {
		cfg.RateLimit = &ratelimit.Config{
			Enabled:       true,
			DefaultLimit:  1000,
			DefaultWindow: time.Minute,
			EndpointConfigs: []ratelimit.EndpointConfig{
				{Path: "/resume/keywords", Method: "GET", Limit: 2, Window: time.Hour, Burst: 2},
			},
		}
	})

	target := "/resume/keywords?job_description=Python"
	for i := 0; i < 2; i++ {
		w := ts.do(t, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := ts.do(t, httptest.NewRequest(http.MethodGet, target, nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "rate_limit_exceeded", decode[map[string]any](t, w)["error"])
	assert.Equal(t, 1, ts.logs.FilterMessage("rate limit exceeded").Len())

	// health checks are never limited
	for i := 0; i < 5; i++ {
		w := ts.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestExtractClientID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:51234"
	assert.Equal(t, "203.0.113.7", extractClientID(req))

	req.RemoteAddr = "unix-socket"
	assert.Equal(t, "unix-socket", extractClientID(req))
}
