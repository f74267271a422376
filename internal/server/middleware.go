package server

import (
	"fmt"
	"net"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-tailor/internal/logger"
	"github.com/jonathan/resume-tailor/internal/server/ratelimit"
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength bounds client-supplied request IDs
const maxRequestIDLength = 128

// withRequestID assigns each request an ID and a logger that carries it
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		reqLogger := s.logger.With(zap.String(logger.FieldRequestID, id))
		next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context(), reqLogger)))
	})
}

// withLogging logs each request and records its metrics
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		s.metrics.ObserveRequest(route, r.Method, m.Code, m.Duration)

		s.requestLogger(r).Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote_addr", r.RemoteAddr),
			zap.Int("status", m.Code),
			zap.Int64("bytes", m.Written),
			zap.Duration("duration", m.Duration),
		)
	})
}

// withRecovery turns a panicking handler into a 500 response
func (s *Server) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				s.requestLogger(r).Error("handler panic",
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()),
				)
				s.errorResponse(w, r, http.StatusInternalServerError, fmt.Sprintf("Analysis failed: %v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// withCORS adds CORS headers allowing any origin
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects clients that exceed their endpoint budget
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(extractClientID(r), r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)

		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger returns the logger carrying the request ID
func (s *Server) requestLogger(r *http.Request) *zap.Logger {
	return logger.FromContext(r.Context(), s.logger)
}

// extractClientID extracts the client identifier from the request.
// It uses the IP address from RemoteAddr; forwarded headers are not trusted.
func extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.Format(time.RFC3339)
	}

	if info.RetryAfter > 0 {
		retryAfter := int(info.RetryAfter.Round(time.Second).Seconds())
		response["retry_after"] = retryAfter
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	}

	s.requestLogger(r).Warn("rate limit exceeded",
		zap.String("client", extractClientID(r)),
		zap.String("path", r.URL.Path),
		zap.Int("limit", info.Limit),
	)

	s.jsonResponse(w, r, http.StatusTooManyRequests, response)
}
