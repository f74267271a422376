package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/metrics"
	"github.com/jonathan/resume-tailor/internal/pipeline"
	"github.com/jonathan/resume-tailor/internal/server/ratelimit"
)

// ServiceName identifies the API in health and banner responses
const ServiceName = "Resume Tailor API"

// shutdownTimeout bounds graceful shutdown
const shutdownTimeout = 30 * time.Second

// StatusReporter reports whether the model backend is usable
type StatusReporter interface {
	Status(ctx context.Context) llm.Status
}

// Config holds server configuration
type Config struct {
	Port         int
	Version      string
	StaticDir    string // served under /static/ when set
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	RateLimit    *ratelimit.Config // nil applies ratelimit.DefaultConfig
}

// Dependencies are the collaborators the handlers call into
type Dependencies struct {
	Analyzer *pipeline.Analyzer
	Backend  StatusReporter
	Metrics  *metrics.Metrics
	Logger   *zap.Logger
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	handler     http.Handler
	analyzer    *pipeline.Analyzer
	backend     StatusReporter
	metrics     *metrics.Metrics
	logger      *zap.Logger
	rateLimiter *ratelimit.Limiter
	version     string
}

// New creates a new server instance
func New(cfg Config, deps Dependencies) *Server {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 30 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 300 * time.Second // detailed analyses make many model calls
	}

	s := &Server{
		analyzer:    deps.Analyzer,
		backend:     deps.Backend,
		metrics:     deps.Metrics,
		logger:      deps.Logger,
		rateLimiter: ratelimit.NewLimiter(cfg.RateLimit),
		version:     cfg.Version,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /resume/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /resume/analyze/stream", s.handleAnalyzeStream)
	mux.HandleFunc("POST /resume/analyze-file", s.handleAnalyzeFile)
	mux.HandleFunc("POST /resume/detailed-analysis", s.handleDetailedAnalysis)
	mux.HandleFunc("GET /resume/keywords", s.handleKeywords)
	mux.HandleFunc("GET /backend/status", s.handleBackendStatus)
	if deps.Metrics != nil {
		mux.Handle("GET /metrics", deps.Metrics.Handler())
	}
	if cfg.StaticDir != "" {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	}

	s.handler = s.withRequestID(s.withLogging(s.withRecovery(s.withCORS(s.withRateLimit(mux)))))
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the fully wrapped request handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves requests until ctx is cancelled or the process receives
// SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer s.rateLimiter.Stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// Close releases background resources without serving
func (s *Server) Close() {
	s.rateLimiter.Stop()
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.requestLogger(r).Error("error encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.jsonResponse(w, r, status, map[string]string{"error": message})
}

// failed maps err to its status and writes the error body. Internal failures are logged.
func (s *Server) failed(w http.ResponseWriter, r *http.Request, prefix string, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.requestLogger(r).Error(prefix, zap.Error(err))
	}
	s.errorResponse(w, r, status, errorMessage(prefix, err))
}
