package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/logger"
	"github.com/jonathan/resume-tailor/internal/metrics"
	"github.com/jonathan/resume-tailor/internal/pipeline"
	"github.com/jonathan/resume-tailor/internal/tailoring"
)

// app holds the components built from the configuration
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	metrics  *metrics.Metrics
	client   llm.Client
	backend  *tailoring.Backend
	analyzer *pipeline.Analyzer
}

// newApp loads the configuration and wires the analysis components.
// logOutput is where logs go; the CLI keeps stdout for results.
func newApp(ctx context.Context, opts *rootOptions, logOutput string) (*app, error) {
	cfg, err := config.Load(opts.viper, opts.configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug, logOutput)
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}

	llmConfig, err := cfg.LLM()
	if err != nil {
		return nil, fmt.Errorf("resolving model backend: %w", err)
	}

	client, err := llm.NewClient(ctx, llmConfig)
	switch {
	case errors.Is(err, llm.ErrDisabled):
		log.Info("model backend disabled, serving fallbacks", zap.Error(err))
		client = nil
	case err != nil:
		return nil, fmt.Errorf("creating model client: %w", err)
	default:
		log.Info("model backend configured", logger.BackendFields(string(client.Provider()), client.Model())...)
	}

	m := metrics.New()
	backend := tailoring.New(llm.NewAvailability(client, cfg.Backend.RecheckInterval), tailoring.Config{
		Logger:  log,
		Metrics: m,
		Timeout: cfg.Backend.Timeout,
	})

	return &app{
		cfg:     cfg,
		logger:  log,
		metrics: m,
		client:  client,
		backend: backend,
		analyzer: pipeline.NewAnalyzer(backend, pipeline.Options{
			Logger:      log,
			Metrics:     m,
			MaxFileSize: cfg.MaxUploadBytes(),
		}),
	}, nil
}

// Close releases the model client and flushes logs
func (a *app) Close() {
	if a.client != nil {
		if err := a.client.Close(); err != nil {
			a.logger.Warn("closing model client", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}
