// Package tailoring asks the model backend to extract keywords, rewrite resumes,
// suggest improvements and split resumes into sections. Every operation degrades
// to a deterministic answer when the backend is unavailable or answers badly.
package tailoring

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-tailor/internal/fallback"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/logger"
	"github.com/jonathan/resume-tailor/internal/matching"
	"github.com/jonathan/resume-tailor/internal/metrics"
	"github.com/jonathan/resume-tailor/internal/prompts"
	"github.com/jonathan/resume-tailor/internal/sections"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Per-operation sampling temperatures
const (
	extractionTemperature  = 0.1
	tailoringTemperature   = 0.3
	suggestionsTemperature = 0.4
	sectionsTemperature    = 0.1
)

// maxMissingInPrompt caps how many missing keywords are listed in the suggestions prompt
const maxMissingInPrompt = 10

// Config holds the optional collaborators of a Backend
type Config struct {
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	// Timeout bounds each model call; zero means llm.DefaultTimeout
	Timeout time.Duration
}

// Backend adapts a model client to the resume operations
type Backend struct {
	availability *llm.Availability
	logger       *zap.Logger
	metrics      *metrics.Metrics
	timeout      time.Duration
}

// New creates a Backend. A nil availability behaves like a disabled backend.
func New(availability *llm.Availability, cfg Config) *Backend {
	if availability == nil {
		availability = llm.Disabled()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = llm.DefaultTimeout
	}
	return &Backend{
		availability: availability,
		logger:       cfg.Logger,
		metrics:      cfg.Metrics,
		timeout:      cfg.Timeout,
	}
}

// Status reports the backend availability
func (b *Backend) Status(ctx context.Context) llm.Status {
	return b.availability.Status(ctx)
}

// ExtractKeywords returns the keywords of a job description, falling back to the static term lists
func (b *Backend) ExtractKeywords(ctx context.Context, jobDescription string) []types.KeywordRecord {
	result := b.ModelKeywords(ctx, jobDescription)
	switch result.Outcome {
	case OutcomeOK:
		return result.Value
	default:
		b.fellBack(ctx, OpExtractKeywords, result.Outcome, result.Err, result.Raw)
		return fallback.ExtractKeywords(jobDescription)
	}
}

// TailorResume rewrites the resume for the job. On any failure the input is returned unchanged.
func (b *Backend) TailorResume(ctx context.Context, resumeText, jobDescription, targetRole string) string {
	result := b.ModelTailoring(ctx, resumeText, jobDescription, targetRole)
	switch result.Outcome {
	case OutcomeOK:
		return result.Value
	default:
		b.fellBack(ctx, OpTailorResume, result.Outcome, result.Err, result.Raw)
		return resumeText
	}
}

// GenerateSuggestions returns between five and seven improvement suggestions
func (b *Backend) GenerateSuggestions(ctx context.Context, resumeText, jobDescription string, matches []types.KeywordMatch) []string {
	result := b.ModelSuggestions(ctx, resumeText, jobDescription, matches)
	switch result.Outcome {
	case OutcomeOK:
		return topUp(result.Value, fallback.GenericSuggestions())
	default:
		b.fellBack(ctx, OpGenerateSuggestions, result.Outcome, result.Err, result.Raw)
		return fallback.Suggestions(matching.Missing(matches))
	}
}

// AnalyzeSections splits the resume into named sections, falling back to header detection
func (b *Backend) AnalyzeSections(ctx context.Context, resumeText string) []types.ResumeSection {
	result := b.ModelSections(ctx, resumeText)
	switch result.Outcome {
	case OutcomeOK:
		return result.Value
	default:
		b.fellBack(ctx, OpAnalyzeSections, result.Outcome, result.Err, result.Raw)
		return sections.Split(resumeText)
	}
}

// ModelKeywords asks the model for the keywords of a job description
func (b *Backend) ModelKeywords(ctx context.Context, jobDescription string) Result[[]types.KeywordRecord] {
	text := b.generate(ctx, OpExtractKeywords, call{
		prompt:      prompts.ExtractKeywords,
		data:        map[string]string{"JobDescription": jobDescription},
		temperature: extractionTemperature,
		json:        true,
	})
	return then(text, decodeKeywords)
}

// ModelTailoring asks the model to rewrite the resume for the job
func (b *Backend) ModelTailoring(ctx context.Context, resumeText, jobDescription, targetRole string) Result[string] {
	if strings.TrimSpace(targetRole) == "" {
		targetRole = "Not specified"
	}
	text := b.generate(ctx, OpTailorResume, call{
		prompt: prompts.TailorResume,
		data: map[string]string{
			"JobDescription": jobDescription,
			"TargetRole":     targetRole,
			"Resume":         resumeText,
		},
		temperature: tailoringTemperature,
	})
	return then(text, decodeTailored)
}

// ModelSuggestions asks the model for improvement suggestions
func (b *Backend) ModelSuggestions(ctx context.Context, resumeText, jobDescription string, matches []types.KeywordMatch) Result[[]string] {
	missing := matching.Missing(matches)
	listed := "None"
	if len(missing) > 0 {
		listed = strings.Join(missing[:min(len(missing), maxMissingInPrompt)], ", ")
	}

	text := b.generate(ctx, OpGenerateSuggestions, call{
		prompt: prompts.GenerateSuggestions,
		data: map[string]string{
			"JobDescription":  jobDescription,
			"Resume":          resumeText,
			"MissingKeywords": listed,
		},
		temperature: suggestionsTemperature,
	})
	return then(text, decodeSuggestions)
}

// ModelSections asks the model to split the resume into sections
func (b *Backend) ModelSections(ctx context.Context, resumeText string) Result[[]types.ResumeSection] {
	text := b.generate(ctx, OpAnalyzeSections, call{
		prompt:      prompts.AnalyzeSections,
		data:        map[string]string{"Resume": resumeText},
		temperature: sectionsTemperature,
		json:        true,
	})
	return then(text, decodeSections)
}

type call struct {
	prompt      string
	data        map[string]string
	temperature float64
	json        bool
}

// generate makes a single model call bounded by the backend timeout. There are no retries.
func (b *Backend) generate(ctx context.Context, op Operation, c call) Result[string] {
	client := b.availability.Client()
	if client == nil {
		return Result[string]{Outcome: OutcomeUnreachable, Err: ErrUnavailable}
	}
	if status := b.availability.Status(ctx); !status.Available {
		return Result[string]{Outcome: OutcomeUnreachable, Err: fmt.Errorf("%w: %s", ErrUnavailable, status.Error)}
	}

	tmpl, err := prompts.Get(c.prompt)
	if err != nil {
		return Result[string]{Outcome: OutcomeUnreachable, Err: err}
	}
	prompt, err := tmpl.Render(c.data)
	if err != nil {
		return Result[string]{Outcome: OutcomeUnreachable, Err: err}
	}

	callCtx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	start := time.Now()
	text, err := client.Generate(callCtx, llm.Request{
		System:      tmpl.System,
		Prompt:      prompt,
		Temperature: c.temperature,
		JSON:        c.json,
	})

	result := Result[string]{Outcome: OutcomeOK, Value: text}
	var parseErr *llm.ParseError
	switch {
	case errors.As(err, &parseErr):
		result = Result[string]{Outcome: OutcomeParseFailure, Err: err}
	case err != nil:
		result = Result[string]{Outcome: OutcomeUnreachable, Err: err}
	case strings.TrimSpace(text) == "":
		result = Result[string]{Outcome: OutcomeParseFailure, Err: &llm.ParseError{Message: "empty model response"}}
	}

	elapsed := time.Since(start)
	b.metrics.ObserveBackendCall(string(client.Provider()), string(op), result.Outcome.String(), elapsed)
	logger.WithBackend(logger.FromContext(ctx, b.logger), string(client.Provider()), client.Model()).Debug("model call finished",
		zap.String(logger.FieldOperation, string(op)),
		zap.Stringer("outcome", result.Outcome),
		zap.Duration("elapsed", elapsed),
	)
	return result
}

// maxLoggedResponse bounds how much undecodable model output is logged
const maxLoggedResponse = 200

func (b *Backend) fellBack(ctx context.Context, op Operation, outcome Outcome, err error, raw string) {
	b.metrics.IncFallback(string(op), outcome.String())

	fields := []zap.Field{
		zap.String(logger.FieldOperation, string(op)),
		zap.Stringer("reason", outcome),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	if raw != "" {
		fields = append(fields, zap.String("response", logger.TruncateForLog(raw, maxLoggedResponse)))
	}
	logger.FromContext(ctx, b.logger).Warn("model backend not used, serving fallback", fields...)
}
