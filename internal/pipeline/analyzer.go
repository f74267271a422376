// Package pipeline orchestrates keyword extraction, matching, tailoring and scoring
// into the basic, file-based and detailed analyses.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/logger"
	"github.com/jonathan/resume-tailor/internal/matching"
	"github.com/jonathan/resume-tailor/internal/metrics"
	"github.com/jonathan/resume-tailor/internal/types"
)

// maxSectionImprovements caps the suggestions reported per section
const maxSectionImprovements = 3

// Backend supplies the model-dependent operations. Implementations never fail;
// they answer deterministically when no model is available.
type Backend interface {
	ExtractKeywords(ctx context.Context, jobDescription string) []types.KeywordRecord
	TailorResume(ctx context.Context, resumeText, jobDescription, targetRole string) string
	GenerateSuggestions(ctx context.Context, resumeText, jobDescription string, matches []types.KeywordMatch) []string
	AnalyzeSections(ctx context.Context, resumeText string) []types.ResumeSection
}

// Options holds the optional collaborators of an Analyzer
type Options struct {
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	// MaxFileSize caps uploads; zero means ingestion.DefaultMaxFileSize
	MaxFileSize int64
}

// Analyzer runs one analysis request at a time, step by step
type Analyzer struct {
	backend     Backend
	logger      *zap.Logger
	metrics     *metrics.Metrics
	maxFileSize int64
}

// NewAnalyzer creates an Analyzer
func NewAnalyzer(backend Backend, opts Options) *Analyzer {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = ingestion.DefaultMaxFileSize
	}
	return &Analyzer{
		backend:     backend,
		logger:      opts.Logger,
		metrics:     opts.Metrics,
		maxFileSize: opts.MaxFileSize,
	}
}

// MaxFileSize returns the upload size limit in bytes
func (a *Analyzer) MaxFileSize() int64 {
	return a.maxFileSize
}

// Analyze tailors the resume to the job and scores the keyword overlap
func (a *Analyzer) Analyze(ctx context.Context, req types.AnalysisRequest) (*types.AnalysisResponse, error) {
	return a.AnalyzeWithProgress(ctx, req, nil)
}

// AnalyzeWithProgress is Analyze with a callback invoked after each step
func (a *Analyzer) AnalyzeWithProgress(ctx context.Context, req types.AnalysisRequest, onProgress ProgressCallback) (*types.AnalysisResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx, a.logger)

	records := a.keywords(ctx, req.JobDescription)
	keywords := matching.Keywords(records)
	onProgress.emit(StepExtractKeywords, fmt.Sprintf("Extracted %d keywords from the job description", len(records)), records)

	matches := matching.MatchKeywords(req.ResumeText, keywords)
	found := matching.FoundFrequencies(matches)
	missing := matching.Missing(matches)
	a.metrics.RecordKeywordLookups(len(found), len(missing))
	onProgress.emit(StepMatchKeywords, fmt.Sprintf("Found %d of %d keywords in the resume", len(found), len(keywords)), nil)

	tailored := a.backend.TailorResume(ctx, req.ResumeText, req.JobDescription, req.TargetRole)
	onProgress.emit(StepTailorResume, "Tailored the resume", nil)

	suggestions := a.backend.GenerateSuggestions(ctx, req.ResumeText, req.JobDescription, matches)
	onProgress.emit(StepGenerateSuggestions, fmt.Sprintf("Generated %d suggestions", len(suggestions)), nil)

	score := matching.ConfidenceScore(records, matching.Index(matches))
	onProgress.emit(StepScore, fmt.Sprintf("Confidence score %.2f", score), nil)

	log.Info("analysis complete",
		zap.Int("keywords", len(keywords)),
		zap.Int("found", len(found)),
		zap.Float64("confidence_score", score),
	)

	return &types.AnalysisResponse{
		OriginalResume:  req.ResumeText,
		TailoredResume:  tailored,
		KeywordMatches:  found,
		MissingKeywords: missing,
		Suggestions:     suggestions,
		ConfidenceScore: score,
		AnalysisSummary: Summary(len(found), len(keywords), len(missing), score),
	}, nil
}

// AnalyzeDetailed breaks the resume into sections and tailors each one
func (a *Analyzer) AnalyzeDetailed(ctx context.Context, req types.AnalysisRequest) (*types.DetailedAnalysisResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	records := a.keywords(ctx, req.JobDescription)
	resumeSections := a.backend.AnalyzeSections(ctx, req.ResumeText)

	matches := matching.MatchKeywords(req.ResumeText, matching.Keywords(records))
	index := matching.Index(matches)
	found := matching.FoundFrequencies(matches)
	a.metrics.RecordKeywordLookups(len(found), len(matches)-len(found))

	keywordAnalysis := make([]types.KeywordAnalysis, 0, len(records))
	for _, record := range records {
		match := index[record.Keyword]
		contexts := match.Contexts
		if contexts == nil {
			contexts = []string{}
		}
		keywordAnalysis = append(keywordAnalysis, types.KeywordAnalysis{
			Keyword:       record.Keyword,
			Importance:    record.Importance,
			Category:      record.Category,
			FoundInResume: match.Found,
			Frequency:     match.Frequency,
			Context:       contexts,
		})
	}

	sectionAnalysis := make([]types.SectionAnalysis, 0, len(resumeSections))
	for _, section := range resumeSections {
		tailored := a.backend.TailorResume(ctx, section.Content, req.JobDescription, req.TargetRole)
		improvements := a.backend.GenerateSuggestions(ctx, section.Content, req.JobDescription, matches)
		sectionAnalysis = append(sectionAnalysis, types.SectionAnalysis{
			SectionName:     section.Name,
			OriginalContent: section.Content,
			TailoredContent: tailored,
			Improvements:    improvements[:min(len(improvements), maxSectionImprovements)],
		})
	}

	score := matching.ConfidenceScore(records, index)
	recommendations := a.backend.GenerateSuggestions(ctx, req.ResumeText, req.JobDescription, matches)

	logger.FromContext(ctx, a.logger).Info("detailed analysis complete",
		zap.Int("sections", len(sectionAnalysis)),
		zap.Int("keywords", len(records)),
		zap.Float64("overall_score", score),
	)

	return &types.DetailedAnalysisResponse{
		Sections:         sectionAnalysis,
		KeywordAnalysis:  keywordAnalysis,
		OverallScore:     score,
		Recommendations:  recommendations,
		IndustryInsights: Insights(records, score),
	}, nil
}

// ExtractKeywords returns the deduplicated keywords of a job description
func (a *Analyzer) ExtractKeywords(ctx context.Context, jobDescription string) ([]types.KeywordRecord, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, &types.ValidationError{Field: "job_description", Message: "is required"}
	}
	return a.keywords(ctx, jobDescription), nil
}

// AnalyzeFile extracts the resume text from an uploaded file and analyzes it.
// The ResumeText of fields is replaced by the extracted text.
func (a *Analyzer) AnalyzeFile(ctx context.Context, filename string, data []byte, fields types.AnalysisRequest) (*types.AnalysisResponse, error) {
	doc, err := ingestion.ExtractText(filename, data, a.maxFileSize)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx, a.logger).Info("extracted resume text",
		zap.String("filename", doc.Filename),
		zap.String("format", string(doc.Format)),
		zap.Int64("size", doc.Size),
		zap.String("sha256", doc.Hash),
	)

	fields.ResumeText = doc.Text
	return a.Analyze(ctx, fields)
}

func (a *Analyzer) keywords(ctx context.Context, jobDescription string) []types.KeywordRecord {
	return matching.DedupeRecords(a.backend.ExtractKeywords(ctx, jobDescription))
}
