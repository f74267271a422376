//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// AnalysisRequest is the input for resume analysis. Industry and ExperienceLevel
// are free text ("entry", "Senior", "mid-level" are all accepted).
type AnalysisRequest struct {
	ResumeText      string `json:"resume_text" validate:"required,notblank,max=200000"`
	JobDescription  string `json:"job_description" validate:"required,notblank,max=100000"`
	TargetRole      string `json:"target_role,omitempty" validate:"max=200"`
	Industry        string `json:"industry,omitempty" validate:"max=200"`
	ExperienceLevel string `json:"experience_level,omitempty" validate:"max=100"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	// Report JSON field names so errors match what API clients sent
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// ValidationError reports the first invalid field of a request
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Validate validates the AnalysisRequest using the validator.
// A failure is returned as *ValidationError.
func (r *AnalysisRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	return &ValidationError{Field: fe.Field(), Message: describeRule(fe)}
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed the %q rule", fe.Tag())
	}
}

// AnalysisResponse is the result of a basic or file-based analysis
type AnalysisResponse struct {
	OriginalResume  string         `json:"original_resume"`
	TailoredResume  string         `json:"tailored_resume"`
	KeywordMatches  map[string]int `json:"keyword_matches"` // found keywords -> frequency
	MissingKeywords []string       `json:"missing_keywords"`
	Suggestions     []string       `json:"suggestions"`
	ConfidenceScore float64        `json:"confidence_score"`
	AnalysisSummary string         `json:"analysis_summary"`
}

// KeywordAnalysis is the per-keyword breakdown of a detailed analysis
type KeywordAnalysis struct {
	Keyword       string   `json:"keyword"`
	Importance    float64  `json:"importance"`
	Category      Category `json:"category"`
	FoundInResume bool     `json:"found_in_resume"`
	Frequency     int      `json:"frequency"`
	Context       []string `json:"context"`
}

// SectionAnalysis is a resume section with its tailored rewrite
type SectionAnalysis struct {
	SectionName     string   `json:"section_name"`
	OriginalContent string   `json:"original_content"`
	TailoredContent string   `json:"tailored_content"`
	Improvements    []string `json:"improvements"`
}

// IndustryInsights summarizes market signals derived from the overall score
type IndustryInsights struct {
	TrendingSkills   []string `json:"trending_skills"`
	MarketDemand     string   `json:"market_demand"`
	CompetitionLevel string   `json:"competition_level"`
}

// DetailedAnalysisResponse is the result of a section-by-section analysis
type DetailedAnalysisResponse struct {
	Sections         []SectionAnalysis `json:"sections"`
	KeywordAnalysis  []KeywordAnalysis `json:"keyword_analysis"`
	OverallScore     float64           `json:"overall_score"`
	Recommendations  []string          `json:"recommendations"`
	IndustryInsights IndustryInsights  `json:"industry_insights"`
}
