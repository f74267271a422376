package pipeline

// Analysis steps reported through ProgressCallback
const (
	StepExtractKeywords     = "extract_keywords"
	StepMatchKeywords       = "match_keywords"
	StepTailorResume        = "tailor_resume"
	StepGenerateSuggestions = "generate_suggestions"
	StepScore               = "score"
)

// Step categories
const (
	CategoryKeywords  = "keywords"
	CategoryTailoring = "tailoring"
	CategoryScoring   = "scoring"
)

// stepCategories maps each step to the category it reports under
var stepCategories = map[string]string{
	StepExtractKeywords:     CategoryKeywords,
	StepMatchKeywords:       CategoryKeywords,
	StepTailorResume:        CategoryTailoring,
	StepGenerateSuggestions: CategoryTailoring,
	StepScore:               CategoryScoring,
}

// ProgressEvent represents a progress update during an analysis
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when analysis progress occurs
type ProgressCallback func(event ProgressEvent)

// emit calls the progress callback if configured
func (cb ProgressCallback) emit(step, message string, content any) {
	if cb == nil {
		return
	}
	cb(ProgressEvent{
		Step:     step,
		Category: stepCategories[step],
		Message:  message,
		Content:  content,
	})
}
