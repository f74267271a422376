package tailoring

import "errors"

// ErrUnavailable reports that no model backend is configured or reachable
var ErrUnavailable = errors.New("model backend unavailable")

// Operation names a backend operation in logs and metrics
type Operation string

// Backend operations
const (
	OpExtractKeywords     Operation = "extract_keywords"
	OpTailorResume        Operation = "tailor_resume"
	OpGenerateSuggestions Operation = "generate_suggestions"
	OpAnalyzeSections     Operation = "analyze_sections"
)

// Outcome discriminates a model call result
type Outcome int

const (
	// OutcomeOK means the model answered and the answer decoded
	OutcomeOK Outcome = iota
	// OutcomeParseFailure means the model answered with something unusable
	OutcomeParseFailure
	// OutcomeUnreachable means the model could not be asked or did not answer
	OutcomeUnreachable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeParseFailure:
		return "parse_failure"
	case OutcomeUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// Result is the outcome of one model call. Value is only meaningful when Outcome is OutcomeOK.
type Result[T any] struct {
	Outcome Outcome
	Value   T
	Err     error
	// Raw is the model output that failed to decode
	Raw string
}

func ok[T any](value T) Result[T] {
	return Result[T]{Outcome: OutcomeOK, Value: value}
}

func parseFailure[T any](err error) Result[T] {
	return Result[T]{Outcome: OutcomeParseFailure, Err: err}
}

// then decodes a successful text result, passing failures through unchanged
func then[T any](r Result[string], decode func(string) Result[T]) Result[T] {
	if r.Outcome != OutcomeOK {
		return Result[T]{Outcome: r.Outcome, Err: r.Err}
	}
	out := decode(r.Value)
	if out.Outcome == OutcomeParseFailure {
		out.Raw = r.Value
	}
	return out
}
