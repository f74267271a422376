// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Category classifies an extracted keyword
type Category string

// Keyword categories returned by the model backend and the static fallback list
const (
	CategoryTechnical     Category = "technical"
	CategorySoftSkill     Category = "soft_skill"
	CategoryTool          Category = "tool"
	CategoryQualification Category = "qualification"
	CategoryExperience    Category = "experience"
)

// categoryAliases maps spellings seen in model output to canonical categories
var categoryAliases = map[string]Category{
	"technical":       CategoryTechnical,
	"technical_skill": CategoryTechnical,
	"tech":            CategoryTechnical,
	"soft_skill":      CategorySoftSkill,
	"soft_skills":     CategorySoftSkill,
	"soft":            CategorySoftSkill,
	"tool":            CategoryTool,
	"tools":           CategoryTool,
	"technology":      CategoryTool,
	"qualification":   CategoryQualification,
	"qualifications":  CategoryQualification,
	"certification":   CategoryQualification,
	"experience":      CategoryExperience,
}

// ParseCategory maps a free-form category label to a known Category.
// Unknown labels are reported as technical, which is what most extracted terms are.
func ParseCategory(label string) Category {
	key := strings.ToLower(strings.TrimSpace(label))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	if c, ok := categoryAliases[key]; ok {
		return c
	}
	return CategoryTechnical
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryTechnical, CategorySoftSkill, CategoryTool, CategoryQualification, CategoryExperience:
		return true
	}
	return false
}

// KeywordRecord is a keyword extracted from a job description with its importance weight
type KeywordRecord struct {
	Keyword    string   `json:"keyword"`
	Importance float64  `json:"importance"` // 0.0 to 1.0
	Category   Category `json:"category"`
}

// KeywordsResponse is the response for keyword extraction
type KeywordsResponse struct {
	Keywords []KeywordRecord `json:"keywords"`
}

// MatchResult describes how a single keyword appears in a resume
type MatchResult struct {
	Found     bool     `json:"found"`
	Frequency int      `json:"frequency"`
	Contexts  []string `json:"contexts"` // at most 3 snippets around the first occurrences
}

// KeywordMatch pairs a keyword with its match result, preserving keyword order
type KeywordMatch struct {
	Keyword string `json:"keyword"`
	MatchResult
}

// ResumeSection is a labeled block of resume text
type ResumeSection struct {
	Name    string `json:"section_name"`
	Content string `json:"content"`
}
