// Package fallback holds the deterministic answers used when no model backend can serve a request.
package fallback

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

type keywordList struct {
	category   types.Category
	importance float64
	terms      []string
}

// keywordLists is scanned in order: technical terms, then soft skills, then tools.
var keywordLists = []keywordList{
	{
		category:   types.CategoryTechnical,
		importance: 0.8,
		terms: []string{
			"python", "java", "javascript", "react", "node.js", "sql", "aws", "docker",
			"kubernetes", "machine learning", "ai", "data science", "git", "agile",
			"scrum", "api", "rest", "graphql", "html", "css", "typescript", "angular",
			"vue.js", "mongodb", "postgresql", "mysql", "redis", "elasticsearch",
			"kafka", "spark", "hadoop", "tensorflow", "pytorch", "scikit-learn",
		},
	},
	{
		category:   types.CategorySoftSkill,
		importance: 0.6,
		terms: []string{
			"leadership", "communication", "teamwork", "problem solving", "analytical",
			"creative", "organized", "detail-oriented", "time management", "collaboration",
			"mentoring", "project management", "customer service", "sales", "marketing",
		},
	},
	{
		category:   types.CategoryTool,
		importance: 0.7,
		terms: []string{
			"jira", "confluence", "slack", "teams", "zoom", "figma", "sketch",
			"photoshop", "illustrator", "excel", "powerpoint", "word", "outlook",
		},
	},
}

// ExtractKeywords returns every known term that appears in the job description.
// Presence is a plain substring check on the lowercased text, so "java" is reported
// for a posting that only mentions JavaScript.
func ExtractKeywords(jobDescription string) []types.KeywordRecord {
	lowered := strings.ToLower(jobDescription)

	keywords := make([]types.KeywordRecord, 0)
	for _, list := range keywordLists {
		for _, term := range list.terms {
			if strings.Contains(lowered, term) {
				keywords = append(keywords, types.KeywordRecord{
					Keyword:    term,
					Importance: list.importance,
					Category:   list.category,
				})
			}
		}
	}
	return keywords
}
