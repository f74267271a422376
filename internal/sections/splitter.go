// Package sections splits plain resume text into labelled sections by recognising header lines.
package sections

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/resume-tailor/internal/types"
)

const defaultLabel = "summary"

type headerRule struct {
	label    string
	synonyms []string
}

// headerRules is checked in order; the first rule with a matching synonym wins.
var headerRules = []headerRule{
	{"experience", []string{"experience", "work history", "employment", "career"}},
	{"education", []string{"education", "academic", "degree", "university", "college"}},
	{"skills", []string{"skills", "technical skills", "competencies", "expertise"}},
	{"summary", []string{"summary", "objective", "profile", "about"}},
	{"projects", []string{"projects", "portfolio", "achievements"}},
	{"certifications", []string{"certifications", "certificates", "licenses"}},
}

// Split breaks resume text into sections. Content before the first recognised
// header is labelled Summary. A line is a header when its lowercased, trimmed form
// contains one of the known synonyms, so "Professional Experience" starts an
// Experience section. Blank lines are dropped and sections without content are skipped.
func Split(resumeText string) []types.ResumeSection {
	sections := make([]types.ResumeSection, 0)
	caser := cases.Title(language.English)
	label := defaultLabel
	var content []string

	flush := func() {
		if len(content) == 0 {
			return
		}
		sections = append(sections, types.ResumeSection{
			Name:    caser.String(label),
			Content: strings.TrimSpace(strings.Join(content, "\n")),
		})
	}

	for _, line := range strings.Split(resumeText, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if next, ok := headerLabel(strings.ToLower(trimmed)); ok {
			flush()
			label = next
			content = nil
			continue
		}

		content = append(content, line)
	}
	flush()

	return sections
}

func headerLabel(line string) (string, bool) {
	for _, rule := range headerRules {
		for _, synonym := range rule.synonyms {
			if strings.Contains(line, synonym) {
				return rule.label, true
			}
		}
	}
	return "", false
}
