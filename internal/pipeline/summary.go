package pipeline

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// trendingSkillCount is how many leading keywords are reported as trending
const trendingSkillCount = 5

// Summary renders the human-readable analysis summary
func Summary(found, total, missing int, score float64) string {
	var sb strings.Builder
	sb.WriteString("Resume Analysis Complete\n\n")
	sb.WriteString(fmt.Sprintf("Keywords Found: %d/%d\n", found, total))
	sb.WriteString(fmt.Sprintf("Missing Keywords: %d\n", missing))
	sb.WriteString(fmt.Sprintf("Confidence Score: %.2f%%\n\n", score*100))
	sb.WriteString("The resume has been optimized to better match the job requirements.\n")
	sb.WriteString("Consider incorporating the missing keywords to improve your chances.")
	return sb.String()
}

// Insights derives the market signals reported by a detailed analysis
func Insights(records []types.KeywordRecord, score float64) types.IndustryInsights {
	trending := make([]string, 0, trendingSkillCount)
	for _, record := range records[:min(len(records), trendingSkillCount)] {
		trending = append(trending, record.Keyword)
	}

	return types.IndustryInsights{
		TrendingSkills:   trending,
		MarketDemand:     level(score, 0.7, 0.4),
		CompetitionLevel: level(score, 0.8, 0.5),
	}
}

func level(score, high, medium float64) string {
	switch {
	case score > high:
		return "High"
	case score > medium:
		return "Medium"
	default:
		return "Low"
	}
}
