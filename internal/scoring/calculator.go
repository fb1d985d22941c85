// Package scoring combines per-category match results into the final
// weighted report: overall score, grade, recommendations, and feedback.
package scoring

import (
	"github.com/jonathan/ats-scorer/internal/types"
)

// Weights assigns each category's share of the overall score. The values
// sum to exactly 1.0.
var Weights = map[types.Category]float64{
	types.CategoryKeywords:   0.25,
	types.CategoryHardSkills: 0.20,
	types.CategorySoftSkills: 0.15,
	types.CategoryJobTitle:   0.10,
	types.CategoryExperience: 0.20,
	types.CategoryEducation:  0.05,
	types.CategoryFormatting: 0.05,
}

// Thresholds for the per-category feedback lists.
const (
	strengthThreshold = 80
	weaknessThreshold = 60
)

// Calculator turns match results into a ScoreReport. It is stateless and
// safe for concurrent use.
type Calculator struct{}

// New constructs a Calculator.
func New() *Calculator {
	return &Calculator{}
}

// Calculate computes the weighted overall score and assembles the full
// report. The formatting category is not matched; its score is taken
// directly from the resume profile.
func (c *Calculator) Calculate(job *types.JobProfile, results map[types.Category]types.MatchResult, resume *types.ResumeProfile) *types.ScoreReport {
	scores := make(map[types.Category]float64, len(types.AllCategories))
	for _, cat := range types.AllCategories {
		if cat == types.CategoryFormatting {
			scores[cat] = clamp(resume.FormattingScore)
			continue
		}
		scores[cat] = clamp(results[cat].Score)
	}

	overall := 0.0
	for cat, weight := range Weights {
		overall += scores[cat] * weight
	}
	overall = clamp(overall)

	report := &types.ScoreReport{
		OverallScore:    overall,
		CategoryScores:  scores,
		Weights:         Weights,
		Grade:           gradeFor(overall),
		Interpretation:  interpretationFor(overall),
		Recommendations: recommendations(job, results),
		MissingItems:    missingItems(results),
	}

	for _, cat := range types.AllCategories {
		switch {
		case scores[cat] >= strengthThreshold:
			report.Strengths = append(report.Strengths, strengthLine(cat))
		case scores[cat] < weaknessThreshold:
			report.Weaknesses = append(report.Weaknesses, weaknessLine(cat))
		}
	}

	return report
}

func clamp(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
