package scoring

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/types"
)

func TestWeights_SumToOne(t *testing.T) {
	sum := 0.0
	for _, w := range Weights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestWeights_CoverEveryCategory(t *testing.T) {
	for _, cat := range types.AllCategories {
		_, ok := Weights[cat]
		assert.True(t, ok, "category %s has no weight", cat)
	}
}

func resultsWith(scores map[types.Category]float64) map[types.Category]types.MatchResult {
	results := make(map[types.Category]types.MatchResult)
	for cat, score := range scores {
		results[cat] = types.MatchResult{Category: cat, Score: score, Matched: []types.Term{}, Missing: []types.Term{}}
	}
	return results
}

func allCategoryScores(score float64) map[types.Category]float64 {
	scores := make(map[types.Category]float64)
	for _, cat := range types.AllCategories {
		if cat == types.CategoryFormatting {
			continue
		}
		scores[cat] = score
	}
	return scores
}

func TestCalculate_OverallEqualsWeightedSum(t *testing.T) {
	scores := map[types.Category]float64{
		types.CategoryKeywords:   80,
		types.CategoryHardSkills: 60,
		types.CategorySoftSkills: 40,
		types.CategoryJobTitle:   100,
		types.CategoryExperience: 50,
		types.CategoryEducation:  100,
	}
	resume := &types.ResumeProfile{FormattingScore: 90}

	report := New().Calculate(&types.JobProfile{}, resultsWith(scores), resume)

	expected := 0.0
	for cat, w := range Weights {
		expected += report.CategoryScores[cat] * w
	}
	assert.InDelta(t, expected, report.OverallScore, 1e-6)
	assert.Equal(t, 90.0, report.CategoryScores[types.CategoryFormatting])
}

func TestCalculate_OverallInRange(t *testing.T) {
	report := New().Calculate(&types.JobProfile{}, resultsWith(allCategoryScores(100)), &types.ResumeProfile{FormattingScore: 100})

	assert.InDelta(t, 100.0, report.OverallScore, 1e-9)
	assert.False(t, math.IsNaN(report.OverallScore))
}

func TestCalculate_FormattingPassthrough(t *testing.T) {
	report := New().Calculate(&types.JobProfile{}, resultsWith(allCategoryScores(0)), &types.ResumeProfile{FormattingScore: 70})

	assert.Equal(t, 70.0, report.CategoryScores[types.CategoryFormatting])
	assert.InDelta(t, 70.0*Weights[types.CategoryFormatting], report.OverallScore, 1e-6)
}

func TestCalculate_Idempotent(t *testing.T) {
	scores := allCategoryScores(55)
	resume := &types.ResumeProfile{FormattingScore: 80}
	calc := New()

	first := calc.Calculate(&types.JobProfile{}, resultsWith(scores), resume)
	second := calc.Calculate(&types.JobProfile{}, resultsWith(scores), resume)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCalculate_StrengthsAndWeaknesses(t *testing.T) {
	scores := map[types.Category]float64{
		types.CategoryKeywords:   95, // strength
		types.CategoryHardSkills: 30, // weakness
		types.CategorySoftSkills: 70, // neither
		types.CategoryJobTitle:   85, // strength
		types.CategoryExperience: 10, // weakness
		types.CategoryEducation:  65, // neither
	}

	report := New().Calculate(&types.JobProfile{}, resultsWith(scores), &types.ResumeProfile{FormattingScore: 75})

	assert.Contains(t, report.Strengths, "Strong keywords alignment")
	assert.Contains(t, report.Strengths, "Strong job title alignment")
	assert.Contains(t, report.Weaknesses, "Weak hard skills alignment")
	assert.Contains(t, report.Weaknesses, "Weak experience alignment")
	assert.NotContains(t, report.Strengths, "Strong soft skills alignment")
}
