package matching

import (
	"fmt"

	"github.com/jonathan/ats-scorer/internal/types"
)

// MatchExperience compares the resume's total years of experience with
// the job's stated minimum. Meeting or exceeding the requirement scores
// 100; falling short scores proportionally. A job with no parseable
// requirement is a vacuous match.
func (m *Matcher) MatchExperience(job *types.JobProfile, resume *types.ResumeProfile) types.MatchResult {
	result := types.MatchResult{
		Category: types.CategoryExperience,
		Matched:  []types.Term{},
		Missing:  []types.Term{},
	}

	if job.RequiredYears == nil || *job.RequiredYears <= 0 {
		result.Score = 100
		return result
	}

	required := *job.RequiredYears
	total := resume.TotalExperienceYears()
	term := types.Term{
		Normalized: fmt.Sprintf("%g+ years experience", required),
		Surface:    fmt.Sprintf("%g+ years experience", required),
		Count:      1,
	}

	if total >= required {
		result.Matched = append(result.Matched, term)
		result.Score = 100
		return result
	}

	result.Missing = append(result.Missing, term)
	result.Score = clampScore(total / required * 100)
	return result
}
