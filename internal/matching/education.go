package matching

import (
	"fmt"

	"github.com/jonathan/ats-scorer/internal/types"
)

// degreeRank orders degree levels for meets-or-exceeds comparisons.
var degreeRank = map[string]int{
	"associate": 1,
	"bachelor":  2,
	"master":    3,
	"phd":       4,
}

// Partial credit by how far the candidate's best degree falls below the
// requirement.
var shortfallScores = []float64{100, 60, 30, 15}

// MatchEducation compares the resume's highest degree against the job's
// minimum. Meeting or exceeding scores 100; each level short cuts the
// score sharply; no degree at all scores 0. A job with no degree
// requirement is a vacuous match.
func (m *Matcher) MatchEducation(job *types.JobProfile, resume *types.ResumeProfile) types.MatchResult {
	result := types.MatchResult{
		Category: types.CategoryEducation,
		Matched:  []types.Term{},
		Missing:  []types.Term{},
	}

	requiredRank, ok := degreeRank[job.MinDegree]
	if !ok {
		result.Score = 100
		return result
	}

	term := types.Term{
		Normalized: fmt.Sprintf("%s degree", job.MinDegree),
		Surface:    fmt.Sprintf("%s degree", job.MinDegree),
		Count:      1,
	}

	best := 0
	for _, e := range resume.Education {
		if r, ok := degreeRank[e.Degree]; ok && r > best {
			best = r
		}
	}

	if best == 0 {
		result.Missing = append(result.Missing, term)
		result.Score = 0
		return result
	}

	if best >= requiredRank {
		result.Matched = append(result.Matched, term)
		result.Score = 100
		return result
	}

	result.Missing = append(result.Missing, term)
	shortfall := requiredRank - best
	if shortfall >= len(shortfallScores) {
		shortfall = len(shortfallScores) - 1
	}
	result.Score = shortfallScores[shortfall]
	return result
}
