package types

// MatchResult is the outcome of comparing resume-derived terms against
// job-derived terms for a single category. Matched and missing are
// disjoint and their union is the full job-side term set.
type MatchResult struct {
	Category      Category          `json:"category"`
	Matched       []Term            `json:"matched"`
	Missing       []Term            `json:"missing"`
	Score         float64           `json:"score"`
	TierBreakdown map[MatchTier]int `json:"tier_breakdown,omitempty"`
}

// ScoreReport is the sole externally visible output of the scorer.
type ScoreReport struct {
	OverallScore    float64              `json:"overall_score"`
	CategoryScores  map[Category]float64 `json:"category_scores"`
	Weights         map[Category]float64 `json:"weights"`
	Grade           string               `json:"grade"`
	Interpretation  string               `json:"interpretation"`
	Recommendations []string             `json:"recommendations"`
	MissingItems    []string             `json:"missing_items"`
	Strengths       []string             `json:"strengths,omitempty"`
	Weaknesses      []string             `json:"weaknesses,omitempty"`
}
