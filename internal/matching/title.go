package matching

import (
	"strings"

	"github.com/jonathan/ats-scorer/internal/textindex"
	"github.com/jonathan/ats-scorer/internal/types"
)

// MatchTitle scores the job title against the resume: each meaningful
// title token must appear in the resume's full text or one of its
// declared titles. No extracted title is a vacuous match.
func (m *Matcher) MatchTitle(job *types.JobProfile, resume *types.ResumeProfile) types.MatchResult {
	result := types.MatchResult{
		Category: types.CategoryJobTitle,
		Matched:  []types.Term{},
		Missing:  []types.Term{},
	}

	tokens := titleTokens(job.Title)
	if len(tokens) == 0 {
		result.Score = 100
		return result
	}

	haystack := strings.ToLower(resume.FullText)
	for _, t := range resume.Titles {
		haystack += "\n" + strings.ToLower(t)
	}

	for _, tok := range tokens {
		term := types.Term{Normalized: tok.Text, Surface: tok.Text, Count: 1, FirstPos: tok.Pos}
		if strings.Contains(haystack, tok.Text) {
			result.Matched = append(result.Matched, term)
		} else {
			result.Missing = append(result.Missing, term)
		}
	}

	result.Score = clampScore(float64(len(result.Matched)) / float64(len(tokens)) * 100)
	return result
}

// titleTokens keeps the title's meaningful tokens: tokenized, stop words
// removed, duplicates collapsed to the first occurrence.
func titleTokens(title string) []textindex.Token {
	seen := map[string]bool{}
	var kept []textindex.Token
	for _, tok := range textindex.Tokenize(title) {
		if textindex.IsStopWord(tok.Text) || seen[tok.Text] {
			continue
		}
		seen[tok.Text] = true
		kept = append(kept, tok)
	}
	return kept
}
