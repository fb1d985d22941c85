// Package keywords extracts and ranks keywords and phrases from
// job-description text, producing tiered keyword sets.
package keywords

import (
	"sort"
	"strings"

	"github.com/jonathan/ats-scorer/internal/textindex"
	"github.com/jonathan/ats-scorer/internal/types"
)

const (
	// topSingles and topPhrases bound each extracted set; ties at the
	// boundary are broken by first-occurrence position.
	topSingles = 10
	topPhrases = 5

	// minPhraseCount is the minimum frequency for an n-gram phrase to
	// qualify as a keyword.
	minPhraseCount = 2
)

// Extract produces the ranked keyword set for one section's text, placing
// every term in the given tier. Identical input yields identical output.
func Extract(text string, tier types.Tier) types.TieredKeywordSet {
	var set types.TieredKeywordSet
	for _, term := range RankedTerms(text) {
		set.Add(tier, term)
	}
	return set
}

// RankedTerms returns the top single-token keywords followed by the top
// phrases for the text, each ranked by frequency descending with ties
// broken by earlier first occurrence.
func RankedTerms(text string) []types.Term {
	tokens := textindex.Tokenize(text)

	singles := rankSingles(tokens)
	if len(singles) > topSingles {
		singles = singles[:topSingles]
	}

	phrases := rankPhrases(tokens)
	if len(phrases) > topPhrases {
		phrases = phrases[:topPhrases]
	}

	return append(singles, phrases...)
}

// rankSingles counts stop-word-filtered tokens by stemmed form.
func rankSingles(tokens []textindex.Token) []types.Term {
	counts := make(map[string]*types.Term)
	order := make([]string, 0)

	for _, tok := range tokens {
		if textindex.IsStopWord(tok.Text) {
			continue
		}
		normalized := textindex.Stem(tok.Text)
		if t, seen := counts[normalized]; seen {
			t.Count++
			continue
		}
		counts[normalized] = &types.Term{
			Normalized: normalized,
			Surface:    tok.Text,
			Count:      1,
			FirstPos:   tok.Pos,
		}
		order = append(order, normalized)
	}

	terms := make([]types.Term, 0, len(order))
	for _, n := range order {
		terms = append(terms, *counts[n])
	}
	sortTerms(terms)
	return terms
}

// rankPhrases detects 2- and 3-gram phrases occurring at least
// minPhraseCount times.
func rankPhrases(tokens []textindex.Token) []types.Term {
	grams := textindex.CollectNGrams(tokens, 2, minPhraseCount)
	grams = append(grams, textindex.CollectNGrams(tokens, 3, minPhraseCount)...)

	terms := make([]types.Term, 0, len(grams))
	seen := make(map[string]bool)
	for _, g := range grams {
		normalized := textindex.NormalizePhrase(g.Text)
		if seen[normalized] {
			continue
		}
		seen[normalized] = true
		terms = append(terms, types.Term{
			Normalized: normalized,
			Surface:    g.Text,
			Count:      g.Count,
			FirstPos:   g.FirstPos,
		})
	}
	sortTerms(terms)
	return terms
}

// sortTerms orders by frequency descending, ties by first occurrence.
func sortTerms(terms []types.Term) {
	sort.SliceStable(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].FirstPos < terms[j].FirstPos
	})
}

// IsPhrase reports whether a term is a multi-word phrase.
func IsPhrase(term types.Term) bool {
	return strings.Contains(term.Normalized, " ")
}
