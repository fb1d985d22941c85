// Package registry provides the reference skill registry: hard- and
// soft-skill tables with synonym and related-term relations, loaded once
// per process and read-only thereafter. A Registry value is immutable
// and safe for concurrent readers.
package registry

import (
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

// Entry is one registry skill: a canonical name, case-insensitive exact
// synonyms, and related-but-distinct terms.
type Entry struct {
	Canonical string   `json:"canonical"`
	Synonyms  []string `json:"synonyms,omitempty"`
	Related   []string `json:"related,omitempty"`
}

// Resolution is the outcome of resolving a candidate term.
type Resolution struct {
	Category  types.SkillCategory
	Canonical string
	Match     types.MatchTier
}

// Registry holds the immutable lookup tables. Construct with New or Load;
// the zero value resolves nothing.
type Registry struct {
	hard table
	soft table
}

type table struct {
	canonical map[string]string // folded canonical -> canonical
	synonyms  map[string]string // folded synonym -> canonical
	related   map[string]string // folded related term -> canonical
}

// New builds a registry from hard- and soft-skill entries.
func New(hard, soft []Entry) *Registry {
	return &Registry{hard: buildTable(hard), soft: buildTable(soft)}
}

func buildTable(entries []Entry) table {
	t := table{
		canonical: make(map[string]string),
		synonyms:  make(map[string]string),
		related:   make(map[string]string),
	}
	for _, e := range entries {
		folded := fold(e.Canonical)
		if folded == "" {
			continue
		}
		t.canonical[folded] = e.Canonical
		for _, s := range e.Synonyms {
			if f := fold(s); f != "" {
				t.synonyms[f] = e.Canonical
			}
		}
		for _, r := range e.Related {
			if f := fold(r); f != "" {
				t.related[f] = e.Canonical
			}
		}
	}
	return t
}

// Resolve classifies a candidate term. Matching proceeds exact-canonical,
// then exact-synonym, then related, stopping at the first hit; within
// each stage the hard table is consulted before the soft table, so
// technical skills win when a term appears in both. Unmatched terms
// resolve to SkillCategoryUnknown.
func (r *Registry) Resolve(term string) Resolution {
	folded := fold(term)
	if folded == "" {
		return Resolution{Category: types.SkillCategoryUnknown}
	}

	stages := []struct {
		match types.MatchTier
		pick  func(table) map[string]string
	}{
		{types.MatchExact, func(t table) map[string]string { return t.canonical }},
		{types.MatchSynonym, func(t table) map[string]string { return t.synonyms }},
		{types.MatchRelated, func(t table) map[string]string { return t.related }},
	}

	for _, stage := range stages {
		if canonical, ok := stage.pick(r.hard)[folded]; ok {
			return Resolution{Category: types.SkillCategoryHard, Canonical: canonical, Match: stage.match}
		}
		if canonical, ok := stage.pick(r.soft)[folded]; ok {
			return Resolution{Category: types.SkillCategorySoft, Canonical: canonical, Match: stage.match}
		}
	}

	return Resolution{Category: types.SkillCategoryUnknown}
}

// ResolveTerm resolves an extracted term, trying its surface form first
// and falling back to the stemmed normalization. Surface forms preserve
// names like "kubernetes" that stemming would mangle.
func (r *Registry) ResolveTerm(term types.Term) Resolution {
	if res := r.Resolve(term.Surface); res.Category != types.SkillCategoryUnknown {
		return res
	}
	return r.Resolve(term.Normalized)
}

// Categorize tags each term with its skill category.
func (r *Registry) Categorize(terms []string) map[string]types.SkillCategory {
	out := make(map[string]types.SkillCategory, len(terms))
	for _, term := range terms {
		out[term] = r.Resolve(term).Category
	}
	return out
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
