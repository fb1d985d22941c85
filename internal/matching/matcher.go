package matching

import (
	"context"
	"strings"

	"github.com/jonathan/ats-scorer/internal/registry"
	"github.com/jonathan/ats-scorer/internal/types"
)

// Matcher computes per-category match results for a (job, resume) pair.
// Every method is a pure function of its inputs; results are produced
// fresh per call and never cached. A single Matcher may serve concurrent
// callers because it only reads the registry.
type Matcher struct {
	reg   *registry.Registry
	judge Judge // optional semantic enhancer; nil means deterministic only
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithJudge installs a semantic equivalence judge used to upgrade
// deterministic misses in the keyword and skill matchers.
func WithJudge(j Judge) Option {
	return func(m *Matcher) { m.judge = j }
}

// New constructs a Matcher over the given registry.
func New(reg *registry.Registry, opts ...Option) *Matcher {
	m := &Matcher{reg: reg}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MatchAll runs every category matcher and returns results keyed by
// category. The context bounds only semantic-judge calls; the
// deterministic path never blocks.
func (m *Matcher) MatchAll(ctx context.Context, job *types.JobProfile, resume *types.ResumeProfile) map[types.Category]types.MatchResult {
	return map[types.Category]types.MatchResult{
		types.CategoryKeywords:   m.MatchKeywords(ctx, job, resume),
		types.CategoryHardSkills: m.MatchHardSkills(ctx, job, resume),
		types.CategorySoftSkills: m.MatchSoftSkills(ctx, job, resume),
		types.CategoryJobTitle:   m.MatchTitle(job, resume),
		types.CategoryExperience: m.MatchExperience(job, resume),
		types.CategoryEducation:  m.MatchEducation(job, resume),
	}
}

// MatchKeywords scans the resume's full text for every term in the job's
// aggregate keyword set. A term counts as matched on any case-insensitive
// substring hit; a semantic judge, when present, may additionally match a
// missed term against the resume's declared skills. Zero job keywords is
// a vacuous match and scores 100.
func (m *Matcher) MatchKeywords(ctx context.Context, job *types.JobProfile, resume *types.ResumeProfile) types.MatchResult {
	result := types.MatchResult{
		Category: types.CategoryKeywords,
		Matched:  []types.Term{},
		Missing:  []types.Term{},
	}

	terms := job.Keywords.All()
	if len(terms) == 0 {
		result.Score = 100
		return result
	}

	resumeText := strings.ToLower(resume.FullText)
	for _, term := range terms {
		if strings.Contains(resumeText, term.Normalized) ||
			strings.Contains(resumeText, strings.ToLower(term.Surface)) ||
			m.semanticSkillHit(ctx, term, resume) {
			result.Matched = append(result.Matched, term)
		} else {
			result.Missing = append(result.Missing, term)
		}
	}

	result.Score = clampScore(float64(len(result.Matched)) / float64(len(terms)) * 100)
	return result
}

// semanticSkillHit asks the optional judge whether the term is
// equivalent to any declared resume skill. Judge errors are treated as
// non-matches; they never fail the score.
func (m *Matcher) semanticSkillHit(ctx context.Context, term types.Term, resume *types.ResumeProfile) bool {
	if m.judge == nil {
		return false
	}
	for _, skill := range resume.Skills {
		confidence, err := m.judge.JudgeEquivalence(ctx, term.Surface, skill.Name)
		if err != nil {
			continue
		}
		if confidence >= semanticMatchThreshold {
			return true
		}
	}
	return false
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
