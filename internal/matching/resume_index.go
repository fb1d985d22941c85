package matching

import (
	"strings"

	"github.com/jonathan/ats-scorer/internal/registry"
	"github.com/jonathan/ats-scorer/internal/types"
)

// resumeSkillIndex resolves the resume's declared skills once per match
// call: folded raw names for direct equality, and canonical names with
// the best match tier the resume reaches for each.
type resumeSkillIndex struct {
	reg       *registry.Registry
	names     []string                   // raw declared skill names
	folded    map[string]bool            // folded raw names
	canonical map[string]types.MatchTier // canonical -> best resume-side tier
	fullText  string                     // lowered resume text, for direct mentions
}

func newResumeSkillIndex(reg *registry.Registry, resume *types.ResumeProfile) *resumeSkillIndex {
	idx := &resumeSkillIndex{
		reg:       reg,
		folded:    make(map[string]bool, len(resume.Skills)),
		canonical: make(map[string]types.MatchTier),
		fullText:  strings.ToLower(resume.FullText),
	}
	for _, skill := range resume.Skills {
		idx.names = append(idx.names, skill.Name)
		idx.folded[foldName(skill.Name)] = true

		res := reg.Resolve(skill.Name)
		if res.Category == types.SkillCategoryUnknown {
			continue
		}
		if existing, ok := idx.canonical[res.Canonical]; !ok || res.Match.Credit() > existing.Credit() {
			idx.canonical[res.Canonical] = res.Match
		}
	}
	return idx
}

// lookup finds the deterministic credit for a job-side mention: a direct
// case-insensitive hit on a declared skill or anywhere in the resume text
// is an exact match; otherwise the job term and a resume skill must share
// a canonical, and the credit is the weaker of the two resolution tiers.
func (idx *resumeSkillIndex) lookup(mention types.SkillMention) (float64, types.MatchTier, bool) {
	if idx.folded[foldName(mention.Term.Surface)] || idx.folded[foldName(mention.Term.Normalized)] {
		return types.MatchExact.Credit(), types.MatchExact, true
	}
	if idx.fullText != "" &&
		(strings.Contains(idx.fullText, foldName(mention.Term.Surface)) ||
			strings.Contains(idx.fullText, mention.Term.Normalized)) {
		return types.MatchExact.Credit(), types.MatchExact, true
	}

	if mention.Canonical != "" {
		if resumeTier, ok := idx.canonical[mention.Canonical]; ok {
			tier := weakerTier(mention.Match, resumeTier)
			return tier.Credit(), tier, true
		}
	}

	return 0, "", false
}

func weakerTier(a, b types.MatchTier) types.MatchTier {
	if a.Credit() < b.Credit() {
		return a
	}
	return b
}

func foldName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
