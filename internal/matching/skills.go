package matching

import (
	"context"

	"github.com/jonathan/ats-scorer/internal/types"
)

// Partition weights: required terms dominate hard-skill scoring, while
// preferred terms carry more weight for soft skills because soft-skill
// requirements are less binary.
const (
	hardRequiredWeight  = 0.8
	hardPreferredWeight = 0.2
	softRequiredWeight  = 0.6
	softPreferredWeight = 0.4
)

// MatchHardSkills scores the job's hard-skill mentions against the
// resume's skill set with confidence-weighted credit.
func (m *Matcher) MatchHardSkills(ctx context.Context, job *types.JobProfile, resume *types.ResumeProfile) types.MatchResult {
	return m.matchSkills(ctx, types.CategoryHardSkills, job.HardSkills, resume, hardRequiredWeight, hardPreferredWeight)
}

// MatchSoftSkills scores the job's soft-skill mentions against the
// resume's skill set with confidence-weighted credit.
func (m *Matcher) MatchSoftSkills(ctx context.Context, job *types.JobProfile, resume *types.ResumeProfile) types.MatchResult {
	return m.matchSkills(ctx, types.CategorySoftSkills, job.SoftSkills, resume, softRequiredWeight, softPreferredWeight)
}

// matchSkills partitions job-side mentions into required (critical and
// important tiers) and preferred (preferred and context tiers), computes
// each partition's credit fraction, and combines them. An empty
// partition is vacuously satisfied with fraction 1.
func (m *Matcher) matchSkills(
	ctx context.Context,
	category types.Category,
	mentions []types.SkillMention,
	resume *types.ResumeProfile,
	requiredWeight, preferredWeight float64,
) types.MatchResult {
	result := types.MatchResult{
		Category:      category,
		Matched:       []types.Term{},
		Missing:       []types.Term{},
		TierBreakdown: map[types.MatchTier]int{},
	}

	index := newResumeSkillIndex(m.reg, resume)

	var required, preferred []types.SkillMention
	for _, mention := range mentions {
		if mention.Tier == types.TierCritical || mention.Tier == types.TierImportant {
			required = append(required, mention)
		} else {
			preferred = append(preferred, mention)
		}
	}

	requiredFraction := m.partitionCredit(ctx, required, index, &result)
	preferredFraction := m.partitionCredit(ctx, preferred, index, &result)

	result.Score = clampScore((requiredFraction*requiredWeight + preferredFraction*preferredWeight) * 100)
	if len(result.TierBreakdown) == 0 {
		result.TierBreakdown = nil
	}
	return result
}

// partitionCredit accumulates confidence-weighted credit for one
// partition and appends matched/missing terms to the result. Empty
// partitions return 1 (nothing required, nothing to penalize).
func (m *Matcher) partitionCredit(
	ctx context.Context,
	mentions []types.SkillMention,
	index *resumeSkillIndex,
	result *types.MatchResult,
) float64 {
	if len(mentions) == 0 {
		return 1
	}

	total := 0.0
	for _, mention := range mentions {
		credit, tier := m.skillCredit(ctx, mention, index)
		total += credit
		if credit > 0 {
			result.Matched = append(result.Matched, mention.Term)
			result.TierBreakdown[tier]++
		} else {
			result.Missing = append(result.Missing, mention.Term)
		}
	}
	return total / float64(len(mentions))
}

// skillCredit computes the credit for one job-side mention: exact 1.0,
// synonym 0.8, related 0.6, miss 0. A semantic judge, when present, can
// upgrade a deterministic miss to synonym level.
func (m *Matcher) skillCredit(ctx context.Context, mention types.SkillMention, index *resumeSkillIndex) (float64, types.MatchTier) {
	if credit, tier, ok := index.lookup(mention); ok {
		return credit, tier
	}

	if m.judge != nil {
		for _, name := range index.names {
			confidence, err := m.judge.JudgeEquivalence(ctx, mention.Term.Surface, name)
			if err != nil {
				continue
			}
			if confidence >= semanticMatchThreshold {
				return types.MatchSynonym.Credit(), types.MatchSynonym
			}
		}
	}

	return 0, ""
}
