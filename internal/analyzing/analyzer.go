// Package analyzing turns raw job-description text into a structured
// JobProfile: labeled sections, tiered keywords, categorized skills, and
// derived title, experience, and education requirements.
package analyzing

import (
	"github.com/jonathan/ats-scorer/internal/keywords"
	"github.com/jonathan/ats-scorer/internal/registry"
	"github.com/jonathan/ats-scorer/internal/segmenting"
	"github.com/jonathan/ats-scorer/internal/types"
)

// Analyzer builds job profiles against an injected skill registry. The
// registry is read-only, so one Analyzer may serve concurrent callers.
type Analyzer struct {
	reg *registry.Registry
}

// New constructs an Analyzer.
func New(reg *registry.Registry) *Analyzer {
	return &Analyzer{reg: reg}
}

// Analyze produces the JobProfile for a job description. It is a pure
// function of the text: malformed or empty input degrades to a profile
// with a single empty general section, never an error.
func (a *Analyzer) Analyze(jobText string) *types.JobProfile {
	sections := segmenting.Segment(jobText)

	for i := range sections {
		tier := sections[i].Label.KeywordTier()
		sections[i].Keywords = keywords.Extract(segmenting.SectionText(sections[i]), tier)
	}

	profile := &types.JobProfile{
		Title:           extractTitle(jobText),
		ExperienceLevel: extractExperienceLevel(jobText),
		RequiredYears:   extractRequiredYears(jobText),
		MinDegree:       extractMinDegree(jobText),
		Sections:        sections,
		Keywords:        keywords.Aggregate(sections),
		HardSkills:      []types.SkillMention{},
		SoftSkills:      []types.SkillMention{},
	}

	a.attachSkills(profile)
	return profile
}

// attachSkills resolves every aggregate keyword against the registry and
// records the hard and soft mentions with their tiers. Unknown terms stay
// keyword-only.
func (a *Analyzer) attachSkills(profile *types.JobProfile) {
	for _, tier := range types.AllTiers {
		for _, term := range profile.Keywords.Terms(tier) {
			res := a.reg.ResolveTerm(term)
			mention := types.SkillMention{
				Term:      term,
				Canonical: res.Canonical,
				Tier:      tier,
				Match:     res.Match,
			}
			switch res.Category {
			case types.SkillCategoryHard:
				profile.HardSkills = append(profile.HardSkills, mention)
			case types.SkillCategorySoft:
				profile.SoftSkills = append(profile.SoftSkills, mention)
			}
		}
	}
}
