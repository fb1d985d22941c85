package scoring

import (
	"fmt"
	"sort"

	"github.com/jonathan/ats-scorer/internal/types"
)

// maxRecommendations caps the actionable suggestions on a report.
const maxRecommendations = 5

// gap is one missing job-side item, carrying the priority inputs used to
// rank recommendations.
type gap struct {
	category types.Category
	term     types.Term
	tier     types.Tier
	seq      int // discovery order across categories, the tie-breaker
}

func (g gap) priority() float64 {
	return g.tier.Weight() * Weights[g.category]
}

// recommendations ranks every missing item by keyword-tier weight times
// category weight and phrases the top few as concrete suggestions. Ties
// keep the job profile's first-occurrence order.
func recommendations(job *types.JobProfile, results map[types.Category]types.MatchResult) []string {
	gaps := collectGaps(job, results)

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].priority() > gaps[j].priority()
	})

	recs := make([]string, 0, maxRecommendations)
	for _, g := range gaps {
		if len(recs) == maxRecommendations {
			break
		}
		recs = append(recs, recommendLine(g))
	}
	return recs
}

// collectGaps walks the match results in presentation order and tags
// each missing term with its keyword tier. Title, experience, and
// education gaps are single hard requirements and rank as critical.
func collectGaps(job *types.JobProfile, results map[types.Category]types.MatchResult) []gap {
	var gaps []gap
	seq := 0
	add := func(cat types.Category, term types.Term, tier types.Tier) {
		gaps = append(gaps, gap{category: cat, term: term, tier: tier, seq: seq})
		seq++
	}

	for _, cat := range types.AllCategories {
		result, ok := results[cat]
		if !ok {
			continue
		}
		for _, term := range result.Missing {
			switch cat {
			case types.CategoryKeywords:
				tier, ok := job.Keywords.TierOf(term.Normalized)
				if !ok {
					tier = types.TierContext
				}
				add(cat, term, tier)
			case types.CategoryHardSkills:
				add(cat, term, mentionTier(job.HardSkills, term))
			case types.CategorySoftSkills:
				add(cat, term, mentionTier(job.SoftSkills, term))
			default:
				add(cat, term, types.TierCritical)
			}
		}
	}
	return gaps
}

// mentionTier finds the keyword tier the job assigned to a skill mention.
func mentionTier(mentions []types.SkillMention, term types.Term) types.Tier {
	for _, m := range mentions {
		if m.Term.Normalized == term.Normalized {
			return m.Tier
		}
	}
	return types.TierContext
}

// missingItems flattens every missing term into "category: term" lines,
// categories in presentation order.
func missingItems(results map[types.Category]types.MatchResult) []string {
	items := []string{}
	for _, cat := range types.AllCategories {
		result, ok := results[cat]
		if !ok {
			continue
		}
		for _, term := range result.Missing {
			items = append(items, fmt.Sprintf("%s: %s", cat, term.Surface))
		}
	}
	return items
}

func recommendLine(g gap) string {
	switch g.category {
	case types.CategoryExperience:
		return fmt.Sprintf("Highlight experience matching the %s requirement", g.term.Surface)
	case types.CategoryEducation:
		return fmt.Sprintf("List education meeting the %s requirement", g.term.Surface)
	case types.CategoryJobTitle:
		return fmt.Sprintf("Work %q into your resume to mirror the job title", g.term.Surface)
	default:
		return fmt.Sprintf("Add %q to strengthen the %s category", g.term.Surface, g.category)
	}
}

func strengthLine(cat types.Category) string {
	return fmt.Sprintf("Strong %s alignment", categoryLabel(cat))
}

func weaknessLine(cat types.Category) string {
	return fmt.Sprintf("Weak %s alignment", categoryLabel(cat))
}

func categoryLabel(cat types.Category) string {
	switch cat {
	case types.CategoryHardSkills:
		return "hard skills"
	case types.CategorySoftSkills:
		return "soft skills"
	case types.CategoryJobTitle:
		return "job title"
	default:
		return string(cat)
	}
}
