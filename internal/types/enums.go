// Package types provides type definitions for structured data used throughout the ATS scorer.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Tier is the priority bucket assigned to an extracted keyword based on
// which job-description section it came from.
type Tier string

// Keyword tiers in descending priority order.
const (
	TierCritical  Tier = "critical"
	TierImportant Tier = "important"
	TierPreferred Tier = "preferred"
	TierContext   Tier = "context"
)

// AllTiers lists every tier in descending priority order.
var AllTiers = []Tier{TierCritical, TierImportant, TierPreferred, TierContext}

// Priority returns a numeric priority for the tier. Higher numbers indicate
// higher priority; unknown tiers return 0.
func (t Tier) Priority() int {
	switch t {
	case TierCritical:
		return 4
	case TierImportant:
		return 3
	case TierPreferred:
		return 2
	case TierContext:
		return 1
	default:
		return 0
	}
}

// Weight returns the recommendation weight for the tier.
func (t Tier) Weight() float64 {
	switch t {
	case TierCritical:
		return 1.0
	case TierImportant:
		return 0.75
	case TierPreferred:
		return 0.5
	case TierContext:
		return 0.25
	default:
		return 0
	}
}

// SectionLabel identifies a recognized job-description section.
type SectionLabel string

// Recognized section labels. Text preceding the first recognized heading
// belongs to SectionGeneral.
const (
	SectionGeneral          SectionLabel = "general"
	SectionRequired         SectionLabel = "required"
	SectionPreferred        SectionLabel = "preferred"
	SectionResponsibilities SectionLabel = "responsibilities"
	SectionQualifications   SectionLabel = "qualifications"
)

// KeywordTier maps a section label to the tier its keywords are assigned.
func (l SectionLabel) KeywordTier() Tier {
	switch l {
	case SectionRequired:
		return TierCritical
	case SectionResponsibilities:
		return TierImportant
	case SectionPreferred:
		return TierPreferred
	default:
		return TierContext
	}
}

// SkillCategory classifies a term as a technical skill, an interpersonal
// skill, or neither.
type SkillCategory string

// Skill categories.
const (
	SkillCategoryHard    SkillCategory = "hard"
	SkillCategorySoft    SkillCategory = "soft"
	SkillCategoryUnknown SkillCategory = "unknown"
)

// MatchTier is the confidence level of a skill match against the registry.
type MatchTier string

// Match tiers in descending confidence order.
const (
	MatchExact   MatchTier = "exact"
	MatchSynonym MatchTier = "synonym"
	MatchRelated MatchTier = "related"
)

// Credit returns the partial-credit multiplier for the match tier.
func (m MatchTier) Credit() float64 {
	switch m {
	case MatchExact:
		return 1.0
	case MatchSynonym:
		return 0.8
	case MatchRelated:
		return 0.6
	default:
		return 0
	}
}

// Category identifies one of the scored report categories.
type Category string

// Report categories. The first six are computed by the matcher; formatting
// is supplied externally by the resume-parsing collaborator.
const (
	CategoryKeywords   Category = "keywords"
	CategoryHardSkills Category = "hard_skills"
	CategorySoftSkills Category = "soft_skills"
	CategoryJobTitle   Category = "job_title"
	CategoryExperience Category = "experience"
	CategoryEducation  Category = "education"
	CategoryFormatting Category = "formatting"
)

// AllCategories lists every report category in presentation order.
var AllCategories = []Category{
	CategoryKeywords,
	CategoryHardSkills,
	CategorySoftSkills,
	CategoryJobTitle,
	CategoryExperience,
	CategoryEducation,
	CategoryFormatting,
}
