package types

// RequirementSection is one labeled slice of a job description, with the
// raw sentences that made it up and the keywords extracted from them.
type RequirementSection struct {
	Label     SectionLabel     `json:"label"`
	Sentences []string         `json:"sentences"`
	Keywords  TieredKeywordSet `json:"keywords"`
}

// JobProfile is the structured result of analyzing a job description:
// every recognized section plus a derived title and the aggregate keyword
// set re-ranked across sections.
type JobProfile struct {
	Title           string               `json:"title"`
	ExperienceLevel string               `json:"experience_level,omitempty"` // entry, mid, senior, executive
	RequiredYears   *float64             `json:"required_years,omitempty"`   // nil when the posting names no year count
	MinDegree       string               `json:"min_degree,omitempty"`       // associate, bachelor, master, phd
	Sections        []RequirementSection `json:"sections"`
	Keywords        TieredKeywordSet     `json:"keywords"`
	HardSkills      []SkillMention       `json:"hard_skills"`
	SoftSkills      []SkillMention       `json:"soft_skills"`
}

// SkillMention is a job-side skill term resolved against the registry.
type SkillMention struct {
	Term      Term      `json:"term"`
	Canonical string    `json:"canonical"`
	Tier      Tier      `json:"tier"`
	Match     MatchTier `json:"match"`
}
