package types

import (
	"github.com/go-playground/validator/v10"
)

// ResumeProfile is the externally supplied, read-only candidate input:
// full extracted text, skill terms pre-tagged where possible, experience
// and education entries, and the formatting-quality score assessed by the
// parsing collaborator. The scorer never mutates it.
type ResumeProfile struct {
	FullText        string            `json:"full_text"`
	Skills          []ResumeSkill     `json:"skills,omitempty" validate:"dive"`
	Experience      []ExperienceEntry `json:"experience,omitempty" validate:"dive"`
	Education       []EducationEntry  `json:"education,omitempty" validate:"dive"`
	Titles          []string          `json:"titles,omitempty"`
	FormattingScore float64           `json:"formatting_score" validate:"gte=0,lte=100"`
}

// ResumeSkill is a single skill term from the resume, tagged hard/soft by
// the ingestion collaborator where possible.
type ResumeSkill struct {
	Name     string        `json:"name" validate:"required"`
	Category SkillCategory `json:"category,omitempty" validate:"omitempty,oneof=hard soft unknown"`
}

// ExperienceEntry is one position from the resume's work history.
type ExperienceEntry struct {
	Title       string  `json:"title"`
	Years       float64 `json:"years" validate:"gte=0"`
	Description string  `json:"description,omitempty"`
}

// EducationEntry is one degree from the resume.
type EducationEntry struct {
	Degree string `json:"degree" validate:"omitempty,oneof=associate bachelor master phd"`
	Field  string `json:"field,omitempty"`
	School string `json:"school,omitempty"`
}

// Validate checks field-level constraints on the profile. An empty
// profile is valid: scoring degrades to low but well-defined scores
// rather than rejecting the input.
func (p *ResumeProfile) Validate() error {
	return validator.New().Struct(p)
}

// TotalExperienceYears sums years across all experience entries.
func (p *ResumeProfile) TotalExperienceYears() float64 {
	total := 0.0
	for _, e := range p.Experience {
		total += e.Years
	}
	return total
}
