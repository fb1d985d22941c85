package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResumeProfile_EmptyProfileIsValid(t *testing.T) {
	p := &ResumeProfile{}

	assert.NoError(t, p.Validate())
}

func TestResumeProfile_RejectsOutOfRangeFormattingScore(t *testing.T) {
	p := &ResumeProfile{FormattingScore: 140}

	assert.Error(t, p.Validate())
}

func TestResumeProfile_RejectsUnnamedSkill(t *testing.T) {
	p := &ResumeProfile{Skills: []ResumeSkill{{Name: ""}}}

	assert.Error(t, p.Validate())
}

func TestResumeProfile_RejectsUnknownDegree(t *testing.T) {
	p := &ResumeProfile{Education: []EducationEntry{{Degree: "diploma"}}}

	assert.Error(t, p.Validate())
}

func TestResumeProfile_RejectsNegativeYears(t *testing.T) {
	p := &ResumeProfile{Experience: []ExperienceEntry{{Years: -1}}}

	assert.Error(t, p.Validate())
}

func TestTotalExperienceYears_SumsEntries(t *testing.T) {
	p := &ResumeProfile{
		Experience: []ExperienceEntry{
			{Years: 2.5},
			{Years: 3},
		},
	}

	assert.Equal(t, 5.5, p.TotalExperienceYears())
}

func TestTotalExperienceYears_Empty(t *testing.T) {
	assert.Equal(t, 0.0, (&ResumeProfile{}).TotalExperienceYears())
}
