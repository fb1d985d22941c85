package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTitle_LabeledLineWins(t *testing.T) {
	text := "Acme Corp is hiring.\nTitle: Staff Platform Engineer\nRequirements: Go"

	assert.Equal(t, "Staff Platform Engineer", extractTitle(text))
}

func TestExtractTitle_FirstLineFallback(t *testing.T) {
	text := "Senior Software Engineer\nWe build things."

	assert.Equal(t, "Senior Software Engineer", extractTitle(text))
}

func TestExtractTitle_SkipsProseFirstLine(t *testing.T) {
	text := "We are a fast-growing startup looking for talent.\nRequirements: Go"

	assert.Equal(t, "", extractTitle(text))
}

func TestExtractTitle_TrimsTrailingColon(t *testing.T) {
	assert.Equal(t, "Backend Engineer", extractTitle("Backend Engineer:\nRequirements: Go"))
}

func TestExtractRequiredYears_PlusForm(t *testing.T) {
	years := extractRequiredYears("Requires 5+ years of experience.")

	require.NotNil(t, years)
	assert.Equal(t, 5.0, *years)
}

func TestExtractRequiredYears_RangeUsesLowerBound(t *testing.T) {
	years := extractRequiredYears("3-5 years experience in backend work")

	require.NotNil(t, years)
	assert.Equal(t, 3.0, *years)
}

func TestExtractRequiredYears_Unspecified(t *testing.T) {
	assert.Nil(t, extractRequiredYears("Plenty of experience with Go."))
}

func TestExtractMinDegree_LowestMentionedWins(t *testing.T) {
	assert.Equal(t, "bachelor", extractMinDegree("Bachelor's or Master's degree required"))
	assert.Equal(t, "master", extractMinDegree("Master's degree or PhD"))
	assert.Equal(t, "phd", extractMinDegree("PhD in a quantitative field"))
}

func TestExtractMinDegree_NoneMentioned(t *testing.T) {
	assert.Equal(t, "", extractMinDegree("No formal education required."))
}

func TestExtractExperienceLevel_Keywords(t *testing.T) {
	assert.Equal(t, "senior", extractExperienceLevel("Senior engineer wanted"))
	assert.Equal(t, "entry", extractExperienceLevel("Entry-level position"))
	assert.Equal(t, "executive", extractExperienceLevel("VP of Engineering"))
	assert.Equal(t, "", extractExperienceLevel("Engineer wanted"))
}
