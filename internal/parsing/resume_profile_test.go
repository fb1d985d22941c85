package parsing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/types"
)

const validProfile = `{
  "full_text": "Senior engineer with Python and PostgreSQL.",
  "skills": [{"name": "Python", "category": "hard"}],
  "experience": [{"title": "Engineer", "years": 4}],
  "education": [{"degree": "bachelor", "field": "CS"}],
  "titles": ["Senior Engineer"],
  "formatting_score": 85
}`

func TestLoadResumeProfile_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(validProfile), 0644))

	profile, err := LoadResumeProfile(path)

	require.NoError(t, err)
	assert.Equal(t, 85.0, profile.FormattingScore)
	assert.Len(t, profile.Skills, 1)
	assert.Equal(t, types.SkillCategoryHard, profile.Skills[0].Category)
	assert.Equal(t, 4.0, profile.TotalExperienceYears())
}

func TestLoadResumeProfile_MissingFile(t *testing.T) {
	_, err := LoadResumeProfile(filepath.Join(t.TempDir(), "absent.json"))

	assert.Error(t, err)
}

func TestParseResumeProfile_SchemaRejectsUnknownField(t *testing.T) {
	doc := `{"full_text": "x", "salary": 100000}`

	_, err := ParseResumeProfile("resume.json", []byte(doc))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Error(), "resume.json")
}

func TestParseResumeProfile_SchemaRequiresFullText(t *testing.T) {
	_, err := ParseResumeProfile("resume.json", []byte(`{"formatting_score": 50}`))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestParseResumeProfile_MalformedJSON(t *testing.T) {
	_, err := ParseResumeProfile("resume.json", []byte(`{not json`))

	assert.Error(t, err)
}

func TestParseResumeProfile_SchemaRejectsBadDegree(t *testing.T) {
	doc := `{"full_text": "x", "education": [{"degree": "bootcamp"}]}`

	_, err := ParseResumeProfile("resume.json", []byte(doc))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestParseResumeProfile_MinimalProfile(t *testing.T) {
	profile, err := ParseResumeProfile("resume.json", []byte(`{"full_text": ""}`))

	require.NoError(t, err)
	assert.Empty(t, profile.Skills)
}
