package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/types"
)

func TestLoadDefault_EmbeddedRegistry(t *testing.T) {
	reg, err := LoadDefault()

	require.NoError(t, err)
	assert.Equal(t, types.SkillCategoryHard, reg.Resolve("python").Category)
	assert.Equal(t, types.SkillCategorySoft, reg.Resolve("communication").Category)
}

func TestLoadDefault_KnownSynonyms(t *testing.T) {
	reg, err := LoadDefault()

	require.NoError(t, err)
	res := reg.Resolve("k8s")
	assert.Equal(t, "Kubernetes", res.Canonical)
	assert.Equal(t, types.MatchSynonym, res.Match)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	doc := `{"hard_skills":[{"canonical":"Rust","synonyms":["rustlang"]}],"soft_skills":[{"canonical":"Empathy"}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	reg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "Rust", reg.Resolve("rustlang").Canonical)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Message, "read failed")
}

func TestLoad_SchemaRejectsMissingCanonical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	doc := `{"hard_skills":[{"synonyms":["x"]}],"soft_skills":[]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	_, err := Load(path)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestLoad_EmptyRegistryRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	doc := `{"hard_skills":[],"soft_skills":[]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	_, err := Load(path)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Error(), "no entries")
}

func TestLoadError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &LoadError{Path: "x", Message: "read failed", Cause: cause}

	assert.ErrorIs(t, err, cause)
}
