package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	doc := `{"job": "job.txt", "resumes": ["a.json", "b.json"], "semantic_timeout_seconds": 5, "verbose": true}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "job.txt", cfg.Job)
	assert.Len(t, cfg.Resumes, 2)
	assert.Equal(t, 5, cfg.SemanticTimeoutSeconds)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")

	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{bad"), 0644))

	_, err := LoadConfig(path)

	assert.Error(t, err)
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := &Config{SemanticTimeoutSeconds: -1}

	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingJobFile(t *testing.T) {
	cfg := &Config{Job: filepath.Join(t.TempDir(), "absent.txt")}

	assert.Error(t, cfg.Validate())
}

func TestValidate_ExistingFiles(t *testing.T) {
	dir := t.TempDir()
	job := filepath.Join(dir, "job.txt")
	resume := filepath.Join(dir, "resume.json")
	require.NoError(t, os.WriteFile(job, []byte("x"), 0644))
	require.NoError(t, os.WriteFile(resume, []byte("{}"), 0644))

	cfg := &Config{Job: job, Resumes: []string{resume}}

	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults_FlagsWin(t *testing.T) {
	flags := Config{Job: "flag-job.txt"}
	defaults := Config{Job: "file-job.txt", Output: "reports"}

	merged := flags.MergeWithDefaults(defaults)

	assert.Equal(t, "flag-job.txt", merged.Job)
	assert.Equal(t, "reports", merged.Output)
}

func TestMergeWithDefaults_TimeoutFallsBackToDefault(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})

	assert.Equal(t, DefaultSemanticTimeoutSeconds, merged.SemanticTimeoutSeconds)
}

func TestMergeWithDefaults_ResumeListFilled(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{Resumes: []string{"a.json"}})

	assert.Equal(t, []string{"a.json"}, merged.Resumes)
}
