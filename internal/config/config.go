// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultSemanticTimeoutSeconds bounds each semantic-judge call when the
// config does not say otherwise.
const DefaultSemanticTimeoutSeconds = 10

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Job      string   `json:"job,omitempty"`      // Path to job posting text file
	Resumes  []string `json:"resumes,omitempty"`  // Paths to resume profile JSON files
	Registry string   `json:"registry,omitempty"` // Path to a skill registry JSON file (empty uses the embedded default)
	Output   string   `json:"output,omitempty"`   // Directory for score report JSON files

	// Semantic matching
	APIKey                 string `json:"api_key,omitempty"`                  // Gemini API key; empty disables semantic matching
	Model                  string `json:"model,omitempty"`                    // Gemini model name
	SemanticTimeoutSeconds int    `json:"semantic_timeout_seconds,omitempty"` // Per-judgment timeout

	// Behavior
	JSONLogs bool `json:"json_logs,omitempty"` // Emit logs as JSON
	Verbose  bool `json:"verbose,omitempty"`   // Print detailed per-category breakdowns
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.SemanticTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'semantic_timeout_seconds' must be non-negative")
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	if c.Registry != "" {
		if _, err := os.Stat(c.Registry); os.IsNotExist(err) {
			return fmt.Errorf("config error: registry file not found: %s", c.Registry)
		}
	}

	for _, r := range c.Resumes {
		if _, err := os.Stat(r); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", r)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Job == "" {
		result.Job = defaults.Job
	}
	if len(result.Resumes) == 0 {
		result.Resumes = defaults.Resumes
	}
	if result.Registry == "" {
		result.Registry = defaults.Registry
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}

	if result.SemanticTimeoutSeconds == 0 {
		if defaults.SemanticTimeoutSeconds > 0 {
			result.SemanticTimeoutSeconds = defaults.SemanticTimeoutSeconds
		} else {
			result.SemanticTimeoutSeconds = DefaultSemanticTimeoutSeconds
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
