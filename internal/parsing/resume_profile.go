package parsing

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/ats-scorer/internal/schemas"
	"github.com/jonathan/ats-scorer/internal/types"
	schemafiles "github.com/jonathan/ats-scorer/schemas"
)

// LoadResumeProfile reads a resume profile JSON file, validates it
// against the embedded schema, decodes it, and applies field-level
// validation. The returned profile is read-only input for the scorer.
func LoadResumeProfile(path string) (*types.ResumeProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume profile: %w", err)
	}
	return ParseResumeProfile(path, data)
}

// ParseResumeProfile validates and decodes resume profile JSON bytes.
// path is used only for error reporting.
func ParseResumeProfile(path string, data []byte) (*types.ResumeProfile, error) {
	if err := schemas.ValidateBytes([]byte(schemafiles.ResumeProfile), data); err != nil {
		return nil, &ValidationError{Path: path, Message: "schema validation failed", Cause: err}
	}

	var profile types.ResumeProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, &ParseError{Path: path, Message: "failed to decode JSON", Cause: err}
	}

	if err := profile.Validate(); err != nil {
		return nil, &ValidationError{Path: path, Message: "field validation failed", Cause: err}
	}

	return &profile, nil
}
