package registry

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed skill_registry.json skill_registry.schema.json
var registryFiles embed.FS

// LoadError reports a missing or corrupt skill registry. This is the one
// failure the scorer treats as fatal: categorizing against an empty
// registry would silently score every hard/soft skill as zero.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("skill registry %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("skill registry %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// registryFile is the on-disk shape of a skill registry document.
type registryFile struct {
	HardSkills []Entry `json:"hard_skills"`
	SoftSkills []Entry `json:"soft_skills"`
}

// Load reads and validates a registry JSON file from disk.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "read failed", Cause: err}
	}
	return parse(data, path)
}

// LoadDefault returns the registry compiled into the binary.
func LoadDefault() (*Registry, error) {
	data, err := registryFiles.ReadFile("skill_registry.json")
	if err != nil {
		return nil, &LoadError{Path: "(embedded)", Message: "read failed", Cause: err}
	}
	return parse(data, "(embedded)")
}

// parse validates the document against the embedded JSON Schema before
// decoding it, so a corrupt registry fails loudly at startup.
func parse(data []byte, path string) (*Registry, error) {
	schema, err := registryFiles.ReadFile("skill_registry.schema.json")
	if err != nil {
		return nil, &LoadError{Path: path, Message: "schema missing from binary", Cause: err}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "schema validation failed to run", Cause: err}
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return nil, &LoadError{
			Path:    path,
			Message: fmt.Sprintf("invalid document: %s: %s", first.Field(), first.Description()),
		}
	}

	var doc registryFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Path: path, Message: "parse failed", Cause: err}
	}

	if len(doc.HardSkills) == 0 && len(doc.SoftSkills) == 0 {
		return nil, &LoadError{Path: path, Message: "registry has no entries"}
	}

	return New(doc.HardSkills, doc.SoftSkills), nil
}
