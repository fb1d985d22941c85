// Package schemas embeds the JSON Schemas for the scorer's external
// inputs.
package schemas

import _ "embed"

// ResumeProfile is the JSON Schema for the resume profile input file.
//
//go:embed resume_profile.schema.json
var ResumeProfile string
