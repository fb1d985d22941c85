// Package parsing loads the pre-parsed resume profile JSON consumed by
// the scorer and validates it against its schema.
package parsing

import "fmt"

// ParseError represents an error decoding the resume profile file
type ParseError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error in %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ValidationError represents a resume profile that parsed but failed
// schema or field validation
type ValidationError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid resume profile %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid resume profile %s: %s", e.Path, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
