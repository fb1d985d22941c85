// Package segmenting splits raw job-description text into labeled
// requirement sections using heading-pattern recognition.
package segmenting

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

// headingLine matches a line that consists entirely of a heading from the
// fixed vocabulary, case-insensitive, with an optional trailing colon and
// optional skill/qualification suffix words.
var headingLine = regexp.MustCompile(`(?i)^\s*(key\s+)?` + headingWords + `(\s+(skills?|qualifications?|requirements?))?\s*:?\s*$`)

// inlineHeading matches a heading followed by a colon in the middle of a
// line, as in "Requirements: Python, Django. Preferred: AWS."
var inlineHeading = regexp.MustCompile(`(?i)` + headingWords + `(\s+(skills?|qualifications?))?\s*:`)

const headingWords = `(requirements?|required|must[- ]haves?|essential|mandatory|minimum requirements?|what you.ll need|` +
	`preferred|nice[- ]to[- ]haves?|desired|bonus|plus|` +
	`responsibilities|duties|what you.ll do|tasks?|` +
	`qualifications?|experience|education|ideal candidate)`

// Segment decomposes job-description text into an ordered sequence of
// sections. Text before the first recognized heading becomes an implicit
// general section; unrecognized headings do not open a section, their
// text joins the current one. Empty or malformed input degrades to a
// single empty general section and never errors.
func Segment(text string) []types.RequirementSection {
	sections := []types.RequirementSection{{Label: types.SectionGeneral, Sentences: []string{}}}

	appendSentence := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" {
			last := len(sections) - 1
			sections[last].Sentences = append(sections[last].Sentences, s)
		}
	}
	openSection := func(label types.SectionLabel) {
		sections = append(sections, types.RequirementSection{Label: label, Sentences: []string{}})
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if m := headingLine.FindStringSubmatch(trimmed); m != nil {
			openSection(labelFor(m[2]))
			continue
		}

		// Split lines that carry headings inline with their content.
		marks := inlineHeading.FindAllStringSubmatchIndex(trimmed, -1)
		if len(marks) == 0 {
			appendSentence(trimmed)
			continue
		}

		appendSentence(trimmed[:marks[0][0]])
		for i, m := range marks {
			openSection(labelFor(trimmed[m[2]:m[3]]))
			end := len(trimmed)
			if i+1 < len(marks) {
				end = marks[i+1][0]
			}
			appendSentence(trimmed[m[1]:end])
		}
	}

	return sections
}

// labelFor maps a matched heading word to its section label.
func labelFor(heading string) types.SectionLabel {
	h := strings.ToLower(strings.TrimSpace(heading))
	switch {
	case strings.HasPrefix(h, "requirement"), strings.HasPrefix(h, "required"),
		strings.HasPrefix(h, "must"), h == "essential", h == "mandatory",
		strings.HasPrefix(h, "minimum"), strings.Contains(h, "need"):
		return types.SectionRequired
	case strings.HasPrefix(h, "preferred"), strings.Contains(h, "nice"),
		h == "desired", h == "bonus", h == "plus":
		return types.SectionPreferred
	case strings.HasPrefix(h, "responsibilit"), h == "duties",
		strings.Contains(h, "do"), strings.HasPrefix(h, "task"):
		return types.SectionResponsibilities
	default:
		return types.SectionQualifications
	}
}

// SectionText joins a section's sentences for keyword extraction.
func SectionText(section types.RequirementSection) string {
	return strings.Join(section.Sentences, "\n")
}
