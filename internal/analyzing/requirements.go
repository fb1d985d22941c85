package analyzing

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	titleLabel = regexp.MustCompile(`(?im)^\s*(?:job title|position|title|role)\s*:\s*(.+)$`)

	// yearsPattern captures "5+ years", "3 to 5 years", "3-5 years",
	// optionally followed by "of experience".
	yearsPattern = regexp.MustCompile(`(?i)(\d+)\s*(?:\+|\s*(?:to|-)\s*(\d+))?\s*years?(?:\s+of)?(?:\s+(?:relevant|professional|industry))?(?:\s+experience)?`)

	degreePatterns = []struct {
		level   string
		pattern *regexp.Regexp
	}{
		{"associate", regexp.MustCompile(`(?i)associate(?:'s)?\s+degree`)},
		{"bachelor", regexp.MustCompile(`(?i)bachelor(?:'s)?|\bb\.?s\.?c?\b|\bb\.?a\.?\b`)},
		{"master", regexp.MustCompile(`(?i)master(?:'s)?|\bm\.?s\.?c?\b|\bmba\b`)},
		{"phd", regexp.MustCompile(`(?i)\bphd\b|ph\.d\.?|doctorate|doctoral`)},
	}

	levelKeywords = []struct {
		level string
		words []string
	}{
		{"executive", []string{"executive", "director", "vp", "vice president", "c-level", "chief"}},
		{"senior", []string{"senior", "lead", "principal", "staff engineer", "expert"}},
		{"entry", []string{"entry level", "entry-level", "junior", "associate engineer", "fresh graduate", "intern"}},
		{"mid", []string{"mid level", "mid-level", "intermediate"}},
	}
)

const maxTitleLength = 100

// extractTitle derives the job title: an explicit "Title:"-style label
// wins, otherwise the first non-empty line when it looks like a title.
func extractTitle(jobText string) string {
	if m := titleLabel.FindStringSubmatch(jobText); m != nil {
		title := strings.TrimSpace(m[1])
		if len(title) <= maxTitleLength {
			return title
		}
	}

	for _, line := range strings.Split(jobText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) <= maxTitleLength && !strings.Contains(line, ".") {
			return strings.TrimSuffix(line, ":")
		}
		break
	}
	return ""
}

// extractRequiredYears parses the minimum years of experience named in
// the text, or nil when no requirement is stated. Ranges use the lower
// bound ("3-5 years" requires 3).
func extractRequiredYears(jobText string) *float64 {
	m := yearsPattern.FindStringSubmatch(jobText)
	if m == nil {
		return nil
	}
	years, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &years
}

// extractMinDegree finds the lowest degree level the posting mentions,
// treated as the minimum requirement ("Bachelor's or Master's" requires
// a bachelor's). Empty when no degree is named.
func extractMinDegree(jobText string) string {
	for _, d := range degreePatterns {
		if d.pattern.MatchString(jobText) {
			return d.level
		}
	}
	return ""
}

// extractExperienceLevel detects the seniority band named in the text.
// Informational only; it does not feed the score.
func extractExperienceLevel(jobText string) string {
	lower := strings.ToLower(jobText)
	for _, l := range levelKeywords {
		for _, w := range l.words {
			if strings.Contains(lower, w) {
				return l.level
			}
		}
	}
	return ""
}
