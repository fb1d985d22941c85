// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobProfile outputs a human-readable summary of the analyzed job.
func (p *Printer) PrintJobProfile(profile *types.JobProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:    %s\n", profile.Title))
	if profile.ExperienceLevel != "" {
		sb.WriteString(fmt.Sprintf("Level:    %s\n", profile.ExperienceLevel))
	}
	if profile.RequiredYears != nil {
		sb.WriteString(fmt.Sprintf("Years:    %g+\n", *profile.RequiredYears))
	}
	if profile.MinDegree != "" {
		sb.WriteString(fmt.Sprintf("Degree:   %s\n", profile.MinDegree))
	}
	sb.WriteString("\n")

	for _, tier := range types.AllTiers {
		terms := profile.Keywords.Terms(tier)
		if len(terms) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s keywords:\n", capitalize(string(tier))))
		count := min(len(terms), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", terms[i].Surface))
		}
		if len(terms) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(terms)-maxItemsToShow))
		}
	}

	if len(profile.HardSkills) > 0 {
		sb.WriteString(fmt.Sprintf("\nHard skills: %s\n", mentionList(profile.HardSkills)))
	}
	if len(profile.SoftSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Soft skills: %s\n", mentionList(profile.SoftSkills)))
	}

	p.printBox("ANALYZED JOB PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResults outputs each category's matched/missing breakdown.
func (p *Printer) PrintMatchResults(results map[types.Category]types.MatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	first := true
	for _, cat := range types.AllCategories {
		result, ok := results[cat]
		if !ok {
			continue
		}
		if !first {
			sb.WriteString("\n")
		}
		first = false

		sb.WriteString(fmt.Sprintf("%s: %.1f\n", cat, result.Score))
		if len(result.Matched) > 0 {
			sb.WriteString(fmt.Sprintf("  matched: %s\n", termList(result.Matched)))
		}
		if len(result.Missing) > 0 {
			sb.WriteString(fmt.Sprintf("  missing: %s\n", termList(result.Missing)))
		}
	}

	p.printBox("CATEGORY MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreReport outputs the final report: overall score, grade,
// per-category scores, and recommendations.
func (p *Printer) PrintScoreReport(report *types.ScoreReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %.1f / 100  (grade %s)\n", report.OverallScore, report.Grade))
	sb.WriteString(fmt.Sprintf("%s\n\n", report.Interpretation))

	for _, cat := range types.AllCategories {
		score, ok := report.CategoryScores[cat]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-12s %6.1f  (weight %.2f)\n", cat, score, report.Weights[cat]))
	}

	if len(report.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, rec := range report.Recommendations {
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	if len(report.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		for _, s := range report.Strengths {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", s))
		}
	}
	if len(report.Weaknesses) > 0 {
		sb.WriteString("\nWeaknesses:\n")
		for _, w := range report.Weaknesses {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", w))
		}
	}

	p.printBox("ATS SCORE REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// termList joins term surfaces, truncated to the box width.
func termList(terms []types.Term) string {
	names := make([]string, 0, len(terms))
	for _, t := range terms {
		names = append(names, t.Surface)
	}
	return truncateList(names)
}

// mentionList joins skill mention surfaces, truncated to the box width.
func mentionList(mentions []types.SkillMention) string {
	names := make([]string, 0, len(mentions))
	for _, m := range mentions {
		names = append(names, m.Term.Surface)
	}
	return truncateList(names)
}

func truncateList(names []string) string {
	joined := strings.Join(names, ", ")
	if len(joined) > 40 {
		joined = joined[:37] + "..."
	}
	return joined
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
