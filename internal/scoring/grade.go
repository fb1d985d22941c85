package scoring

// gradeFor maps the overall score to a letter grade.
func gradeFor(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// interpretationFor gives the one-line reading of the overall score.
func interpretationFor(score float64) string {
	switch {
	case score >= 90:
		return "Excellent match. The resume aligns strongly with the job requirements."
	case score >= 80:
		return "Good match. The resume covers most of the job requirements."
	case score >= 70:
		return "Fair match. The resume meets the core requirements with notable gaps."
	case score >= 60:
		return "Weak match. Significant requirements are not reflected in the resume."
	default:
		return "Poor match. The resume is unlikely to pass screening for this job."
	}
}
