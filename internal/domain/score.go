package domain

import (
	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

// cleanScoreFromReports returns the fraction of processed files that are in
// their normalized form. Failed files are excluded from the denominator; a
// run with nothing to score counts as fully clean.
func cleanScoreFromReports(reports []m.Report) float64 {
	clean := 0
	total := 0

	for _, report := range reports {
		switch report.Status {
		case m.Clean, m.Formatted:
			clean++
			total++
		case m.Dirty:
			total++
		case m.Failed:
			// Unreadable files are excluded from the score denominator.
		}
	}

	if total == 0 {
		return 1.0
	}

	return float64(clean) / float64(total)
}
