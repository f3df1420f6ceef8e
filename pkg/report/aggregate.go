// Package report aggregates findings into a verdict and renders the human
// report.
package report

import "github.com/CompassSecurity/imagelint/pkg/rules"

// Summary tallies one analysis run. Info and success findings are never
// counted; only errors and warnings decide the exit status.
type Summary struct {
	Errors   int
	Warnings int
}

// Summarize counts severities in a single pass. It cannot fail: malformed
// upstream input has already been converted into findings.
func Summarize(findings []rules.Finding) Summary {
	var s Summary
	for _, f := range findings {
		switch f.Severity {
		case rules.SeverityError:
			s.Errors++
		case rules.SeverityWarning:
			s.Warnings++
		}
	}
	return s
}

// ExitStatus maps the tallies onto the process exit code contract:
// 1 with any error, 2 with warnings only, 0 when clean.
func (s Summary) ExitStatus() int {
	switch {
	case s.Errors > 0:
		return 1
	case s.Warnings > 0:
		return 2
	default:
		return 0
	}
}
