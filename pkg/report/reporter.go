package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/CompassSecurity/imagelint/pkg/rules"
)

const (
	colorRed    = "\x1b[31m"
	colorYellow = "\x1b[33m"
	colorCyan   = "\x1b[36m"
	colorGreen  = "\x1b[32m"
	colorReset  = "\x1b[0m"
)

var tips = []string{
	"Order directives from least to most frequently changing to maximize cache reuse.",
	"Combine related RUN commands with && and clean caches in the same layer.",
	"Use multi-stage builds so compilers and build tools never ship in the final image.",
	"Pin base image versions and prefer alpine/slim variants where possible.",
	"Keep the build context small: a thorough .dockerignore speeds up every build.",
}

// Reporter renders findings and the verdict for a human reader. Automation
// consumers should rely on the exit code, not on this output.
type Reporter struct {
	Out   io.Writer
	Color bool
	// Quiet suppresses success findings.
	Quiet bool
}

func (r *Reporter) marker(sev rules.Severity) string {
	tag, color := "", ""
	switch sev {
	case rules.SeverityError:
		tag, color = "[ERROR]", colorRed
	case rules.SeverityWarning:
		tag, color = "[WARN] ", colorYellow
	case rules.SeverityInfo:
		tag, color = "[INFO] ", colorCyan
	case rules.SeverityOK:
		tag, color = "[OK]   ", colorGreen
	}
	if !r.Color {
		return tag
	}
	return color + tag + colorReset
}

func formatLines(lines []int) string {
	if len(lines) == 0 {
		return ""
	}
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, strconv.Itoa(l))
	}
	return " (line " + strings.Join(parts, ", ") + ")"
}

// Render writes the sectioned report: the exclusion-file section first, then
// the numbered rule checks in catalog order, the totals, the verdict, and a
// fixed block of general optimization tips.
func (r *Reporter) Render(dockerfilePath string, findings []rules.Finding, summary Summary) {
	fmt.Fprintf(r.Out, "imagelint report for %s\n\n", dockerfilePath)

	fmt.Fprintln(r.Out, "-- .dockerignore")
	r.renderSection(findings, func(f rules.Finding) bool { return f.RuleID == "dockerignore" })

	fmt.Fprintln(r.Out, "\n-- Dockerfile checks")
	r.renderSection(findings, func(f rules.Finding) bool { return f.RuleID != "dockerignore" })

	fmt.Fprintf(r.Out, "\nSummary: %d error(s), %d warning(s)\n", summary.Errors, summary.Warnings)

	switch summary.ExitStatus() {
	case 0:
		fmt.Fprintln(r.Out, "Verdict: PASS")
	case 1:
		fmt.Fprintln(r.Out, "Verdict: FAIL")
	default:
		fmt.Fprintln(r.Out, "Verdict: PASS WITH WARNINGS")
	}

	fmt.Fprintln(r.Out, "\nGeneral tips:")
	for _, tip := range tips {
		fmt.Fprintf(r.Out, "  * %s\n", tip)
	}
}

func (r *Reporter) renderSection(findings []rules.Finding, include func(rules.Finding) bool) {
	n := 0
	for _, f := range findings {
		if !include(f) {
			continue
		}
		if r.Quiet && f.Severity == rules.SeverityOK {
			continue
		}
		n++
		message := f.Message
		if idx := strings.IndexByte(message, '\n'); idx >= 0 {
			// Multi-line messages (e.g. example file content) are indented
			// under the finding line.
			message = message[:idx] + "\n      " +
				strings.ReplaceAll(message[idx+1:], "\n", "\n      ")
		}
		fmt.Fprintf(r.Out, "  %2d. %s %s%s\n", n, r.marker(f.Severity), message, formatLines(f.Lines))
	}
	if n == 0 {
		fmt.Fprintln(r.Out, "  (no findings)")
	}
}
