package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/CompassSecurity/imagelint/pkg/rules"
	"github.com/stretchr/testify/assert"
)

func sampleFindings() []rules.Finding {
	return []rules.Finding{
		{RuleID: "dockerignore", Severity: rules.SeverityWarning, Message: "no .dockerignore file found"},
		{RuleID: "base-image-tag", Severity: rules.SeverityError, Message: "floating latest tag", Lines: []int{1}},
		{RuleID: "user", Severity: rules.SeverityOK, Message: "container runs as a non-root user", Lines: []int{9}},
		{RuleID: "label", Severity: rules.SeverityInfo, Message: "no LABEL directive"},
	}
}

func TestRender_SectionsAndSummary(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{Out: &buf}
	findings := sampleFindings()

	r.Render("Dockerfile", findings, Summarize(findings))
	out := buf.String()

	assert.Contains(t, out, "imagelint report for Dockerfile")
	assert.Contains(t, out, "-- .dockerignore")
	assert.Contains(t, out, "-- Dockerfile checks")
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "[ERROR] floating latest tag (line 1)")
	assert.Contains(t, out, "Summary: 1 error(s), 1 warning(s)")
	assert.Contains(t, out, "Verdict: FAIL")
	assert.Contains(t, out, "General tips:")

	// The .dockerignore section renders before the Dockerfile checks.
	assert.Less(t,
		strings.Index(out, "-- .dockerignore"),
		strings.Index(out, "-- Dockerfile checks"))
}

func TestRender_Verdicts(t *testing.T) {
	tests := []struct {
		name     string
		summary  Summary
		expected string
	}{
		{"pass", Summary{}, "Verdict: PASS\n"},
		{"warnings", Summary{Warnings: 1}, "Verdict: PASS WITH WARNINGS"},
		{"fail", Summary{Errors: 1}, "Verdict: FAIL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := &Reporter{Out: &buf}
			r.Render("Dockerfile", nil, tt.summary)
			assert.Contains(t, buf.String(), tt.expected)
		})
	}
}

func TestRender_QuietSuppressesSuccess(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{Out: &buf, Quiet: true}
	findings := sampleFindings()

	r.Render("Dockerfile", findings, Summarize(findings))

	assert.NotContains(t, buf.String(), "[OK]")
	assert.Contains(t, buf.String(), "[ERROR]")
}

func TestRender_ColorMarkers(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{Out: &buf, Color: true}
	findings := sampleFindings()

	r.Render("Dockerfile", findings, Summarize(findings))

	assert.Contains(t, buf.String(), "\x1b[31m[ERROR]\x1b[0m")
	assert.Contains(t, buf.String(), "\x1b[32m[OK]   \x1b[0m")
}

func TestRender_MultiLineMessageIndented(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{Out: &buf}
	findings := []rules.Finding{{
		RuleID:   "dockerignore",
		Severity: rules.SeverityWarning,
		Message:  "create one, for example:\n.git\nnode_modules",
	}}

	r.Render("Dockerfile", findings, Summarize(findings))

	assert.Contains(t, buf.String(), "\n      .git\n      node_modules\n")
}

func TestFormatLines(t *testing.T) {
	assert.Equal(t, "", formatLines(nil))
	assert.Equal(t, " (line 3)", formatLines([]int{3}))
	assert.Equal(t, " (line 3, 7, 12)", formatLines([]int{3, 7, 12}))
}
