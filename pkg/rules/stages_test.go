package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiStageRule_SingleStageWithBuildTool(t *testing.T) {
	findings := checkRule(t, multiStageRule,
		"FROM golang:1.22\nRUN go build -o server .\n")

	require.Len(t, findings, 1)
	assert.Equal(t, SeverityWarning, findings[0].Severity)
}

func TestMultiStageRule_SingleStageWithoutBuildTool(t *testing.T) {
	findings := checkRule(t, multiStageRule,
		"FROM alpine:3.20\nCOPY server /app/server\n")
	assert.Empty(t, findings)
}

func TestMultiStageRule_TwoStagesSucceed(t *testing.T) {
	content := "FROM golang:1.22\nRUN go build -o server .\nFROM alpine:3.20\n"
	findings := checkRule(t, multiStageRule, content)

	require.Len(t, findings, 1)
	assert.Equal(t, SeverityOK, findings[0].Severity)
}

func TestMultiStageRule_NamedStageGetsSecondSuccess(t *testing.T) {
	content := "FROM golang:1.22 AS build\nRUN go build -o server .\nFROM alpine:3.20\n"
	findings := checkRule(t, multiStageRule, content)

	require.Len(t, findings, 2)
	assert.Equal(t, SeverityOK, findings[0].Severity)
	assert.Equal(t, SeverityOK, findings[1].Severity)
	assert.Equal(t, []int{1}, findings[1].Lines)
}

func TestWorkdirRule(t *testing.T) {
	missing := checkRule(t, workdirRule, "FROM alpine:3.20\n")
	require.Len(t, missing, 1)
	assert.Equal(t, SeverityWarning, missing[0].Severity)

	present := checkRule(t, workdirRule, "FROM alpine:3.20\nWORKDIR /app\n")
	assert.Empty(t, present)
}

func TestRunCountRule_AboveThreshold(t *testing.T) {
	content := "FROM alpine:3.20\n" +
		"RUN echo 1\nRUN echo 2\nRUN echo 3\nRUN echo 4\nRUN echo 5\nRUN echo 6\n"
	findings := checkRule(t, runCountRule, content)

	require.Len(t, findings, 1)
	assert.Equal(t, SeverityWarning, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "6 RUN directives")
}

func TestRunCountRule_AtThreshold(t *testing.T) {
	content := "FROM alpine:3.20\n" +
		"RUN echo 1\nRUN echo 2\nRUN echo 3\nRUN echo 4\nRUN echo 5\n"
	findings := checkRule(t, runCountRule, content)
	assert.Empty(t, findings)
}

func TestPresenceRules_InfoWhenMissing(t *testing.T) {
	content := "FROM alpine:3.20\nWORKDIR /app\n"

	for _, rule := range []Rule{labelRule, exposeRule, healthcheckRule} {
		findings := checkRule(t, rule, content)
		require.Len(t, findings, 1, "rule %s", rule.ID)
		assert.Equal(t, SeverityInfo, findings[0].Severity, "rule %s", rule.ID)
	}
}

func TestPresenceRules_SilentWhenPresent(t *testing.T) {
	content := "FROM alpine:3.20\nLABEL maintainer=ops\nEXPOSE 8080\nHEALTHCHECK CMD true\n"

	for _, rule := range []Rule{labelRule, exposeRule, healthcheckRule} {
		assert.Empty(t, checkRule(t, rule, content), "rule %s", rule.ID)
	}
}

func TestUserRule_RootVariants(t *testing.T) {
	tests := []struct {
		name    string
		content string
		lines   []int
	}{
		{"plain root", "FROM alpine:3.20\nUSER root\n", []int{2}},
		{"root with group", "FROM alpine:3.20\nUSER root:root\n", []int{2}},
		{"uid zero", "FROM alpine:3.20\nUSER 0\n", []int{2}},
		{"multiple switches", "FROM alpine:3.20\nUSER app\nUSER root\n", []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := checkRule(t, userRule, tt.content)
			require.Len(t, findings, 1)
			assert.Equal(t, SeverityError, findings[0].Severity)
			assert.Equal(t, tt.lines, findings[0].Lines)
		})
	}
}
