package rules

import (
	"testing"

	"github.com/CompassSecurity/imagelint/pkg/dockerfile"
	"github.com/CompassSecurity/imagelint/pkg/ignore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkIgnoreRule(t *testing.T, content string, present bool) []Finding {
	t.Helper()
	return dockerignoreRule.Check(Input{
		Script: dockerfile.Parse("FROM alpine:3.20\n"),
		Ignore: ignore.Classify(content, present, ignore.DefaultOptions()),
		Config: DefaultConfig(),
	})
}

func TestDockerignoreRule_AbsentIsWarningWithExample(t *testing.T) {
	findings := checkIgnoreRule(t, "", false)

	require.Len(t, findings, 1)
	assert.Equal(t, SeverityWarning, findings[0].Severity)
	assert.Contains(t, findings[0].Message, ".git")
	assert.Contains(t, findings[0].Message, "node_modules")
}

func TestDockerignoreRule_EmptyIsError(t *testing.T) {
	findings := checkIgnoreRule(t, "", true)

	require.Len(t, findings, 1)
	assert.Equal(t, SeverityError, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "bypass")
}

func TestDockerignoreRule_CommentOnlyIsError(t *testing.T) {
	findings := checkIgnoreRule(t, "# nothing to see here\n", true)

	require.Len(t, findings, 1)
	assert.Equal(t, SeverityError, findings[0].Severity)
}

func TestDockerignoreRule_CoverageOutcomesAreMutuallyExclusive(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected Severity
	}{
		{"missing critical", "*.log\ntmp/\ndist/\n", SeverityWarning},
		{"missing advisory only", ".git\nnode_modules\n*.log\n", SeverityInfo},
		{"full coverage", ".git\nnode_modules\n*.md\ntests/\n", SeverityOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := checkIgnoreRule(t, tt.content, true)
			require.Len(t, findings, 1, "exactly one coverage outcome per run")
			assert.Equal(t, tt.expected, findings[0].Severity)
		})
	}
}
