package dockerfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_KeywordsAndLineNumbers(t *testing.T) {
	content := `# build stage
FROM golang:1.22-alpine AS build

WORKDIR /app
COPY go.mod ./
RUN go build -o server .
`
	script := Parse(content)

	require.Len(t, script.Instructions, 4)
	assert.Equal(t, From, script.Instructions[0].Keyword)
	assert.Equal(t, "golang:1.22-alpine AS build", script.Instructions[0].Args)
	assert.Equal(t, 2, script.Instructions[0].Line)
	assert.Equal(t, Workdir, script.Instructions[1].Keyword)
	assert.Equal(t, 4, script.Instructions[1].Line)
	assert.Equal(t, Copy, script.Instructions[2].Keyword)
	assert.Equal(t, Run, script.Instructions[3].Keyword)
	assert.Equal(t, 6, script.Instructions[3].Line)
}

func TestParse_LineNumbersStrictlyIncreasing(t *testing.T) {
	content := "FROM alpine\nRUN apk add curl\nCOPY . /app\nUSER app\n"
	script := Parse(content)

	prev := 0
	for _, inst := range script.Instructions {
		assert.Greater(t, inst.Line, prev)
		prev = inst.Line
	}
}

func TestParse_CaseInsensitiveKeywords(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Keyword
	}{
		{"lowercase from", "from ubuntu:22.04", From},
		{"mixed case run", "Run apt-get update", Run},
		{"uppercase copy", "COPY src /src", Copy},
		{"lowercase healthcheck", "healthcheck CMD curl -f http://localhost/", Healthcheck},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := Parse(tt.line)
			require.Len(t, script.Instructions, 1)
			assert.Equal(t, tt.expected, script.Instructions[0].Keyword)
		})
	}
}

func TestParse_UnrecognizedTokensDegradeToUnknown(t *testing.T) {
	content := "FROM alpine\nRUN apt-get update && \\\n    apt-get install -y curl\n"
	script := Parse(content)

	require.Len(t, script.Instructions, 3)
	assert.Equal(t, Unknown, script.Instructions[2].Keyword)
	assert.Equal(t, "apt-get install -y curl", script.Instructions[2].Args)
	// The continuation fragment still shows up in the full text so
	// substring-based rules can match it.
	assert.Contains(t, script.FullText(), "apt-get install -y curl")
}

func TestParse_SkipsBlankAndCommentLines(t *testing.T) {
	content := "\n# comment\n   \n\t\nFROM scratch\n# trailing\n"
	script := Parse(content)

	require.Len(t, script.Instructions, 1)
	assert.Equal(t, From, script.Instructions[0].Keyword)
	assert.Equal(t, 5, script.Instructions[0].Line)
}

func TestParse_EmptyContent(t *testing.T) {
	script := Parse("")
	assert.Empty(t, script.Instructions)
}

func TestScript_FirstReturnsOnlyFirstFrom(t *testing.T) {
	content := "FROM golang:1.22 AS build\nRUN go build\nFROM alpine:3.20\n"
	script := Parse(content)

	first := script.First(From)
	require.NotNil(t, first)
	assert.Equal(t, "golang:1.22 AS build", first.Args)
	assert.Equal(t, 2, script.Count(From))
}

func TestScript_FirstMissingKeyword(t *testing.T) {
	script := Parse("FROM alpine\n")
	assert.Nil(t, script.First(Workdir))
}

func TestScript_AllPreservesSourceOrder(t *testing.T) {
	content := "FROM alpine\nRUN echo one\nCOPY a b\nRUN echo two\n"
	script := Parse(content)

	runs := script.All(Run)
	require.Len(t, runs, 2)
	assert.Equal(t, "echo one", runs[0].Args)
	assert.Equal(t, "echo two", runs[1].Args)
	assert.Less(t, runs[0].Line, runs[1].Line)
}
