// Package rules holds the detection rule catalog run against a parsed
// Dockerfile and a classified .dockerignore.
package rules

import (
	"strings"

	"github.com/CompassSecurity/imagelint/pkg/dockerfile"
	"github.com/CompassSecurity/imagelint/pkg/ignore"
)

// Severity classifies one finding. Only Error and Warning count toward the
// exit status; Info and OK are purely informational.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeverityOK      Severity = "ok"
)

// Finding is one detection result. Lines holds the implicated 1-based source
// lines in ascending order; it is empty for whole-file findings.
type Finding struct {
	RuleID   string
	Severity Severity
	Message  string
	Lines    []int
}

// Input is the read-only view each rule receives. Rules never observe each
// other's output; shared derived facts are computed once by the engine.
type Input struct {
	Script *dockerfile.Script
	Ignore ignore.Classification
	Facts  Facts
	Config Config
}

// Rule is one independent detection strategy. Check returns zero or more
// findings and never fails.
type Rule struct {
	ID    string
	Check func(in Input) []Finding
}

// Facts are derived once per run and passed by value so rules do not
// re-scan the script.
type Facts struct {
	FirstFrom *dockerfile.Instruction
	FromCount int
	RunCount  int
	// FullText is every effective line, lowercased, newline-joined.
	FullText string
	// Families holds the recognized package-manager families whose install
	// keyword appears anywhere in the script, in catalog order.
	Families []PackageManager
}

// ComputeFacts derives the shared facts for one script.
func ComputeFacts(script *dockerfile.Script, cfg Config) Facts {
	text := script.FullText()

	var present []PackageManager
	for _, pm := range cfg.PackageManagers {
		if strings.Contains(text, pm.Install) {
			present = append(present, pm)
		}
	}

	return Facts{
		FirstFrom: script.First(dockerfile.From),
		FromCount: script.Count(dockerfile.From),
		RunCount:  script.Count(dockerfile.Run),
		FullText:  text,
		Families:  present,
	}
}
