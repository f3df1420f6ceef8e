package rules

import (
	"strings"

	"github.com/CompassSecurity/imagelint/pkg/dockerfile"
)

// multiStageRule recommends multi-stage builds when a compiler or build tool
// runs in a single-stage script. With two or more stages it reports success,
// plus a second success when a stage is named with AS.
var multiStageRule = Rule{
	ID: "multi-stage",
	Check: func(in Input) []Finding {
		if in.Facts.FromCount >= 2 {
			findings := []Finding{{
				RuleID:   "multi-stage",
				Severity: SeverityOK,
				Message:  "multi-stage build keeps build tooling out of the final image",
			}}
			for _, from := range in.Script.All(dockerfile.From) {
				if strings.Contains(strings.ToLower(from.Args), " as ") {
					findings = append(findings, Finding{
						RuleID:   "multi-stage",
						Severity: SeverityOK,
						Message:  "named build stage found, later stages can copy artifacts by name",
						Lines:    []int{from.Line},
					})
					break
				}
			}
			return findings
		}

		if !containsAny(in.Facts.FullText, in.Config.BuildToolMarkers) {
			return nil
		}
		return []Finding{{
			RuleID:   "multi-stage",
			Severity: SeverityWarning,
			Message:  "build tooling detected in a single-stage build, use a multi-stage build to ship only the artifacts",
		}}
	},
}
