package rules

import (
	"strings"

	"github.com/CompassSecurity/imagelint/pkg/dockerfile"
)

// userRule checks the final run-as user. Its three branches are mutually
// exclusive: exactly one fires per run.
var userRule = Rule{
	ID: "user",
	Check: func(in Input) []Finding {
		users := in.Script.All(dockerfile.User)

		var rootLines []int
		for _, inst := range users {
			name := strings.ToLower(strings.TrimSpace(inst.Args))
			if name == "root" || strings.HasPrefix(name, "root:") || name == "0" {
				rootLines = append(rootLines, inst.Line)
			}
		}

		switch {
		case len(rootLines) > 0:
			return []Finding{{
				RuleID:   "user",
				Severity: SeverityError,
				Message:  "explicit switch to the root user, the container runs fully privileged",
				Lines:    rootLines,
			}}
		case len(users) == 0:
			return []Finding{{
				RuleID:   "user",
				Severity: SeverityWarning,
				Message:  "no USER directive, the container inherits the base image's default (usually root)",
			}}
		default:
			return []Finding{{
				RuleID:   "user",
				Severity: SeverityOK,
				Message:  "container runs as a non-root user",
				Lines:    []int{users[len(users)-1].Line},
			}}
		}
	},
}
