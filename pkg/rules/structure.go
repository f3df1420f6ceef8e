package rules

import (
	"fmt"

	"github.com/CompassSecurity/imagelint/pkg/dockerfile"
)

// workdirRule: relying on the base image's implicit working directory makes
// relative COPY/RUN paths fragile.
var workdirRule = Rule{
	ID: "workdir",
	Check: func(in Input) []Finding {
		if in.Script.Count(dockerfile.Workdir) > 0 {
			return nil
		}
		return []Finding{{
			RuleID:   "workdir",
			Severity: SeverityWarning,
			Message:  "no WORKDIR set, relative paths resolve against the base image's default directory",
		}}
	},
}

// runCountRule flags layer sprawl once the RUN count exceeds the configured
// threshold.
var runCountRule = Rule{
	ID: "run-count",
	Check: func(in Input) []Finding {
		if in.Facts.RunCount <= in.Config.MaxRunDirectives {
			return nil
		}
		return []Finding{{
			RuleID:   "run-count",
			Severity: SeverityWarning,
			Message: fmt.Sprintf("%d RUN directives create %d layers (threshold %d), chain related commands with &&",
				in.Facts.RunCount, in.Facts.RunCount, in.Config.MaxRunDirectives),
		}}
	},
}

// presenceRule builds an INFO-level check for an optional metadata directive.
func presenceRule(id string, kw dockerfile.Keyword, message string) Rule {
	return Rule{
		ID: id,
		Check: func(in Input) []Finding {
			if in.Script.Count(kw) > 0 {
				return nil
			}
			return []Finding{{
				RuleID:   id,
				Severity: SeverityInfo,
				Message:  message,
			}}
		},
	}
}

var labelRule = presenceRule("label", dockerfile.Label,
	"no LABEL directive, image metadata (maintainer, version, source) helps registry hygiene")

var exposeRule = presenceRule("expose", dockerfile.Expose,
	"no EXPOSE directive, declaring served ports documents the image contract")

var healthcheckRule = presenceRule("healthcheck", dockerfile.Healthcheck,
	"no HEALTHCHECK directive, orchestrators cannot detect a wedged container")
