package rules

import (
	"fmt"
	"strings"

	"github.com/CompassSecurity/imagelint/pkg/ignore"
)

const dockerignoreExample = ".git\nnode_modules\n*.log\n*.md\ntests/"

// dockerignoreRule maps the .dockerignore classification onto findings. A
// missing file is only a warning, but a present-yet-empty or comment-only
// file is an error: it is indistinguishable from an attempt to bypass the
// check. At Sufficient, exactly one coverage outcome fires so missing
// patterns are never double-counted.
var dockerignoreRule = Rule{
	ID: "dockerignore",
	Check: func(in Input) []Finding {
		switch in.Ignore.State {
		case ignore.Absent:
			return []Finding{{
				RuleID:   "dockerignore",
				Severity: SeverityWarning,
				Message: fmt.Sprintf("no .dockerignore file found, create one to shrink the build context, for example:\n%s",
					dockerignoreExample),
			}}
		case ignore.Empty:
			return []Finding{{
				RuleID:   "dockerignore",
				Severity: SeverityError,
				Message:  "empty .dockerignore provides no benefit and is indistinguishable from an attempt to bypass the check",
			}}
		case ignore.CommentOnly:
			return []Finding{{
				RuleID:   "dockerignore",
				Severity: SeverityError,
				Message:  ".dockerignore contains only comments, which provides no benefit and is indistinguishable from an attempt to bypass the check",
			}}
		case ignore.Insufficient:
			return []Finding{{
				RuleID:   "dockerignore",
				Severity: SeverityWarning,
				Message:  fmt.Sprintf(".dockerignore has only %d effective rule(s), too few to be effective", in.Ignore.EffectiveRules),
			}}
		}

		// Sufficient: exactly one of the three coverage outcomes.
		if len(in.Ignore.MissingCritical) > 0 {
			return []Finding{{
				RuleID:   "dockerignore",
				Severity: SeverityWarning,
				Message:  ".dockerignore misses critical exclusions: " + strings.Join(in.Ignore.MissingCritical, ", "),
			}}
		}
		if len(in.Ignore.MissingAdvisory) > 0 {
			return []Finding{{
				RuleID:   "dockerignore",
				Severity: SeverityInfo,
				Message:  ".dockerignore could additionally exclude: " + strings.Join(in.Ignore.MissingAdvisory, ", "),
			}}
		}
		return []Finding{{
			RuleID:   "dockerignore",
			Severity: SeverityOK,
			Message:  fmt.Sprintf(".dockerignore covers all recommended exclusions (%d rules)", in.Ignore.EffectiveRules),
		}}
	},
}
