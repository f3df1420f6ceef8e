package rules

import (
	"fmt"
	"strings"

	"github.com/CompassSecurity/imagelint/pkg/dockerfile"
)

// instructionText returns one instruction's effective text, lowercased, so
// substring checks see continuation fragments the same way as regular lines.
func instructionText(inst dockerfile.Instruction) string {
	if inst.Keyword == dockerfile.Unknown {
		return strings.ToLower(inst.Args)
	}
	return strings.ToLower(string(inst.Keyword) + " " + inst.Args)
}

// linesContaining returns the ascending source lines whose text contains the
// given substring.
func linesContaining(script *dockerfile.Script, substr string) []int {
	var lines []int
	for _, inst := range script.Instructions {
		if strings.Contains(instructionText(inst), substr) {
			lines = append(lines, inst.Line)
		}
	}
	return lines
}

func containsAny(text string, substrs []string) bool {
	for _, s := range substrs {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

// aptRecommendsRule flags apt installs that pull in recommended packages.
// Only evaluated when the apt family is actually used.
var aptRecommendsRule = Rule{
	ID: "apt-no-recommends",
	Check: func(in Input) []Finding {
		for _, pm := range in.Facts.Families {
			if pm.Name != "apt" {
				continue
			}
			if strings.Contains(in.Facts.FullText, in.Config.NoRecommendsFlag) {
				return nil
			}
			return []Finding{{
				RuleID:   "apt-no-recommends",
				Severity: SeverityWarning,
				Message:  "apt-get install without " + in.Config.NoRecommendsFlag + " pulls in recommended packages and inflates the image",
				Lines:    linesContaining(in.Script, pm.Install),
			}}
		}
		return nil
	},
}

// cacheCleanupRule flags package installs that leave the package-manager
// cache in the layer. When no recognized family is used at all, it emits one
// aggregate success instead of staying silent per family.
var cacheCleanupRule = Rule{
	ID: "package-cache-cleanup",
	Check: func(in Input) []Finding {
		if len(in.Facts.Families) == 0 {
			return []Finding{{
				RuleID:   "package-cache-cleanup",
				Severity: SeverityOK,
				Message:  "no package-manager usage detected",
			}}
		}

		var findings []Finding
		for _, pm := range in.Facts.Families {
			if containsAny(in.Facts.FullText, pm.Clean) {
				continue
			}
			findings = append(findings, Finding{
				RuleID:   "package-cache-cleanup",
				Severity: SeverityWarning,
				Message: fmt.Sprintf("%s install without cache cleanup (e.g. %s), the cache stays in the layer",
					pm.Name, strings.Join(pm.Clean, " or ")),
				Lines: linesContaining(in.Script, pm.Install),
			})
		}
		return findings
	},
}

// updateFusionRule flags index refresh and install split across separate
// directives. A stale cached index layer then serves future installs.
var updateFusionRule = Rule{
	ID: "update-install-fusion",
	Check: func(in Input) []Finding {
		var findings []Finding
		for _, pm := range in.Facts.Families {
			if pm.Update == "" || !strings.Contains(in.Facts.FullText, pm.Update) {
				continue
			}
			fused := false
			for _, inst := range in.Script.Instructions {
				text := instructionText(inst)
				if strings.Contains(text, pm.Update) && strings.Contains(text, pm.Install) {
					fused = true
					break
				}
			}
			if fused {
				continue
			}
			findings = append(findings, Finding{
				RuleID:   "update-install-fusion",
				Severity: SeverityWarning,
				Message: fmt.Sprintf("%q and %q are in separate directives, fuse them into one RUN to avoid stale index caching",
					pm.Update, pm.Install),
				Lines: linesContaining(in.Script, pm.Update),
			})
		}
		return findings
	},
}

// tempCleanupRule flags scripts that fetch or install without ever cleaning
// temp or cache paths.
var tempCleanupRule = Rule{
	ID: "temp-cleanup",
	Check: func(in Input) []Finding {
		fetches := len(in.Facts.Families) > 0 || containsAny(in.Facts.FullText, in.Config.FetchMarkers)
		if !fetches {
			return nil
		}
		if containsAny(in.Facts.FullText, in.Config.CleanupMarkers) {
			return nil
		}
		return []Finding{{
			RuleID:   "temp-cleanup",
			Severity: SeverityWarning,
			Message:  "downloads or installs present but no temp/cache cleanup found anywhere in the build",
		}}
	},
}
