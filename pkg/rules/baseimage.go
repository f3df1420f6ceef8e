package rules

import (
	"fmt"
	"strings"
)

// baseImageRef extracts the image reference from the first FROM argument,
// dropping any "AS stage" suffix and flags.
func baseImageRef(args string) string {
	for _, tok := range strings.Fields(args) {
		if strings.HasPrefix(tok, "--") {
			continue
		}
		return strings.ToLower(tok)
	}
	return ""
}

func isLightweight(ref string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(ref, m) {
			return true
		}
	}
	return false
}

// baseImageWeightRule flags heavyweight base images. A known heavy
// distribution family is a warning; any other image without a lightweight
// marker gets an informational nudge.
var baseImageWeightRule = Rule{
	ID: "base-image-weight",
	Check: func(in Input) []Finding {
		if in.Facts.FirstFrom == nil {
			return nil
		}
		ref := baseImageRef(in.Facts.FirstFrom.Args)
		line := in.Facts.FirstFrom.Line

		if isLightweight(ref, in.Config.LightMarkers) {
			return []Finding{{
				RuleID:   "base-image-weight",
				Severity: SeverityOK,
				Message:  fmt.Sprintf("base image %q uses a lightweight variant", ref),
				Lines:    []int{line},
			}}
		}

		for _, heavy := range in.Config.HeavyImages {
			if strings.Contains(ref, heavy) {
				return []Finding{{
					RuleID:   "base-image-weight",
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("base image %q is a full %s distribution, consider an alpine/slim variant", ref, heavy),
					Lines:    []int{line},
				}}
			}
		}

		return []Finding{{
			RuleID:   "base-image-weight",
			Severity: SeverityInfo,
			Message:  fmt.Sprintf("base image %q has no lightweight variant marker, check whether a slim variant exists", ref),
			Lines:    []int{line},
		}}
	},
}

// baseImageTagRule flags floating tags. A missing tag is equivalent to
// :latest. Lightweight variants are exempt; the weight rule already covers
// their tradeoff and scratch-like images have no meaningful tag to pin.
var baseImageTagRule = Rule{
	ID: "base-image-tag",
	Check: func(in Input) []Finding {
		if in.Facts.FirstFrom == nil {
			return nil
		}
		ref := baseImageRef(in.Facts.FirstFrom.Args)
		line := in.Facts.FirstFrom.Line

		if isLightweight(ref, in.Config.LightMarkers) {
			return nil
		}

		_, tag, tagged := strings.Cut(ref, ":")
		if !tagged || tag == "latest" {
			return []Finding{{
				RuleID:   "base-image-tag",
				Severity: SeverityError,
				Message:  fmt.Sprintf("base image %q uses the floating latest tag, pin an explicit version", ref),
				Lines:    []int{line},
			}}
		}

		return []Finding{{
			RuleID:   "base-image-tag",
			Severity: SeverityOK,
			Message:  fmt.Sprintf("base image %q is version pinned", ref),
			Lines:    []int{line},
		}}
	},
}
