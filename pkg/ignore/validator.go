// Package ignore validates a .dockerignore file against bypass attempts and
// checks its coverage of high-value exclusion patterns.
package ignore

import (
	"sort"
	"strings"
)

// State classifies the overall condition of the .dockerignore file.
type State string

const (
	// Absent means no file content was available at all.
	Absent State = "absent"
	// Empty means the file exists but is zero bytes or whitespace-only.
	Empty State = "empty"
	// CommentOnly means every non-blank line is a comment.
	CommentOnly State = "comment_only"
	// Insufficient means the file has some rules, but fewer than the
	// configured minimum to be considered effective.
	Insufficient State = "insufficient"
	// Sufficient means the file has enough rules to be worth a coverage check.
	Sufficient State = "sufficient"
)

// Pattern is one canonical exclusion pattern, matched by simple substring
// containment against each .dockerignore line. Substring matching is
// deliberately approximate - a stricter glob-aware comparison would change
// which files pass.
type Pattern struct {
	Name  string
	Match string
}

// DefaultCriticalPatterns returns exclusions whose absence is a warning.
func DefaultCriticalPatterns() []Pattern {
	return []Pattern{
		{Name: "version-control directory", Match: ".git"},
		{Name: "dependency cache directory", Match: "node_modules"},
	}
}

// DefaultAdvisoryPatterns returns exclusions whose absence is informational.
func DefaultAdvisoryPatterns() []Pattern {
	return []Pattern{
		{Name: "documentation", Match: ".md"},
		{Name: "tests", Match: "test"},
	}
}

// Classification is the result of validating one .dockerignore file. State is
// a pure function of file presence and EffectiveRules.
type Classification struct {
	State           State
	EffectiveRules  int
	MissingCritical []string
	MissingAdvisory []string
}

// Options controls classification thresholds and pattern catalogs.
type Options struct {
	MinRules int
	Critical []Pattern
	Advisory []Pattern
}

// DefaultOptions returns the standard thresholds and pattern catalogs.
func DefaultOptions() Options {
	return Options{
		MinRules: 3,
		Critical: DefaultCriticalPatterns(),
		Advisory: DefaultAdvisoryPatterns(),
	}
}

// Classify validates .dockerignore content. The present flag distinguishes a
// missing file from a present-but-empty one; the two cases carry different
// severities downstream (absence is an oversight, emptiness looks like a
// bypass attempt).
func Classify(content string, present bool, opts Options) Classification {
	if !present {
		return Classification{State: Absent}
	}

	var effective []string
	hasComment := false
	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			hasComment = true
			continue
		}
		effective = append(effective, line)
	}

	switch {
	case len(effective) == 0 && hasComment:
		return Classification{State: CommentOnly}
	case len(effective) == 0:
		return Classification{State: Empty}
	case len(effective) < opts.MinRules:
		return Classification{State: Insufficient, EffectiveRules: len(effective)}
	}

	return Classification{
		State:           Sufficient,
		EffectiveRules:  len(effective),
		MissingCritical: missingPatterns(effective, opts.Critical),
		MissingAdvisory: missingPatterns(effective, opts.Advisory),
	}
}

func missingPatterns(lines []string, patterns []Pattern) []string {
	var missing []string
	for _, p := range patterns {
		found := false
		for _, line := range lines {
			if strings.Contains(line, p.Match) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, p.Name)
		}
	}
	sort.Strings(missing)
	return missing
}
