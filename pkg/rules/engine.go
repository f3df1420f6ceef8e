package rules

import (
	"github.com/CompassSecurity/imagelint/pkg/dockerfile"
	"github.com/CompassSecurity/imagelint/pkg/ignore"
	"github.com/rs/zerolog/log"
)

// Engine runs the fixed, ordered rule catalog. Rules are independent pure
// functions over read-only inputs, so execution order is fully deterministic
// and rules can be unit-tested in isolation.
type Engine struct {
	cfg   Config
	rules []Rule
}

// NewEngine builds an engine with the standard catalog. The .dockerignore
// check runs first so the report leads with the exclusion-file section.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg: cfg,
		rules: []Rule{
			dockerignoreRule,
			baseImageWeightRule,
			baseImageTagRule,
			workdirRule,
			aptRecommendsRule,
			cacheCleanupRule,
			updateFusionRule,
			tempCleanupRule,
			runCountRule,
			multiStageRule,
			wholeContextCopyRule,
			unnecessaryCopyRule,
			labelRule,
			exposeRule,
			healthcheckRule,
			userRule,
			addVsCopyRule,
		},
	}
}

// Rules returns the catalog's stable rule IDs in execution order.
func (e *Engine) Rules() []string {
	ids := make([]string, 0, len(e.rules))
	for _, r := range e.rules {
		ids = append(ids, r.ID)
	}
	return ids
}

// Run evaluates every rule against the script and classification, computing
// shared facts once, and returns the concatenated findings in catalog order.
func (e *Engine) Run(script *dockerfile.Script, cls ignore.Classification) []Finding {
	in := Input{
		Script: script,
		Ignore: cls,
		Facts:  ComputeFacts(script, e.cfg),
		Config: e.cfg,
	}

	var findings []Finding
	for _, rule := range e.rules {
		out := rule.Check(in)
		log.Debug().Str("rule", rule.ID).Int("findings", len(out)).Msg("Rule evaluated")
		findings = append(findings, out...)
	}
	return findings
}
