package rules

import (
	"fmt"
	"strings"

	"github.com/CompassSecurity/imagelint/pkg/dockerfile"
)

// copySources returns the source arguments of a COPY/ADD directive, skipping
// flags such as --from and --chown. The last field is the destination.
func copySources(args string) []string {
	var fields []string
	for _, tok := range strings.Fields(args) {
		if strings.HasPrefix(tok, "--") {
			continue
		}
		fields = append(fields, tok)
	}
	if len(fields) < 2 {
		return nil
	}
	return fields[:len(fields)-1]
}

func copyAndAdd(script *dockerfile.Script) []dockerfile.Instruction {
	var out []dockerfile.Instruction
	for _, inst := range script.Instructions {
		if inst.Keyword == dockerfile.Copy || inst.Keyword == dockerfile.Add {
			out = append(out, inst)
		}
	}
	return out
}

// wholeContextCopyRule flags COPY/ADD directives whose sole source is the
// build-context root. Everything not excluded by .dockerignore ends up in the
// layer, secrets included.
var wholeContextCopyRule = Rule{
	ID: "whole-context-copy",
	Check: func(in Input) []Finding {
		var lines []int
		for _, inst := range copyAndAdd(in.Script) {
			sources := copySources(inst.Args)
			if len(sources) == 1 && (sources[0] == "." || sources[0] == "./") {
				lines = append(lines, inst.Line)
			}
		}
		if len(lines) == 0 {
			return nil
		}
		return []Finding{{
			RuleID:   "whole-context-copy",
			Severity: SeverityWarning,
			Message:  "directive copies the entire build context, copy only what the image needs",
			Lines:    lines,
		}}
	},
}

// unnecessaryCopyRule flags COPY/ADD arguments that look like documentation
// or test files. Only the first match is reported to keep the noise down.
var unnecessaryCopyRule = Rule{
	ID: "unnecessary-copy",
	Check: func(in Input) []Finding {
		for _, inst := range copyAndAdd(in.Script) {
			args := strings.ToLower(inst.Args)
			for _, pattern := range in.Config.CopyNoisePatterns {
				if strings.Contains(args, pattern) {
					return []Finding{{
						RuleID:   "unnecessary-copy",
						Severity: SeverityWarning,
						Message:  fmt.Sprintf("directive copies %q into the image, docs and tests belong in .dockerignore", pattern),
						Lines:    []int{inst.Line},
					}}
				}
			}
		}
		return nil
	},
}

// addVsCopyRule flags ADD usage. For local files COPY is the transparent
// choice; for URLs an explicit fetch with error handling beats ADD's silent
// download.
var addVsCopyRule = Rule{
	ID: "add-vs-copy",
	Check: func(in Input) []Finding {
		var localLines, urlLines []int
		for _, inst := range in.Script.All(dockerfile.Add) {
			sources := copySources(inst.Args)
			isURL := false
			for _, src := range sources {
				if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
					isURL = true
					break
				}
			}
			if isURL {
				urlLines = append(urlLines, inst.Line)
			} else {
				localLines = append(localLines, inst.Line)
			}
		}

		var findings []Finding
		if len(localLines) > 0 {
			findings = append(findings, Finding{
				RuleID:   "add-vs-copy",
				Severity: SeverityWarning,
				Message:  "ADD used for local files, prefer COPY (ADD auto-extracts archives and hides intent)",
				Lines:    localLines,
			})
		}
		if len(urlLines) > 0 {
			findings = append(findings, Finding{
				RuleID:   "add-vs-copy",
				Severity: SeverityWarning,
				Message:  "ADD used to fetch a URL, prefer RUN curl/wget with explicit error handling and checksum verification",
				Lines:    urlLines,
			})
		}
		return findings
	},
}
