package dockerfile

import "strings"

var keywords = map[string]Keyword{
	"FROM":        From,
	"RUN":         Run,
	"COPY":        Copy,
	"ADD":         Add,
	"WORKDIR":     Workdir,
	"USER":        User,
	"EXPOSE":      Expose,
	"HEALTHCHECK": Healthcheck,
	"LABEL":       Label,
}

// Parse converts raw Dockerfile content into an ordered Script. Blank lines
// and comments are skipped. The leading token is matched case-insensitively
// against the known instruction set; anything else (continuation fragments,
// malformed directives) is kept as UNKNOWN so substring-based rules can still
// see it. Parse never fails on content - locating and reading the file is the
// caller's concern.
func Parse(content string) *Script {
	script := &Script{}

	for i, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		token, rest, _ := strings.Cut(line, " ")
		kw, ok := keywords[strings.ToUpper(token)]
		if !ok {
			script.Instructions = append(script.Instructions, Instruction{
				Keyword: Unknown,
				Args:    line,
				Line:    i + 1,
			})
			continue
		}

		script.Instructions = append(script.Instructions, Instruction{
			Keyword: kw,
			Args:    strings.TrimSpace(rest),
			Line:    i + 1,
		})
	}

	return script
}
