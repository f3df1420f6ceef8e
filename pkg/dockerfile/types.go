package dockerfile

import "strings"

// Keyword identifies a Dockerfile instruction by its leading token.
type Keyword string

const (
	From        Keyword = "FROM"
	Run         Keyword = "RUN"
	Copy        Keyword = "COPY"
	Add         Keyword = "ADD"
	Workdir     Keyword = "WORKDIR"
	User        Keyword = "USER"
	Expose      Keyword = "EXPOSE"
	Healthcheck Keyword = "HEALTHCHECK"
	Label       Keyword = "LABEL"
	Unknown     Keyword = "UNKNOWN"
)

// Instruction is one effective Dockerfile directive. Args is the raw
// remainder of the line, trimmed but otherwise unparsed. Line is the 1-based
// source line, used only for diagnostics.
type Instruction struct {
	Keyword Keyword
	Args    string
	Line    int
}

// Script is the ordered instruction sequence of one Dockerfile. It is
// immutable once parsed; all accessors are read-only.
type Script struct {
	Instructions []Instruction
}

// First returns the first instruction with the given keyword, or nil.
func (s *Script) First(kw Keyword) *Instruction {
	for i := range s.Instructions {
		if s.Instructions[i].Keyword == kw {
			return &s.Instructions[i]
		}
	}
	return nil
}

// All returns every instruction with the given keyword, in source order.
func (s *Script) All(kw Keyword) []Instruction {
	var out []Instruction
	for _, inst := range s.Instructions {
		if inst.Keyword == kw {
			out = append(out, inst)
		}
	}
	return out
}

// Count returns the number of instructions with the given keyword.
func (s *Script) Count(kw Keyword) int {
	n := 0
	for _, inst := range s.Instructions {
		if inst.Keyword == kw {
			n++
		}
	}
	return n
}

// FullText returns all effective lines (keyword and args) joined and
// lowercased, for rules that match on substrings across the whole script.
func (s *Script) FullText() string {
	var b strings.Builder
	for _, inst := range s.Instructions {
		if inst.Keyword != Unknown {
			b.WriteString(string(inst.Keyword))
			b.WriteString(" ")
		}
		b.WriteString(inst.Args)
		b.WriteString("\n")
	}
	return strings.ToLower(b.String())
}
