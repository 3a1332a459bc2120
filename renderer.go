package argmap

import (
	"strings"
)

// DefaultRenderer builds user-facing usage text for a Parser
type DefaultRenderer struct {
	parser *Parser
}

func NewRenderer(parser *Parser) *DefaultRenderer {
	return &DefaultRenderer{parser: parser}
}

// UnexpectedUsage generates the text returned by MapStrict on leftover
// arguments: a line naming the unexpected arguments followed by the
// expected-parameter listing.
func (r *DefaultRenderer) UnexpectedUsage(unmapped []string) string {
	label := "Unexpected Arguments"
	if len(unmapped) == 1 {
		label = "Unexpected Argument"
	}

	var sb strings.Builder
	sb.WriteString(label)
	sb.WriteString(": [")
	sb.WriteString(strings.Join(unmapped, ", "))
	sb.WriteString("].\n")
	sb.WriteString(r.UsageListing(0))

	return sb.String()
}

// UsageListing generates one Describe line per declared parameter in stored
// (category) order, preceded by an "Expected:" header. Lines are word-wrapped
// to width columns when width is positive.
func (r *DefaultRenderer) UsageListing(width int) string {
	var sb strings.Builder
	sb.WriteString("Expected:\n")
	for _, p := range r.parser.parameters {
		sb.WriteString(wrapLine(p.Describe(), width))
		sb.WriteString("\n")
	}

	return sb.String()
}

// wrapLine wraps line at word boundaries, indenting continuation lines by
// two spaces. A width of 0 disables wrapping.
func wrapLine(line string, width int) string {
	if width <= 0 || len(line) <= width {
		return line
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return line
	}

	var sb strings.Builder
	lineLen := 0
	for i, word := range words {
		if i == 0 {
			sb.WriteString(word)
			lineLen = len(word)
			continue
		}
		if lineLen+1+len(word) > width {
			sb.WriteString("\n  ")
			sb.WriteString(word)
			lineLen = 2 + len(word)
			continue
		}
		sb.WriteString(" ")
		sb.WriteString(word)
		lineLen += 1 + len(word)
	}

	return sb.String()
}
