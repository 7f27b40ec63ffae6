package options

import "strings"

// HelpWidth is the column help text is wrapped at.
const HelpWidth = 80

// Help wraps each paragraph at HelpWidth and separates them with a blank line.
func Help(paragraphs ...string) string {
	out := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		out = append(out, Wrap(p, HelpWidth))
	}
	return strings.Join(out, "\n\n")
}

// Wrap fills words onto lines no wider than width. A word longer than width
// gets a line of its own.
func Wrap(text string, width int) string {
	var b strings.Builder
	line := 0
	for _, word := range strings.Fields(text) {
		switch {
		case line == 0:
		case line+1+len(word) > width:
			b.WriteByte('\n')
			line = 0
		default:
			b.WriteByte(' ')
			line++
		}
		b.WriteString(word)
		line += len(word)
	}
	return b.String()
}
