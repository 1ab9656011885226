package telemetry

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// Snippet renders a two-line "source line" + "caret" diagnostic excerpt, the
// way a compiler front end points at the exact byte that triggered a
// diagnostic. column is a 1-based byte column into line.
//
// width.LookupRune classifies each rune's display width so the caret still
// lines up under terminals that render CJK and other wide characters using
// two columns.
//
func Snippet(line []byte, column int) string {
	if column < 1 {
		column = 1
	}
	var b strings.Builder
	b.Write(line)
	b.WriteByte('\n')

	target := column - 1
	pos := 0
	for pos < target && pos < len(line) {
		r, size := utf8.DecodeRune(line[pos:])
		b.WriteByte(' ')
		if displayWidth(r) == 2 {
			b.WriteByte(' ')
		}
		pos += size
	}
	b.WriteByte('^')
	return b.String()
}

// displayWidth reports the terminal column width (1 or 2) of r.
func displayWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
