package telemetry_test

import (
	"strings"
	"testing"

	"github.com/coil-lang/coilcc/internal/telemetry"
	"github.com/stretchr/testify/assert"
)

func TestSnippetCaretAlignsUnderAsciiColumn(t *testing.T) {
	out := telemetry.Snippet([]byte("int x = 42;"), 9)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "int x = 42;", lines[0])
	assert.Equal(t, 8, strings.Index(lines[1], "^"))
}

func TestSnippetClampsColumnBelowOne(t *testing.T) {
	out := telemetry.Snippet([]byte("x"), 0)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "^", lines[1])
}
