package lexer_test

import (
	"testing"

	"github.com/coil-lang/coilcc/arena"
	"github.com/coil-lang/coilcc/lexer"
	"github.com/coil-lang/coilcc/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharLiteralEscapes(t *testing.T) {
	cases := []struct {
		src  string
		want byte
	}{
		{`'a'`, 'a'},
		{`'\n'`, '\n'},
		{`'\t'`, '\t'},
		{`'\\'`, '\\'},
		{`'\''`, '\''},
		{`'\x41'`, 'A'},
		{`'\101'`, 'A'}, // octal 101 == 0x41 == 'A'
		{`'\0'`, 0},
	}
	for _, c := range cases {
		a := arena.New(64)
		l := lexer.New([]byte(c.src), "t.c", a)
		tok := l.Peek()
		require.Equalf(t, token.CharLiteral, tok.Kind, "input %q", c.src)
		assert.Equalf(t, c.want, tok.CharValue(), "input %q", c.src)
		assert.Nil(t, l.Diagnostic(), "input %q", c.src)
	}
}

func TestUnterminatedCharLiteralIsFatal(t *testing.T) {
	a := arena.New(64)
	l := lexer.New([]byte("'a"), "t.c", a)
	tok := l.Peek()
	assert.Equal(t, token.EOF, tok.Kind)
	require.NotNil(t, l.Diagnostic())
	assert.Equal(t, lexer.UnterminatedChar, l.Diagnostic().Kind)
}

func TestUnterminatedStringLiteralIsFatal(t *testing.T) {
	a := arena.New(64)
	l := lexer.New([]byte(`"abc`), "t.c", a)
	tok := l.Peek()
	assert.Equal(t, token.EOF, tok.Kind)
	require.NotNil(t, l.Diagnostic())
	assert.Equal(t, lexer.UnterminatedString, l.Diagnostic().Kind)
}

func TestStringLiteralGrowsPastInitialBufferCapacity(t *testing.T) {
	// 64 bytes forces the arena-backed growBuf (initial capacity 16) to
	// double more than once.
	long := ""
	for i := 0; i < 64; i++ {
		long += "x"
	}
	a := arena.New(256)
	l := lexer.New([]byte(`"`+long+`"`), "t.c", a)
	tok := l.Peek()
	require.Equal(t, token.StringLiteral, tok.Kind)
	assert.Equal(t, long+"\x00", string(tok.StringValue()))
}

func TestUnknownEscapeHaltsWithFatalDiagnostic(t *testing.T) {
	a := arena.New(64)
	l := lexer.New([]byte(`"a\qb"`), "t.c", a)
	tok := l.Peek()
	require.Equal(t, token.EOF, tok.Kind)
	require.NotNil(t, l.Diagnostic())
	assert.Equal(t, lexer.InvalidEscape, l.Diagnostic().Kind)
}
