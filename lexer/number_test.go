package lexer_test

import (
	"math"
	"testing"

	"github.com/coil-lang/coilcc/arena"
	"github.com/coil-lang/coilcc/lexer"
	"github.com/coil-lang/coilcc/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanOne(t *testing.T, src string, opts ...lexer.Option) token.Token {
	t.Helper()
	a := arena.New(256)
	l := lexer.New([]byte(src), "t.c", a, opts...)
	return l.Peek()
}

func TestIntegerLiteralOverflowSaturatesSilently(t *testing.T) {
	tok := scanOne(t, "99999999999999999999")
	require.Equal(t, token.IntegerLiteral, tok.Kind)
	assert.Equal(t, int64(math.MaxInt64), tok.IntValue())
}

func TestOctalLiteral(t *testing.T) {
	tok := scanOne(t, "010")
	require.Equal(t, token.IntegerLiteral, tok.Kind)
	assert.Equal(t, int64(8), tok.IntValue())
}

func TestBareZeroIsDecimalNotOctal(t *testing.T) {
	tok := scanOne(t, "0")
	require.Equal(t, token.IntegerLiteral, tok.Kind)
	assert.Equal(t, int64(0), tok.IntValue())
}

func TestFloatWithoutExponent(t *testing.T) {
	tok := scanOne(t, "3.25")
	require.Equal(t, token.FloatLiteral, tok.Kind)
	assert.Equal(t, 3.25, tok.FloatValue())
}

func TestDotNotFollowedByDigitIsNotAFloat(t *testing.T) {
	// "1" is a complete integer literal; the following '.' is a separate
	// Dot punctuator since a '.' only joins a number when followed by a digit.
	a := arena.New(64)
	l := lexer.New([]byte("1.x"), "t.c", a)
	first := l.Next()
	require.Equal(t, token.IntegerLiteral, first.Kind)
	assert.Equal(t, int64(1), first.IntValue())
	second := l.Next()
	assert.Equal(t, token.Dot, second.Kind)
}

func TestExponentWithNoDigitsHaltsWithFatalDiagnostic(t *testing.T) {
	a := arena.New(64)
	l := lexer.New([]byte("1e+x"), "t.c", a)
	tok := l.Next()
	require.Equal(t, token.EOF, tok.Kind)
	require.NotNil(t, l.Diagnostic())
	assert.Equal(t, lexer.ExpectedExponentDigit, l.Diagnostic().Kind)
}

func TestValidIntegerSuffixCombinationsAcceptedUnderStrictMode(t *testing.T) {
	for _, suffix := range []string{"U", "L", "UL", "LU", "LL", "ULL", "LLU", "u", "l", "ul"} {
		a := arena.New(64)
		l := lexer.New([]byte("1"+suffix), "t.c", a, lexer.WithStrictSuffixes(true))
		tok := l.Peek()
		require.Equal(t, token.IntegerLiteral, tok.Kind)
		assert.Nil(t, l.Diagnostic(), "suffix %q should be accepted", suffix)
	}
}

func TestPermissiveModeNeverRaisesSuffixDiagnostic(t *testing.T) {
	a := arena.New(64)
	l := lexer.New([]byte("1ZZZ"), "t.c", a)
	_ = l.Peek()
	// ZZZ are not suffix characters at all, so they lex as a separate
	// identifier; the point here is that without WithStrictSuffixes the
	// lexer never raises InvalidIntegerSuffix regardless of what follows.
	assert.Nil(t, l.Diagnostic())
}
