package lexer

import (
	"math"
	"strconv"

	"github.com/coil-lang/coilcc/token"
)

// scanNumber scans a numeric literal: hex, octal, or decimal integers, and
// decimal floats with fractional and/or exponent parts.
//
func (l *Lexer) scanNumber(start token.SourceLocation) token.Token {
	begin := l.pos

	if l.src[l.pos] == '0' && (l.byteAt(1) == 'x' || l.byteAt(1) == 'X') {
		l.advance()
		l.advance()
		digitsStart := l.pos
		for !l.atEnd() && isHexDigit(l.src[l.pos]) {
			l.advance()
		}
		value := parseIntSaturating(l.src[digitsStart:l.pos], 16)
		return l.emitInt(start, begin, value)
	}

	if l.src[l.pos] == '0' && isOctalDigit(l.byteAt(1)) {
		l.advance()
		digitsStart := l.pos
		for !l.atEnd() && isOctalDigit(l.src[l.pos]) {
			l.advance()
		}
		value := parseIntSaturating(l.src[digitsStart:l.pos], 8)
		return l.emitInt(start, begin, value)
	}

	// Decimal integer or float.
	for !l.atEnd() && isDigit(l.src[l.pos]) {
		l.advance()
	}
	mantissaEnd := l.pos
	isFloat := false

	if !l.atEnd() && l.src[l.pos] == '.' && isDigit(l.byteAt(1)) {
		isFloat = true
		l.advance() // '.'
		for !l.atEnd() && isDigit(l.src[l.pos]) {
			l.advance()
		}
		mantissaEnd = l.pos
	}

	numEnd := mantissaEnd
	if !l.atEnd() && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		isFloat = true
		l.advance()
		if !l.atEnd() && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
			l.advance()
		}
		digitsBefore := l.pos
		for !l.atEnd() && isDigit(l.src[l.pos]) {
			l.advance()
		}
		if l.pos == digitsBefore {
			return l.fatal(ExpectedExponentDigit, l.here(), "expected digit after exponent marker")
		}
		numEnd = l.pos
	}

	if isFloat {
		f, _ := strconv.ParseFloat(string(l.src[begin:numEnd]), 64)
		return l.emitFloat(start, begin, f)
	}
	value := parseIntSaturating(l.src[begin:numEnd], 10)
	return l.emitInt(start, begin, value)
}

// emitInt consumes a trailing integer suffix and emits an IntegerLiteral
// whose Text spans from begin to the end of the suffix.
func (l *Lexer) emitInt(start token.SourceLocation, begin int, value int64) token.Token {
	l.scanSuffix(false)
	return token.NewToken(token.IntegerLiteral, start, l.src[begin:l.pos], value)
}

// emitFloat consumes a trailing float suffix and emits a FloatLiteral whose
// Text spans from begin to the end of the suffix.
func (l *Lexer) emitFloat(start token.SourceLocation, begin int, value float64) token.Token {
	l.scanSuffix(true)
	return token.NewToken(token.FloatLiteral, start, l.src[begin:l.pos], value)
}

var suffixChars = map[byte]bool{'L': true, 'l': true, 'U': true, 'u': true, 'F': true, 'f': true}

// scanSuffix consumes at most three suffix characters from {L,l,U,u,F,f}.
// The suffix is absorbed into the lexeme text but never changes the
// decoded value or the int-vs-float kind already decided. With
// WithStrictSuffixes, an invalid combination raises InvalidIntegerSuffix
// without affecting what was already consumed.
func (l *Lexer) scanSuffix(isFloat bool) {
	begin := l.pos
	for n := 0; n < 3 && !l.atEnd() && suffixChars[l.src[l.pos]]; n++ {
		l.advance()
	}
	if !l.opts.strictSuffixes {
		return
	}
	suffix := string(l.src[begin:l.pos])
	if !validSuffix(suffix, isFloat) {
		l.recordDiagnostic(InvalidIntegerSuffix, l.here(), "invalid literal suffix "+strconv.Quote(suffix))
	}
}

func validSuffix(suffix string, isFloat bool) bool {
	if suffix == "" {
		return true
	}
	if isFloat {
		return suffix == "F" || suffix == "f"
	}
	upper := make([]byte, len(suffix))
	for i := 0; i < len(suffix); i++ {
		c := suffix[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper[i] = c
	}
	switch string(upper) {
	case "U", "L", "UL", "LU", "LL", "ULL", "LLU":
		return true
	default:
		return false
	}
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isOctalDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// parseIntSaturating parses digits (already validated to be in the given
// base) into an int64, silently saturating to math.MaxInt64 on overflow
// rather than raising a diagnostic.
func parseIntSaturating(digits []byte, base int64) int64 {
	var v int64
	for _, c := range digits {
		d := int64(digitValue(c))
		if v > (math.MaxInt64-d)/base {
			return math.MaxInt64
		}
		v = v*base + d
	}
	return v
}
