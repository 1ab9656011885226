package lexer

import (
	"github.com/coil-lang/coilcc/token"
)

// growBuf is an arena-backed growable byte buffer, doubled on overflow from
// an initial capacity. Unlike a plain Go slice append (which grows against
// the general-purpose heap), every grow here allocates its replacement
// buffer from the Lexer's Arena, so the decoded string body ends up
// arena-owned exactly like every other token payload.
//
type growBuf struct {
	data []byte
	n    int
}

func (l *Lexer) newGrowBuf(capacity int) growBuf {
	return growBuf{data: l.arena.Alloc(capacity)}
}

func (l *Lexer) growBufAppend(b *growBuf, c byte) {
	if b.n == len(b.data) {
		next := l.arena.Alloc(len(b.data) * 2)
		copy(next, b.data[:b.n])
		b.data = next
	}
	b.data[b.n] = c
	b.n++
}

func (b growBuf) bytes() []byte {
	return b.data[:b.n]
}

// scanString scans a double-quoted string literal, decoding escapes into an
// arena-backed growBuf as it goes. The opening quote has already been
// consumed by dispatch. Only single-byte escapes are recognized; there is
// no \u or \U Unicode escape.
//
func (l *Lexer) scanString(start token.SourceLocation) token.Token {
	buf := l.newGrowBuf(16)
	for {
		if l.atEnd() {
			return l.fatal(UnterminatedString, start, "unterminated string literal")
		}
		switch l.src[l.pos] {
		case '"':
			l.advance()
			l.growBufAppend(&buf, 0)
			payload := buf.bytes()
			return token.NewToken(token.StringLiteral, start, payload, payload)
		case '\\':
			l.advance()
			b, ok := l.decodeEscape()
			if l.halted {
				return token.NewToken(token.EOF, l.here(), nil, nil)
			}
			if ok {
				l.growBufAppend(&buf, b)
			}
		case '\n':
			if !l.opts.newlineInString {
				return l.fatal(UnterminatedString, start, "newline in string literal")
			}
			l.growBufAppend(&buf, '\n')
			l.advance()
		default:
			l.growBufAppend(&buf, l.src[l.pos])
			l.advance()
		}
	}
}

// scanChar scans a single-quoted character literal. The opening quote has
// already been consumed by dispatch.
//
func (l *Lexer) scanChar(start token.SourceLocation) token.Token {
	textBegin := l.pos - 1 // include the opening quote already consumed
	if l.atEnd() {
		return l.fatal(UnterminatedChar, start, "unterminated character literal")
	}

	var value byte
	if l.src[l.pos] == '\\' {
		l.advance()
		value, _ = l.decodeEscape()
		if l.halted {
			return token.NewToken(token.EOF, l.here(), nil, nil)
		}
	} else {
		value = l.src[l.pos]
		l.advance()
	}

	if l.atEnd() || l.src[l.pos] != '\'' {
		return l.fatal(UnterminatedChar, start, "character literal not terminated by an apostrophe")
	}
	l.advance()
	return token.NewToken(token.CharLiteral, start, l.src[textBegin:l.pos], value)
}

// decodeEscape decodes one escape sequence. The backslash itself has
// already been consumed by the caller. It returns (decodedByte, true) on
// success. It returns (0, false) in two cases: input ran out right after
// the backslash, leaving the caller's own unterminated-literal check to
// fire next; or the escape itself is invalid (InvalidEscape or
// InvalidHexEscape), which halts the lexer via fatal -- callers must check
// l.halted immediately after calling decodeEscape and bail out to EOF when
// it is set. Hex and octal escapes are truncated to a single byte rather
// than accumulated as a multi-byte rune.
//
func (l *Lexer) decodeEscape() (byte, bool) {
	if l.atEnd() {
		return 0, false
	}
	c := l.src[l.pos]
	switch c {
	case '\'', '"', '?', '\\':
		l.advance()
		return c, true
	case 'a':
		l.advance()
		return '\a', true
	case 'b':
		l.advance()
		return '\b', true
	case 'f':
		l.advance()
		return '\f', true
	case 'n':
		l.advance()
		return '\n', true
	case 'r':
		l.advance()
		return '\r', true
	case 't':
		l.advance()
		return '\t', true
	case 'v':
		l.advance()
		return '\v', true
	case 'x':
		l.advance()
		if l.atEnd() || !isHexDigit(l.src[l.pos]) {
			l.fatal(InvalidHexEscape, l.here(), `\x escape with no following hex digit`)
			return 0, false
		}
		var v int
		for count := 0; count < 2 && !l.atEnd() && isHexDigit(l.src[l.pos]); count++ {
			v = v*16 + digitValue(l.src[l.pos])
			l.advance()
		}
		return byte(v), true
	}
	if isOctalDigit(c) {
		var v int
		for count := 0; count < 3 && !l.atEnd() && isOctalDigit(l.src[l.pos]); count++ {
			v = v*8 + digitValue(l.src[l.pos])
			l.advance()
		}
		return byte(v), true
	}
	l.advance()
	l.fatal(InvalidEscape, l.here(), "unknown escape sequence")
	return 0, false
}
