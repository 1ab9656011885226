// Package lexer implements the COIL C compiler's lexical analyzer: a
// single-pass, two-character-lookahead scanner over an immutable, fully
// memory-resident source buffer. It classifies C89/C99 lexemes, decodes
// literal values, and stamps every token with a precise source location,
// using an arena.Arena to store decoded string-literal bodies.
//
// Scanning is fully synchronous: no operation blocks, yields, or spawns a
// goroutine. A Lexer is not safe for concurrent use, but disjoint Lexers
// over disjoint sources may run on separate goroutines with no
// coordination.
//
package lexer

import (
	"github.com/coil-lang/coilcc/arena"
	"github.com/coil-lang/coilcc/token"
)

// Lexer is a single-pass scanner over one immutable source buffer. It is
// not safe for concurrent use: it carries mutable scan-position state and
// shares an Arena. Two Lexers over disjoint sources and disjoint Arenas may
// run concurrently with no coordination.
//
type Lexer struct {
	src      []byte
	pos      int // byte offset of the next unread byte
	line     int // 1-based
	column   int // opts.columnOrigin-based
	filename string
	arena    *arena.Arena
	file     *token.File
	opts     options

	current token.Token // one-token lookahead buffer
	halted  bool        // true once a fatal diagnostic has latched EOF
	diag    *Diagnostic // last diagnostic raised, if any
}

// New creates a Lexer over source, labeling every token's location with
// filename (purely a diagnostic label; no I/O is performed). arena is
// externally owned: the caller controls its lifetime and may share it
// across lexers run sequentially (never concurrently) against the same
// backing storage. New immediately scans and buffers the first token.
//
func New(source []byte, filename string, a *arena.Arena, opts ...Option) *Lexer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	l := &Lexer{
		src:      source,
		line:     1,
		column:   o.columnOrigin,
		filename: filename,
		arena:    a,
		file:     token.NewFile(filename, source),
		opts:     o,
	}
	l.current = l.scan()
	return l
}

// Peek returns the buffered lookahead token without advancing.
//
func (l *Lexer) Peek() token.Token {
	return l.current
}

// Next returns the currently buffered token and scans the next one into the
// buffer. Once an EOF token has been produced, every subsequent call keeps
// returning that same EOF token without rescanning.
//
func (l *Lexer) Next() token.Token {
	cur := l.current
	if cur.Kind != token.EOF {
		l.current = l.scan()
	}
	return cur
}

// Check reports whether the buffered token has the given kind.
//
func (l *Lexer) Check(kind token.Kind) bool {
	return l.current.Kind == kind
}

// Consume advances past the buffered token if it has the given kind and
// reports whether it did. It never raises a diagnostic: a mismatch is
// expected, recoverable parser control flow.
//
func (l *Lexer) Consume(kind token.Kind) bool {
	if !l.Check(kind) {
		return false
	}
	l.Next()
	return true
}

// Expect is Consume, but records an UnexpectedToken diagnostic (without
// halting the scanner) when the buffered token does not match.
//
func (l *Lexer) Expect(kind token.Kind) bool {
	if l.Consume(kind) {
		return true
	}
	l.recordDiagnostic(UnexpectedToken, l.current.Location,
		"expected "+kind.String()+", got "+l.current.Kind.String())
	return false
}

// Location returns the source location of the buffered (not yet consumed)
// token, for use by an external parser building its own diagnostics.
//
func (l *Lexer) Location() token.SourceLocation {
	return l.current.Location
}

// Error returns the last diagnostic formatted as "file:line:col: message",
// or "" if none was raised.
//
func (l *Lexer) Error() string {
	if l.diag == nil {
		return ""
	}
	return l.diag.Error()
}

// Diagnostic returns the last diagnostic raised, or nil if none was.
//
func (l *Lexer) Diagnostic() *Diagnostic {
	return l.diag
}

// File returns the token.File backing this Lexer's position lookups.
//
func (l *Lexer) File() *token.File {
	return l.file
}

func (l *Lexer) recordDiagnostic(kind DiagKind, loc token.SourceLocation, msg string) {
	l.diag = &Diagnostic{Kind: kind, Location: loc, Message: msg}
	if l.opts.log != nil {
		l.opts.log.Warn("lexer: diagnostic", "kind", kind.String(), "at", loc.String(), "msg", msg)
	}
}

// here returns the SourceLocation of the next unread byte.
func (l *Lexer) here() token.SourceLocation {
	return token.SourceLocation{Filename: l.filename, Line: l.line, Column: l.column}
}

// atEnd reports whether scanning has reached the logical end of input: true
// exhaustion of src, or an embedded NUL, which is treated as end-of-input.
func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src) || l.src[l.pos] == 0
}

// byteAt returns the byte at l.pos+offset, or 0 if that is past the end of
// the source buffer. A returned 0 is indistinguishable from an embedded NUL
// byte, which is intentional: both are treated as end of input.
func (l *Lexer) byteAt(offset int) byte {
	p := l.pos + offset
	if p >= len(l.src) {
		return 0
	}
	return l.src[p]
}

// advance consumes and returns the next byte, updating line/column. Callers
// must not call advance at end of input.
func (l *Lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.column = l.opts.columnOrigin
		l.file.AddLine(token.Pos(l.pos), l.line)
	} else if c == '\t' {
		l.column += l.opts.tabWidth
	} else {
		l.column++
	}
	return c
}

// fatal latches the lexer into its terminal state: records the diagnostic,
// and causes the current scan to produce EOF. Once latched, every
// subsequent call to scan returns EOF without looking at src again.
func (l *Lexer) fatal(kind DiagKind, loc token.SourceLocation, msg string) token.Token {
	l.recordDiagnostic(kind, loc, msg)
	l.halted = true
	return token.NewToken(token.EOF, loc, nil, nil)
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// scan is the single top-level scanning loop: skip whitespace and comments,
// then dispatch on the next byte. The outer for-loop is what lets an
// UnexpectedCharacter diagnostic resynchronize onto the next lexeme without
// recursing (recursion depth would otherwise track the length of a run of
// garbage bytes).
func (l *Lexer) scan() token.Token {
	for {
		if l.halted {
			return token.NewToken(token.EOF, l.here(), nil, nil)
		}
		for {
			l.skipWhitespace()
			consumed := l.skipComment()
			if l.halted {
				return token.NewToken(token.EOF, l.here(), nil, nil)
			}
			if !consumed {
				break
			}
		}
		if l.atEnd() {
			return token.NewToken(token.EOF, l.here(), nil, nil)
		}
		tok, retry := l.dispatch()
		if !retry {
			return tok
		}
	}
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() {
		switch l.src[l.pos] {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

// skipComment consumes one comment (// or /* */) if present at the current
// position and reports whether it consumed anything (so the caller's loop
// keeps alternating whitespace/comment skipping until neither advances).
func (l *Lexer) skipComment() bool {
	if l.atEnd() || l.byteAt(0) != '/' {
		return false
	}
	switch l.byteAt(1) {
	case '/':
		l.advance()
		l.advance()
		for !l.atEnd() && l.src[l.pos] != '\n' {
			l.advance()
		}
		return true
	case '*':
		start := l.here()
		l.advance()
		l.advance()
		for {
			if l.atEnd() {
				l.fatal(UnterminatedBlockComment, start, "unterminated block comment")
				return false
			}
			if l.byteAt(0) == '*' && l.byteAt(1) == '/' {
				l.advance()
				l.advance()
				return true
			}
			l.advance()
		}
	default:
		return false
	}
}

// dispatch classifies the lexeme starting at the current position and
// scans it. The bool result is true only for UnexpectedCharacter, telling
// scan's loop to resynchronize and try again rather than returning a token.
func (l *Lexer) dispatch() (token.Token, bool) {
	start := l.here()
	c := l.src[l.pos]
	switch {
	case isAlpha(c):
		return l.scanIdentifier(start), false
	case isDigit(c):
		return l.scanNumber(start), false
	case c == '"':
		l.advance()
		return l.scanString(start), false
	case c == '\'':
		l.advance()
		return l.scanChar(start), false
	}
	if kind, ok := singlePunctuators[c]; ok {
		l.advance()
		return token.NewToken(kind, start, l.src[l.pos-1:l.pos], nil), false
	}
	if isOperatorStart(c) {
		return l.scanOperator(start), false
	}
	l.advance()
	l.recordDiagnostic(UnexpectedCharacter, start, "unexpected character")
	return token.Token{}, true
}

var singlePunctuators = map[byte]token.Kind{
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	'[': token.LBracket,
	']': token.RBracket,
	';': token.Semicolon,
	',': token.Comma,
	'.': token.Dot,
	'?': token.Question,
	':': token.Colon,
	'~': token.Tilde,
}

func isOperatorStart(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '%', '&', '|', '^', '!', '=', '<', '>':
		return true
	}
	return false
}

// scanIdentifier scans the maximal [A-Za-z0-9_]* run and classifies it as a
// keyword or a plain Identifier by exact match against the keyword table.
func (l *Lexer) scanIdentifier(start token.SourceLocation) token.Token {
	begin := l.pos
	for !l.atEnd() && isAlnum(l.src[l.pos]) {
		l.advance()
	}
	text := l.src[begin:l.pos]
	if kind, ok := token.Keywords[string(text)]; ok {
		return token.NewToken(kind, start, text, nil)
	}
	return token.NewToken(token.Identifier, start, text, nil)
}

// scanOperator implements maximal-munch disambiguation for every multi-
// character operator family. Every branch below is ordered
// longest-candidate-first.
func (l *Lexer) scanOperator(start token.SourceLocation) token.Token {
	c := l.advance()
	one := func(k token.Kind) token.Token {
		return token.NewToken(k, start, l.src[l.pos-1:l.pos], nil)
	}
	two := func(k token.Kind) token.Token {
		l.advance()
		return token.NewToken(k, start, l.src[l.pos-2:l.pos], nil)
	}
	three := func(k token.Kind) token.Token {
		l.advance()
		l.advance()
		return token.NewToken(k, start, l.src[l.pos-3:l.pos], nil)
	}
	switch c {
	case '+':
		switch l.byteAt(0) {
		case '+':
			return two(token.PlusPlus)
		case '=':
			return two(token.PlusEqual)
		}
		return one(token.Plus)
	case '-':
		switch l.byteAt(0) {
		case '-':
			return two(token.MinusMinus)
		case '=':
			return two(token.MinusEqual)
		case '>':
			return two(token.Arrow)
		}
		return one(token.Minus)
	case '*':
		if l.byteAt(0) == '=' {
			return two(token.StarEqual)
		}
		return one(token.Star)
	case '/':
		if l.byteAt(0) == '=' {
			return two(token.SlashEqual)
		}
		return one(token.Slash)
	case '%':
		if l.byteAt(0) == '=' {
			return two(token.PercentEqual)
		}
		return one(token.Percent)
	case '&':
		switch l.byteAt(0) {
		case '&':
			return two(token.AmpAmp)
		case '=':
			return two(token.AmpEqual)
		}
		return one(token.Amp)
	case '|':
		switch l.byteAt(0) {
		case '|':
			return two(token.PipePipe)
		case '=':
			return two(token.PipeEqual)
		}
		return one(token.Pipe)
	case '^':
		if l.byteAt(0) == '=' {
			return two(token.CaretEqual)
		}
		return one(token.Caret)
	case '!':
		if l.byteAt(0) == '=' {
			return two(token.BangEqual)
		}
		return one(token.Bang)
	case '=':
		if l.byteAt(0) == '=' {
			return two(token.EqualEqual)
		}
		return one(token.Equal)
	case '<':
		if l.byteAt(0) == '<' {
			if l.byteAt(1) == '=' {
				return three(token.LessLessEqual)
			}
			return two(token.LessLess)
		}
		if l.byteAt(0) == '=' {
			return two(token.LessEqual)
		}
		return one(token.Less)
	case '>':
		if l.byteAt(0) == '>' {
			if l.byteAt(1) == '=' {
				return three(token.GreaterGreaterEqual)
			}
			return two(token.GreaterGreater)
		}
		if l.byteAt(0) == '=' {
			return two(token.GreaterEqual)
		}
		return one(token.Greater)
	}
	panic("lexer: scanOperator called on non-operator byte")
}
