package token

import "fmt"

// Token is a single classified lexeme: its Kind, its source location, the
// raw lexeme text, and (for literal kinds) a decoded value.
//
// Text either borrows from the immutable source buffer (identifiers,
// keywords, numeric literals) or is arena-owned (decoded string bodies);
// both outlive the Token for as long as the originating Arena is alive.
//
type Token struct {
	Kind     Kind
	Location SourceLocation
	Text     []byte

	// value holds exactly one of int64, float64, byte, or []byte, gated by
	// Kind: a sum type that prevents reading the wrong arm. Unlike a C union
	// (or a bag of exported fields any caller could read regardless of
	// Kind), the zero value is unexported and only reachable through the
	// typed accessors below, each of which panics if Kind does not match.
	value any
}

// NewToken constructs a Token. value must be nil, int64, float64, byte, or
// []byte and must agree with kind (IntegerLiteral -> int64, FloatLiteral ->
// float64, CharLiteral -> byte, StringLiteral -> []byte, anything else ->
// nil); NewToken panics otherwise. This constructor is used by the lexer
// package only; consumers receive Tokens already built.
//
func NewToken(kind Kind, loc SourceLocation, text []byte, value any) Token {
	switch kind {
	case IntegerLiteral:
		if _, ok := value.(int64); !ok {
			panic(fmt.Sprintf("token: IntegerLiteral requires int64 value, got %T", value))
		}
	case FloatLiteral:
		if _, ok := value.(float64); !ok {
			panic(fmt.Sprintf("token: FloatLiteral requires float64 value, got %T", value))
		}
	case CharLiteral:
		if _, ok := value.(byte); !ok {
			panic(fmt.Sprintf("token: CharLiteral requires byte value, got %T", value))
		}
	case StringLiteral:
		if _, ok := value.([]byte); !ok {
			panic(fmt.Sprintf("token: StringLiteral requires []byte value, got %T", value))
		}
	default:
		if value != nil {
			panic(fmt.Sprintf("token: %s does not carry a value, got %T", kind, value))
		}
	}
	return Token{Kind: kind, Location: loc, Text: text, value: value}
}

// IntValue returns the decoded integer value. Panics if Kind is not
// IntegerLiteral.
//
func (t Token) IntValue() int64 {
	v, ok := t.value.(int64)
	if !ok {
		panic(fmt.Sprintf("token: IntValue called on %s token", t.Kind))
	}
	return v
}

// FloatValue returns the decoded floating-point value. Panics if Kind is
// not FloatLiteral.
//
func (t Token) FloatValue() float64 {
	v, ok := t.value.(float64)
	if !ok {
		panic(fmt.Sprintf("token: FloatValue called on %s token", t.Kind))
	}
	return v
}

// CharValue returns the decoded character byte. Panics if Kind is not
// CharLiteral.
//
func (t Token) CharValue() byte {
	v, ok := t.value.(byte)
	if !ok {
		panic(fmt.Sprintf("token: CharValue called on %s token", t.Kind))
	}
	return v
}

// StringValue returns the decoded, NUL-terminated string payload. Panics if
// Kind is not StringLiteral.
//
func (t Token) StringValue() []byte {
	v, ok := t.value.([]byte)
	if !ok {
		panic(fmt.Sprintf("token: StringValue called on %s token", t.Kind))
	}
	return v
}

// String returns a short debug representation; not used by the scanner
// itself, only by diagnostics and the cmd/coillex dumper.
//
func (t Token) String() string {
	switch t.Kind {
	case IntegerLiteral:
		return fmt.Sprintf("%s %s %d", t.Location, t.Kind, t.IntValue())
	case FloatLiteral:
		return fmt.Sprintf("%s %s %g", t.Location, t.Kind, t.FloatValue())
	case CharLiteral:
		return fmt.Sprintf("%s %s %q", t.Location, t.Kind, rune(t.CharValue()))
	case StringLiteral:
		return fmt.Sprintf("%s %s %q", t.Location, t.Kind, t.StringValue())
	default:
		return fmt.Sprintf("%s %s %q", t.Location, t.Kind, t.Text)
	}
}
