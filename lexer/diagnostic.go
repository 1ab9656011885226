package lexer

import (
	"fmt"

	"github.com/coil-lang/coilcc/token"
)

// DiagKind is the closed taxonomy of diagnostic kinds a Lexer can raise.
//
type DiagKind int

const (
	UnexpectedCharacter DiagKind = iota
	UnterminatedBlockComment
	UnterminatedString
	UnterminatedChar
	InvalidHexEscape
	InvalidEscape
	ExpectedExponentDigit
	UnexpectedToken
	OutOfMemory
	// InvalidIntegerSuffix is only ever raised when WithStrictSuffixes(true)
	// is in effect; the default (permissive) configuration never raises it.
	InvalidIntegerSuffix
)

func (k DiagKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case UnterminatedBlockComment:
		return "UnterminatedBlockComment"
	case UnterminatedString:
		return "UnterminatedString"
	case UnterminatedChar:
		return "UnterminatedChar"
	case InvalidHexEscape:
		return "InvalidHexEscape"
	case InvalidEscape:
		return "InvalidEscape"
	case ExpectedExponentDigit:
		return "ExpectedExponentDigit"
	case UnexpectedToken:
		return "UnexpectedToken"
	case OutOfMemory:
		return "OutOfMemory"
	case InvalidIntegerSuffix:
		return "InvalidIntegerSuffix"
	default:
		return fmt.Sprintf("DiagKind(%d)", int(k))
	}
}

// Diagnostic is a structured, positioned lexical error. A Lexer surfaces at
// most one live Diagnostic at a time (the most recent one raised); once set
// it is never cleared.
//
type Diagnostic struct {
	Kind     DiagKind
	Location token.SourceLocation
	Message  string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Location, d.Message)
}
