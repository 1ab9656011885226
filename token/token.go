// Package token defines the closed set of lexical token kinds produced by
// the COIL C compiler's lexer, the Token value itself, and the keyword
// table used to disambiguate identifiers from reserved words.
//
package token

import "fmt"

// Kind is a closed tagged enumeration of every lexical category the lexer
// can produce. This module lexes exactly one language, so the range of
// valid Kind values is fixed rather than caller-extensible.
//
type Kind int

// End marker.
const (
	EOF Kind = iota
)

// Literal and identifier kinds.
const (
	IntegerLiteral Kind = iota + 100
	FloatLiteral
	CharLiteral
	StringLiteral
	Identifier
)

// Keyword kinds (order is not semantically significant; keyword lookup is
// by exact string match, see Keywords below).
const (
	KwAuto Kind = iota + 200
	KwBreak
	KwCase
	KwChar
	KwConst
	KwContinue
	KwDefault
	KwDo
	KwDouble
	KwElse
	KwEnum
	KwExtern
	KwFloat
	KwFor
	KwGoto
	KwIf
	KwInt
	KwLong
	KwRegister
	KwReturn
	KwShort
	KwSigned
	KwSizeof
	KwStatic
	KwStruct
	KwSwitch
	KwTypedef
	KwUnion
	KwUnsigned
	KwVoid
	KwVolatile
	KwWhile
)

// Punctuator kinds: the single-character punctuators that are never part of
// a multi-character operator family.
const (
	LParen Kind = iota + 300
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Semicolon
	Comma
	Dot
	Question
	Colon
	Tilde
)

// Operator family kinds, one kind per distinct lexeme, maximal munch
// already resolved by the time a Kind is assigned.
const (
	Plus Kind = iota + 400
	PlusPlus
	PlusEqual
	Minus
	MinusMinus
	MinusEqual
	Arrow
	Star
	StarEqual
	Slash
	SlashEqual
	Percent
	PercentEqual
	Amp
	AmpAmp
	AmpEqual
	Pipe
	PipePipe
	PipeEqual
	Caret
	CaretEqual
	Bang
	BangEqual
	Equal
	EqualEqual
	Less
	LessLess
	LessEqual
	LessLessEqual
	Greater
	GreaterGreater
	GreaterEqual
	GreaterGreaterEqual
)

// keywordText maps every keyword Kind to its exact reserved-word spelling.
var keywordText = map[Kind]string{
	KwAuto:     "auto",
	KwBreak:    "break",
	KwCase:     "case",
	KwChar:     "char",
	KwConst:    "const",
	KwContinue: "continue",
	KwDefault:  "default",
	KwDo:       "do",
	KwDouble:   "double",
	KwElse:     "else",
	KwEnum:     "enum",
	KwExtern:   "extern",
	KwFloat:    "float",
	KwFor:      "for",
	KwGoto:     "goto",
	KwIf:       "if",
	KwInt:      "int",
	KwLong:     "long",
	KwRegister: "register",
	KwReturn:   "return",
	KwShort:    "short",
	KwSigned:   "signed",
	KwSizeof:   "sizeof",
	KwStatic:   "static",
	KwStruct:   "struct",
	KwSwitch:   "switch",
	KwTypedef:  "typedef",
	KwUnion:    "union",
	KwUnsigned: "unsigned",
	KwVoid:     "void",
	KwVolatile: "volatile",
	KwWhile:    "while",
}

// Keywords maps each of the 32 reserved words to its Kind. Lookup is by
// exact byte-for-byte match (case-sensitive); the table is static and its
// iteration order is never significant.
//
var Keywords = func() map[string]Kind {
	m := make(map[string]Kind, len(keywordText))
	for k, s := range keywordText {
		m[s] = k
	}
	return m
}()

// String returns the reserved-word spelling for a keyword Kind, or the
// generic name for any other Kind. Used by diagnostics and the cmd/coillex
// dumper; not used by the scanner itself.
//
func (k Kind) String() string {
	if s, ok := keywordText[k]; ok {
		return s
	}
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var kindNames = map[Kind]string{
	EOF:                  "EOF",
	IntegerLiteral:       "IntegerLiteral",
	FloatLiteral:         "FloatLiteral",
	CharLiteral:          "CharLiteral",
	StringLiteral:        "StringLiteral",
	Identifier:           "Identifier",
	LParen:               "(",
	RParen:               ")",
	LBrace:               "{",
	RBrace:               "}",
	LBracket:             "[",
	RBracket:             "]",
	Semicolon:            ";",
	Comma:                ",",
	Dot:                  ".",
	Question:             "?",
	Colon:                ":",
	Tilde:                "~",
	Plus:                 "+",
	PlusPlus:             "++",
	PlusEqual:            "+=",
	Minus:                "-",
	MinusMinus:           "--",
	MinusEqual:           "-=",
	Arrow:                "->",
	Star:                 "*",
	StarEqual:            "*=",
	Slash:                "/",
	SlashEqual:           "/=",
	Percent:              "%",
	PercentEqual:         "%=",
	Amp:                  "&",
	AmpAmp:               "&&",
	AmpEqual:             "&=",
	Pipe:                 "|",
	PipePipe:             "||",
	PipeEqual:            "|=",
	Caret:                "^",
	CaretEqual:           "^=",
	Bang:                 "!",
	BangEqual:            "!=",
	Equal:                "=",
	EqualEqual:           "==",
	Less:                 "<",
	LessLess:             "<<",
	LessEqual:            "<=",
	LessLessEqual:        "<<=",
	Greater:              ">",
	GreaterGreater:       ">>",
	GreaterEqual:         ">=",
	GreaterGreaterEqual:  ">>=",
}

// IsKeyword reports whether k is one of the 32 reserved-word kinds.
//
func (k Kind) IsKeyword() bool {
	_, ok := keywordText[k]
	return ok
}
