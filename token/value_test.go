package token_test

import (
	"testing"

	"github.com/coil-lang/coilcc/token"
	"github.com/stretchr/testify/assert"
)

var loc = token.SourceLocation{Filename: "t.c", Line: 1, Column: 1}

func TestNewTokenAcceptsMatchingKindAndValue(t *testing.T) {
	assert.NotPanics(t, func() {
		token.NewToken(token.IntegerLiteral, loc, []byte("42"), int64(42))
	})
	assert.NotPanics(t, func() {
		token.NewToken(token.FloatLiteral, loc, []byte("1.5"), float64(1.5))
	})
	assert.NotPanics(t, func() {
		token.NewToken(token.CharLiteral, loc, []byte("'a'"), byte('a'))
	})
	assert.NotPanics(t, func() {
		token.NewToken(token.StringLiteral, loc, []byte(`"hi"`), []byte("hi\x00"))
	})
	assert.NotPanics(t, func() {
		token.NewToken(token.Identifier, loc, []byte("x"), nil)
	})
}

func TestNewTokenPanicsOnValueKindMismatch(t *testing.T) {
	assert.Panics(t, func() {
		token.NewToken(token.IntegerLiteral, loc, []byte("42"), "not an int64")
	})
	assert.Panics(t, func() {
		token.NewToken(token.Identifier, loc, []byte("x"), int64(1))
	})
}

func TestIntValuePanicsOnWrongKind(t *testing.T) {
	tok := token.NewToken(token.Identifier, loc, []byte("x"), nil)
	assert.Panics(t, func() { tok.IntValue() })
}

func TestAccessorsReturnTheStoredValue(t *testing.T) {
	i := token.NewToken(token.IntegerLiteral, loc, []byte("7"), int64(7))
	assert.Equal(t, int64(7), i.IntValue())

	f := token.NewToken(token.FloatLiteral, loc, []byte("2.0"), float64(2.0))
	assert.Equal(t, 2.0, f.FloatValue())

	c := token.NewToken(token.CharLiteral, loc, []byte("'a'"), byte('a'))
	assert.Equal(t, byte('a'), c.CharValue())

	s := token.NewToken(token.StringLiteral, loc, []byte(`"hi"`), []byte("hi\x00"))
	assert.Equal(t, []byte("hi\x00"), s.StringValue())
}
