package lexer

import "github.com/coil-lang/coilcc/internal/telemetry"

// options holds the resolved value of every Option. It is not exported;
// callers only ever see it through the functional Option constructors below.
//
type options struct {
	columnOrigin    int
	tabWidth        int
	newlineInString bool
	strictSuffixes  bool
	log             *telemetry.Logger
}

func defaultOptions() options {
	return options{
		columnOrigin:    1,
		tabWidth:        1,
		newlineInString: true,
		strictSuffixes:  false,
	}
}

// Option configures non-contractual Lexer behavior: choices a conforming
// scanner is free to make either way.
//
type Option func(*options)

// WithColumnOrigin sets the column number reported for the first byte of a
// line (default 1).
//
func WithColumnOrigin(origin int) Option {
	return func(o *options) { o.columnOrigin = origin }
}

// WithTabWidth sets how many columns a '\t' byte advances the column
// counter by (default 1, i.e. a tab counts as a single byte/column like any
// other character).
//
func WithTabWidth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.tabWidth = n
		}
	}
}

// WithNewlineInString controls whether a raw newline inside a
// double-quoted string literal is accepted (the default) or diagnosed as
// UnterminatedString at the newline.
//
func WithNewlineInString(allow bool) Option {
	return func(o *options) { o.newlineInString = allow }
}

// WithStrictSuffixes enables validation of integer literal suffixes,
// rejecting combinations not in the valid set (e.g. "ULLU", "FF") with an
// InvalidIntegerSuffix diagnostic. Default is permissive.
//
func WithStrictSuffixes(strict bool) Option {
	return func(o *options) { o.strictSuffixes = strict }
}

// WithLogger attaches a telemetry logger to which every diagnostic the
// Lexer records is also written at warn level. Without this option, a
// Lexer never logs.
//
func WithLogger(l *telemetry.Logger) Option {
	return func(o *options) { o.log = l }
}
