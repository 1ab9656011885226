// Package telemetry wraps zerolog for the arena and lexer packages'
// internal instrumentation (arena block growth at debug level, and a
// warn-level record of each diagnostic the lexer raises). A Diagnostic is
// still data returned to the caller; nothing is logged unless the caller
// attaches a Logger.
//
package telemetry

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is a thin, leveled logger. The zero value is not usable; use New
// or Discard.
//
type Logger struct {
	l zerolog.Logger
}

// New creates a Logger writing to w at the given minimum level, as parsed
// by zerolog.ParseLevel (e.g. "debug", "info", "warn", "error"); a string
// that ParseLevel rejects defaults to "info".
//
func New(w io.Writer, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return &Logger{l: zerolog.New(w).Level(lvl).With().Timestamp().Logger()}
}

// Default returns a Logger writing human-readable output to stderr at info
// level.
//
func Default() *Logger {
	return &Logger{l: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.InfoLevel).With().Timestamp().Logger()}
}

// Discard returns a Logger that drops everything, used when no logger was
// configured but the calling code wants to log unconditionally rather than
// nil-check every call site.
//
func Discard() *Logger {
	return &Logger{l: zerolog.Nop()}
}

func fields(e *zerolog.Event, kv []any) *zerolog.Event {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, kv[i+1])
	}
	return e
}

// Debug logs a debug-level message with alternating key/value pairs.
//
func (l *Logger) Debug(msg string, kv ...any) {
	if l == nil {
		return
	}
	fields(l.l.Debug(), kv).Msg(msg)
}

// Info logs an info-level message with alternating key/value pairs.
//
func (l *Logger) Info(msg string, kv ...any) {
	if l == nil {
		return
	}
	fields(l.l.Info(), kv).Msg(msg)
}

// Warn logs a warn-level message with alternating key/value pairs.
//
func (l *Logger) Warn(msg string, kv ...any) {
	if l == nil {
		return
	}
	fields(l.l.Warn(), kv).Msg(msg)
}
