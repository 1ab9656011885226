package token

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrLine is returned when a line is registered out of order.
var ErrLine = errors.New("invalid line number")

// Pos is a byte offset into a File's source buffer.
//
type Pos int

// IsValid reports whether p is a valid position (i.e. p >= 0).
//
func (p Pos) IsValid() bool {
	return p >= 0
}

// SourceLocation describes a single point in a source file: the file it
// belongs to, and a 1-based line and column. Column numbering is controlled
// by the lexer's column-origin option (1-based by default); see
// lexer.WithColumnOrigin.
//
// A SourceLocation is immutable once stamped onto a Token.
//
type SourceLocation struct {
	Filename string
	Line     int
	Column   int
}

// String formats the location as "file:line:column", the form used in
// compiler diagnostics.
//
func (p SourceLocation) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// A File indexes the line boundaries of a fully memory-resident source
// buffer, so that a byte offset can be converted back to a SourceLocation
// on demand (e.g. for a diagnostic raised by a downstream consumer that only
// kept a Pos). The Lexer itself tracks line/column incrementally while
// scanning and does not consult a File for that; File exists for consumers
// that need random-access Pos -> SourceLocation lookups after the fact.
//
type File struct {
	name  string
	src   []byte
	lines []Pos // byte offset of the first byte of each line; lines[0] == 0
}

// NewFile creates a File over a fully-resident source buffer. Unlike a
// streaming token.File over an io.Reader, no seeking is ever required: the
// whole buffer is already in memory.
//
func NewFile(name string, src []byte) *File {
	f := &File{name: name, src: src}
	f.lines = append(f.lines, 0)
	return f
}

// Name returns the file name.
//
func (f *File) Name() string {
	return f.name
}

// AddLine registers the start offset of a new line. line is the 1-based
// line index; pos must be strictly greater than the previously registered
// line's offset and line must equal the previously registered line number
// plus one, or AddLine panics.
//
func (f *File) AddLine(pos Pos, line int) {
	l := len(f.lines)
	if (l > 0 && f.lines[l-1] >= pos) || l+1 != line {
		panic(ErrLine)
	}
	f.lines = append(f.lines, pos)
}

// Position returns the 1-based line and byte column for a given byte
// offset via binary search over the registered line starts.
//
func (f *File) Position(pos Pos) SourceLocation {
	i, j := 0, len(f.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !(f.lines[h] > pos) {
			i = h + 1
		} else {
			j = h
		}
	}
	return SourceLocation{f.name, i, int(pos-f.lines[i-1]) + 1}
}

// LinePos returns the byte offset of the first byte of the given 1-based
// line, or -1 if the line is out of range.
//
func (f *File) LinePos(line int) Pos {
	if line < 1 || line > len(f.lines) {
		return -1
	}
	return f.lines[line-1]
}

// LineBytes returns the raw bytes of the line containing pos, excluding the
// trailing newline. Since the source buffer is fully resident, this is a
// direct slice, unlike the seek-and-reread a streaming File would need.
//
func (f *File) LineBytes(pos Pos) ([]byte, error) {
	loc := f.Position(pos)
	start := f.LinePos(loc.Line)
	if !start.IsValid() {
		return nil, ErrLine
	}
	end := len(f.src)
	if next := f.LinePos(loc.Line + 1); next.IsValid() {
		end = int(next) - 1 // exclude the newline
	}
	if end < int(start) {
		end = int(start)
	}
	line := f.src[start:end]
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		// The following line's start may not be registered yet.
		line = line[:i]
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line, nil
}
