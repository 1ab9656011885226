// Package arena implements a monotonic region allocator: a linked chain of
// byte blocks handed out as 8-byte-aligned ranges, grown geometrically, and
// released in bulk rather than per-allocation. Package lexer uses it as the
// backing store for decoded string-literal bodies; other token text borrows
// directly from the source buffer.
//
package arena

import (
	"errors"
	"fmt"

	"github.com/coil-lang/coilcc/internal/telemetry"
)

// align is the fixed allocation alignment. Callers needing a larger
// alignment must oversize their request and align the returned slice
// themselves.
const align = 8

// ErrOutOfMemory is the error (wrapped) that Alloc panics with when the
// underlying allocator refuses a block allocation. Go's runtime allocator virtually never
// refuses outright (it panics on true exhaustion), so this mostly guards
// the pathological case of an absurd single-allocation size.
var ErrOutOfMemory = errors.New("arena: out of memory")

type block struct {
	buf  []byte
	used int
}

func (b *block) free() int { return len(b.buf) - b.used }

// Arena is a monotonic region allocator. The zero value is not usable; use
// New.
//
// An Arena is not safe for concurrent use, matching the Lexer it backs:
// one Arena is owned by one Lexer at a time.
//
type Arena struct {
	blocks  []*block
	cur     int // index of the current (bump-allocating) block in blocks
	initCap int
	log     *telemetry.Logger
}

// Option configures an Arena at construction time.
type Option func(*Arena)

// WithLogger attaches a telemetry logger that records block-growth events
// at debug level. Without this option, an Arena never logs.
//
func WithLogger(l *telemetry.Logger) Option {
	return func(a *Arena) { a.log = l }
}

// New creates an Arena with one block of at least initialCapacity bytes.
// initialCapacity is also the minimum size of every block subsequently
// allocated when the arena grows.
//
func New(initialCapacity int, opts ...Option) *Arena {
	if initialCapacity <= 0 {
		initialCapacity = 64
	}
	a := &Arena{initCap: initialCapacity}
	for _, o := range opts {
		o(a)
	}
	a.blocks = append(a.blocks, &block{buf: make([]byte, initialCapacity)})
	return a
}

func roundUp8(n int) int {
	return (n + align - 1) &^ (align - 1)
}

// Alloc returns an uninitialized, 8-byte-aligned byte slice of length n. If
// the current block has n free bytes, Alloc bumps its pointer; otherwise it
// moves on through any later blocks retained across a Reset until one has
// room, and if none has, a new block of size max(n, initialCapacity)*2 is
// appended -- never replacing or reallocating any existing block, so
// pointers handed out since the last Reset remain valid.
//
// Alloc panics with an error wrapping ErrOutOfMemory if the new block
// cannot be allocated (practically unreachable on the Go runtime, kept so
// exhaustion has a defined, catchable failure mode rather than an
// unrecoverable runtime panic).
//
func (a *Arena) Alloc(n int) (b []byte) {
	n = roundUp8(n)
	if n == 0 {
		n = align
	}
	cur := a.blocks[a.cur]
	for cur.free() < n && a.cur+1 < len(a.blocks) {
		a.cur++
		cur = a.blocks[a.cur]
	}
	if cur.free() < n {
		a.grow(n)
		cur = a.blocks[a.cur]
	}
	b = cur.buf[cur.used : cur.used+n : cur.used+n]
	cur.used += n
	return b
}

func (a *Arena) grow(n int) {
	size := n
	if a.initCap > size {
		size = a.initCap
	}
	size *= 2
	defer func() {
		if r := recover(); r != nil {
			panic(fmt.Errorf("%w: %v", ErrOutOfMemory, r))
		}
	}()
	nb := &block{buf: make([]byte, size)}
	a.blocks = append(a.blocks, nb)
	a.cur = len(a.blocks) - 1
	if a.log != nil {
		a.log.Debug("arena: grew by new block", "size", size, "blocks", len(a.blocks))
	}
}

// Calloc is Alloc with the returned slice zero-initialized. Fresh blocks
// are already zero-filled by make, but blocks reused after a Reset still
// hold earlier bytes, so Calloc clears the slice explicitly.
//
func (a *Arena) Calloc(n int) []byte {
	b := a.Alloc(n)
	for i := range b {
		b[i] = 0
	}
	return b
}

// Strdup copies s, including a trailing NUL terminator, into the arena and
// returns the copy.
//
func (a *Arena) Strdup(s []byte) []byte {
	b := a.Alloc(len(s) + 1)
	copy(b, s)
	b[len(s)] = 0
	return b[:len(s)+1]
}

// Reset marks every block's used-bytes count back to zero and retains the
// blocks for reuse. Any Token whose Text or value payload was allocated
// before Reset becomes invalid; callers must not hold on to arena-owned
// slices across a Reset.
//
func (a *Arena) Reset() {
	for _, b := range a.blocks {
		b.used = 0
	}
	a.cur = 0
}

// Destroy releases every block. Go has no manual free(); "releasing" a
// block means dropping the Arena's last reference to it so the garbage
// collector can reclaim it, which is the idiomatic Go rendition of the C
// arena's free-every-block loop. After Destroy, the Arena must not be used.
//
func (a *Arena) Destroy() {
	a.blocks = nil
	a.cur = 0
}

// Stats reports the arena's total allocated capacity across all blocks and
// the number of bytes currently in use.
//
func (a *Arena) Stats() (totalAllocated, totalUsed int) {
	for _, b := range a.blocks {
		totalAllocated += len(b.buf)
		totalUsed += b.used
	}
	return totalAllocated, totalUsed
}
