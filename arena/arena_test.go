package arena_test

import (
	"testing"

	"github.com/coil-lang/coilcc/arena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocRoundsUpToAlignment(t *testing.T) {
	a := arena.New(64)
	b := a.Alloc(3)
	assert.Len(t, b, 8, "Alloc should round a 3-byte request up to an 8-byte-aligned slice")
}

func TestAllocDistinctAllocationsDoNotOverlap(t *testing.T) {
	a := arena.New(64)
	first := a.Alloc(8)
	for i := range first {
		first[i] = 0xAA
	}
	second := a.Alloc(8)
	for i := range second {
		second[i] = 0xBB
	}
	for _, b := range first {
		assert.Equal(t, byte(0xAA), b, "writing through a later allocation must not alter an earlier one")
	}
}

func TestAllocGrowsIntoNewBlockWithoutInvalidatingEarlierPointers(t *testing.T) {
	a := arena.New(16)
	first := a.Alloc(16)
	copy(first, []byte("0123456789abcdef"))

	// Force a grow: the first block (16 bytes) is exhausted.
	second := a.Alloc(32)
	require.Len(t, second, 32)

	assert.Equal(t, []byte("0123456789abcdef"), first, "growth into a new block must not move or clobber earlier allocations")
}

func TestCallocZeroes(t *testing.T) {
	a := arena.New(64)
	b := a.Calloc(8)
	for _, c := range b {
		assert.Equal(t, byte(0), c)
	}
}

func TestStrdupNulTerminates(t *testing.T) {
	a := arena.New(64)
	s := a.Strdup([]byte("hi"))
	assert.Equal(t, []byte{'h', 'i', 0}, s)
}

func TestResetReclaimsBlocksForReuse(t *testing.T) {
	a := arena.New(64)
	a.Alloc(32)
	totalBefore, usedBefore := a.Stats()
	require.Equal(t, 32, usedBefore)

	a.Reset()
	totalAfter, usedAfter := a.Stats()
	assert.Equal(t, totalBefore, totalAfter, "Reset must retain block capacity")
	assert.Equal(t, 0, usedAfter, "Reset must zero used bytes")

	// The reclaimed space is available again without growing.
	a.Alloc(32)
	_, usedAgain := a.Stats()
	assert.Equal(t, 32, usedAgain)
}

func TestDestroyReleasesBlocks(t *testing.T) {
	a := arena.New(64)
	a.Alloc(8)
	a.Destroy()
	total, used := a.Stats()
	assert.Equal(t, 0, total)
	assert.Equal(t, 0, used)
}

func TestStatsTracksMultipleBlocks(t *testing.T) {
	a := arena.New(8)
	a.Alloc(8)
	a.Alloc(64) // forces at least one grow
	total, used := a.Stats()
	assert.Greater(t, total, 8)
	assert.GreaterOrEqual(t, total, used)
}
