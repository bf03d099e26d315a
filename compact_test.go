package h3abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sunnyvale = Index(0x89283470c27ffff)

func nonNull(cells []Index) []Index {
	var out []Index
	for _, h := range cells {
		if h != Null {
			out = append(out, h)
		}
	}
	return out
}

func TestCompactRoundTrip(t *testing.T) {
	const k = 9
	size := maxGridDiskSize(k)
	disk := make([]Index, size)
	require.Equal(t, OK, GridDisk(sunnyvale, k, disk))

	compacted := make([]Index, size)
	require.Equal(t, OK, CompactCells(disk, compacted))
	kept := nonNull(compacted)
	assert.Len(t, kept, 73)

	var n int64
	require.Equal(t, OK, UncompactCellsSize(kept, 9, &n))
	require.Equal(t, size, n)

	expanded := make([]Index, n)
	require.Equal(t, OK, UncompactCells(kept, 9, expanded))
	assert.ElementsMatch(t, disk, expanded)
}

func TestCompactChildrenOfPentagon(t *testing.T) {
	var n int64
	require.Equal(t, OK, CellToChildrenSize(polarPentagon, 2, &n))
	require.Equal(t, int64(1+5*(49-1)/6), n)
	children := make([]Index, n)
	require.Equal(t, OK, CellToChildren(polarPentagon, 2, children))

	out := make([]Index, n)
	require.Equal(t, OK, CompactCells(children, out))
	assert.Equal(t, polarPentagon, out[0])
	assert.Equal(t, make([]Index, n-1), out[1:], "the tail is Null")
}

func TestCompactUncompactable(t *testing.T) {
	cells := []Index{0x89283470803ffff, 0x8928347081bffff, 0x8928347080bffff}
	out := make([]Index, 3)
	require.Equal(t, OK, CompactCells(cells, out))
	assert.ElementsMatch(t, cells, out)
}

func TestCompactErrors(t *testing.T) {
	out := make([]Index, 4)

	assert.Equal(t, OK, CompactCells(nil, nil))
	assert.Equal(t, DuplicateInput, CompactCells([]Index{sfCell, sunnyvale, sfCell}, out))

	var parent Index
	require.Equal(t, OK, CellToParent(sfCell, 8, &parent))
	assert.Equal(t, ResMismatch, CompactCells([]Index{sfCell, parent}, out))
	assert.Equal(t, CellInvalid, CompactCells([]Index{sfCell, 0}, out))
	assert.Equal(t, MemoryBounds, CompactCells([]Index{sfCell, sunnyvale}, out[:1]))
}

func TestUncompactCellsSize(t *testing.T) {
	var n int64
	require.Equal(t, OK, UncompactCellsSize([]Index{0x806dfffffffffff}, 15, &n))
	assert.Equal(t, int64(4747561509943), n)

	require.Equal(t, OK, UncompactCellsSize([]Index{polarPentagon}, 15, &n))
	assert.Equal(t, int64(3956301258286), n)

	require.Equal(t, OK, UncompactCellsSize(nil, 3, &n))
	assert.Zero(t, n)

	require.Equal(t, OK, UncompactCellsSize([]Index{Null, Null}, 3, &n))
	assert.Zero(t, n)
}

func TestUncompactWithNull(t *testing.T) {
	cells := []Index{0x89283470803ffff, Null, 0x8928347081bffff}

	var n int64
	require.Equal(t, OK, UncompactCellsSize(cells, 10, &n))
	require.Equal(t, int64(14), n)

	out := make([]Index, n)
	require.Equal(t, OK, UncompactCells(cells, 10, out))
	for _, h := range out {
		assert.True(t, IsValidCell(h))
		assert.Equal(t, 10, GetResolution(h))
	}
}

func TestUncompactErrors(t *testing.T) {
	var n int64
	assert.Equal(t, ResMismatch, UncompactCellsSize([]Index{sfCell}, 8, &n))
	assert.Equal(t, ResDomain, UncompactCellsSize([]Index{sfCell}, 16, &n))
	assert.Equal(t, ResDomain, UncompactCellsSize([]Index{sfCell}, -1, &n))
	assert.Equal(t, CellInvalid, UncompactCellsSize([]Index{0x7fffffffffffffff}, 10, &n))

	assert.Equal(t, ResMismatch, UncompactCells([]Index{sfCell}, 8, make([]Index, 1)))
	assert.Equal(t, MemoryBounds, UncompactCells([]Index{sfCell}, 10, make([]Index, 6)))
}

func TestUncompactSameResolution(t *testing.T) {
	out := make([]Index, 2)
	require.Equal(t, OK, UncompactCells([]Index{sfCell, sunnyvale}, 9, out))
	assert.Equal(t, []Index{sfCell, sunnyvale}, out)
}
