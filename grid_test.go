package h3abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxGridDiskSize(t *testing.T) {
	var n int64
	require.Equal(t, OK, MaxGridDiskSize(2, &n))
	assert.Equal(t, int64(19), n)

	n = 123
	assert.Equal(t, Domain, MaxGridDiskSize(-1, &n))
	assert.Equal(t, int64(123), n, "out parameter untouched on failure")
}

func TestGridDiskArguments(t *testing.T) {
	out := make([]Index, 7)

	assert.Equal(t, Domain, GridDisk(sfCell, -1, out))
	assert.Equal(t, CellInvalid, GridDisk(0, 1, out))
	assert.Equal(t, CellInvalid, GridDisk(0x7fffffffffffffff, 1, out))
	assert.Equal(t, MemoryBounds, GridDisk(sfCell, 1, out[:6]))
	assert.Equal(t, MemoryBounds, GridDiskDistances(sfCell, 1, out, make([]int32, 6)))
	assert.Equal(t, MemoryBounds, GridDiskUnsafe(sfCell, 2, out))
}

func TestGridDiskZero(t *testing.T) {
	out := []Index{42}
	dists := []int32{9}
	require.Equal(t, OK, GridDiskDistances(sfCell, 0, out, dists))
	assert.Equal(t, []Index{sfCell}, out)
	assert.Equal(t, []int32{0}, dists)
}

func TestGridDiskOversizedBuffer(t *testing.T) {
	out := make([]Index, 10)
	for i := range out {
		out[i] = 0xdead
	}
	require.Equal(t, OK, GridDisk(sfCell, 1, out))
	for _, h := range out[:7] {
		assert.True(t, IsValidCell(h))
	}
	assert.Equal(t, []Index{0xdead, 0xdead, 0xdead}, out[7:], "slots past the disk are not touched")
}

func TestGridDisksUnsafe(t *testing.T) {
	origins := []Index{
		0x89283080ddbffff, 0x89283080c37ffff, 0x89283080c27ffff,
		0x89283080d53ffff, 0x89283080dcfffff, 0x89283080dc3ffff,
	}

	for _, k := range []int{0, 1, 2} {
		size := int(maxGridDiskSize(int64(k)))
		out := make([]Index, size*len(origins))
		require.Equal(t, OK, GridDisksUnsafe(origins, k, out), "k=%d", k)
		for i, h := range out {
			require.NotEqual(t, Null, h, "slot %d populated", i)
			if i%size == 0 {
				assert.Equal(t, origins[i/size], h, "each window starts with its origin")
			}
		}
	}
}

func TestGridDisksUnsafeFailures(t *testing.T) {
	out := make([]Index, 14)
	assert.Equal(t, Pentagon, GridDisksUnsafe([]Index{sfRes0, 0x801dfffffffffff}, 1, out))
	assert.Equal(t, make([]Index, 14), out)

	assert.Equal(t, Domain, GridDisksUnsafe([]Index{sfCell}, -1, out))
	assert.Equal(t, CellInvalid, GridDisksUnsafe([]Index{sfCell, 0}, 1, out))
	assert.Equal(t, MemoryBounds, GridDisksUnsafe([]Index{sfCell, sfCell, sfCell}, 1, out))
	assert.Equal(t, OK, GridDisksUnsafe(nil, 1, nil))
}

func TestGridRingArguments(t *testing.T) {
	out := make([]Index, 6)
	assert.Equal(t, Domain, GridRing(sfCell, -1, out))
	assert.Equal(t, CellInvalid, GridRingUnsafe(0, 1, out))
	assert.Equal(t, MemoryBounds, GridRing(sfCell, 2, out))
}

func TestGridPathCellsArguments(t *testing.T) {
	var n int64
	assert.Equal(t, CellInvalid, GridPathCellsSize(0, sfCell, &n))
	assert.Equal(t, CellInvalid, GridPathCellsSize(sfCell, 0, &n))

	var end Index
	require.Equal(t, OK, LatLngToCell(LatLng{Lat: DegsToRads(37.78), Lng: DegsToRads(-122.42)}, 9, &end))
	require.Equal(t, OK, GridPathCellsSize(sfCell, end, &n))
	require.Greater(t, n, int64(1))
	assert.Equal(t, MemoryBounds, GridPathCells(sfCell, end, make([]Index, n-1)))
}

func TestGridDisksSize(t *testing.T) {
	var n int64
	require.Equal(t, OK, GridDisksSize(2, 6, &n))
	assert.Equal(t, int64(6*19), n)
	require.Equal(t, OK, GridDisksSize(5, 0, &n))
	assert.Zero(t, n)

	n = 42
	assert.Equal(t, Domain, GridDisksSize(-1, 1, &n))
	assert.Equal(t, Domain, GridDisksSize(1, -1, &n))
	assert.Equal(t, Domain, GridDisksSize(20000000, 1<<20, &n), "the product overflows int64")
	assert.Equal(t, int64(42), n)
}
