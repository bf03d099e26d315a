package h3abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexToString(t *testing.T) {
	buf := make([]byte, MinStringBufferSize)
	require.Equal(t, OK, IndexToString(sfCell, buf))
	assert.Equal(t, "8928308280fffff\x00", string(buf[:16]))

	short := []byte("untouched!")
	assert.Equal(t, Failed, IndexToString(sfCell, short))
	assert.Equal(t, "untouched!", string(short))

	assert.Equal(t, OK, IndexToString(0x7fffffffffffffff, buf), "the index is not validated")
	assert.Equal(t, "7fffffffffffffff\x00", string(buf))
}

func TestStringToIndex(t *testing.T) {
	var h Index
	require.Equal(t, OK, StringToIndex("8928308280fffff", &h))
	assert.Equal(t, sfCell, h)

	require.Equal(t, OK, StringToIndex("8928308280FFFFF\x00garbage", &h))
	assert.Equal(t, sfCell, h)

	h = 1
	for _, s := range []string{"", "zz", "0", "7fffffffffffffff", "1ffffffffffffffffff"} {
		assert.Equal(t, Failed, StringToIndex(s, &h), "%q", s)
	}
	assert.Equal(t, Index(1), h, "out parameter untouched on failure")
}

func TestStringRoundTrip(t *testing.T) {
	var e Index
	ring := make([]Index, 6)
	require.Equal(t, OK, GridRingUnsafe(sfCell, 1, ring))
	require.Equal(t, OK, CellsToDirectedEdge(sfCell, ring[0], &e))

	var v Index
	require.Equal(t, OK, CellToVertex(sfCell, 0, &v))

	for _, want := range []Index{sfCell, polarPentagon, e, v} {
		buf := make([]byte, 32)
		require.Equal(t, OK, IndexToString(want, buf))

		var got Index
		require.Equal(t, OK, StringToIndex(string(buf), &got))
		assert.Equal(t, want, got)
	}
}

func TestLocalIJ(t *testing.T) {
	var h Index
	require.Equal(t, OK, LocalIJToCell(sfRes0, CoordIJ{0, 0}, 0, &h))
	assert.Equal(t, sfRes0, h)
	require.Equal(t, OK, LocalIJToCell(sfRes0, CoordIJ{1, 0}, 0, &h))
	assert.Equal(t, Index(0x8051fffffffffff), h)
	assert.Equal(t, Failed, LocalIJToCell(sfRes0, CoordIJ{2, 0}, 0, &h), "out of range base cell")
	assert.Equal(t, Failed, LocalIJToCell(sfRes0, CoordIJ{0, 2}, 0, &h), "out of range base cell")

	out := make([]Index, maxGridDiskSize(2))
	require.Equal(t, OK, GridDisk(sfCell, 2, out))
	for _, cell := range out {
		var ij CoordIJ
		require.Equal(t, OK, CellToLocalIJ(sfCell, cell, 0, &ij))
		var back Index
		require.Equal(t, OK, LocalIJToCell(sfCell, ij, 0, &back))
		assert.Equal(t, cell, back)
	}
}

func TestLocalIJErrors(t *testing.T) {
	var ij CoordIJ
	var h Index

	assert.Equal(t, OptionInvalid, CellToLocalIJ(sfCell, sfCell, 1, &ij))
	assert.Equal(t, OptionInvalid, LocalIJToCell(sfCell, ij, 1, &h))
	assert.Equal(t, CellInvalid, CellToLocalIJ(0x7fffffffffffffff, sfCell, 0, &ij))
	assert.Equal(t, CellInvalid, CellToLocalIJ(sfCell, 0x7fffffffffffffff, 0, &ij))
	assert.Equal(t, CellInvalid, LocalIJToCell(0x7fffffffffffffff, ij, 0, &h))

	var parent Index
	require.Equal(t, OK, CellToParent(sfCell, 8, &parent))
	assert.Equal(t, ResMismatch, CellToLocalIJ(sfCell, parent, 0, &ij))

	var sydney Index
	require.Equal(t, OK, LatLngToCell(LatLng{Lat: DegsToRads(-33.86), Lng: DegsToRads(151.21)}, 9, &sydney))
	assert.Equal(t, Failed, CellToLocalIJ(sfCell, sydney, 0, &ij), "too far to relate")
}
