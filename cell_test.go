package h3abi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellInspection(t *testing.T) {
	assert.True(t, IsValidCell(sfCell))
	assert.False(t, IsValidCell(Null))
	assert.False(t, IsValidCell(0x7fffffffffffffff))

	assert.Equal(t, 9, GetResolution(sfCell))
	assert.Equal(t, InvalidResolution, GetResolution(Null))
	assert.Equal(t, 20, GetBaseCellNumber(sfCell))
	assert.Equal(t, -1, GetBaseCellNumber(Null))

	assert.True(t, IsPentagon(polarPentagon))
	assert.False(t, IsPentagon(sfCell))
	assert.False(t, IsPentagon(0x7fffffffffffffff))

	assert.True(t, IsResClassIII(sfCell))
	assert.False(t, IsResClassIII(sfRes0))
}

func TestCellToLatLngAndBoundary(t *testing.T) {
	var c LatLng
	require.Equal(t, OK, CellToLatLng(sfCell, &c))
	assert.InDelta(t, 37.7752, RadsToDegs(c.Lat), 0.01)
	assert.InDelta(t, -122.4186, RadsToDegs(c.Lng), 0.01)

	var h Index
	require.Equal(t, OK, LatLngToCell(c, 9, &h))
	assert.Equal(t, sfCell, h, "a cell center maps back to the cell")

	var b CellBoundary
	require.Equal(t, OK, CellToBoundary(sfCell, &b))
	assert.Equal(t, 6, b.NumVerts)
	assert.Len(t, b.Slice(), 6)

	require.Equal(t, OK, CellToBoundary(polarPentagon, &b))
	assert.Equal(t, 5, b.NumVerts, "a class II pentagon has five vertices")

	assert.Equal(t, CellInvalid, CellToLatLng(0, &c))
	assert.Equal(t, CellInvalid, CellToBoundary(0, &b))
}

func TestCellHierarchy(t *testing.T) {
	var p Index
	require.Equal(t, OK, CellToParent(sfCell, 5, &p))
	assert.Equal(t, Index(0x85283083fffffff), p)
	require.Equal(t, OK, CellToParent(sfCell, 0, &p))
	assert.Equal(t, sfRes0, p)
	require.Equal(t, OK, CellToParent(sfCell, 9, &p))
	assert.Equal(t, sfCell, p)

	assert.Equal(t, ResMismatch, CellToParent(sfCell, 10, &p))
	assert.Equal(t, ResDomain, CellToParent(sfCell, -1, &p))
	assert.Equal(t, CellInvalid, CellToParent(0, 1, &p))

	var child Index
	require.Equal(t, OK, CellToCenterChild(sfCell, 12, &child))
	assert.Equal(t, 12, GetResolution(child))
	require.Equal(t, OK, CellToParent(child, 9, &p))
	assert.Equal(t, sfCell, p)

	assert.Equal(t, ResMismatch, CellToCenterChild(sfCell, 8, &child))
	assert.Equal(t, ResDomain, CellToCenterChild(sfCell, 16, &child))
}

func TestCellToChildren(t *testing.T) {
	var n int64
	require.Equal(t, OK, CellToChildrenSize(sfCell, 11, &n))
	require.Equal(t, int64(49), n)

	out := make([]Index, n)
	require.Equal(t, OK, CellToChildren(sfCell, 11, out))
	seen := make(map[Index]bool)
	for _, h := range out {
		var p Index
		require.Equal(t, OK, CellToParent(h, 9, &p))
		assert.Equal(t, sfCell, p)
		seen[h] = true
	}
	assert.Len(t, seen, 49)

	require.Equal(t, OK, CellToChildrenSize(polarPentagon, 3, &n))
	assert.Equal(t, int64(1+5*(343-1)/6), n)

	require.Equal(t, OK, CellToChildrenSize(sfCell, 9, &n))
	assert.Equal(t, int64(1), n)

	assert.Equal(t, ResDomain, CellToChildrenSize(sfCell, 8, &n))
	assert.Equal(t, ResDomain, CellToChildrenSize(sfCell, 16, &n))
	assert.Equal(t, CellInvalid, CellToChildrenSize(0, 10, &n))
	assert.Equal(t, MemoryBounds, CellToChildren(sfCell, 10, make([]Index, 6)))
}

func TestChildrenSizeAtFinestResolution(t *testing.T) {
	var n int64
	require.Equal(t, OK, CellToChildrenSize(0x806dfffffffffff, 15, &n))
	assert.Equal(t, int64(4747561509943), n)
}

func TestIcosahedronFaces(t *testing.T) {
	var n int
	require.Equal(t, OK, MaxFaceCount(sfCell, &n))
	require.Equal(t, 2, n)

	faces := []int32{9, 9}
	require.Equal(t, OK, GetIcosahedronFaces(sfCell, faces))
	assert.GreaterOrEqual(t, faces[0], int32(0))
	assert.Less(t, faces[0], int32(20))
	assert.Equal(t, int32(-1), faces[1], "a cell inside one face leaves the second slot unused")

	require.Equal(t, OK, MaxFaceCount(polarPentagon, &n))
	require.Equal(t, 5, n)
	faces = make([]int32, n)
	require.Equal(t, OK, GetIcosahedronFaces(polarPentagon, faces))
	for _, f := range faces {
		assert.GreaterOrEqual(t, f, int32(0), "a res 0 pentagon touches five faces")
	}

	assert.Equal(t, MemoryBounds, GetIcosahedronFaces(polarPentagon, make([]int32, 2)))
	assert.Equal(t, CellInvalid, MaxFaceCount(0, &n))
}

func TestCellArea(t *testing.T) {
	var rads2, km2, m2 float64
	require.Equal(t, OK, CellAreaRads2(sfCell, &rads2))
	require.Equal(t, OK, CellAreaKm2(sfCell, &km2))
	require.Equal(t, OK, CellAreaM2(sfCell, &m2))

	assert.InDelta(t, 0.1, km2, 0.03, "a res 9 cell is about 0.1 km2")
	assert.InDelta(t, km2*1e6, m2, 1e-3*m2)
	assert.Greater(t, rads2, 0.0)
	assert.Less(t, rads2, 4*math.Pi)

	assert.Equal(t, CellInvalid, CellAreaKm2(0, &km2))
}

func TestChildPosition(t *testing.T) {
	for _, parent := range []Index{sfCell, polarPentagon} {
		res := GetResolution(parent) + 2
		var n int64
		require.Equal(t, OK, CellToChildrenSize(parent, res, &n))
		children := make([]Index, n)
		require.Equal(t, OK, CellToChildren(parent, res, children))

		for i, child := range children {
			var pos int64
			require.Equal(t, OK, CellToChildPos(child, GetResolution(parent), &pos))
			assert.Equal(t, int64(i), pos, "%s", child)

			var back Index
			require.Equal(t, OK, ChildPosToCell(pos, parent, res, &back))
			assert.Equal(t, child, back)
		}
	}

	var pos int64
	require.Equal(t, OK, CellToChildPos(sfCell, 9, &pos))
	assert.Zero(t, pos, "a cell is the only child of itself")
}

func TestChildPositionErrors(t *testing.T) {
	var pos int64
	assert.Equal(t, ResMismatch, CellToChildPos(sfCell, 10, &pos))
	assert.Equal(t, ResDomain, CellToChildPos(sfCell, -1, &pos))
	assert.Equal(t, CellInvalid, CellToChildPos(0, 3, &pos))

	var h Index
	assert.Equal(t, Domain, ChildPosToCell(-1, sfCell, 10, &h))
	assert.Equal(t, Domain, ChildPosToCell(7, sfCell, 10, &h))
	assert.Equal(t, Domain, ChildPosToCell(6, polarPentagon, 1, &h), "a pentagon has six children")
	assert.Equal(t, ResMismatch, ChildPosToCell(0, sfCell, 8, &h))
	assert.Equal(t, ResDomain, ChildPosToCell(0, sfCell, 16, &h))
	assert.Equal(t, CellInvalid, ChildPosToCell(0, 0, 3, &h))
	assert.Equal(t, Null, h, "out parameter untouched on failure")
}
