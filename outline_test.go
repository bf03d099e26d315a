package h3abi

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingAllocator records every allocation and release.
type countingAllocator struct {
	allocs, frees int
	fail          bool
}

func (a *countingAllocator) Alloc(n int) []Vertex {
	if a.fail {
		return nil
	}
	a.allocs++
	return make([]Vertex, n)
}

func (a *countingAllocator) Free([]Vertex) { a.frees++ }

func TestFlatten(t *testing.T) {
	mp := orb.MultiPolygon{
		{{{0, 0}, {1, 0}, {0, 1}, {0, 0}}},
		{
			{{10, 10}, {20, 10}, {20, 20}, {10, 20}, {10, 10}},
			{{12, 12}, {14, 12}, {12, 14}, {12, 12}},
		},
	}
	alloc := &countingAllocator{}

	verts, err := flatten(mp, alloc)
	require.NoError(t, err)
	require.Len(t, verts, 3+4+3, "closing points are dropped")
	assert.Equal(t, 1, alloc.allocs, "one allocation for the whole outline")

	assert.Equal(t, Vertex{LatLng: LatLng{Lat: 0, Lng: 1}, Polygon: 0, Ring: 0}, verts[1])
	assert.Equal(t, Vertex{LatLng: LatLng{Lat: 12, Lng: 12}, Polygon: 1, Ring: 1}, verts[7])

	lmp := LinkedMultiPolygon{Verts: verts}
	assert.Equal(t, 2, lmp.NumPolygons())
	assert.Equal(t, 1, lmp.NumRings(0))
	assert.Equal(t, 2, lmp.NumRings(1))
	assert.Len(t, lmp.Ring(1, 0), 4)
	assert.Len(t, lmp.Ring(1, 1), 3)
	assert.Nil(t, lmp.Ring(2, 0))
	assert.Equal(t, mp, lmp.Orb(), "Orb re-closes every ring")
}

func TestFlattenAllocFailure(t *testing.T) {
	mp := orb.MultiPolygon{{{{0, 0}, {1, 0}, {0, 1}, {0, 0}}}}
	_, err := flatten(mp, &countingAllocator{fail: true})

	var ae *AllocError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 3, ae.Need)
	assert.Equal(t, MemoryAlloc, codeOf(err))
}

func TestCellsToLinkedMultiPolygonEmpty(t *testing.T) {
	mp := LinkedMultiPolygon{Verts: []Vertex{{}}}
	require.Equal(t, OK, CellsToLinkedMultiPolygon(nil, &mp))
	assert.Empty(t, mp.Verts)
	assert.Zero(t, mp.NumPolygons())

	DestroyLinkedMultiPolygon(&mp)
	DestroyLinkedMultiPolygon(nil)
}

func TestCellsToLinkedMultiPolygonSingleCell(t *testing.T) {
	var mp LinkedMultiPolygon
	require.Equal(t, OK, CellsToLinkedMultiPolygon([]Index{sfCell}, &mp))
	defer DestroyLinkedMultiPolygon(&mp)

	require.Equal(t, 1, mp.NumPolygons())
	require.Equal(t, 1, mp.NumRings(0))

	var b CellBoundary
	require.Equal(t, OK, CellToBoundary(sfCell, &b))
	assert.Len(t, mp.Ring(0, 0), b.NumVerts)

	var center LatLng
	require.Equal(t, OK, CellToLatLng(sfCell, &center))
	poly := mp.Orb()[0]
	assert.True(t, planar.PolygonContains(poly, orb.Point{center.Lng, center.Lat}))
}

func TestCellsToLinkedMultiPolygonDisk(t *testing.T) {
	out := make([]Index, maxGridDiskSize(2))
	require.Equal(t, OK, GridDisk(sfCell, 2, out))

	alloc := &countingAllocator{}
	var mp LinkedMultiPolygon
	require.Equal(t, OK, CellsToLinkedMultiPolygonWith(out, alloc, &mp))
	assert.Equal(t, 1, mp.NumPolygons())
	assert.Equal(t, 1, mp.NumRings(0), "a disk has no holes")
	assert.Len(t, mp.Ring(0, 0), 30, "a k=2 disk outline has 30 vertices")

	DestroyLinkedMultiPolygon(&mp)
	assert.Equal(t, 1, alloc.frees, "destroy returns the block to its allocator")
	assert.Empty(t, mp.Verts)

	DestroyLinkedMultiPolygon(&mp)
	assert.Equal(t, 1, alloc.frees, "destroying the empty outline is a no-op")
}

func TestCellsToLinkedMultiPolygonHole(t *testing.T) {
	out := make([]Index, maxGridDiskSize(1))
	require.Equal(t, OK, GridDisk(sfCell, 1, out))

	var ring []Index
	for _, h := range out {
		if h != sfCell {
			ring = append(ring, h)
		}
	}
	var mp LinkedMultiPolygon
	require.Equal(t, OK, CellsToLinkedMultiPolygon(ring, &mp))
	defer DestroyLinkedMultiPolygon(&mp)

	assert.Equal(t, 1, mp.NumPolygons())
	assert.Equal(t, 2, mp.NumRings(0), "the missing center is a hole")
	assert.Len(t, mp.Ring(0, 1), 6)
}

func TestCellsToLinkedMultiPolygonTwoPolygons(t *testing.T) {
	var mp LinkedMultiPolygon
	require.Equal(t, OK, CellsToLinkedMultiPolygon([]Index{sfCell, sunnyvale}, &mp))
	defer DestroyLinkedMultiPolygon(&mp)

	assert.Equal(t, 2, mp.NumPolygons())
	assert.Len(t, mp.OrbDegrees(), 2)
}

func TestCellsToLinkedMultiPolygonErrors(t *testing.T) {
	var mp LinkedMultiPolygon
	assert.Equal(t, DuplicateInput, CellsToLinkedMultiPolygon([]Index{sfCell, sfCell}, &mp))

	var parent Index
	require.Equal(t, OK, CellToParent(sfCell, 7, &parent))
	assert.Equal(t, ResMismatch, CellsToLinkedMultiPolygon([]Index{sfCell, parent}, &mp))
	assert.Equal(t, CellInvalid, CellsToLinkedMultiPolygon([]Index{sfCell, 0}, &mp))
	assert.Empty(t, mp.Verts, "no output on failure")

	alloc := &countingAllocator{fail: true}
	assert.Equal(t, MemoryAlloc, CellsToLinkedMultiPolygonWith([]Index{sfCell}, alloc, &mp))
}
