// Package h3abi exposes the H3 hexagonal grid through a flat boundary of
// result codes, caller-owned buffers and one owned output geometry.
//
// Every exported boundary function returns a Code and writes its out
// parameters only when the code is OK. Variable-length outputs have a sizing
// function that must be consulted before the writer is called; writers check
// the buffer length once, before anything is written.
//
// The grid math itself is delegated to github.com/uber/h3-go. The package
// also reads and writes cell sets as FlatGeobuf layers built on orb
// geometries.
package h3abi

import (
	"math"
	"strconv"
)

// Index is a 64-bit H3 index. Depending on its mode bits it names a cell, a
// directed edge or a vertex.
type Index uint64

// Null is the "no index" value. It fills unused slots of index buffers.
const Null Index = 0

// String returns the lowercase hexadecimal form of the index.
func (h Index) String() string {
	return strconv.FormatUint(uint64(h), 16)
}

// LatLng is a point on the sphere, in radians.
type LatLng struct {
	Lat float64
	Lng float64
}

func (ll LatLng) finite() bool {
	return !math.IsNaN(ll.Lat) && !math.IsInf(ll.Lat, 0) &&
		!math.IsNaN(ll.Lng) && !math.IsInf(ll.Lng, 0)
}

// MaxCellBoundaryVerts is the largest number of vertices a cell or edge
// boundary can have.
const MaxCellBoundaryVerts = 10

// CellBoundary is a counter-clockwise boundary. Only the first NumVerts
// entries of Verts are meaningful.
type CellBoundary struct {
	NumVerts int
	Verts    [MaxCellBoundaryVerts]LatLng
}

// Slice returns the meaningful vertices of the boundary.
func (b *CellBoundary) Slice() []LatLng {
	return b.Verts[:b.NumVerts]
}

// CoordIJ is a position in the local IJ frame of an anchor cell.
type CoordIJ struct {
	I int32
	J int32
}

// GeoLoop is an open ring of points.
type GeoLoop []LatLng

// GeoPolygon is an outer loop with optional holes. Input polygons are only
// borrowed for the duration of a call.
type GeoPolygon struct {
	GeoLoop GeoLoop
	Holes   []GeoLoop
}

const (
	// MaxResolution is the finest grid resolution.
	MaxResolution = 15

	// InvalidResolution is returned by GetResolution for anything that is
	// not a valid cell.
	InvalidResolution = 33

	numBaseCells = 122
	numPentagons = 12
)

// Index bit layout.
const (
	modeOffset     = 59
	modeMask       = Index(0xf) << modeOffset
	resOffset      = 52
	resMask        = Index(0xf) << resOffset
	baseCellOffset = 45
	baseCellMask   = Index(0x7f) << baseCellOffset

	modeCell         = 1
	modeDirectedEdge = 2
	modeVertex       = 4
)

func (h Index) mode() int     { return int((h & modeMask) >> modeOffset) }
func (h Index) res() int      { return int((h & resMask) >> resOffset) }
func (h Index) baseCell() int { return int((h & baseCellMask) >> baseCellOffset) }

func validResolution(res int) bool {
	return res >= 0 && res <= MaxResolution
}

func pow7(n int) int64 {
	v := int64(1)
	for i := 0; i < n; i++ {
		v *= 7
	}
	return v
}

// childrenCount is the exact number of descendants d levels below a cell.
// The engine binding only exposes it by materializing the children.
func childrenCount(pentagon bool, d int) int64 {
	n := pow7(d)
	if pentagon {
		return 1 + 5*(n-1)/6
	}
	return n
}
