package h3abi

import (
	"github.com/paulmach/orb"
)

// Vertex is one point of a LinkedMultiPolygon, tagged with the polygon and
// ring it belongs to. Ring 0 of a polygon is its outer boundary, the others
// are holes.
type Vertex struct {
	LatLng
	Polygon int32
	Ring    int32
}

// Allocator provides the single buffer backing a LinkedMultiPolygon and
// takes it back when the polygon is destroyed. Alloc returns nil when it
// cannot provide n vertices.
type Allocator interface {
	Alloc(n int) []Vertex
	Free(verts []Vertex)
}

type heapAllocator struct{}

func (heapAllocator) Alloc(n int) []Vertex { return make([]Vertex, n) }

func (heapAllocator) Free([]Vertex) {}

// HeapAllocator allocates vertex buffers on the Go heap.
var HeapAllocator Allocator = heapAllocator{}

// LinkedMultiPolygon is the outline of a cell set: polygons in order, rings
// in order within a polygon, vertices in order within a ring. Rings are open;
// the closing edge back to the first vertex is implied.
//
// The zero value is the empty outline. A LinkedMultiPolygon filled by
// CellsToLinkedMultiPolygon must be released with DestroyLinkedMultiPolygon.
type LinkedMultiPolygon struct {
	Verts []Vertex

	alloc Allocator
}

// NumPolygons returns the number of polygons in the outline.
func (mp *LinkedMultiPolygon) NumPolygons() int {
	if len(mp.Verts) == 0 {
		return 0
	}
	return int(mp.Verts[len(mp.Verts)-1].Polygon) + 1
}

// NumRings returns the number of rings of polygon p, holes included.
func (mp *LinkedMultiPolygon) NumRings(p int) int {
	rings := 0
	for _, v := range mp.Verts {
		if int(v.Polygon) == p && int(v.Ring)+1 > rings {
			rings = int(v.Ring) + 1
		}
	}
	return rings
}

// Ring returns the vertices of ring r of polygon p, or nil when there is no
// such ring. The result aliases Verts.
func (mp *LinkedMultiPolygon) Ring(p, r int) []Vertex {
	start := -1
	for i, v := range mp.Verts {
		match := int(v.Polygon) == p && int(v.Ring) == r
		switch {
		case match && start < 0:
			start = i
		case !match && start >= 0:
			return mp.Verts[start:i]
		}
	}
	if start < 0 {
		return nil
	}
	return mp.Verts[start:]
}

// Orb rebuilds the outline as an orb.MultiPolygon with closed rings of
// [lng, lat] points in radians.
func (mp *LinkedMultiPolygon) Orb() orb.MultiPolygon {
	return mp.orb(1)
}

// OrbDegrees is Orb with coordinates in degrees.
func (mp *LinkedMultiPolygon) OrbDegrees() orb.MultiPolygon {
	return mp.orb(radsToDegs)
}

func (mp *LinkedMultiPolygon) orb(scale float64) orb.MultiPolygon {
	var (
		out  orb.MultiPolygon
		ring orb.Ring
	)
	closeRing := func() {
		if len(ring) == 0 {
			return
		}
		ring = append(ring, ring[0])
		out[len(out)-1] = append(out[len(out)-1], ring)
		ring = nil
	}
	for i, v := range mp.Verts {
		if i == 0 || v.Polygon != mp.Verts[i-1].Polygon {
			closeRing()
			out = append(out, orb.Polygon{})
		} else if v.Ring != mp.Verts[i-1].Ring {
			closeRing()
		}
		ring = append(ring, orb.Point{v.Lng * scale, v.Lat * scale})
	}
	closeRing()
	return out
}

func checkOutlineInput(cells []Index) error {
	if err := validateCells(cells, false); err != nil {
		return err
	}
	res := cells[0].res()
	seen := make(map[Index]struct{}, len(cells))
	for _, h := range cells {
		if h.res() != res {
			return &MismatchError{Want: res, Got: h.res()}
		}
		if _, dup := seen[h]; dup {
			return &CompactionError{Reason: Duplicate, Index: h}
		}
		seen[h] = struct{}{}
	}
	return nil
}

// outline asks the engine for the outline of a checked cell set and closes
// every ring.
func outline(cells []Index) (orb.MultiPolygon, error) {
	polys, err := engineOutline(cells)
	if err != nil {
		return nil, err
	}
	mp := make(orb.MultiPolygon, 0, len(polys))
	for _, rings := range polys {
		poly := make(orb.Polygon, 0, len(rings))
		for _, loop := range rings {
			ring := make(orb.Ring, 0, len(loop)+1)
			for _, ll := range loop {
				ring = append(ring, orb.Point{ll.Lng, ll.Lat})
			}
			if len(ring) > 0 && !ring.Closed() {
				ring = append(ring, ring[0])
			}
			poly = append(poly, ring)
		}
		mp = append(mp, poly)
	}
	return mp, nil
}

// openLen is the number of distinct points of a ring.
func openLen(r orb.Ring) int {
	if len(r) > 1 && r.Closed() {
		return len(r) - 1
	}
	return len(r)
}

// flatten copies a multipolygon of closed rings into one allocator owned
// buffer, dropping the closing point of each ring.
func flatten(mp orb.MultiPolygon, alloc Allocator) ([]Vertex, error) {
	n := 0
	for _, poly := range mp {
		for _, r := range poly {
			n += openLen(r)
		}
	}
	if n == 0 {
		return nil, nil
	}

	verts := alloc.Alloc(n)
	if len(verts) < n {
		return nil, &AllocError{Need: n}
	}
	i := 0
	for p, poly := range mp {
		for r, ring := range poly {
			for _, pt := range ring[:openLen(ring)] {
				verts[i] = Vertex{
					LatLng:  LatLng{Lat: pt.Lat(), Lng: pt.Lon()},
					Polygon: int32(p),
					Ring:    int32(r),
				}
				i++
			}
		}
	}
	return verts[:n], nil
}

// CellsToLinkedMultiPolygon writes the outline of a set of same-resolution
// cells, allocating from the Go heap. No cells yields the empty outline.
func CellsToLinkedMultiPolygon(cells []Index, out *LinkedMultiPolygon) Code {
	return CellsToLinkedMultiPolygonWith(cells, HeapAllocator, out)
}

// CellsToLinkedMultiPolygonWith is CellsToLinkedMultiPolygon with a caller
// supplied allocator. DestroyLinkedMultiPolygon returns the buffer to the
// same allocator.
func CellsToLinkedMultiPolygonWith(cells []Index, alloc Allocator, out *LinkedMultiPolygon) Code {
	if len(cells) == 0 {
		*out = LinkedMultiPolygon{}
		return OK
	}
	if err := checkOutlineInput(cells); err != nil {
		return codeOf(err)
	}
	mp, err := outline(cells)
	if err != nil {
		return codeOf(err)
	}
	verts, err := flatten(mp, alloc)
	if err != nil {
		return codeOf(err)
	}
	*out = LinkedMultiPolygon{Verts: verts, alloc: alloc}
	return OK
}

// DestroyLinkedMultiPolygon releases the vertex buffer of mp and resets it
// to the empty outline. mp itself is not freed. The empty outline and nil
// are accepted. Passing a structure not produced by
// CellsToLinkedMultiPolygon, or one already destroyed by another copy, is
// undefined.
func DestroyLinkedMultiPolygon(mp *LinkedMultiPolygon) {
	if mp == nil {
		return
	}
	if mp.Verts != nil && mp.alloc != nil {
		mp.alloc.Free(mp.Verts)
	}
	*mp = LinkedMultiPolygon{}
}
