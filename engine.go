package h3abi

import (
	"errors"
	"log/slog"
	"math"

	h3 "github.com/uber/h3-go/v4"
)

// This file is the only place that talks to the grid engine. Everything
// crossing it is converted: indexes to Index, angles from the engine's
// degrees to radians, and errors to *EngineError.

const (
	degsToRads = math.Pi / 180.0
	radsToDegs = 180.0 / math.Pi
)

func toEngineLatLng(ll LatLng) h3.LatLng {
	return h3.LatLng{Lat: ll.Lat * radsToDegs, Lng: ll.Lng * radsToDegs}
}

func fromEngineLatLng(ll h3.LatLng) LatLng {
	return LatLng{Lat: ll.Lat * degsToRads, Lng: ll.Lng * degsToRads}
}

func toEngineLoop(loop GeoLoop) h3.GeoLoop {
	out := make(h3.GeoLoop, len(loop))
	for i, ll := range loop {
		out[i] = toEngineLatLng(ll)
	}
	return out
}

func fromEngineCells(cells []h3.Cell) []Index {
	out := make([]Index, len(cells))
	for i, c := range cells {
		out[i] = Index(c)
	}
	return out
}

// engineCodes classifies the engine's own errors. A generic or unknown
// failure keeps the code chosen by the caller.
var engineCodes = []struct {
	err  error
	code Code
}{
	{h3.ErrDomain, Domain},
	{h3.ErrLatLngDomain, LatLngDomain},
	{h3.ErrResolutionDomain, ResDomain},
	{h3.ErrCellInvalid, CellInvalid},
	{h3.ErrDirectedEdgeInvalid, DirEdgeInvalid},
	{h3.ErrUndirectedEdgeInvalid, UndirEdgeInvalid},
	{h3.ErrVertexInvalid, VertexInvalid},
	{h3.ErrPentagon, Pentagon},
	{h3.ErrDuplicateInput, DuplicateInput},
	{h3.ErrNotNeighbors, NotNeighbors},
	{h3.ErrRsolutionMismatch, ResMismatch},
	{h3.ErrMemoryAlloc, MemoryAlloc},
	{h3.ErrMemoryBounds, MemoryBounds},
	{h3.ErrOptionInvalid, OptionInvalid},
}

func classifyEngineErr(err error, fallback Code) Code {
	for _, ec := range engineCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return fallback
}

func engineErr(op string, fallback Code, err error) error {
	slog.Debug("h3 engine call failed", "op", op, "error", err)
	return &EngineError{Op: op, Code: classifyEngineErr(err, fallback), Err: err}
}

func isValidCell(h Index) bool {
	return h.mode() == modeCell && h3.Cell(h).IsValid()
}

func isValidDirectedEdge(h Index) bool {
	return h.mode() == modeDirectedEdge && h3.DirectedEdge(h).IsValid()
}

func isValidVertex(h Index) bool {
	return h.mode() == modeVertex && h3.IsValidVertex(h3.Cell(h))
}

func isPentagon(h Index) bool {
	return h3.Cell(h).IsPentagon()
}

func engineLatLngToCell(ll LatLng, res int) (Index, error) {
	c, err := h3.LatLngToCell(toEngineLatLng(ll), res)
	if err != nil {
		return Null, engineErr("latLngToCell", LatLngDomain, err)
	}
	return Index(c), nil
}

func engineCellToLatLng(h Index) (LatLng, error) {
	ll, err := h3.CellToLatLng(h3.Cell(h))
	if err != nil {
		return LatLng{}, engineErr("cellToLatLng", CellInvalid, err)
	}
	return fromEngineLatLng(ll), nil
}

func engineCellToBoundary(h Index) (CellBoundary, error) {
	b, err := h3.CellToBoundary(h3.Cell(h))
	if err != nil {
		return CellBoundary{}, engineErr("cellToBoundary", CellInvalid, err)
	}
	return boundaryFromEngine(b), nil
}

func boundaryFromEngine(b h3.CellBoundary) CellBoundary {
	var out CellBoundary
	for _, ll := range b {
		if out.NumVerts == MaxCellBoundaryVerts {
			break
		}
		out.Verts[out.NumVerts] = fromEngineLatLng(ll)
		out.NumVerts++
	}
	return out
}

func engineParent(h Index, res int) (Index, error) {
	p, err := h3.Cell(h).Parent(res)
	if err != nil {
		return Null, engineErr("cellToParent", ResMismatch, err)
	}
	return Index(p), nil
}

func engineCenterChild(h Index, res int) (Index, error) {
	c, err := h3.Cell(h).CenterChild(res)
	if err != nil {
		return Null, engineErr("cellToCenterChild", ResMismatch, err)
	}
	return Index(c), nil
}

func engineChildPos(h Index, parentRes int) (int64, error) {
	pos, err := h3.CellToChildPos(h3.Cell(h), parentRes)
	if err != nil {
		return 0, engineErr("cellToChildPos", Failed, err)
	}
	return int64(pos), nil
}

func engineChildPosToCell(pos int64, parent Index, res int) (Index, error) {
	c, err := h3.ChildPosToCell(int(pos), h3.Cell(parent), res)
	if err != nil {
		return Null, engineErr("childPosToCell", Domain, err)
	}
	return Index(c), nil
}

func engineRes0Cells() ([]Index, error) {
	cells, err := h3.Res0Cells()
	if err != nil {
		return nil, engineErr("getRes0Cells", Failed, err)
	}
	return fromEngineCells(cells), nil
}

func enginePentagons(res int) ([]Index, error) {
	cells, err := h3.Pentagons(res)
	if err != nil {
		return nil, engineErr("getPentagons", ResDomain, err)
	}
	return fromEngineCells(cells), nil
}

func engineNumCells(res int) int64 {
	return int64(h3.NumCells(res))
}

// engineCompact compacts a non-empty set of same-resolution cells.
func engineCompact(cells []Index) ([]Index, error) {
	in := make([]h3.Cell, len(cells))
	for i, h := range cells {
		in[i] = h3.Cell(h)
	}
	out, err := h3.CompactCells(in)
	if err != nil {
		return nil, engineErr("compactCells", Failed, err)
	}
	compacted := fromEngineCells(out)
	n := 0
	for _, h := range compacted {
		if h != Null {
			compacted[n] = h
			n++
		}
	}
	return compacted[:n], nil
}

func engineChildren(h Index, res int) ([]Index, error) {
	children, err := h3.Cell(h).Children(res)
	if err != nil {
		return nil, engineErr("cellToChildren", ResDomain, err)
	}
	return fromEngineCells(children), nil
}

func engineIcosahedronFaces(h Index) ([]int, error) {
	faces, err := h3.Cell(h).IcosahedronFaces()
	if err != nil {
		return nil, engineErr("getIcosahedronFaces", CellInvalid, err)
	}
	return faces, nil
}

// engineNeighbors returns the cells sharing an edge with h.
func engineNeighbors(h Index) ([]Index, error) {
	disk, err := h3.GridDisk(h3.Cell(h), 1)
	if err != nil {
		return nil, engineErr("gridDisk", Failed, err)
	}
	out := make([]Index, 0, len(disk))
	for _, c := range disk {
		if Index(c) != h && c != 0 {
			out = append(out, Index(c))
		}
	}
	return out, nil
}

func engineCellToLocalIJ(origin, h Index) (CoordIJ, error) {
	ij, err := h3.CellToLocalIJ(h3.Cell(origin), h3.Cell(h))
	if err != nil {
		return CoordIJ{}, engineErr("cellToLocalIj", Failed, err)
	}
	return CoordIJ{I: int32(ij.I), J: int32(ij.J)}, nil
}

func engineLocalIJToCell(origin Index, ij CoordIJ) (Index, error) {
	c, err := h3.LocalIJToCell(h3.Cell(origin), h3.CoordIJ{I: int(ij.I), J: int(ij.J)})
	if err != nil {
		return Null, engineErr("localIjToCell", Failed, err)
	}
	return Index(c), nil
}

// engineOutline returns the outline of a cell set as engine polygons, each
// loop open.
func engineOutline(cells []Index) ([][]GeoLoop, error) {
	in := make([]h3.Cell, len(cells))
	for i, h := range cells {
		in[i] = h3.Cell(h)
	}
	polys, err := h3.CellsToMultiPolygon(in)
	if err != nil {
		return nil, engineErr("cellsToMultiPolygon", Failed, err)
	}

	out := make([][]GeoLoop, 0, len(polys))
	for _, p := range polys {
		rings := make([]GeoLoop, 0, 1+len(p.Holes))
		rings = append(rings, fromEngineLoop(p.GeoLoop))
		for _, hole := range p.Holes {
			rings = append(rings, fromEngineLoop(hole))
		}
		out = append(out, rings)
	}
	return out, nil
}

func fromEngineLoop(loop h3.GeoLoop) GeoLoop {
	out := make(GeoLoop, len(loop))
	for i, ll := range loop {
		out[i] = fromEngineLatLng(ll)
	}
	return out
}

func enginePolygonToCells(poly GeoPolygon, res int) ([]Index, error) {
	in := h3.GeoPolygon{GeoLoop: toEngineLoop(poly.GeoLoop)}
	for _, hole := range poly.Holes {
		in.Holes = append(in.Holes, toEngineLoop(hole))
	}
	cells, err := h3.PolygonToCells(in, res)
	if err != nil {
		return nil, engineErr("polygonToCells", Failed, err)
	}
	return fromEngineCells(cells), nil
}

func engineDirectedEdge(origin, destination Index) (Index, error) {
	e, err := h3.Cell(origin).DirectedEdge(h3.Cell(destination))
	if err != nil {
		return Null, engineErr("cellsToDirectedEdge", NotNeighbors, err)
	}
	return Index(e), nil
}

func engineDirectedEdges(h Index) ([]Index, error) {
	edges, err := h3.Cell(h).DirectedEdges()
	if err != nil {
		return nil, engineErr("originToDirectedEdges", CellInvalid, err)
	}
	out := make([]Index, len(edges))
	for i, e := range edges {
		out[i] = Index(e)
	}
	return out, nil
}

func engineEdgeEndpoints(e Index) (origin, destination Index, err error) {
	o, err := h3.DirectedEdge(e).Origin()
	if err != nil {
		return Null, Null, engineErr("getDirectedEdgeOrigin", DirEdgeInvalid, err)
	}
	d, err := h3.DirectedEdge(e).Destination()
	if err != nil {
		return Null, Null, engineErr("getDirectedEdgeDestination", DirEdgeInvalid, err)
	}
	return Index(o), Index(d), nil
}

func engineEdgeBoundary(e Index) (CellBoundary, error) {
	b, err := h3.DirectedEdge(e).Boundary()
	if err != nil {
		return CellBoundary{}, engineErr("directedEdgeToBoundary", DirEdgeInvalid, err)
	}
	return boundaryFromEngine(b), nil
}

func engineCellToVertex(h Index, n int) (Index, error) {
	v, err := h3.CellToVertex(h3.Cell(h), n)
	if err != nil {
		return Null, engineErr("cellToVertex", Domain, err)
	}
	return Index(v), nil
}

func engineVertexToLatLng(v Index) (LatLng, error) {
	ll, err := h3.VertexToLatLng(h3.Cell(v))
	if err != nil {
		return LatLng{}, engineErr("vertexToLatLng", VertexInvalid, err)
	}
	return fromEngineLatLng(ll), nil
}

// metric selects the unit of a measurement.
type metric int

const (
	rads metric = iota
	km
	meters
)

func engineCellArea(h Index, unit metric) (float64, error) {
	c := h3.Cell(h)
	var (
		v   float64
		err error
	)
	switch unit {
	case rads:
		v, err = h3.CellAreaRads2(c)
	case km:
		v, err = h3.CellAreaKm2(c)
	default:
		v, err = h3.CellAreaM2(c)
	}
	if err != nil {
		return 0, engineErr("cellArea", CellInvalid, err)
	}
	return v, nil
}

func engineEdgeLength(e Index, unit metric) (float64, error) {
	d := h3.DirectedEdge(e)
	var (
		v   float64
		err error
	)
	switch unit {
	case rads:
		v, err = h3.EdgeLengthRads(d)
	case km:
		v, err = h3.EdgeLengthKm(d)
	default:
		v, err = h3.EdgeLengthM(d)
	}
	if err != nil {
		return 0, engineErr("edgeLength", DirEdgeInvalid, err)
	}
	return v, nil
}

func engineGreatCircleDistance(a, b LatLng, unit metric) float64 {
	ea, eb := toEngineLatLng(a), toEngineLatLng(b)
	switch unit {
	case rads:
		return h3.GreatCircleDistanceRads(ea, eb)
	case km:
		return h3.GreatCircleDistanceKm(ea, eb)
	}
	return h3.GreatCircleDistanceM(ea, eb)
}

func engineHexagonAreaAvg(res int, unit metric) (float64, error) {
	var (
		v   float64
		err error
	)
	if unit == km {
		v, err = h3.HexagonAreaAvgKm2(res)
	} else {
		v, err = h3.HexagonAreaAvgM2(res)
	}
	if err != nil {
		return 0, engineErr("getHexagonAreaAvg", ResDomain, err)
	}
	return v, nil
}

func engineHexagonEdgeLengthAvg(res int, unit metric) (float64, error) {
	var (
		v   float64
		err error
	)
	if unit == km {
		v, err = h3.HexagonEdgeLengthAvgKm(res)
	} else {
		v, err = h3.HexagonEdgeLengthAvgM(res)
	}
	if err != nil {
		return 0, engineErr("getHexagonEdgeLengthAvg", ResDomain, err)
	}
	return v, nil
}
