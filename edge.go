package h3abi

func validateEdge(e Index) error {
	if !isValidDirectedEdge(e) {
		return &IndexError{Index: e, Kind: KindDirectedEdge}
	}
	return nil
}

// IsValidDirectedEdge reports whether e is a valid directed edge index.
func IsValidDirectedEdge(e Index) bool {
	return isValidDirectedEdge(e)
}

func sameResolution(a, b Index) error {
	if a.res() != b.res() {
		return &MismatchError{Want: a.res(), Got: b.res()}
	}
	return nil
}

// AreNeighborCells writes whether two cells share an edge.
func AreNeighborCells(origin, destination Index, out *bool) Code {
	if err := validateCell(origin); err != nil {
		return codeOf(err)
	}
	if err := validateCell(destination); err != nil {
		return codeOf(err)
	}
	if err := sameResolution(origin, destination); err != nil {
		return codeOf(err)
	}
	neighbors, err := engineNeighbors(origin)
	if err != nil {
		return codeOf(err)
	}
	found := false
	for _, n := range neighbors {
		if n == destination {
			found = true
			break
		}
	}
	*out = found
	return OK
}

// CellsToDirectedEdge writes the edge from origin to a neighboring
// destination.
func CellsToDirectedEdge(origin, destination Index, out *Index) Code {
	var neighbors bool
	if c := AreNeighborCells(origin, destination, &neighbors); c != OK {
		return c
	}
	if !neighbors {
		return codeOf(&NeighborError{Origin: origin, Destination: destination})
	}
	e, err := engineDirectedEdge(origin, destination)
	if err != nil {
		return codeOf(err)
	}
	*out = e
	return OK
}

// GetDirectedEdgeOrigin writes the cell an edge starts from.
func GetDirectedEdgeOrigin(e Index, out *Index) Code {
	if err := validateEdge(e); err != nil {
		return codeOf(err)
	}
	o, _, err := engineEdgeEndpoints(e)
	if err != nil {
		return codeOf(err)
	}
	*out = o
	return OK
}

// GetDirectedEdgeDestination writes the cell an edge points to.
func GetDirectedEdgeDestination(e Index, out *Index) Code {
	if err := validateEdge(e); err != nil {
		return codeOf(err)
	}
	_, d, err := engineEdgeEndpoints(e)
	if err != nil {
		return codeOf(err)
	}
	*out = d
	return OK
}

// DirectedEdgeToCells writes origin then destination into a 2 slot buffer.
func DirectedEdgeToCells(e Index, out []Index) Code {
	if err := validateEdge(e); err != nil {
		return codeOf(err)
	}
	if err := requireLen(out, 2); err != nil {
		return codeOf(err)
	}
	o, d, err := engineEdgeEndpoints(e)
	if err != nil {
		return codeOf(err)
	}
	out[0], out[1] = o, d
	return OK
}

// OriginToDirectedEdges writes the edges leaving a cell into a 6 slot
// buffer. A pentagon has five; its sixth slot is Null.
func OriginToDirectedEdges(h Index, out []Index) Code {
	if err := validateCell(h); err != nil {
		return codeOf(err)
	}
	if err := requireLen(out, 6); err != nil {
		return codeOf(err)
	}
	edges, err := engineDirectedEdges(h)
	if err != nil {
		return codeOf(err)
	}
	fillNull(out[:6])
	i := 0
	for _, e := range edges {
		if e == Null || i == 6 {
			continue
		}
		out[i] = e
		i++
	}
	return OK
}

// DirectedEdgeToBoundary writes the geometry of the edge shared by its two
// cells.
func DirectedEdgeToBoundary(e Index, out *CellBoundary) Code {
	if err := validateEdge(e); err != nil {
		return codeOf(err)
	}
	b, err := engineEdgeBoundary(e)
	if err != nil {
		return codeOf(err)
	}
	*out = b
	return OK
}

func edgeLength(e Index, unit metric, out *float64) Code {
	if err := validateEdge(e); err != nil {
		return codeOf(err)
	}
	l, err := engineEdgeLength(e, unit)
	if err != nil {
		return codeOf(err)
	}
	*out = l
	return OK
}

// EdgeLengthRads writes the exact length of an edge in radians.
func EdgeLengthRads(e Index, out *float64) Code { return edgeLength(e, rads, out) }

// EdgeLengthKm writes the exact length of an edge in kilometers.
func EdgeLengthKm(e Index, out *float64) Code { return edgeLength(e, km, out) }

// EdgeLengthM writes the exact length of an edge in meters.
func EdgeLengthM(e Index, out *float64) Code { return edgeLength(e, meters, out) }
