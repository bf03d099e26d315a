package h3abi

// IsValidVertex reports whether v is a valid vertex index.
func IsValidVertex(v Index) bool {
	return isValidVertex(v)
}

func vertexCount(h Index) int {
	if isPentagon(h) {
		return 5
	}
	return 6
}

// CellToVertex writes vertex n of a cell. n ranges over 0..5 for hexagons
// and 0..4 for pentagons.
func CellToVertex(h Index, n int, out *Index) Code {
	if err := validateCell(h); err != nil {
		return codeOf(err)
	}
	if n < 0 || n >= vertexCount(h) {
		return codeOf(&DomainError{Arg: "vertex number", Value: int64(n)})
	}
	v, err := engineCellToVertex(h, n)
	if err != nil {
		return codeOf(err)
	}
	*out = v
	return OK
}

// CellToVertexes writes every vertex of a cell into a 6 slot buffer. The
// sixth slot of a pentagon is Null.
func CellToVertexes(h Index, out []Index) Code {
	if err := validateCell(h); err != nil {
		return codeOf(err)
	}
	if err := requireLen(out, 6); err != nil {
		return codeOf(err)
	}
	n := vertexCount(h)
	verts := make([]Index, n)
	for i := range verts {
		v, err := engineCellToVertex(h, i)
		if err != nil {
			return codeOf(err)
		}
		verts[i] = v
	}
	fillNull(out[:6])
	copy(out, verts)
	return OK
}

// VertexToLatLng writes the position of a vertex.
func VertexToLatLng(v Index, out *LatLng) Code {
	if !isValidVertex(v) {
		return codeOf(&IndexError{Index: v, Kind: KindVertex})
	}
	ll, err := engineVertexToLatLng(v)
	if err != nil {
		return codeOf(err)
	}
	*out = ll
	return OK
}
