package h3abi

// IsValidCell reports whether h is a valid cell index.
func IsValidCell(h Index) bool {
	return isValidCell(h)
}

// GetResolution returns the resolution of a valid cell, directed edge or
// vertex, and InvalidResolution for anything else.
func GetResolution(h Index) int {
	if isValidCell(h) || isValidDirectedEdge(h) || isValidVertex(h) {
		return h.res()
	}
	return InvalidResolution
}

// GetBaseCellNumber returns the base cell of a valid cell or directed edge,
// and -1 otherwise.
func GetBaseCellNumber(h Index) int {
	if isValidCell(h) || isValidDirectedEdge(h) {
		return h.baseCell()
	}
	return -1
}

// IsPentagon reports whether h is a valid pentagonal cell.
func IsPentagon(h Index) bool {
	return isValidCell(h) && isPentagon(h)
}

// IsResClassIII reports whether h is a valid cell at an odd resolution.
func IsResClassIII(h Index) bool {
	return isValidCell(h) && h.res()%2 == 1
}

// CellToLatLng writes the center of a cell.
func CellToLatLng(h Index, out *LatLng) Code {
	if err := validateCell(h); err != nil {
		return codeOf(err)
	}
	ll, err := engineCellToLatLng(h)
	if err != nil {
		return codeOf(err)
	}
	*out = ll
	return OK
}

// CellToBoundary writes the counter-clockwise boundary of a cell.
func CellToBoundary(h Index, out *CellBoundary) Code {
	if err := validateCell(h); err != nil {
		return codeOf(err)
	}
	b, err := engineCellToBoundary(h)
	if err != nil {
		return codeOf(err)
	}
	*out = b
	return OK
}

// CellToParent writes the ancestor of h at res, which must not be finer
// than h.
func CellToParent(h Index, res int, out *Index) Code {
	if err := validateCell(h); err != nil {
		return codeOf(err)
	}
	if err := validateRes(res); err != nil {
		return codeOf(err)
	}
	if res > h.res() {
		return codeOf(&MismatchError{Want: h.res(), Got: res})
	}
	p, err := engineParent(h, res)
	if err != nil {
		return codeOf(err)
	}
	*out = p
	return OK
}

// CellToCenterChild writes the center descendant of h at res, which must not
// be coarser than h.
func CellToCenterChild(h Index, res int, out *Index) Code {
	if err := validateCell(h); err != nil {
		return codeOf(err)
	}
	if err := validateRes(res); err != nil {
		return codeOf(err)
	}
	if res < h.res() {
		return codeOf(&MismatchError{Want: h.res(), Got: res})
	}
	c, err := engineCenterChild(h, res)
	if err != nil {
		return codeOf(err)
	}
	*out = c
	return OK
}

func childrenSize(h Index, res int) (int64, error) {
	if err := validateCell(h); err != nil {
		return 0, err
	}
	if !validResolution(res) || res < h.res() {
		return 0, &ResolutionError{Res: res}
	}
	return childrenCount(isPentagon(h), res-h.res()), nil
}

// CellToChildrenSize writes the exact number of descendants of h at res.
func CellToChildrenSize(h Index, res int, out *int64) Code {
	n, err := childrenSize(h, res)
	if err != nil {
		return codeOf(err)
	}
	*out = n
	return OK
}

// CellToChildren writes every descendant of h at res.
func CellToChildren(h Index, res int, out []Index) Code {
	n, err := childrenSize(h, res)
	if err != nil {
		return codeOf(err)
	}
	if err := requireLen(out, n); err != nil {
		return codeOf(err)
	}
	children, err := engineChildren(h, res)
	if err != nil {
		return codeOf(err)
	}
	fillNull(out[:n])
	copy(out[:n], children)
	return OK
}

// CellToChildPos writes the position of h among the children, at h's own
// resolution, of its ancestor at parentRes.
func CellToChildPos(h Index, parentRes int, out *int64) Code {
	if err := validateCell(h); err != nil {
		return codeOf(err)
	}
	if err := validateRes(parentRes); err != nil {
		return codeOf(err)
	}
	if parentRes > h.res() {
		return codeOf(&MismatchError{Want: h.res(), Got: parentRes})
	}
	pos, err := engineChildPos(h, parentRes)
	if err != nil {
		return codeOf(err)
	}
	*out = pos
	return OK
}

// ChildPosToCell writes the descendant of parent at res found at pos in the
// order CellToChildren uses.
func ChildPosToCell(pos int64, parent Index, res int, out *Index) Code {
	if err := validateCell(parent); err != nil {
		return codeOf(err)
	}
	if err := validateRes(res); err != nil {
		return codeOf(err)
	}
	if res < parent.res() {
		return codeOf(&MismatchError{Want: parent.res(), Got: res})
	}
	if pos < 0 || pos >= childrenCount(isPentagon(parent), res-parent.res()) {
		return codeOf(&DomainError{Arg: "child position", Value: pos})
	}
	c, err := engineChildPosToCell(pos, parent, res)
	if err != nil {
		return codeOf(err)
	}
	*out = c
	return OK
}

func maxFaceCount(h Index) int {
	if isPentagon(h) {
		return 5
	}
	return 2
}

// MaxFaceCount writes the number of slots GetIcosahedronFaces needs for h.
func MaxFaceCount(h Index, out *int) Code {
	if err := validateCell(h); err != nil {
		return codeOf(err)
	}
	*out = maxFaceCount(h)
	return OK
}

// GetIcosahedronFaces writes the faces a cell intersects. Every slot the
// cell does not use is -1.
func GetIcosahedronFaces(h Index, out []int32) Code {
	if err := validateCell(h); err != nil {
		return codeOf(err)
	}
	n := maxFaceCount(h)
	if err := requireLen(out, int64(n)); err != nil {
		return codeOf(err)
	}
	faces, err := engineIcosahedronFaces(h)
	if err != nil {
		return codeOf(err)
	}
	fillFaces(out[:n])
	i := 0
	for _, f := range faces {
		if f < 0 || i == n {
			continue
		}
		out[i] = int32(f)
		i++
	}
	return OK
}

func cellArea(h Index, unit metric, out *float64) Code {
	if err := validateCell(h); err != nil {
		return codeOf(err)
	}
	a, err := engineCellArea(h, unit)
	if err != nil {
		return codeOf(err)
	}
	*out = a
	return OK
}

// CellAreaRads2 writes the exact area of a cell in square radians.
func CellAreaRads2(h Index, out *float64) Code { return cellArea(h, rads, out) }

// CellAreaKm2 writes the exact area of a cell in square kilometers.
func CellAreaKm2(h Index, out *float64) Code { return cellArea(h, km, out) }

// CellAreaM2 writes the exact area of a cell in square meters.
func CellAreaM2(h Index, out *float64) Code { return cellArea(h, meters, out) }
