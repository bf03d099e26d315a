package h3abi

import (
	"iter"
	"log/slog"
	"math"
)

// ijDirections are the six unit steps of the hexagonal lattice in local IJ
// coordinates, in angular order.
var ijDirections = [6]CoordIJ{
	{I: 1, J: 0},
	{I: 1, J: 1},
	{I: 0, J: 1},
	{I: -1, J: 0},
	{I: -1, J: -1},
	{I: 0, J: -1},
}

func (c CoordIJ) add(o CoordIJ) CoordIJ { return CoordIJ{I: c.I + o.I, J: c.J + o.J} }

func (c CoordIJ) scale(k int32) CoordIJ { return CoordIJ{I: c.I * k, J: c.J * k} }

// ijDistance is the number of lattice steps between two coordinates of the
// same frame. A (1,1) step moves along both axes at once, so the distance
// is the larger delta when the deltas share a sign and their sum otherwise.
func ijDistance(a, b CoordIJ) int64 {
	di := int64(b.I) - int64(a.I)
	dj := int64(b.J) - int64(a.J)
	if (di >= 0) == (dj >= 0) {
		return max(abs64(di), abs64(dj))
	}
	return abs64(di) + abs64(dj)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// maxGridDiskSize is the number of slots in a disk of radius k. Past the
// radius that covers the whole sphere it is capped at the number of finest
// cells.
func maxGridDiskSize(k int64) int64 {
	const (
		wholeSphereK  = 13780510
		maxCellsCount = 569707381193162
	)
	if k >= wholeSphereK {
		return maxCellsCount
	}
	return 3*k*(k+1) + 1
}

func ringSize(k int) int64 {
	if k == 0 {
		return 1
	}
	return 6 * int64(k)
}

// latticeRing yields the coordinates at distance k from center, walking the
// ring counter-clockwise from center + k*(-1,-1).
func latticeRing(center CoordIJ, k int) iter.Seq[CoordIJ] {
	return func(yield func(CoordIJ) bool) {
		if k == 0 {
			yield(center)
			return
		}
		pos := center.add(ijDirections[4].scale(int32(k)))
		for _, dir := range ijDirections {
			for step := 0; step < k; step++ {
				if !yield(pos) {
					return
				}
				pos = pos.add(dir)
			}
		}
	}
}

// candidate is one slot of a fast-path traversal. When defined is false the
// closed-form walk could not vouch for the slot and cell is meaningless.
type candidate struct {
	cell     Index
	distance int
	defined  bool
}

// fastCandidates places every slot of the rings from..to around origin using
// the origin's local IJ frame. A slot is undefined when the engine cannot
// place its coordinate, when it lands on a pentagon, or when the placed cell
// does not map back to the same coordinate.
func fastCandidates(origin Index, from, to int) iter.Seq[candidate] {
	return func(yield func(candidate) bool) {
		if isPentagon(origin) {
			yield(candidate{distance: from})
			return
		}
		anchor, err := engineCellToLocalIJ(origin, origin)
		if err != nil {
			yield(candidate{distance: from})
			return
		}
		for d := from; d <= to; d++ {
			for ij := range latticeRing(anchor, d) {
				if !yield(placeCandidate(origin, ij, d)) {
					return
				}
			}
		}
	}
}

func placeCandidate(origin Index, ij CoordIJ, d int) candidate {
	cell, err := engineLocalIJToCell(origin, ij)
	if err != nil || isPentagon(cell) {
		return candidate{distance: d}
	}
	back, err := engineCellToLocalIJ(origin, cell)
	if err != nil || back != ij {
		return candidate{distance: d}
	}
	return candidate{cell: cell, distance: d, defined: true}
}

// fastFill streams the fast-path candidates into out (and dists when not
// nil). It reports how many slots were written and stops at the first
// undefined candidate.
func fastFill(op string, origin Index, from, to int, out []Index, dists []int32) (int, error) {
	n := 0
	for c := range fastCandidates(origin, from, to) {
		if !c.defined {
			return n, &TraversalError{Op: op, Reason: NearPentagon, Origin: origin}
		}
		out[n] = c.cell
		if dists != nil {
			dists[n] = int32(c.distance)
		}
		n++
	}
	return n, nil
}

// safeDisk expands breadth-first from origin over engine adjacency, one ring
// at a time. The result is grouped by non-decreasing distance.
func safeDisk(origin Index, k int) ([]Index, []int32, error) {
	cells := []Index{origin}
	dists := []int32{0}
	visited := map[Index]struct{}{origin: {}}

	frontier := []Index{origin}
	for d := 1; d <= k && len(frontier) > 0; d++ {
		var next []Index
		for _, c := range frontier {
			neighbors, err := engineNeighbors(c)
			if err != nil {
				return nil, nil, err
			}
			for _, n := range neighbors {
				if _, seen := visited[n]; seen {
					continue
				}
				visited[n] = struct{}{}
				next = append(next, n)
				cells = append(cells, n)
				dists = append(dists, int32(d))
			}
		}
		frontier = next
	}
	return cells, dists, nil
}

// safeFill writes the breadth-first disk of origin into out and dists.
func safeFill(origin Index, k int, out []Index, dists []int32) error {
	cells, ds, err := safeDisk(origin, k)
	if err != nil {
		return err
	}
	copy(out, cells)
	if dists != nil {
		copy(dists, ds)
	}
	return nil
}

// safeRingFill writes the cells at exactly distance k from origin.
func safeRingFill(origin Index, k int, out []Index) error {
	cells, ds, err := safeDisk(origin, k)
	if err != nil {
		return err
	}
	n := 0
	for i, c := range cells {
		if ds[i] == int32(k) {
			out[n] = c
			n++
		}
	}
	return nil
}

func resetPrefix(out []Index, dists []int32, n int) {
	fillNull(out[:n])
	if dists != nil {
		clear(dists[:n])
	}
}

// hybridDisk runs the fast path and, if any slot is undefined, discards what
// it wrote and recomputes the whole disk breadth-first.
func hybridDisk(origin Index, k int, out []Index, dists []int32) error {
	n, err := fastFill("gridDisk", origin, 0, k, out, dists)
	if err == nil {
		return nil
	}
	slog.Debug("fast disk fell back to breadth-first", "origin", origin, "k", k, "written", n)
	resetPrefix(out, dists, n)
	return safeFill(origin, k, out, dists)
}

func hybridRing(origin Index, k int, out []Index) error {
	n, err := fastFill("gridRing", origin, k, k, out, nil)
	if err == nil {
		return nil
	}
	slog.Debug("fast ring fell back to breadth-first", "origin", origin, "k", k, "written", n)
	resetPrefix(out, nil, n)
	return safeRingFill(origin, k, out)
}

// gridDistance measures a to b in the local IJ frame of a.
func gridDistance(a, b Index) (int64, error) {
	if a.res() != b.res() {
		return 0, &MismatchError{Want: a.res(), Got: b.res()}
	}
	ia, err := engineCellToLocalIJ(a, a)
	if err != nil {
		return 0, &TraversalError{Op: "gridDistance", Reason: Unrelatable, Origin: a, Target: a}
	}
	ib, err := engineCellToLocalIJ(a, b)
	if err != nil {
		return 0, &TraversalError{Op: "gridDistance", Reason: Unrelatable, Origin: a, Target: b}
	}
	return ijDistance(ia, ib), nil
}

type cube struct {
	i, j, k float64
}

func cubeFromIJ(c CoordIJ) cube {
	i, j := float64(c.I), float64(c.J)
	return cube{i: -i, j: j, k: i - j}
}

// cubeRound snaps a fractional cube coordinate to the nearest lattice point,
// recomputing the component with the largest rounding error so the three
// still sum to zero.
func cubeRound(c cube) CoordIJ {
	ri, rj, rk := math.Round(c.i), math.Round(c.j), math.Round(c.k)
	di, dj, dk := math.Abs(ri-c.i), math.Abs(rj-c.j), math.Abs(rk-c.k)
	switch {
	case di > dj && di > dk:
		ri = -rj - rk
	case dj > dk:
		rj = -ri - rk
	}
	return CoordIJ{I: int32(-ri), J: int32(rj)}
}

// gridPath walks from a to b by interpolating linearly in cube coordinates.
// The result has exactly gridDistance(a, b)+1 cells, each adjacent to the
// previous one.
func gridPath(a, b Index, out []Index) error {
	distance, err := gridDistance(a, b)
	if err != nil {
		return err
	}
	ia, err := engineCellToLocalIJ(a, a)
	if err != nil {
		return &TraversalError{Op: "gridPathCells", Reason: Unrelatable, Origin: a, Target: a}
	}
	ib, err := engineCellToLocalIJ(a, b)
	if err != nil {
		return &TraversalError{Op: "gridPathCells", Reason: Unrelatable, Origin: a, Target: b}
	}

	start, end := cubeFromIJ(ia), cubeFromIJ(ib)
	var step cube
	if distance > 0 {
		d := float64(distance)
		step = cube{i: (end.i - start.i) / d, j: (end.j - start.j) / d, k: (end.k - start.k) / d}
	}
	for n := int64(0); n <= distance; n++ {
		f := float64(n)
		ij := cubeRound(cube{i: start.i + step.i*f, j: start.j + step.j*f, k: start.k + step.k*f})
		cell, err := engineLocalIJToCell(a, ij)
		if err != nil {
			return &TraversalError{Op: "gridPathCells", Reason: Unrelatable, Origin: a, Target: b}
		}
		out[n] = cell
	}
	return nil
}
