package h3abi

// diskFiller writes a disk of radius k around origin into buffers already
// checked against maxGridDiskSize(k) and reset to Null.
type diskFiller func(origin Index, k int, out []Index, dists []int32) error

func unsafeDisk(origin Index, k int, out []Index, dists []int32) error {
	n, err := fastFill("gridDiskUnsafe", origin, 0, k, out, dists)
	if err != nil {
		resetPrefix(out, dists, n)
	}
	return err
}

func checkK(k int) error {
	if k < 0 {
		return &DomainError{Arg: "k", Value: int64(k)}
	}
	return nil
}

func disk(origin Index, k int, out []Index, dists []int32, fill diskFiller) error {
	if err := checkK(k); err != nil {
		return err
	}
	if err := validateCell(origin); err != nil {
		return err
	}
	size := maxGridDiskSize(int64(k))
	if err := requireLen(out, size); err != nil {
		return err
	}
	if dists != nil {
		if err := requireLen(dists, size); err != nil {
			return err
		}
		clear(dists[:size])
	}
	fillNull(out[:size])
	return fill(origin, k, out[:size], dists)
}

// MaxGridDiskSize writes the number of slots a disk of radius k needs.
func MaxGridDiskSize(k int, out *int64) Code {
	if err := checkK(k); err != nil {
		return codeOf(err)
	}
	*out = maxGridDiskSize(int64(k))
	return OK
}

// GridDisk writes every cell within k steps of origin. Slots the disk does
// not fill, which happens around pentagons, are left Null.
func GridDisk(origin Index, k int, out []Index) Code {
	return codeOf(disk(origin, k, out, nil, hybridDisk))
}

// GridDiskDistances is GridDisk that also writes each cell's distance from
// origin. dists may be nil.
func GridDiskDistances(origin Index, k int, out []Index, dists []int32) Code {
	return codeOf(disk(origin, k, out, dists, hybridDisk))
}

// GridDiskDistancesSafe always takes the breadth-first path.
func GridDiskDistancesSafe(origin Index, k int, out []Index, dists []int32) Code {
	return codeOf(disk(origin, k, out, dists, safeFill))
}

// GridDiskDistancesUnsafe only takes the fast path and fails with Pentagon
// when it meets pentagon distortion. Output is ordered ring by ring.
func GridDiskDistancesUnsafe(origin Index, k int, out []Index, dists []int32) Code {
	return codeOf(disk(origin, k, out, dists, unsafeDisk))
}

// GridDiskUnsafe is GridDiskDistancesUnsafe without distances.
func GridDiskUnsafe(origin Index, k int, out []Index) Code {
	return codeOf(disk(origin, k, out, nil, unsafeDisk))
}

// GridDisksSize writes the number of slots GridDisksUnsafe needs for
// numOrigins origins.
func GridDisksSize(k int, numOrigins int64, out *int64) Code {
	if err := checkK(k); err != nil {
		return codeOf(err)
	}
	total, err := batchSize(maxGridDiskSize(int64(k)), numOrigins)
	if err != nil {
		return codeOf(err)
	}
	*out = total
	return OK
}

// GridDisksUnsafe writes the fast-path disk of every origin back to back,
// each in its own window of maxGridDiskSize(k) slots. One failing origin
// fails the whole batch.
func GridDisksUnsafe(origins []Index, k int, out []Index) Code {
	return codeOf(gridDisksUnsafe(origins, k, out))
}

func gridDisksUnsafe(origins []Index, k int, out []Index) error {
	if err := checkK(k); err != nil {
		return err
	}
	if err := validateCells(origins, false); err != nil {
		return err
	}
	size := maxGridDiskSize(int64(k))
	total, err := batchSize(size, int64(len(origins)))
	if err != nil {
		return err
	}
	if err := requireLen(out, total); err != nil {
		return err
	}
	fillNull(out[:total])
	for i, origin := range origins {
		window := out[int64(i)*size : int64(i+1)*size]
		if _, err := fastFill("gridDisksUnsafe", origin, 0, k, window, nil); err != nil {
			fillNull(out[:total])
			return err
		}
	}
	return nil
}

func ring(origin Index, k int, out []Index, hybrid bool) error {
	if err := checkK(k); err != nil {
		return err
	}
	if err := validateCell(origin); err != nil {
		return err
	}
	size := ringSize(k)
	if err := requireLen(out, size); err != nil {
		return err
	}
	fillNull(out[:size])
	if hybrid {
		return hybridRing(origin, k, out[:size])
	}
	n, err := fastFill("gridRingUnsafe", origin, k, k, out[:size], nil)
	if err != nil {
		resetPrefix(out, nil, n)
	}
	return err
}

// GridRingUnsafe writes the cells exactly k steps from origin, 6k slots
// (1 for k == 0), failing with Pentagon near pentagons.
func GridRingUnsafe(origin Index, k int, out []Index) Code {
	return codeOf(ring(origin, k, out, false))
}

// GridRing is GridRingUnsafe with the breadth-first fallback.
func GridRing(origin Index, k int, out []Index) Code {
	return codeOf(ring(origin, k, out, true))
}

// GridDistance writes the number of steps between two cells of the same
// resolution.
func GridDistance(origin, destination Index, out *int64) Code {
	if err := validateCell(origin); err != nil {
		return codeOf(err)
	}
	if err := validateCell(destination); err != nil {
		return codeOf(err)
	}
	d, err := gridDistance(origin, destination)
	if err != nil {
		return codeOf(err)
	}
	*out = d
	return OK
}

// GridPathCellsSize writes the exact length of the path GridPathCells
// produces.
func GridPathCellsSize(start, end Index, out *int64) Code {
	if err := validateCell(start); err != nil {
		return codeOf(err)
	}
	if err := validateCell(end); err != nil {
		return codeOf(err)
	}
	d, err := gridDistance(start, end)
	if err != nil {
		return codeOf(err)
	}
	*out = d + 1
	return OK
}

// GridPathCells writes a minimal path of adjacent cells from start to end,
// both included.
func GridPathCells(start, end Index, out []Index) Code {
	var size int64
	if c := GridPathCellsSize(start, end, &size); c != OK {
		return c
	}
	if err := requireLen(out, size); err != nil {
		return codeOf(err)
	}
	if err := gridPath(start, end, out[:size]); err != nil {
		fillNull(out[:size])
		return codeOf(err)
	}
	return OK
}
