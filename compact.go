package h3abi

func checkCompactInput(cells []Index) error {
	if err := validateCells(cells, false); err != nil {
		return err
	}
	res := cells[0].res()
	seen := make(map[Index]struct{}, len(cells))
	for _, h := range cells {
		if h.res() != res {
			return &CompactionError{Reason: Heterogeneous, Index: h}
		}
		if _, dup := seen[h]; dup {
			return &CompactionError{Reason: Duplicate, Index: h}
		}
		seen[h] = struct{}{}
	}
	return nil
}

// CompactCells writes the smallest mixed-resolution set covering exactly the
// same area as cells. out must hold len(cells) elements; slots past the
// compacted set are Null.
func CompactCells(cells []Index, out []Index) Code {
	if len(cells) == 0 {
		return OK
	}
	if err := requireLen(out, int64(len(cells))); err != nil {
		return codeOf(err)
	}
	if err := checkCompactInput(cells); err != nil {
		return codeOf(err)
	}
	compacted, err := engineCompact(cells)
	if err != nil {
		return codeOf(err)
	}
	n := copy(out, compacted)
	fillNull(out[n:len(cells)])
	return OK
}

func uncompactSize(cells []Index, res int) (int64, error) {
	if err := validateRes(res); err != nil {
		return 0, err
	}
	if err := validateCells(cells, true); err != nil {
		return 0, err
	}
	var total int64
	for _, h := range cells {
		if h == Null {
			continue
		}
		if h.res() > res {
			return 0, &MismatchError{Want: res, Got: h.res()}
		}
		total += childrenCount(isPentagon(h), res-h.res())
	}
	return total, nil
}

// UncompactCellsSize writes the exact number of cells UncompactCells
// produces for the same input. Null entries are ignored.
func UncompactCellsSize(cells []Index, res int, out *int64) Code {
	if len(cells) == 0 {
		*out = 0
		return OK
	}
	n, err := uncompactSize(cells, res)
	if err != nil {
		return codeOf(err)
	}
	*out = n
	return OK
}

// UncompactCells expands every cell to its descendants at res.
func UncompactCells(cells []Index, res int, out []Index) Code {
	if len(cells) == 0 {
		return OK
	}
	size, err := uncompactSize(cells, res)
	if err != nil {
		return codeOf(err)
	}
	if err := requireLen(out, size); err != nil {
		return codeOf(err)
	}

	n := 0
	for _, h := range cells {
		if h == Null {
			continue
		}
		if h.res() == res {
			out[n] = h
			n++
			continue
		}
		children, err := engineChildren(h, res)
		if err != nil {
			fillNull(out[:size])
			return codeOf(err)
		}
		n += copy(out[n:size], children)
	}
	return OK
}
