package h3abi

func resolutionTable(res int, lookup func(int, metric) (float64, error), unit metric, out *float64) Code {
	if err := validateRes(res); err != nil {
		return codeOf(err)
	}
	v, err := lookup(res, unit)
	if err != nil {
		return codeOf(err)
	}
	*out = v
	return OK
}

// GetHexagonAreaAvgKm2 writes the average hexagon area at res.
func GetHexagonAreaAvgKm2(res int, out *float64) Code {
	return resolutionTable(res, engineHexagonAreaAvg, km, out)
}

// GetHexagonAreaAvgM2 writes the average hexagon area at res.
func GetHexagonAreaAvgM2(res int, out *float64) Code {
	return resolutionTable(res, engineHexagonAreaAvg, meters, out)
}

// GetHexagonEdgeLengthAvgKm writes the average hexagon edge length at res.
func GetHexagonEdgeLengthAvgKm(res int, out *float64) Code {
	return resolutionTable(res, engineHexagonEdgeLengthAvg, km, out)
}

// GetHexagonEdgeLengthAvgM writes the average hexagon edge length at res.
func GetHexagonEdgeLengthAvgM(res int, out *float64) Code {
	return resolutionTable(res, engineHexagonEdgeLengthAvg, meters, out)
}

// GetNumCells writes the number of cells at res: 2 + 120 * 7^res.
func GetNumCells(res int, out *int64) Code {
	if err := validateRes(res); err != nil {
		return codeOf(err)
	}
	*out = engineNumCells(res)
	return OK
}

// Res0CellCount returns the number of resolution 0 cells.
func Res0CellCount() int { return numBaseCells }

// PentagonCount returns the number of pentagons at any resolution.
func PentagonCount() int { return numPentagons }

// GetRes0Cells writes the 122 resolution 0 cells in base cell order.
func GetRes0Cells(out []Index) Code {
	if err := requireLen(out, numBaseCells); err != nil {
		return codeOf(err)
	}
	cells, err := engineRes0Cells()
	if err != nil {
		return codeOf(err)
	}
	copy(out, cells)
	return OK
}

// GetPentagons writes the 12 pentagons at res in base cell order.
func GetPentagons(res int, out []Index) Code {
	if err := validateRes(res); err != nil {
		return codeOf(err)
	}
	if err := requireLen(out, numPentagons); err != nil {
		return codeOf(err)
	}
	cells, err := enginePentagons(res)
	if err != nil {
		return codeOf(err)
	}
	copy(out, cells)
	return OK
}
