package h3abi

import (
	"strconv"
	"strings"
)

// MinStringBufferSize is the smallest buffer IndexToString accepts: 16 hex
// digits and a NUL.
const MinStringBufferSize = 17

// IndexToString writes the lowercase hexadecimal form of h, NUL terminated.
// A buffer shorter than MinStringBufferSize fails instead of truncating.
func IndexToString(h Index, buf []byte) Code {
	if len(buf) < MinStringBufferSize {
		return Failed
	}
	n := copy(buf, h.String())
	buf[n] = 0
	return OK
}

// StringToIndex parses the hexadecimal form of a cell, directed edge or
// vertex. Anything else fails.
func StringToIndex(s string, out *Index) Code {
	s, _, _ = strings.Cut(s, "\x00")
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return Failed
	}
	h := Index(v)
	if !isValidCell(h) && !isValidDirectedEdge(h) && !isValidVertex(h) {
		return Failed
	}
	*out = h
	return OK
}

func checkMode(mode uint32) error {
	if mode != 0 {
		return &OptionError{Arg: "mode", Value: mode}
	}
	return nil
}

// CellToLocalIJ writes the coordinates of h in the local IJ frame anchored
// at origin. mode is reserved and must be 0.
func CellToLocalIJ(origin, h Index, mode uint32, out *CoordIJ) Code {
	if err := checkMode(mode); err != nil {
		return codeOf(err)
	}
	if err := validateCell(origin); err != nil {
		return codeOf(err)
	}
	if err := validateCell(h); err != nil {
		return codeOf(err)
	}
	if err := sameResolution(origin, h); err != nil {
		return codeOf(err)
	}
	ij, err := engineCellToLocalIJ(origin, h)
	if err != nil {
		return codeOf(err)
	}
	*out = ij
	return OK
}

// LocalIJToCell writes the cell at ij in the local IJ frame anchored at
// origin. mode is reserved and must be 0.
func LocalIJToCell(origin Index, ij CoordIJ, mode uint32, out *Index) Code {
	if err := checkMode(mode); err != nil {
		return codeOf(err)
	}
	if err := validateCell(origin); err != nil {
		return codeOf(err)
	}
	h, err := engineLocalIJToCell(origin, ij)
	if err != nil {
		return codeOf(err)
	}
	*out = h
	return OK
}
