package h3abi

import (
	"errors"
	"strconv"
)

// Code is the flat result code returned by every boundary function. The
// numeric values are part of the ABI and never change.
type Code uint32

const (
	OK               Code = iota // success
	Failed                       // unclassified failure
	Domain                       // argument outside its domain
	LatLngDomain                 // latitude or longitude out of range
	ResDomain                    // resolution out of range
	CellInvalid                  // not a valid cell
	DirEdgeInvalid               // not a valid directed edge
	UndirEdgeInvalid             // not a valid undirected edge
	VertexInvalid                // not a valid vertex
	Pentagon                     // pentagon distortion encountered
	DuplicateInput               // duplicate input
	NotNeighbors                 // cells are not neighbors
	ResMismatch                  // incompatible resolutions
	MemoryAlloc                  // allocation failed
	MemoryBounds                 // caller buffer too small
	OptionInvalid                // unsupported mode or flags
)

var codeNames = [...]string{
	OK:               "OK",
	Failed:           "Failed",
	Domain:           "Domain",
	LatLngDomain:     "LatLngDomain",
	ResDomain:        "ResDomain",
	CellInvalid:      "CellInvalid",
	DirEdgeInvalid:   "DirEdgeInvalid",
	UndirEdgeInvalid: "UndirEdgeInvalid",
	VertexInvalid:    "VertexInvalid",
	Pentagon:         "Pentagon",
	DuplicateInput:   "DuplicateInput",
	NotNeighbors:     "NotNeighbors",
	ResMismatch:      "ResMismatch",
	MemoryAlloc:      "MemoryAlloc",
	MemoryBounds:     "MemoryBounds",
	OptionInvalid:    "OptionInvalid",
}

func (c Code) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return "Code(" + strconv.FormatUint(uint64(c), 10) + ")"
}

// Error lets a Code travel as an error on the Go side of the boundary.
func (c Code) Error() string {
	return "h3abi: " + c.String()
}

func (c Code) code() Code { return c }

type coder interface {
	code() Code
}

// codeOf flattens an internal error into its result code. It is the only
// place where the detail carried by an error is dropped.
func codeOf(err error) Code {
	if err == nil {
		return OK
	}
	var c coder
	if errors.As(err, &c) {
		return c.code()
	}
	return Failed
}

// Err returns nil for OK and the code itself otherwise.
func (c Code) Err() error {
	if c == OK {
		return nil
	}
	return c
}
