package h3abi

import (
	"fmt"
)

// IndexKind names the interpretation an index was validated against.
type IndexKind int

const (
	KindCell IndexKind = iota
	KindDirectedEdge
	KindUndirectedEdge
	KindVertex
)

func (k IndexKind) String() string {
	switch k {
	case KindCell:
		return "cell"
	case KindDirectedEdge:
		return "directed edge"
	case KindUndirectedEdge:
		return "undirected edge"
	case KindVertex:
		return "vertex"
	}
	return "index"
}

// IndexError reports an index that is not valid for the expected kind.
type IndexError struct {
	Index Index
	Kind  IndexKind
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("h3abi: invalid %s %s", e.Kind, e.Index)
}

func (e *IndexError) code() Code {
	switch e.Kind {
	case KindDirectedEdge:
		return DirEdgeInvalid
	case KindUndirectedEdge:
		return UndirEdgeInvalid
	case KindVertex:
		return VertexInvalid
	}
	return CellInvalid
}

// ResolutionError reports a resolution outside 0..15.
type ResolutionError struct {
	Res int
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("h3abi: resolution %d out of range", e.Res)
}

func (e *ResolutionError) code() Code { return ResDomain }

// LatLngError reports a non-finite coordinate.
type LatLngError struct {
	LatLng LatLng
}

func (e *LatLngError) Error() string {
	return fmt.Sprintf("h3abi: invalid coordinate (%g, %g)", e.LatLng.Lat, e.LatLng.Lng)
}

func (e *LatLngError) code() Code { return LatLngDomain }

// DomainError reports a scalar argument outside its domain.
type DomainError struct {
	Arg   string
	Value int64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("h3abi: %s %d out of domain", e.Arg, e.Value)
}

func (e *DomainError) code() Code { return Domain }

// OptionError reports an unsupported mode or flag value.
type OptionError struct {
	Arg   string
	Value uint32
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("h3abi: unsupported %s %d", e.Arg, e.Value)
}

func (e *OptionError) code() Code { return OptionInvalid }

// MismatchError reports indexes whose resolutions cannot be combined.
type MismatchError struct {
	Want int
	Got  int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("h3abi: resolution %d incompatible with %d", e.Got, e.Want)
}

func (e *MismatchError) code() Code { return ResMismatch }

// CompactionReason tells why a cell set could not be compacted.
type CompactionReason int

const (
	Heterogeneous CompactionReason = iota
	Duplicate
)

// CompactionError reports a cell set that is not a valid compaction input.
type CompactionError struct {
	Reason CompactionReason
	Index  Index
}

func (e *CompactionError) Error() string {
	if e.Reason == Duplicate {
		return fmt.Sprintf("h3abi: duplicate cell %s", e.Index)
	}
	return fmt.Sprintf("h3abi: cell %s has a different resolution", e.Index)
}

func (e *CompactionError) code() Code {
	if e.Reason == Duplicate {
		return DuplicateInput
	}
	return ResMismatch
}

// TraversalReason tells why a cell could not be placed relative to another.
type TraversalReason int

const (
	// NearPentagon means pentagon distortion was met on the fast path.
	NearPentagon TraversalReason = iota
	// Unrelatable means the engine has no local frame covering both cells.
	Unrelatable
)

// TraversalError reports a failed placement in a local grid frame.
type TraversalError struct {
	Op     string
	Reason TraversalReason
	Origin Index
	Target Index
}

func (e *TraversalError) Error() string {
	if e.Reason == NearPentagon {
		return fmt.Sprintf("h3abi: %s: pentagon distortion around %s", e.Op, e.Origin)
	}
	return fmt.Sprintf("h3abi: %s: cannot relate %s to %s", e.Op, e.Target, e.Origin)
}

func (e *TraversalError) code() Code {
	if e.Reason == NearPentagon {
		return Pentagon
	}
	return Failed
}

// NeighborError reports two cells that share no edge.
type NeighborError struct {
	Origin      Index
	Destination Index
}

func (e *NeighborError) Error() string {
	return fmt.Sprintf("h3abi: %s and %s are not neighbors", e.Origin, e.Destination)
}

func (e *NeighborError) code() Code { return NotNeighbors }

// BufferError reports a caller buffer shorter than the promised size.
type BufferError struct {
	Need int64
	Have int64
}

func (e *BufferError) Error() string {
	return fmt.Sprintf("h3abi: buffer holds %d elements, need %d", e.Have, e.Need)
}

func (e *BufferError) code() Code { return MemoryBounds }

// AllocError reports an allocator that could not provide memory.
type AllocError struct {
	Need int
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("h3abi: cannot allocate %d vertices", e.Need)
}

func (e *AllocError) code() Code { return MemoryAlloc }

// EngineError wraps a failure reported by the grid engine. Code follows the
// engine's own error when it names one, and otherwise the classification
// chosen where the call was made.
type EngineError struct {
	Op   string
	Code Code
	Err  error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("h3abi: engine %s: %v", e.Op, e.Err)
}

func (e *EngineError) Unwrap() error { return e.Err }

func (e *EngineError) code() Code {
	if e.Code == OK {
		return Failed
	}
	return e.Code
}
