package h3abi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeValuesAreStable(t *testing.T) {
	// The numeric values cross the C boundary.
	assert.EqualValues(t, 0, OK)
	assert.EqualValues(t, 5, CellInvalid)
	assert.EqualValues(t, 9, Pentagon)
	assert.EqualValues(t, 14, MemoryBounds)
	assert.EqualValues(t, 15, OptionInvalid)
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "OK", OK.String())
	assert.Equal(t, "ResMismatch", ResMismatch.String())
	assert.Equal(t, "Code(99)", Code(99).String())
	assert.Equal(t, "h3abi: NotNeighbors", NotNeighbors.Error())
}

func TestCodeErr(t *testing.T) {
	require.NoError(t, OK.Err())
	err := Domain.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, Domain))
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, OK},
		{"plain error", errors.New("boom"), Failed},
		{"code", MemoryAlloc, MemoryAlloc},
		{"cell", &IndexError{Index: 1, Kind: KindCell}, CellInvalid},
		{"directed edge", &IndexError{Index: 1, Kind: KindDirectedEdge}, DirEdgeInvalid},
		{"undirected edge", &IndexError{Index: 1, Kind: KindUndirectedEdge}, UndirEdgeInvalid},
		{"vertex", &IndexError{Index: 1, Kind: KindVertex}, VertexInvalid},
		{"resolution", &ResolutionError{Res: 16}, ResDomain},
		{"coordinate", &LatLngError{}, LatLngDomain},
		{"domain", &DomainError{Arg: "k", Value: -1}, Domain},
		{"option", &OptionError{Arg: "mode", Value: 1}, OptionInvalid},
		{"mismatch", &MismatchError{Want: 9, Got: 10}, ResMismatch},
		{"heterogeneous", &CompactionError{Reason: Heterogeneous}, ResMismatch},
		{"duplicate", &CompactionError{Reason: Duplicate}, DuplicateInput},
		{"pentagon", &TraversalError{Reason: NearPentagon}, Pentagon},
		{"unrelatable", &TraversalError{Reason: Unrelatable}, Failed},
		{"neighbors", &NeighborError{}, NotNeighbors},
		{"buffer", &BufferError{Need: 7, Have: 6}, MemoryBounds},
		{"alloc", &AllocError{Need: 3}, MemoryAlloc},
		{"engine", &EngineError{Op: "x", Code: LatLngDomain, Err: errors.New("e")}, LatLngDomain},
		{"engine unclassified", &EngineError{Op: "x", Err: errors.New("e")}, Failed},
		{"wrapped", fmt.Errorf("context: %w", &BufferError{}), MemoryBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codeOf(tt.err))
		})
	}
}

func TestEngineErrorUnwrap(t *testing.T) {
	inner := errors.New("engine failure")
	err := error(&EngineError{Op: "gridDisk", Err: inner})
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "gridDisk")
}
