package h3abi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	h3 "github.com/uber/h3-go/v4"
)

func TestClassifyEngineErr(t *testing.T) {
	tests := []struct {
		err      error
		fallback Code
		want     Code
	}{
		{h3.ErrPentagon, Failed, Pentagon},
		{fmt.Errorf("wrapped: %w", h3.ErrPentagon), Failed, Pentagon},
		{h3.ErrCellInvalid, Failed, CellInvalid},
		{h3.ErrRsolutionMismatch, Failed, ResMismatch},
		{h3.ErrResolutionDomain, Domain, ResDomain},
		{h3.ErrDomain, ResMismatch, Domain},
		{h3.ErrFailed, DirEdgeInvalid, DirEdgeInvalid},
		{h3.ErrUnknown, Failed, Failed},
		{errors.New("other"), LatLngDomain, LatLngDomain},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyEngineErr(tt.err, tt.fallback), "%v", tt.err)
	}
}

func TestEngineErr(t *testing.T) {
	err := engineErr("gridDisk", Failed, h3.ErrPentagon)
	assert.Equal(t, Pentagon, codeOf(err))
	assert.ErrorIs(t, err, h3.ErrPentagon)

	var ee *EngineError
	assert.ErrorAs(t, err, &ee)
	assert.Equal(t, "gridDisk", ee.Op)

	assert.Equal(t, CellInvalid, codeOf(engineErr("cellToLatLng", CellInvalid, h3.ErrFailed)))
}
