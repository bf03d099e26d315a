package h3abi

import (
	"math"
	"math/bits"
	"unsafe"
)

// requireLen checks a caller buffer against the size promised by the
// matching sizing function. It is called once per operation, before any
// element is written.
func requireLen[T any](buf []T, need int64) error {
	if int64(len(buf)) < need {
		return &BufferError{Need: need, Have: int64(len(buf))}
	}
	return nil
}

// batchSize is the length of count back-to-back windows of per slots. A
// product past int64 is a Domain error.
func batchSize(per, count int64) (int64, error) {
	if count < 0 {
		return 0, &DomainError{Arg: "batch count", Value: count}
	}
	hi, lo := bits.Mul64(uint64(per), uint64(count))
	if per < 0 || hi != 0 || lo > math.MaxInt64 {
		return 0, &DomainError{Arg: "batch count", Value: count}
	}
	return int64(lo), nil
}

// fillNull marks every slot of buf as empty.
func fillNull(buf []Index) {
	for i := range buf {
		buf[i] = Null
	}
}

// fillFaces marks every slot of a face buffer as unused.
func fillFaces(buf []int32) {
	for i := range buf {
		buf[i] = -1
	}
}

// validateCells checks every element of a bulk input before any of it is
// consumed. With skipNull, Null entries are accepted as holes.
func validateCells(cells []Index, skipNull bool) error {
	for _, h := range cells {
		if h == Null && skipNull {
			continue
		}
		if !isValidCell(h) {
			return &IndexError{Index: h, Kind: KindCell}
		}
	}
	return nil
}

func validateCell(h Index) error {
	if !isValidCell(h) {
		return &IndexError{Index: h, Kind: KindCell}
	}
	return nil
}

func validateRes(res int) error {
	if !validResolution(res) {
		return &ResolutionError{Res: res}
	}
	return nil
}

// View reinterprets n elements of caller memory starting at ptr as a slice.
// It is the bridge between pointer-and-length buffers and the slice based
// functions of this package. A zero length yields an empty slice whatever
// ptr is.
func View[T any](ptr *T, n int64) ([]T, Code) {
	if n < 0 || int64(int(n)) != n {
		return nil, Domain
	}
	if n == 0 {
		return nil, OK
	}
	if ptr == nil {
		return nil, MemoryBounds
	}
	return unsafe.Slice(ptr, int(n)), OK
}
