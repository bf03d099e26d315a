package main

/*
#include "h3abi_types.h"
*/
import "C"

import (
	"unsafe"

	h3abi "github.com/tingold/orb-h3abi"
)

// Names for the C types, so Go code without cgo can drive the exports.
type (
	cError        = C.H3Error
	cIndex        = C.H3Index
	cInt64        = C.int64_t
	cOutline      = C.FlatMultiPolygon
	cTaggedVertex = C.TaggedVertex
)

// cIndexes copies cells into one C.malloc block, or returns nil when cells
// is empty or the allocation fails. Release it with freeC.
func cIndexes(cells []h3abi.Index) *cIndex {
	if len(cells) == 0 {
		return nil
	}
	p := (*cIndex)(C.malloc(C.size_t(len(cells)) * C.size_t(unsafe.Sizeof(cIndex(0)))))
	if p == nil {
		return nil
	}
	copy(unsafe.Slice((*h3abi.Index)(unsafe.Pointer(p)), len(cells)), cells)
	return p
}

func freeC(p *cIndex) {
	C.free(unsafe.Pointer(p))
}
