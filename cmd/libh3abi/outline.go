package main

/*
#include "h3abi_types.h"
*/
import "C"

import (
	"unsafe"

	h3abi "github.com/tingold/orb-h3abi"
)

// h3abi.Vertex and TaggedVertex must share one layout: outlines built in Go
// are handed to C as TaggedVertex arrays and freed from there. Each array
// length below underflows, failing the build, if the two drift apart.
var (
	_ [unsafe.Sizeof(h3abi.Vertex{}) - unsafe.Sizeof(C.TaggedVertex{})]struct{}
	_ [unsafe.Sizeof(C.TaggedVertex{}) - unsafe.Sizeof(h3abi.Vertex{})]struct{}
	_ [unsafe.Offsetof(h3abi.Vertex{}.Polygon) - unsafe.Offsetof(C.TaggedVertex{}.polygon)]struct{}
	_ [unsafe.Offsetof(C.TaggedVertex{}.polygon) - unsafe.Offsetof(h3abi.Vertex{}.Polygon)]struct{}
	_ [unsafe.Offsetof(h3abi.Vertex{}.Ring) - unsafe.Offsetof(C.TaggedVertex{}.ring)]struct{}
	_ [unsafe.Offsetof(C.TaggedVertex{}.ring) - unsafe.Offsetof(h3abi.Vertex{}.Ring)]struct{}
)

// cAllocator backs outlines with C.malloc so C callers can own them.
type cAllocator struct{}

func (cAllocator) Alloc(n int) []h3abi.Vertex {
	size := C.size_t(n) * C.size_t(unsafe.Sizeof(h3abi.Vertex{}))
	ptr := C.malloc(size)
	if ptr == nil {
		return nil
	}
	return unsafe.Slice((*h3abi.Vertex)(ptr), n)
}

func (cAllocator) Free(verts []h3abi.Vertex) {
	if len(verts) > 0 {
		C.free(unsafe.Pointer(&verts[0]))
	}
}

//export h3abi_cellsToLinkedMultiPolygon
func h3abi_cellsToLinkedMultiPolygon(cells *C.H3Index, numCells C.int64_t, out *C.FlatMultiPolygon) (code C.H3Error) {
	defer guard(&code)
	in, c := indexes(cells, int64(numCells))
	if c != h3abi.OK {
		return ret(c)
	}
	var mp h3abi.LinkedMultiPolygon
	if c := h3abi.CellsToLinkedMultiPolygonWith(in, cAllocator{}, &mp); c != h3abi.OK {
		return ret(c)
	}
	out.numVerts = C.int64_t(len(mp.Verts))
	out.verts = nil
	if len(mp.Verts) > 0 {
		out.verts = (*C.TaggedVertex)(unsafe.Pointer(&mp.Verts[0]))
	}
	return ret(h3abi.OK)
}

// h3abi_destroyLinkedMultiPolygon frees the vertex block of an outline built
// by h3abi_cellsToLinkedMultiPolygon. The FlatMultiPolygon itself belongs to
// the caller and is reset to the empty outline.
//
//export h3abi_destroyLinkedMultiPolygon
func h3abi_destroyLinkedMultiPolygon(mp *C.FlatMultiPolygon) {
	if mp == nil || mp.verts == nil {
		return
	}
	verts := unsafe.Slice((*h3abi.Vertex)(unsafe.Pointer(mp.verts)), int(mp.numVerts))
	cAllocator{}.Free(verts)
	mp.verts = nil
	mp.numVerts = 0
}

//export h3abi_maxPolygonToCellsSize
func h3abi_maxPolygonToCellsSize(poly *C.GeoPolygon, res C.int, flags C.uint32_t, out *C.int64_t) (code C.H3Error) {
	defer guard(&code)
	p, c := polygonFromC(poly)
	if c != h3abi.OK {
		return ret(c)
	}
	var n int64
	if c := h3abi.MaxPolygonToCellsSize(p, int(res), uint32(flags), &n); c != h3abi.OK {
		return ret(c)
	}
	*out = C.int64_t(n)
	return ret(h3abi.OK)
}

//export h3abi_polygonToCells
func h3abi_polygonToCells(poly *C.GeoPolygon, res C.int, flags C.uint32_t, out *C.H3Index) (code C.H3Error) {
	defer guard(&code)
	p, c := polygonFromC(poly)
	if c != h3abi.OK {
		return ret(c)
	}
	cells, c := h3abi.FillPolygon(p, int(res), uint32(flags))
	if c != h3abi.OK {
		return ret(c)
	}
	buf, c := indexes(out, int64(len(cells)))
	if c != h3abi.OK {
		return ret(c)
	}
	copy(buf, cells)
	return ret(h3abi.OK)
}
