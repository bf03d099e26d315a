package main

/*
#include "h3abi_types.h"
*/
import "C"

import (
	"unsafe"

	h3abi "github.com/tingold/orb-h3abi"
)

func boolToC(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

//export h3abi_isValidCell
func h3abi_isValidCell(h C.H3Index) C.int {
	return boolToC(h3abi.IsValidCell(h3abi.Index(h)))
}

//export h3abi_getResolution
func h3abi_getResolution(h C.H3Index) C.int {
	return C.int(h3abi.GetResolution(h3abi.Index(h)))
}

//export h3abi_getBaseCellNumber
func h3abi_getBaseCellNumber(h C.H3Index) C.int {
	return C.int(h3abi.GetBaseCellNumber(h3abi.Index(h)))
}

//export h3abi_isPentagon
func h3abi_isPentagon(h C.H3Index) C.int {
	return boolToC(h3abi.IsPentagon(h3abi.Index(h)))
}

//export h3abi_isResClassIII
func h3abi_isResClassIII(h C.H3Index) C.int {
	return boolToC(h3abi.IsResClassIII(h3abi.Index(h)))
}

//export h3abi_latLngToCell
func h3abi_latLngToCell(g *C.LatLng, res C.int, out *C.H3Index) (code C.H3Error) {
	defer guard(&code)
	if g == nil {
		return ret(h3abi.Failed)
	}
	var h h3abi.Index
	if c := h3abi.LatLngToCell(latLngFromC(*g), int(res), &h); c != h3abi.OK {
		return ret(c)
	}
	*out = C.H3Index(h)
	return ret(h3abi.OK)
}

//export h3abi_cellToLatLng
func h3abi_cellToLatLng(h C.H3Index, out *C.LatLng) (code C.H3Error) {
	defer guard(&code)
	var ll h3abi.LatLng
	if c := h3abi.CellToLatLng(h3abi.Index(h), &ll); c != h3abi.OK {
		return ret(c)
	}
	latLngToC(ll, out)
	return ret(h3abi.OK)
}

//export h3abi_cellToBoundary
func h3abi_cellToBoundary(h C.H3Index, out *C.CellBoundary) (code C.H3Error) {
	defer guard(&code)
	var b h3abi.CellBoundary
	if c := h3abi.CellToBoundary(h3abi.Index(h), &b); c != h3abi.OK {
		return ret(c)
	}
	boundaryToC(&b, out)
	return ret(h3abi.OK)
}

//export h3abi_cellToParent
func h3abi_cellToParent(h C.H3Index, res C.int, out *C.H3Index) (code C.H3Error) {
	defer guard(&code)
	var p h3abi.Index
	if c := h3abi.CellToParent(h3abi.Index(h), int(res), &p); c != h3abi.OK {
		return ret(c)
	}
	*out = C.H3Index(p)
	return ret(h3abi.OK)
}

//export h3abi_cellToCenterChild
func h3abi_cellToCenterChild(h C.H3Index, res C.int, out *C.H3Index) (code C.H3Error) {
	defer guard(&code)
	var child h3abi.Index
	if c := h3abi.CellToCenterChild(h3abi.Index(h), int(res), &child); c != h3abi.OK {
		return ret(c)
	}
	*out = C.H3Index(child)
	return ret(h3abi.OK)
}

//export h3abi_cellToChildrenSize
func h3abi_cellToChildrenSize(h C.H3Index, res C.int, out *C.int64_t) (code C.H3Error) {
	defer guard(&code)
	var n int64
	if c := h3abi.CellToChildrenSize(h3abi.Index(h), int(res), &n); c != h3abi.OK {
		return ret(c)
	}
	*out = C.int64_t(n)
	return ret(h3abi.OK)
}

//export h3abi_cellToChildren
func h3abi_cellToChildren(h C.H3Index, res C.int, out *C.H3Index) (code C.H3Error) {
	defer guard(&code)
	var n int64
	if c := h3abi.CellToChildrenSize(h3abi.Index(h), int(res), &n); c != h3abi.OK {
		return ret(c)
	}
	buf, c := indexes(out, n)
	if c != h3abi.OK {
		return ret(c)
	}
	return ret(h3abi.CellToChildren(h3abi.Index(h), int(res), buf))
}

//export h3abi_cellToChildPos
func h3abi_cellToChildPos(child C.H3Index, parentRes C.int, out *C.int64_t) (code C.H3Error) {
	defer guard(&code)
	var pos int64
	if c := h3abi.CellToChildPos(h3abi.Index(child), int(parentRes), &pos); c != h3abi.OK {
		return ret(c)
	}
	*out = C.int64_t(pos)
	return ret(h3abi.OK)
}

//export h3abi_childPosToCell
func h3abi_childPosToCell(childPos C.int64_t, parent C.H3Index, childRes C.int, out *C.H3Index) (code C.H3Error) {
	defer guard(&code)
	var child h3abi.Index
	if c := h3abi.ChildPosToCell(int64(childPos), h3abi.Index(parent), int(childRes), &child); c != h3abi.OK {
		return ret(c)
	}
	*out = C.H3Index(child)
	return ret(h3abi.OK)
}

//export h3abi_maxFaceCount
func h3abi_maxFaceCount(h C.H3Index, out *C.int) (code C.H3Error) {
	defer guard(&code)
	var n int
	if c := h3abi.MaxFaceCount(h3abi.Index(h), &n); c != h3abi.OK {
		return ret(c)
	}
	*out = C.int(n)
	return ret(h3abi.OK)
}

//export h3abi_getIcosahedronFaces
func h3abi_getIcosahedronFaces(h C.H3Index, out *C.int) (code C.H3Error) {
	defer guard(&code)
	var n int
	if c := h3abi.MaxFaceCount(h3abi.Index(h), &n); c != h3abi.OK {
		return ret(c)
	}
	buf, c := ints(out, int64(n))
	if c != h3abi.OK {
		return ret(c)
	}
	return ret(h3abi.GetIcosahedronFaces(h3abi.Index(h), buf))
}

func area(fn func(h3abi.Index, *float64) h3abi.Code, h C.H3Index, out *C.double) (code C.H3Error) {
	defer guard(&code)
	var v float64
	if c := fn(h3abi.Index(h), &v); c != h3abi.OK {
		return ret(c)
	}
	*out = C.double(v)
	return ret(h3abi.OK)
}

//export h3abi_cellAreaRads2
func h3abi_cellAreaRads2(h C.H3Index, out *C.double) C.H3Error {
	return area(h3abi.CellAreaRads2, h, out)
}

//export h3abi_cellAreaKm2
func h3abi_cellAreaKm2(h C.H3Index, out *C.double) C.H3Error {
	return area(h3abi.CellAreaKm2, h, out)
}

//export h3abi_cellAreaM2
func h3abi_cellAreaM2(h C.H3Index, out *C.double) C.H3Error {
	return area(h3abi.CellAreaM2, h, out)
}

//export h3abi_compactCells
func h3abi_compactCells(cells *C.H3Index, out *C.H3Index, numCells C.int64_t) (code C.H3Error) {
	defer guard(&code)
	in, c := indexes(cells, int64(numCells))
	if c != h3abi.OK {
		return ret(c)
	}
	buf, c := indexes(out, int64(numCells))
	if c != h3abi.OK {
		return ret(c)
	}
	return ret(h3abi.CompactCells(in, buf))
}

//export h3abi_uncompactCellsSize
func h3abi_uncompactCellsSize(cells *C.H3Index, numCells C.int64_t, res C.int, out *C.int64_t) (code C.H3Error) {
	defer guard(&code)
	in, c := indexes(cells, int64(numCells))
	if c != h3abi.OK {
		return ret(c)
	}
	var n int64
	if c := h3abi.UncompactCellsSize(in, int(res), &n); c != h3abi.OK {
		return ret(c)
	}
	*out = C.int64_t(n)
	return ret(h3abi.OK)
}

//export h3abi_uncompactCells
func h3abi_uncompactCells(cells *C.H3Index, numCells C.int64_t, out *C.H3Index, numOut C.int64_t, res C.int) (code C.H3Error) {
	defer guard(&code)
	in, c := indexes(cells, int64(numCells))
	if c != h3abi.OK {
		return ret(c)
	}
	buf, c := indexes(out, int64(numOut))
	if c != h3abi.OK {
		return ret(c)
	}
	return ret(h3abi.UncompactCells(in, int(res), buf))
}

//export h3abi_h3ToString
func h3abi_h3ToString(h C.H3Index, str *C.char, sz C.size_t) (code C.H3Error) {
	defer guard(&code)
	buf, c := h3abi.View((*byte)(unsafe.Pointer(str)), int64(sz))
	if c != h3abi.OK {
		return ret(c)
	}
	return ret(h3abi.IndexToString(h3abi.Index(h), buf))
}

//export h3abi_stringToH3
func h3abi_stringToH3(str *C.char, out *C.H3Index) (code C.H3Error) {
	defer guard(&code)
	if str == nil {
		return ret(h3abi.Failed)
	}
	var h h3abi.Index
	if c := h3abi.StringToIndex(C.GoString(str), &h); c != h3abi.OK {
		return ret(c)
	}
	*out = C.H3Index(h)
	return ret(h3abi.OK)
}

//export h3abi_cellToLocalIj
func h3abi_cellToLocalIj(origin, h C.H3Index, mode C.uint32_t, out *C.CoordIJ) (code C.H3Error) {
	defer guard(&code)
	var ij h3abi.CoordIJ
	if c := h3abi.CellToLocalIJ(h3abi.Index(origin), h3abi.Index(h), uint32(mode), &ij); c != h3abi.OK {
		return ret(c)
	}
	out.i = C.int(ij.I)
	out.j = C.int(ij.J)
	return ret(h3abi.OK)
}

//export h3abi_localIjToCell
func h3abi_localIjToCell(origin C.H3Index, ij *C.CoordIJ, mode C.uint32_t, out *C.H3Index) (code C.H3Error) {
	defer guard(&code)
	if ij == nil {
		return ret(h3abi.Failed)
	}
	var h h3abi.Index
	coord := h3abi.CoordIJ{I: int32(ij.i), J: int32(ij.j)}
	if c := h3abi.LocalIJToCell(h3abi.Index(origin), coord, uint32(mode), &h); c != h3abi.OK {
		return ret(c)
	}
	*out = C.H3Index(h)
	return ret(h3abi.OK)
}

//export h3abi_degsToRads
func h3abi_degsToRads(degrees C.double) C.double {
	return C.double(h3abi.DegsToRads(float64(degrees)))
}

//export h3abi_radsToDegs
func h3abi_radsToDegs(radians C.double) C.double {
	return C.double(h3abi.RadsToDegs(float64(radians)))
}
