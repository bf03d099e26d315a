package main

/*
#include "h3abi_types.h"
*/
import "C"

import (
	h3abi "github.com/tingold/orb-h3abi"
)

func single(fn func(h3abi.Index, *h3abi.Index) h3abi.Code, h C.H3Index, out *C.H3Index) (code C.H3Error) {
	defer guard(&code)
	var v h3abi.Index
	if c := fn(h3abi.Index(h), &v); c != h3abi.OK {
		return ret(c)
	}
	*out = C.H3Index(v)
	return ret(h3abi.OK)
}

func fixed(fn func(h3abi.Index, []h3abi.Index) h3abi.Code, h C.H3Index, n int64, out *C.H3Index) (code C.H3Error) {
	defer guard(&code)
	buf, c := indexes(out, n)
	if c != h3abi.OK {
		return ret(c)
	}
	return ret(fn(h3abi.Index(h), buf))
}

//export h3abi_areNeighborCells
func h3abi_areNeighborCells(origin, destination C.H3Index, out *C.int) (code C.H3Error) {
	defer guard(&code)
	var ok bool
	if c := h3abi.AreNeighborCells(h3abi.Index(origin), h3abi.Index(destination), &ok); c != h3abi.OK {
		return ret(c)
	}
	*out = boolToC(ok)
	return ret(h3abi.OK)
}

//export h3abi_cellsToDirectedEdge
func h3abi_cellsToDirectedEdge(origin, destination C.H3Index, out *C.H3Index) (code C.H3Error) {
	defer guard(&code)
	var e h3abi.Index
	if c := h3abi.CellsToDirectedEdge(h3abi.Index(origin), h3abi.Index(destination), &e); c != h3abi.OK {
		return ret(c)
	}
	*out = C.H3Index(e)
	return ret(h3abi.OK)
}

//export h3abi_isValidDirectedEdge
func h3abi_isValidDirectedEdge(e C.H3Index) C.int {
	return boolToC(h3abi.IsValidDirectedEdge(h3abi.Index(e)))
}

//export h3abi_getDirectedEdgeOrigin
func h3abi_getDirectedEdgeOrigin(e C.H3Index, out *C.H3Index) C.H3Error {
	return single(h3abi.GetDirectedEdgeOrigin, e, out)
}

//export h3abi_getDirectedEdgeDestination
func h3abi_getDirectedEdgeDestination(e C.H3Index, out *C.H3Index) C.H3Error {
	return single(h3abi.GetDirectedEdgeDestination, e, out)
}

//export h3abi_directedEdgeToCells
func h3abi_directedEdgeToCells(e C.H3Index, out *C.H3Index) C.H3Error {
	return fixed(h3abi.DirectedEdgeToCells, e, 2, out)
}

//export h3abi_originToDirectedEdges
func h3abi_originToDirectedEdges(h C.H3Index, out *C.H3Index) C.H3Error {
	return fixed(h3abi.OriginToDirectedEdges, h, 6, out)
}

//export h3abi_directedEdgeToBoundary
func h3abi_directedEdgeToBoundary(e C.H3Index, out *C.CellBoundary) (code C.H3Error) {
	defer guard(&code)
	var b h3abi.CellBoundary
	if c := h3abi.DirectedEdgeToBoundary(h3abi.Index(e), &b); c != h3abi.OK {
		return ret(c)
	}
	boundaryToC(&b, out)
	return ret(h3abi.OK)
}

//export h3abi_edgeLengthRads
func h3abi_edgeLengthRads(e C.H3Index, out *C.double) C.H3Error {
	return area(h3abi.EdgeLengthRads, e, out)
}

//export h3abi_edgeLengthKm
func h3abi_edgeLengthKm(e C.H3Index, out *C.double) C.H3Error {
	return area(h3abi.EdgeLengthKm, e, out)
}

//export h3abi_edgeLengthM
func h3abi_edgeLengthM(e C.H3Index, out *C.double) C.H3Error {
	return area(h3abi.EdgeLengthM, e, out)
}

//export h3abi_isValidVertex
func h3abi_isValidVertex(v C.H3Index) C.int {
	return boolToC(h3abi.IsValidVertex(h3abi.Index(v)))
}

//export h3abi_cellToVertex
func h3abi_cellToVertex(h C.H3Index, vertexNum C.int, out *C.H3Index) (code C.H3Error) {
	defer guard(&code)
	var v h3abi.Index
	if c := h3abi.CellToVertex(h3abi.Index(h), int(vertexNum), &v); c != h3abi.OK {
		return ret(c)
	}
	*out = C.H3Index(v)
	return ret(h3abi.OK)
}

//export h3abi_cellToVertexes
func h3abi_cellToVertexes(h C.H3Index, out *C.H3Index) C.H3Error {
	return fixed(h3abi.CellToVertexes, h, 6, out)
}

//export h3abi_vertexToLatLng
func h3abi_vertexToLatLng(v C.H3Index, out *C.LatLng) (code C.H3Error) {
	defer guard(&code)
	var ll h3abi.LatLng
	if c := h3abi.VertexToLatLng(h3abi.Index(v), &ll); c != h3abi.OK {
		return ret(c)
	}
	latLngToC(ll, out)
	return ret(h3abi.OK)
}
