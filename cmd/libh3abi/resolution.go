package main

/*
#include "h3abi_types.h"
*/
import "C"

import (
	"math"

	h3abi "github.com/tingold/orb-h3abi"
)

func perRes(fn func(int, *float64) h3abi.Code, res C.int, out *C.double) (code C.H3Error) {
	defer guard(&code)
	var v float64
	if c := fn(int(res), &v); c != h3abi.OK {
		return ret(c)
	}
	*out = C.double(v)
	return ret(h3abi.OK)
}

//export h3abi_getHexagonAreaAvgKm2
func h3abi_getHexagonAreaAvgKm2(res C.int, out *C.double) C.H3Error {
	return perRes(h3abi.GetHexagonAreaAvgKm2, res, out)
}

//export h3abi_getHexagonAreaAvgM2
func h3abi_getHexagonAreaAvgM2(res C.int, out *C.double) C.H3Error {
	return perRes(h3abi.GetHexagonAreaAvgM2, res, out)
}

//export h3abi_getHexagonEdgeLengthAvgKm
func h3abi_getHexagonEdgeLengthAvgKm(res C.int, out *C.double) C.H3Error {
	return perRes(h3abi.GetHexagonEdgeLengthAvgKm, res, out)
}

//export h3abi_getHexagonEdgeLengthAvgM
func h3abi_getHexagonEdgeLengthAvgM(res C.int, out *C.double) C.H3Error {
	return perRes(h3abi.GetHexagonEdgeLengthAvgM, res, out)
}

//export h3abi_getNumCells
func h3abi_getNumCells(res C.int, out *C.int64_t) (code C.H3Error) {
	defer guard(&code)
	var n int64
	if c := h3abi.GetNumCells(int(res), &n); c != h3abi.OK {
		return ret(c)
	}
	*out = C.int64_t(n)
	return ret(h3abi.OK)
}

//export h3abi_res0CellCount
func h3abi_res0CellCount() C.int {
	return C.int(h3abi.Res0CellCount())
}

//export h3abi_pentagonCount
func h3abi_pentagonCount() C.int {
	return C.int(h3abi.PentagonCount())
}

//export h3abi_getRes0Cells
func h3abi_getRes0Cells(out *C.H3Index) (code C.H3Error) {
	defer guard(&code)
	buf, c := indexes(out, int64(h3abi.Res0CellCount()))
	if c != h3abi.OK {
		return ret(c)
	}
	return ret(h3abi.GetRes0Cells(buf))
}

//export h3abi_getPentagons
func h3abi_getPentagons(res C.int, out *C.H3Index) (code C.H3Error) {
	defer guard(&code)
	buf, c := indexes(out, int64(h3abi.PentagonCount()))
	if c != h3abi.OK {
		return ret(c)
	}
	return ret(h3abi.GetPentagons(int(res), buf))
}

func distance(fn func(a, b h3abi.LatLng) float64, a, b *C.LatLng) C.double {
	if a == nil || b == nil {
		return C.double(math.NaN())
	}
	return C.double(fn(latLngFromC(*a), latLngFromC(*b)))
}

//export h3abi_greatCircleDistanceRads
func h3abi_greatCircleDistanceRads(a, b *C.LatLng) C.double {
	return distance(h3abi.GreatCircleDistanceRads, a, b)
}

//export h3abi_greatCircleDistanceKm
func h3abi_greatCircleDistanceKm(a, b *C.LatLng) C.double {
	return distance(h3abi.GreatCircleDistanceKm, a, b)
}

//export h3abi_greatCircleDistanceM
func h3abi_greatCircleDistanceM(a, b *C.LatLng) C.double {
	return distance(h3abi.GreatCircleDistanceM, a, b)
}
