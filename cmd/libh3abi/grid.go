package main

/*
#include "h3abi_types.h"
*/
import "C"

import (
	h3abi "github.com/tingold/orb-h3abi"
)

// diskBuffers views the caller's disk buffers, sized by maxGridDiskSize(k)
// per origin. dists may be NULL.
func diskBuffers(k C.int, origins int64, out *C.H3Index, dists *C.int) ([]h3abi.Index, []int32, h3abi.Code) {
	var size, total int64
	if c := h3abi.MaxGridDiskSize(int(k), &size); c != h3abi.OK {
		return nil, nil, c
	}
	if c := h3abi.GridDisksSize(int(k), origins, &total); c != h3abi.OK {
		return nil, nil, c
	}
	cells, c := indexes(out, total)
	if c != h3abi.OK {
		return nil, nil, c
	}
	if dists == nil {
		return cells, nil, h3abi.OK
	}
	ds, c := ints(dists, size)
	return cells, ds, c
}

type diskFunc func(h3abi.Index, int, []h3abi.Index, []int32) h3abi.Code

func disk(fn diskFunc, origin C.H3Index, k C.int, out *C.H3Index, dists *C.int) C.H3Error {
	cells, ds, c := diskBuffers(k, 1, out, dists)
	if c != h3abi.OK {
		return ret(c)
	}
	return ret(fn(h3abi.Index(origin), int(k), cells, ds))
}

//export h3abi_maxGridDiskSize
func h3abi_maxGridDiskSize(k C.int, out *C.int64_t) (code C.H3Error) {
	defer guard(&code)
	var n int64
	if c := h3abi.MaxGridDiskSize(int(k), &n); c != h3abi.OK {
		return ret(c)
	}
	*out = C.int64_t(n)
	return ret(h3abi.OK)
}

//export h3abi_gridDisk
func h3abi_gridDisk(origin C.H3Index, k C.int, out *C.H3Index) (code C.H3Error) {
	defer guard(&code)
	return disk(h3abi.GridDiskDistances, origin, k, out, nil)
}

//export h3abi_gridDiskDistances
func h3abi_gridDiskDistances(origin C.H3Index, k C.int, out *C.H3Index, distances *C.int) (code C.H3Error) {
	defer guard(&code)
	return disk(h3abi.GridDiskDistances, origin, k, out, distances)
}

//export h3abi_gridDiskDistancesSafe
func h3abi_gridDiskDistancesSafe(origin C.H3Index, k C.int, out *C.H3Index, distances *C.int) (code C.H3Error) {
	defer guard(&code)
	return disk(h3abi.GridDiskDistancesSafe, origin, k, out, distances)
}

//export h3abi_gridDiskDistancesUnsafe
func h3abi_gridDiskDistancesUnsafe(origin C.H3Index, k C.int, out *C.H3Index, distances *C.int) (code C.H3Error) {
	defer guard(&code)
	return disk(h3abi.GridDiskDistancesUnsafe, origin, k, out, distances)
}

//export h3abi_gridDiskUnsafe
func h3abi_gridDiskUnsafe(origin C.H3Index, k C.int, out *C.H3Index) (code C.H3Error) {
	defer guard(&code)
	return disk(h3abi.GridDiskDistancesUnsafe, origin, k, out, nil)
}

//export h3abi_gridDisksUnsafe
func h3abi_gridDisksUnsafe(origins *C.H3Index, length C.int, k C.int, out *C.H3Index) (code C.H3Error) {
	defer guard(&code)
	in, c := indexes(origins, int64(length))
	if c != h3abi.OK {
		return ret(c)
	}
	cells, _, c := diskBuffers(k, int64(len(in)), out, nil)
	if c != h3abi.OK {
		return ret(c)
	}
	return ret(h3abi.GridDisksUnsafe(in, int(k), cells))
}

func ringBuffer(k C.int, out *C.H3Index) ([]h3abi.Index, h3abi.Code) {
	if k < 0 {
		return nil, h3abi.Domain
	}
	size := 6 * int64(k)
	if k == 0 {
		size = 1
	}
	return indexes(out, size)
}

//export h3abi_gridRingUnsafe
func h3abi_gridRingUnsafe(origin C.H3Index, k C.int, out *C.H3Index) (code C.H3Error) {
	defer guard(&code)
	buf, c := ringBuffer(k, out)
	if c != h3abi.OK {
		return ret(c)
	}
	return ret(h3abi.GridRingUnsafe(h3abi.Index(origin), int(k), buf))
}

//export h3abi_gridRing
func h3abi_gridRing(origin C.H3Index, k C.int, out *C.H3Index) (code C.H3Error) {
	defer guard(&code)
	buf, c := ringBuffer(k, out)
	if c != h3abi.OK {
		return ret(c)
	}
	return ret(h3abi.GridRing(h3abi.Index(origin), int(k), buf))
}

//export h3abi_gridDistance
func h3abi_gridDistance(origin, h C.H3Index, distance *C.int64_t) (code C.H3Error) {
	defer guard(&code)
	var d int64
	if c := h3abi.GridDistance(h3abi.Index(origin), h3abi.Index(h), &d); c != h3abi.OK {
		return ret(c)
	}
	*distance = C.int64_t(d)
	return ret(h3abi.OK)
}

//export h3abi_gridPathCellsSize
func h3abi_gridPathCellsSize(start, end C.H3Index, size *C.int64_t) (code C.H3Error) {
	defer guard(&code)
	var n int64
	if c := h3abi.GridPathCellsSize(h3abi.Index(start), h3abi.Index(end), &n); c != h3abi.OK {
		return ret(c)
	}
	*size = C.int64_t(n)
	return ret(h3abi.OK)
}

//export h3abi_gridPathCells
func h3abi_gridPathCells(start, end C.H3Index, out *C.H3Index) (code C.H3Error) {
	defer guard(&code)
	var n int64
	if c := h3abi.GridPathCellsSize(h3abi.Index(start), h3abi.Index(end), &n); c != h3abi.OK {
		return ret(c)
	}
	buf, c := indexes(out, n)
	if c != h3abi.OK {
		return ret(c)
	}
	return ret(h3abi.GridPathCells(h3abi.Index(start), h3abi.Index(end), buf))
}
