// Command libh3abi builds the C shared library exposing package h3abi:
//
//	go build -buildmode=c-shared -o libh3abi.so ./cmd/libh3abi
//
// Every exported symbol is prefixed with h3abi_ so the library can be loaded
// next to the H3 C library it embeds.
package main

/*
#include "h3abi_types.h"
*/
import "C"

import (
	"log/slog"
	"os"
	"unsafe"

	"github.com/joho/godotenv"
	h3abi "github.com/tingold/orb-h3abi"
	"github.com/tingold/orb-h3abi/internal/logging"
)

// init configures logging from the host's environment only. The library
// never writes to that environment.
func init() {
	logging.Setup()
}

// dotenvLookup resolves settings from the host environment first and the
// parsed dotenv file second.
func dotenvLookup(file map[string]string) func(string) string {
	return func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return file[key]
	}
}

// h3abi_configureLogging reconfigures logging from a dotenv file. The file
// is read, not exported; variables the host already set take precedence.
// A NULL path reverts to the host environment alone.
//
//export h3abi_configureLogging
func h3abi_configureLogging(path *C.char) (code C.H3Error) {
	defer guard(&code)
	if path == nil {
		logging.Setup()
		return ret(h3abi.OK)
	}
	file, err := godotenv.Read(C.GoString(path))
	if err != nil {
		slog.Warn("h3abi_dotenv_unreadable", "err", err)
		return ret(h3abi.Failed)
	}
	logging.SetupFrom(dotenvLookup(file))
	return ret(h3abi.OK)
}

func main() {}

// guard turns a panic into Failed so nothing unwinds into C.
func guard(code *C.H3Error) {
	if r := recover(); r != nil {
		slog.Error("h3abi_panic", "recovered", r)
		*code = C.H3Error(h3abi.Failed)
	}
}

func ret(c h3abi.Code) C.H3Error { return C.H3Error(c) }

func indexes(p *C.H3Index, n int64) ([]h3abi.Index, h3abi.Code) {
	return h3abi.View((*h3abi.Index)(unsafe.Pointer(p)), n)
}

func ints(p *C.int, n int64) ([]int32, h3abi.Code) {
	return h3abi.View((*int32)(unsafe.Pointer(p)), n)
}

func latLngFromC(ll C.LatLng) h3abi.LatLng {
	return h3abi.LatLng{Lat: float64(ll.lat), Lng: float64(ll.lng)}
}

func latLngToC(ll h3abi.LatLng, out *C.LatLng) {
	out.lat = C.double(ll.Lat)
	out.lng = C.double(ll.Lng)
}

func boundaryToC(b *h3abi.CellBoundary, out *C.CellBoundary) {
	out.numVerts = C.int(b.NumVerts)
	for i, ll := range b.Slice() {
		latLngToC(ll, &out.verts[i])
	}
}

func loopFromC(loop C.GeoLoop) (h3abi.GeoLoop, h3abi.Code) {
	verts, c := h3abi.View((*h3abi.LatLng)(unsafe.Pointer(loop.verts)), int64(loop.numVerts))
	return h3abi.GeoLoop(verts), c
}

func polygonFromC(p *C.GeoPolygon) (h3abi.GeoPolygon, h3abi.Code) {
	var out h3abi.GeoPolygon
	if p == nil {
		return out, h3abi.Failed
	}
	outer, c := loopFromC(p.geoloop)
	if c != h3abi.OK {
		return out, c
	}
	out.GeoLoop = outer
	holes, c := h3abi.View((*C.GeoLoop)(unsafe.Pointer(p.holes)), int64(p.numHoles))
	if c != h3abi.OK {
		return out, c
	}
	for _, h := range holes {
		loop, c := loopFromC(h)
		if c != h3abi.OK {
			return out, c
		}
		out.Holes = append(out.Holes, loop)
	}
	return out, h3abi.OK
}
