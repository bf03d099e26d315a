package h3abi

import (
	"github.com/paulmach/orb"
)

func checkPolygon(poly GeoPolygon, res int, flags uint32) error {
	if flags != 0 {
		return &OptionError{Arg: "flags", Value: flags}
	}
	if err := validateRes(res); err != nil {
		return err
	}
	for _, loop := range append([]GeoLoop{poly.GeoLoop}, poly.Holes...) {
		for _, ll := range loop {
			if !ll.finite() {
				return &LatLngError{LatLng: ll}
			}
		}
	}
	return nil
}

// polygonCells returns the cells at res whose centers fall inside poly.
func polygonCells(poly GeoPolygon, res int, flags uint32) ([]Index, error) {
	if err := checkPolygon(poly, res, flags); err != nil {
		return nil, err
	}
	if len(poly.GeoLoop) == 0 {
		return nil, nil
	}
	return enginePolygonToCells(poly, res)
}

// MaxPolygonToCellsSize writes the number of slots PolygonToCells needs.
// The count is exact. flags is reserved and must be 0.
func MaxPolygonToCellsSize(poly GeoPolygon, res int, flags uint32, out *int64) Code {
	cells, err := polygonCells(poly, res, flags)
	if err != nil {
		return codeOf(err)
	}
	*out = int64(len(cells))
	return OK
}

// PolygonToCells writes the cells at res whose centers fall inside poly.
// Holes are excluded. An empty outer loop yields no cells.
func PolygonToCells(poly GeoPolygon, res int, flags uint32, out []Index) Code {
	cells, err := polygonCells(poly, res, flags)
	if err != nil {
		return codeOf(err)
	}
	if err := requireLen(out, int64(len(cells))); err != nil {
		return codeOf(err)
	}
	copy(out, cells)
	return OK
}

// FillPolygon returns the cells PolygonToCells would write, for callers that
// size their buffer from the result instead of calling
// MaxPolygonToCellsSize first.
func FillPolygon(poly GeoPolygon, res int, flags uint32) ([]Index, Code) {
	cells, err := polygonCells(poly, res, flags)
	if err != nil {
		return nil, codeOf(err)
	}
	return cells, OK
}

// GeoPolygonFromOrb converts a polygon of [lng, lat] degrees, as read from
// GeoJSON or FlatGeobuf, to a radians GeoPolygon with open loops.
func GeoPolygonFromOrb(p orb.Polygon) GeoPolygon {
	var out GeoPolygon
	for i, r := range p {
		loop := make(GeoLoop, 0, openLen(r))
		for _, pt := range r[:openLen(r)] {
			loop = append(loop, LatLng{Lat: pt.Lat() * degsToRads, Lng: pt.Lon() * degsToRads})
		}
		if i == 0 {
			out.GeoLoop = loop
		} else {
			out.Holes = append(out.Holes, loop)
		}
	}
	return out
}
