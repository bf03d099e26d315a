package h3abi

import (
	"github.com/flatgeobuf/flatgeobuf/src/go/flattypes"
	"github.com/flatgeobuf/flatgeobuf/src/go/writer"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/paulmach/orb"
)

// fgbGeometryType maps the geometries this package exchanges to their
// FlatGeobuf type.
func fgbGeometryType(geom orb.Geometry) flattypes.GeometryType {
	switch geom.(type) {
	case orb.Point:
		return flattypes.GeometryTypePoint
	case orb.Polygon:
		return flattypes.GeometryTypePolygon
	case orb.MultiPolygon:
		return flattypes.GeometryTypeMultiPolygon
	default:
		return flattypes.GeometryTypeUnknown
	}
}

// layerGeometryType is the common type of geoms, or Unknown when they mix.
func layerGeometryType(geoms []orb.Geometry) flattypes.GeometryType {
	if len(geoms) == 0 {
		return flattypes.GeometryTypeUnknown
	}
	t := fgbGeometryType(geoms[0])
	for _, g := range geoms[1:] {
		if fgbGeometryType(g) != t {
			return flattypes.GeometryTypeUnknown
		}
	}
	return t
}

// geometryToFGB encodes a point, polygon or multipolygon. Other geometries
// yield nil.
func geometryToFGB(geom orb.Geometry, builder *flatbuffers.Builder) *writer.Geometry {
	g := writer.NewGeometry(builder)

	switch v := geom.(type) {
	case orb.Point:
		g.SetType(flattypes.GeometryTypePoint)
		g.SetXY([]float64{v[0], v[1]})

	case orb.Polygon:
		g.SetType(flattypes.GeometryTypePolygon)
		xy, ends := polygonToXYEnds(v)
		g.SetXY(xy)
		g.SetEnds(ends)

	case orb.MultiPolygon:
		g.SetType(flattypes.GeometryTypeMultiPolygon)
		parts := make([]writer.Geometry, 0, len(v))
		for _, poly := range v {
			pg := writer.NewGeometry(builder)
			pg.SetType(flattypes.GeometryTypePolygon)
			xy, ends := polygonToXYEnds(poly)
			pg.SetXY(xy)
			pg.SetEnds(ends)
			parts = append(parts, *pg)
		}
		g.SetParts(parts)

	default:
		return nil
	}

	return g
}

// geometryFromFGB decodes the geometry types geometryToFGB writes.
func geometryFromFGB(fgbGeom *flattypes.Geometry) orb.Geometry {
	switch fgbGeom.Type() {
	case flattypes.GeometryTypePoint:
		if fgbGeom.XyLength() < 2 {
			return nil
		}
		return orb.Point{fgbGeom.Xy(0), fgbGeom.Xy(1)}
	case flattypes.GeometryTypePolygon:
		return polygonFromXYEnds(fgbGeom)
	case flattypes.GeometryTypeMultiPolygon:
		return multiPolygonFromParts(fgbGeom)
	default:
		return nil
	}
}

func polygonToXYEnds(poly orb.Polygon) ([]float64, []uint32) {
	total := 0
	for _, ring := range poly {
		total += len(ring)
	}

	xy := make([]float64, 0, total*2)
	ends := make([]uint32, 0, len(poly))

	cumulative := uint32(0)
	for _, ring := range poly {
		for _, p := range ring {
			xy = append(xy, p[0], p[1])
		}
		cumulative += uint32(len(ring))
		ends = append(ends, cumulative)
	}

	return xy, ends
}

func polygonFromXYEnds(fgbGeom *flattypes.Geometry) orb.Polygon {
	xyLen := fgbGeom.XyLength()
	if xyLen < 2 {
		return orb.Polygon{}
	}

	// Without ends every point belongs to the exterior ring.
	endsLen := fgbGeom.EndsLength()
	if endsLen == 0 {
		return orb.Polygon{ringFromXY(fgbGeom, 0, uint32(xyLen/2))}
	}

	poly := make(orb.Polygon, 0, endsLen)
	start := uint32(0)
	for i := 0; i < endsLen; i++ {
		end := fgbGeom.Ends(i)
		poly = append(poly, ringFromXY(fgbGeom, start, end))
		start = end
	}
	return poly
}

func ringFromXY(fgbGeom *flattypes.Geometry, start, end uint32) orb.Ring {
	xyLen := fgbGeom.XyLength()
	ring := make(orb.Ring, 0, end-start)
	for j := start; j < end; j++ {
		idx := int(j) * 2
		if idx+1 < xyLen {
			ring = append(ring, orb.Point{fgbGeom.Xy(idx), fgbGeom.Xy(idx + 1)})
		}
	}
	return ring
}

func multiPolygonFromParts(fgbGeom *flattypes.Geometry) orb.MultiPolygon {
	partsLen := fgbGeom.PartsLength()
	if partsLen == 0 {
		if poly := polygonFromXYEnds(fgbGeom); len(poly) > 0 {
			return orb.MultiPolygon{poly}
		}
		return orb.MultiPolygon{}
	}

	mp := make(orb.MultiPolygon, 0, partsLen)
	for i := 0; i < partsLen; i++ {
		var part flattypes.Geometry
		if fgbGeom.Parts(&part, i) {
			if poly := polygonFromXYEnds(&part); len(poly) > 0 {
				mp = append(mp, poly)
			}
		}
	}
	return mp
}
