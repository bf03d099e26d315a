package h3abi

import (
	"fmt"
	"io"

	"github.com/flatgeobuf/flatgeobuf/src/go/flattypes"
	"github.com/flatgeobuf/flatgeobuf/src/go/writer"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Property names of the features written by WriteCells.
const (
	PropIndex      = "h3"
	PropResolution = "resolution"
	PropPentagon   = "pentagon"
)

// Write writes bare geometries, without properties, as one layer.
func Write(w io.Writer, geometries []orb.Geometry, opts *Options) error {
	fc := geojson.NewFeatureCollection()
	for _, g := range geometries {
		if g != nil {
			fc.Append(geojson.NewFeature(g))
		}
	}
	return WriteFeatures(w, fc, opts)
}

// WriteFeatures writes a FeatureCollection as one layer. Property columns
// are inferred from every feature.
func WriteFeatures(w io.Writer, fc *geojson.FeatureCollection, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	if fc == nil || len(fc.Features) == 0 {
		return ErrNoFeatures
	}

	geoms := make([]orb.Geometry, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f == nil || f.Geometry == nil {
			continue
		}
		if fgbGeometryType(f.Geometry) == flattypes.GeometryTypeUnknown {
			return fmt.Errorf("%w: %s", ErrUnsupportedType, f.Geometry.GeoJSONType())
		}
		geoms = append(geoms, f.Geometry)
	}
	if len(geoms) == 0 {
		return ErrNoFeatures
	}

	gen := &featureGenerator{
		features: fc.Features,
		schema:   inferSchema(fc.Features),
	}
	return writeWithGenerator(w, gen, layerGeometryType(geoms), opts)
}

// CellFeatures builds one polygon feature per cell, in degrees, carrying
// the cell's index, resolution and pentagon flag.
func CellFeatures(cells []Index) (*geojson.FeatureCollection, error) {
	if err := validateCells(cells, false); err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for _, h := range cells {
		b, err := engineCellToBoundary(h)
		if err != nil {
			return nil, err
		}
		ring := make(orb.Ring, 0, b.NumVerts+1)
		for _, ll := range b.Slice() {
			ring = append(ring, orb.Point{ll.Lng * radsToDegs, ll.Lat * radsToDegs})
		}
		ring = append(ring, ring[0])

		f := geojson.NewFeature(orb.Polygon{ring})
		f.Properties = geojson.Properties{
			PropIndex:      h.String(),
			PropResolution: h.res(),
			PropPentagon:   isPentagon(h),
		}
		fc.Append(f)
	}
	return fc, nil
}

// WriteCells writes one polygon feature per cell.
func WriteCells(w io.Writer, cells []Index, opts *Options) error {
	if len(cells) == 0 {
		return ErrNoFeatures
	}
	fc, err := CellFeatures(cells)
	if err != nil {
		return err
	}
	return WriteFeatures(w, fc, opts)
}

// WriteOutline writes the outline of a set of same-resolution cells as a
// single multipolygon feature.
func WriteOutline(w io.Writer, cells []Index, opts *Options) error {
	var mp LinkedMultiPolygon
	if c := CellsToLinkedMultiPolygon(cells, &mp); c != OK {
		return c
	}
	defer DestroyLinkedMultiPolygon(&mp)

	if mp.NumPolygons() == 0 {
		return ErrNoFeatures
	}
	f := geojson.NewFeature(mp.OrbDegrees())
	f.Properties = geojson.Properties{
		"cells":        len(cells),
		PropResolution: cells[0].res(),
	}
	return WriteFeatures(w, &geojson.FeatureCollection{Features: []*geojson.Feature{f}}, opts)
}

func writeWithGenerator(w io.Writer, gen *featureGenerator, geomType flattypes.GeometryType, opts *Options) error {
	builder := flatbuffers.NewBuilder(4096)

	header := writer.NewHeader(builder)
	header.SetGeometryType(geomType)
	if opts.Name != "" {
		header.SetName(opts.Name)
	}
	if opts.Description != "" {
		header.SetDescription(opts.Description)
	}
	if len(gen.schema.columns) > 0 {
		header.SetColumns(gen.schema.writerColumns(builder))
	}

	if opts.CRS != nil {
		crs := writer.NewCrs(builder)
		crs.SetOrg("EPSG")
		if opts.CRS.Code > 0 {
			crs.SetCode(int32(opts.CRS.Code))
		}
		if opts.CRS.Name != "" {
			crs.SetName(opts.CRS.Name)
		}
		if opts.CRS.Description != "" {
			crs.SetDescription(opts.CRS.Description)
		}
		header.SetCrs(crs)
	}

	fgbWriter := writer.NewWriter(header, opts.IncludeIndex, gen, nil)
	_, err := fgbWriter.Write(w)
	return err
}

// featureGenerator feeds features to the FlatGeobuf writer one at a time.
type featureGenerator struct {
	features []*geojson.Feature
	schema   *schema
	index    int
}

func (g *featureGenerator) Generate() *writer.Feature {
	for g.index < len(g.features) {
		f := g.features[g.index]
		g.index++
		if f == nil || f.Geometry == nil {
			continue
		}

		builder := flatbuffers.NewBuilder(1024)
		geom := geometryToFGB(f.Geometry, builder)
		if geom == nil {
			continue
		}

		feature := writer.NewFeature(builder)
		feature.SetGeometry(geom)
		if props := g.schema.encode(f.Properties); len(props) > 0 {
			feature.SetProperties(props)
		}
		return feature
	}
	return nil
}
