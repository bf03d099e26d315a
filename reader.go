package h3abi

import (
	flatgeobuf "github.com/flatgeobuf/flatgeobuf/src/go"
	"github.com/flatgeobuf/flatgeobuf/src/go/flattypes"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Reader reads a FlatGeobuf layer.
type Reader struct {
	fgb *flatgeobuf.FlatGeoBuf
}

// NewReader opens a FlatGeobuf file. The file is memory-mapped.
func NewReader(path string) (*Reader, error) {
	fgb, err := flatgeobuf.New(path)
	if err != nil {
		return nil, err
	}
	return &Reader{fgb: fgb}, nil
}

// NewReaderFromData reads a FlatGeobuf layer held in memory.
func NewReaderFromData(data []byte) (*Reader, error) {
	fgb, err := flatgeobuf.NewWithData(data)
	if err != nil {
		return nil, err
	}
	return &Reader{fgb: fgb}, nil
}

// Header returns the layer metadata, or nil when the reader is closed.
func (r *Reader) Header() *Header {
	if r.fgb == nil {
		return nil
	}
	h := r.fgb.Header()
	if h == nil {
		return nil
	}

	header := &Header{
		Name:          string(h.Name()),
		Description:   string(h.Description()),
		GeometryType:  flattypes.EnumNamesGeometryType[h.GeometryType()],
		FeaturesCount: h.FeaturesCount(),
		HasIndex:      h.IndexNodeSize() > 0,
	}
	if h.EnvelopeLength() >= 4 {
		header.Envelope = [4]float64{h.Envelope(0), h.Envelope(1), h.Envelope(2), h.Envelope(3)}
	}

	var crs flattypes.Crs
	if h.Crs(&crs) != nil {
		header.CRS = &CRS{
			Code:        int(crs.Code()),
			Name:        string(crs.Name()),
			Description: string(crs.Description()),
		}
	}

	for i := 0; i < h.ColumnsLength(); i++ {
		var col flattypes.Column
		if h.Columns(&col, i) {
			header.Columns = append(header.Columns, ColumnInfo{
				Name:     string(col.Name()),
				Type:     flattypes.EnumNamesColumnType[col.Type()],
				Nullable: col.Nullable(),
			})
		}
	}
	return header
}

// ReadAll reads every feature. Features are reached through the spatial
// index, so a layer written without one reads as empty.
func (r *Reader) ReadAll() (*geojson.FeatureCollection, error) {
	if r.fgb == nil {
		return nil, ErrReaderClosed
	}
	h := r.fgb.Header()
	if h.FeaturesCount() == 0 || h.IndexNodeSize() == 0 || h.EnvelopeLength() < 4 {
		return geojson.NewFeatureCollection(), nil
	}
	return r.search(h, h.Envelope(0), h.Envelope(1), h.Envelope(2), h.Envelope(3))
}

// Search returns the features whose bounding boxes intersect bounds.
func (r *Reader) Search(bounds orb.Bound) (*geojson.FeatureCollection, error) {
	if r.fgb == nil {
		return nil, ErrReaderClosed
	}
	h := r.fgb.Header()
	if h.IndexNodeSize() == 0 {
		return nil, ErrNoIndex
	}
	return r.search(h, bounds.Min[0], bounds.Min[1], bounds.Max[0], bounds.Max[1])
}

func (r *Reader) search(h *flattypes.Header, minX, minY, maxX, maxY float64) (*geojson.FeatureCollection, error) {
	features, err := r.fgb.Search(minX, minY, maxX, maxY)
	if err != nil {
		return nil, err
	}
	fc := geojson.NewFeatureCollection()
	for _, f := range features {
		if feature := convertFeature(f, h); feature != nil {
			fc.Append(feature)
		}
	}
	return fc, nil
}

// ReadGeometries reads every geometry, dropping properties.
func (r *Reader) ReadGeometries() ([]orb.Geometry, error) {
	fc, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	geoms := make([]orb.Geometry, 0, len(fc.Features))
	for _, f := range fc.Features {
		geoms = append(geoms, f.Geometry)
	}
	return geoms, nil
}

// PolygonCells fills every polygon and multipolygon of the layer with cells
// at res. Cells are deduplicated and kept in first-seen order.
func (r *Reader) PolygonCells(res int) ([]Index, error) {
	geoms, err := r.ReadGeometries()
	if err != nil {
		return nil, err
	}

	var polys []orb.Polygon
	for _, g := range geoms {
		switch v := g.(type) {
		case orb.Polygon:
			polys = append(polys, v)
		case orb.MultiPolygon:
			polys = append(polys, v...)
		}
	}

	seen := make(map[Index]struct{})
	var cells []Index
	for _, p := range polys {
		filled, err := polygonCells(GeoPolygonFromOrb(p), res, 0)
		if err != nil {
			return nil, err
		}
		for _, h := range filled {
			if _, dup := seen[h]; !dup {
				seen[h] = struct{}{}
				cells = append(cells, h)
			}
		}
	}
	return cells, nil
}

// Close releases the reader. The underlying mapping is reclaimed by the
// garbage collector.
func (r *Reader) Close() error {
	r.fgb = nil
	return nil
}

// convertFeature decodes one FlatGeobuf feature.
func convertFeature(fgbFeature *flattypes.Feature, header *flattypes.Header) *geojson.Feature {
	if fgbFeature == nil {
		return nil
	}
	var geomObj flattypes.Geometry
	geom := fgbFeature.Geometry(&geomObj)
	if geom == nil {
		return nil
	}
	orbGeom := geometryFromFGB(geom)
	if orbGeom == nil {
		return nil
	}

	feature := geojson.NewFeature(orbGeom)
	if n := fgbFeature.PropertiesLength(); n > 0 && header.ColumnsLength() > 0 {
		props := make([]byte, n)
		for i := range props {
			props[i] = byte(fgbFeature.Properties(i))
		}
		feature.Properties = decodeProperties(props, header)
	}
	return feature
}
