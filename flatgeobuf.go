package h3abi

import (
	"errors"
)

// Errors returned by the FlatGeobuf layer of this package.
var (
	ErrNoFeatures      = errors.New("h3abi: no features to write")
	ErrUnsupportedType = errors.New("h3abi: unsupported geometry type")
	ErrNoIndex         = errors.New("h3abi: file has no spatial index")
	ErrReaderClosed    = errors.New("h3abi: reader is closed")
)

// CRS names a coordinate reference system.
type CRS struct {
	Code        int    // EPSG code
	Name        string // CRS name
	Description string // free text, also used for WKT
}

// WGS84 returns EPSG:4326, the CRS of every layer this package writes.
func WGS84() *CRS {
	return &CRS{
		Code: 4326,
		Name: "WGS 84",
	}
}

// Options configures FlatGeobuf writing.
type Options struct {
	Name         string // Layer name
	Description  string // Layer description
	IncludeIndex bool   // Write the packed R-tree (default: true)
	CRS          *CRS   // Coordinate reference system (default: WGS84)
}

// DefaultOptions returns the options used when nil is passed.
func DefaultOptions() *Options {
	return &Options{
		IncludeIndex: true,
		CRS:          WGS84(),
	}
}

// ColumnInfo describes a property column of a layer.
type ColumnInfo struct {
	Name     string // Column name
	Type     string // "Bool", "Int", "Long", "Double", "String", ...
	Nullable bool
}

// Header is the metadata of a FlatGeobuf layer.
type Header struct {
	Name          string
	Description   string
	GeometryType  string     // "Polygon", "MultiPolygon", "Unknown", ...
	FeaturesCount uint64     // Number of features
	Envelope      [4]float64 // [minX, minY, maxX, maxY] in degrees
	CRS           *CRS
	HasIndex      bool
	Columns       []ColumnInfo
}
