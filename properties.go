package h3abi

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"math"
	"sort"

	"github.com/flatgeobuf/flatgeobuf/src/go/flattypes"
	"github.com/flatgeobuf/flatgeobuf/src/go/writer"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/paulmach/orb/geojson"
)

type column struct {
	name string
	typ  flattypes.ColumnType
}

// schema is the column layout shared by every feature of a layer. Columns
// are sorted by name so the header and the encoded properties agree.
type schema struct {
	columns []column
	index   map[string]int
}

// inferSchema collects every property name used by features and picks, per
// name, a type able to hold all of its values.
func inferSchema(features []*geojson.Feature) *schema {
	types := make(map[string]flattypes.ColumnType)
	for _, f := range features {
		if f == nil {
			continue
		}
		for name, value := range f.Properties {
			if value == nil {
				continue
			}
			t := inferColumnType(value)
			if existing, ok := types[name]; ok {
				t = promoteColumnType(existing, t)
			}
			types[name] = t
		}
	}

	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)

	s := &schema{index: make(map[string]int, len(names))}
	for i, name := range names {
		s.columns = append(s.columns, column{name: name, typ: types[name]})
		s.index[name] = i
	}
	return s
}

func (s *schema) writerColumns(builder *flatbuffers.Builder) []*writer.Column {
	cols := make([]*writer.Column, 0, len(s.columns))
	for _, c := range s.columns {
		col := writer.NewColumn(builder)
		col.SetName(c.name)
		col.SetTitle(c.name)
		col.SetType(c.typ)
		col.SetNullable(true)
		cols = append(cols, col)
	}
	return cols
}

// encode writes props as [uint16 column index][value] pairs in column
// order. Nil values and unknown names are skipped.
func (s *schema) encode(props geojson.Properties) []byte {
	if len(props) == 0 || len(s.columns) == 0 {
		return nil
	}

	var buf bytes.Buffer
	for i, c := range s.columns {
		value, ok := props[c.name]
		if !ok || value == nil {
			continue
		}
		_ = binary.Write(&buf, binary.LittleEndian, uint16(i))
		writePropertyValue(&buf, value, c.typ)
	}
	return buf.Bytes()
}

// inferColumnType determines the column type for a Go value.
func inferColumnType(value interface{}) flattypes.ColumnType {
	switch v := value.(type) {
	case bool:
		return flattypes.ColumnTypeBool
	case int:
		if v >= math.MinInt32 && v <= math.MaxInt32 {
			return flattypes.ColumnTypeInt
		}
		return flattypes.ColumnTypeLong
	case int8, int16, int32:
		return flattypes.ColumnTypeInt
	case int64:
		return flattypes.ColumnTypeLong
	case uint, uint8, uint16, uint32:
		return flattypes.ColumnTypeUInt
	case uint64:
		return flattypes.ColumnTypeULong
	case float32:
		return flattypes.ColumnTypeFloat
	case float64:
		return flattypes.ColumnTypeDouble
	case string:
		return flattypes.ColumnTypeString
	case json.Number:
		if _, err := v.Int64(); err == nil {
			return flattypes.ColumnTypeLong
		}
		return flattypes.ColumnTypeDouble
	default:
		return flattypes.ColumnTypeJson
	}
}

var numericRank = map[flattypes.ColumnType]int{
	flattypes.ColumnTypeBool:   0,
	flattypes.ColumnTypeInt:    1,
	flattypes.ColumnTypeUInt:   2,
	flattypes.ColumnTypeLong:   3,
	flattypes.ColumnTypeULong:  4,
	flattypes.ColumnTypeFloat:  5,
	flattypes.ColumnTypeDouble: 6,
}

// promoteColumnType returns the more general of two column types.
func promoteColumnType(a, b flattypes.ColumnType) flattypes.ColumnType {
	if a == b {
		return a
	}
	if a == flattypes.ColumnTypeJson || b == flattypes.ColumnTypeJson {
		return flattypes.ColumnTypeJson
	}
	if a == flattypes.ColumnTypeString || b == flattypes.ColumnTypeString {
		return flattypes.ColumnTypeString
	}
	rankA, okA := numericRank[a]
	rankB, okB := numericRank[b]
	if okA && okB {
		if rankA > rankB {
			return a
		}
		return b
	}
	return flattypes.ColumnTypeJson
}

// writePropertyValue encodes value as the column type, not as its own Go
// type, so promoted columns stay readable.
func writePropertyValue(buf *bytes.Buffer, value interface{}, typ flattypes.ColumnType) {
	le := binary.LittleEndian
	switch typ {
	case flattypes.ColumnTypeBool:
		b, _ := value.(bool)
		if b {
			buf.WriteByte(1)
		} else {
			buf.WriteByte(0)
		}
	case flattypes.ColumnTypeInt:
		v, _ := toInt64(value)
		_ = binary.Write(buf, le, int32(v))
	case flattypes.ColumnTypeUInt:
		v, _ := toUint64(value)
		_ = binary.Write(buf, le, uint32(v))
	case flattypes.ColumnTypeLong:
		v, _ := toInt64(value)
		_ = binary.Write(buf, le, v)
	case flattypes.ColumnTypeULong:
		v, _ := toUint64(value)
		_ = binary.Write(buf, le, v)
	case flattypes.ColumnTypeFloat:
		v, _ := toFloat64(value)
		_ = binary.Write(buf, le, float32(v))
	case flattypes.ColumnTypeDouble:
		v, _ := toFloat64(value)
		_ = binary.Write(buf, le, v)
	case flattypes.ColumnTypeString:
		buf.WriteString(toString(value))
		buf.WriteByte(0)
	default:
		b, err := json.Marshal(value)
		if err != nil {
			b = []byte("null")
		}
		buf.Write(b)
		buf.WriteByte(0)
	}
}

// decodeProperties decodes the binary properties of one feature using the
// layer's column schema.
func decodeProperties(data []byte, header *flattypes.Header) geojson.Properties {
	if len(data) == 0 || header == nil {
		return nil
	}

	props := make(geojson.Properties)
	offset := 0
	for offset+2 <= len(data) {
		colIndex := int(binary.LittleEndian.Uint16(data[offset : offset+2]))
		offset += 2

		var col flattypes.Column
		if colIndex >= header.ColumnsLength() || !header.Columns(&col, colIndex) {
			break
		}

		value, n := readPropertyValue(data[offset:], col.Type())
		if n == 0 {
			break
		}
		offset += n
		props[string(col.Name())] = value
	}
	return props
}

// readPropertyValue reads one value and reports how many bytes it used.
func readPropertyValue(data []byte, typ flattypes.ColumnType) (interface{}, int) {
	le := binary.LittleEndian
	switch typ {
	case flattypes.ColumnTypeBool:
		if len(data) < 1 {
			return nil, 0
		}
		return data[0] != 0, 1
	case flattypes.ColumnTypeByte:
		if len(data) < 1 {
			return nil, 0
		}
		return int8(data[0]), 1
	case flattypes.ColumnTypeUByte:
		if len(data) < 1 {
			return nil, 0
		}
		return data[0], 1
	case flattypes.ColumnTypeShort:
		if len(data) < 2 {
			return nil, 0
		}
		return int16(le.Uint16(data)), 2
	case flattypes.ColumnTypeUShort:
		if len(data) < 2 {
			return nil, 0
		}
		return le.Uint16(data), 2
	case flattypes.ColumnTypeInt:
		if len(data) < 4 {
			return nil, 0
		}
		return int32(le.Uint32(data)), 4
	case flattypes.ColumnTypeUInt:
		if len(data) < 4 {
			return nil, 0
		}
		return le.Uint32(data), 4
	case flattypes.ColumnTypeLong:
		if len(data) < 8 {
			return nil, 0
		}
		return int64(le.Uint64(data)), 8
	case flattypes.ColumnTypeULong:
		if len(data) < 8 {
			return nil, 0
		}
		return le.Uint64(data), 8
	case flattypes.ColumnTypeFloat:
		if len(data) < 4 {
			return nil, 0
		}
		return math.Float32frombits(le.Uint32(data)), 4
	case flattypes.ColumnTypeDouble:
		if len(data) < 8 {
			return nil, 0
		}
		return math.Float64frombits(le.Uint64(data)), 8
	case flattypes.ColumnTypeString, flattypes.ColumnTypeDateTime:
		s, n := readCString(data)
		return s, n
	case flattypes.ColumnTypeJson:
		s, n := readCString(data)
		var v interface{}
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			return s, n
		}
		return v, n
	default:
		return nil, 0
	}
}

// readCString reads up to a NUL, or to the end of data when there is none.
func readCString(data []byte) (string, int) {
	i := bytes.IndexByte(data, 0)
	if i < 0 {
		return string(data), len(data)
	}
	return string(data[:i]), i + 1
}

func toInt64(v interface{}) (int64, bool) {
	switch val := v.(type) {
	case int:
		return int64(val), true
	case int8:
		return int64(val), true
	case int16:
		return int64(val), true
	case int32:
		return int64(val), true
	case int64:
		return val, true
	case uint:
		return int64(val), true
	case uint8:
		return int64(val), true
	case uint16:
		return int64(val), true
	case uint32:
		return int64(val), true
	case uint64:
		return int64(val), true
	case float32:
		return int64(val), true
	case float64:
		return int64(val), true
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i, true
		}
	}
	return 0, false
}

func toUint64(v interface{}) (uint64, bool) {
	switch val := v.(type) {
	case uint:
		return uint64(val), true
	case uint8:
		return uint64(val), true
	case uint16:
		return uint64(val), true
	case uint32:
		return uint64(val), true
	case uint64:
		return val, true
	}
	if i, ok := toInt64(v); ok && i >= 0 {
		return uint64(i), true
	}
	return 0, false
}

func toFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float32:
		return float64(val), true
	case float64:
		return val, true
	case json.Number:
		if f, err := val.Float64(); err == nil {
			return f, true
		}
	}
	if i, ok := toInt64(v); ok {
		return float64(i), true
	}
	return 0, false
}

func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case Index:
		return val.String()
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
