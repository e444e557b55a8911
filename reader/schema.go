package reader

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/coursecat/course"
)

// SchemaInfo describes one column of a dataset file.
type SchemaInfo struct {
	Name         string `json:"name" yaml:"name"`
	Type         string `json:"type" yaml:"type"`
	PhysicalType string `json:"physical_type,omitempty" yaml:"physical_type,omitempty"`
	LogicalType  string `json:"logical_type,omitempty" yaml:"logical_type,omitempty"`
	Header       string `json:"header,omitempty" yaml:"header,omitempty"`
	Required     bool   `json:"required" yaml:"required"`
}

// ExtractSchemaInfo lists the columns of the dataset at path.
//
// Parquet files report the schema stored in the file. CSV files have a fixed
// layout, so the course.Columns catalogue is returned after checking that the
// file can be opened.
func ExtractSchemaInfo(path string) ([]SchemaInfo, error) {
	r, err := NewReader(path, Options{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	schema := r.Schema()
	if schema == nil {
		return csvSchemaInfo(), nil
	}

	infos := make([]SchemaInfo, 0, len(schema.Fields()))
	for _, field := range schema.Fields() {
		info := SchemaInfo{
			Name:         field.Name(),
			Type:         userFriendlyType(field),
			PhysicalType: physicalType(field),
			LogicalType:  logicalType(field),
			Required:     field.Required(),
		}
		if col, ok := course.LookupColumn(field.Name()); ok {
			info.Header = col.Header
		}
		infos = append(infos, info)
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("parquet file %s has no columns", path)
	}

	return infos, nil
}

func csvSchemaInfo() []SchemaInfo {
	infos := make([]SchemaInfo, len(course.Columns))
	for i, col := range course.Columns {
		infos[i] = SchemaInfo{
			Name:     col.Name,
			Type:     strings.ToUpper(col.Type.String()),
			Header:   col.Header,
			Required: true,
		}
	}
	return infos
}

func physicalType(field parquet.Field) string {
	if field.Type() == nil {
		return "GROUP"
	}

	switch field.Type().Kind() {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT"
	case parquet.Double:
		return "DOUBLE"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}

func logicalType(field parquet.Field) string {
	if field.Type() == nil || field.Type().LogicalType() == nil {
		return ""
	}
	return field.Type().LogicalType().String()
}

// userFriendlyType maps Parquet types onto the names used by the CSV
// catalogue (STRING, INT, FLOAT, DATE).
func userFriendlyType(field parquet.Field) string {
	logical := logicalType(field)
	switch {
	case strings.HasPrefix(logical, "STRING"), strings.HasPrefix(logical, "UTF8"):
		return "STRING"
	case strings.HasPrefix(logical, "TIMESTAMP"), strings.HasPrefix(logical, "DATE"):
		return "DATE"
	}

	switch physicalType(field) {
	case "INT32", "INT64":
		return "INT"
	case "FLOAT", "DOUBLE":
		return "FLOAT"
	case "BYTE_ARRAY":
		return "STRING"
	default:
		return physicalType(field)
	}
}
