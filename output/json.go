package output

import (
	"bytes"
	"io"

	"github.com/goccy/go-json"
)

// JSONFormatter outputs tables as JSON Lines or as one JSON array
type JSONFormatter struct {
	writer io.Writer
	array  bool
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// NewJSONArrayFormatter creates a formatter that writes a single indented
// JSON array
func NewJSONArrayFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w, array: true}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one object per row. Object keys follow column order.
func (j *JSONFormatter) Format(t *Table) error {
	encoder := json.NewEncoder(j.writer)
	records := make([]orderedRecord, len(t.Rows))
	for i, row := range t.Rows {
		records[i] = orderedRecord{columns: t.Columns, values: row}
	}

	if j.array {
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)
	}

	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			return err
		}
	}
	return nil
}

// orderedRecord is one table row encoded as a JSON object whose keys keep
// the table's column order. Missing trailing values encode as null.
type orderedRecord struct {
	columns []string
	values  []interface{}
}

func (r orderedRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		var v interface{}
		if i < len(r.values) {
			v = r.values[i]
		}
		value, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
