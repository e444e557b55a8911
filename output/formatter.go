package output

import (
	"fmt"
	"io"
	"strings"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to write a table in the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes the table in the formatter's specific format
	Format(t *Table) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Formats lists the names accepted by NewFormatter.
var Formats = []string{"table", "csv", "json", "jsonl", "yaml"}

// NewFormatter returns the formatter registered under name.
func NewFormatter(name string, w io.Writer) (Formatter, error) {
	switch strings.ToLower(name) {
	case "table", "":
		return NewTableFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "json":
		return NewJSONArrayFormatter(w), nil
	case "jsonl":
		return NewJSONFormatter(w), nil
	case "yaml", "yml":
		return NewYAMLFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (supported: %s)", name, strings.Join(Formats, ", "))
	}
}
