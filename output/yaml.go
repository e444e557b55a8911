package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter outputs tables as a YAML sequence of mappings
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// SetOutput sets the output writer
func (y *YAMLFormatter) SetOutput(w io.Writer) {
	y.writer = w
}

// Format writes the rows as a sequence. Mapping keys follow column order.
func (y *YAMLFormatter) Format(t *Table) error {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range t.Rows {
		mapping := &yaml.Node{Kind: yaml.MappingNode}
		for i, col := range t.Columns {
			var v interface{}
			if i < len(row) {
				v = row[i]
			}
			value := &yaml.Node{}
			if err := value.Encode(v); err != nil {
				return fmt.Errorf("failed to encode %s: %w", col, err)
			}
			mapping.Content = append(mapping.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: col},
				value,
			)
		}
		seq.Content = append(seq.Content, mapping)
	}

	encoder := yaml.NewEncoder(y.writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(seq); err != nil {
		return err
	}
	return encoder.Close()
}
