package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/coursecat/course"
	"github.com/vegasq/coursecat/query"
	"github.com/vegasq/coursecat/reader"
)

// Table is a query result in column/row form.
type Table struct {
	Columns []string
	Rows    [][]interface{}
}

// FromCounts builds a two-column table (keyColumn, participants) from an
// ordered participant total.
func FromCounts(keyColumn string, counts query.Counts) *Table {
	t := &Table{Columns: []string{keyColumn, "participants"}}
	for _, c := range counts {
		t.Rows = append(t.Rows, []interface{}{c.Key, c.Value})
	}
	return t
}

// FromTitles builds a ranked single-title-per-row table.
func FromTitles(titles []string) *Table {
	t := &Table{Columns: []string{"rank", "title"}}
	for i, title := range titles {
		t.Rows = append(t.Rows, []interface{}{i + 1, title})
	}
	return t
}

// FromInstructors builds one row per instructor, ordered by name.
func FromInstructors(result map[string]query.InstructorCourses) *Table {
	names := make([]string, 0, len(result))
	for name := range result {
		names = append(names, name)
	}
	sort.Strings(names)

	t := &Table{Columns: []string{"instructor", "independent", "co_authored"}}
	for _, name := range names {
		ic := result[name]
		t.Rows = append(t.Rows, []interface{}{name, nonNil(ic.Independent), nonNil(ic.CoAuthored)})
	}
	return t
}

// FromSchema builds one row per dataset column.
func FromSchema(infos []reader.SchemaInfo) *Table {
	t := &Table{Columns: []string{"name", "type", "physical_type", "logical_type", "required", "header"}}
	for _, info := range infos {
		t.Rows = append(t.Rows, []interface{}{info.Name, info.Type, info.PhysicalType, info.LogicalType, info.Required, info.Header})
	}
	return t
}

// FromCourses builds a table holding every column of the given rows.
func FromCourses(courses []course.Course) *Table {
	t := &Table{Columns: course.ColumnNames()}
	for i := range courses {
		row := make([]interface{}, len(t.Columns))
		for j, name := range t.Columns {
			row[j], _ = courses[i].Field(name)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// TableFormatter renders an aligned text table
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new text table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format renders the table with a header row
func (f *TableFormatter) Format(t *Table) error {
	tw := tablewriter.NewWriter(f.writer)
	tw.SetHeader(t.Columns)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)

	for _, row := range t.Rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = textValue(v)
		}
		tw.Append(record)
	}

	tw.Render()
	return nil
}

// textValue converts a value to its plain-text rendering.
func textValue(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, "; ")
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format("2006-01-02")
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
