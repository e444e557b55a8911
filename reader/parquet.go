package reader

import (
	"errors"
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/coursecat/course"
)

// readParquet decodes every row group straight into course.Course values.
func (r *Reader) readParquet() ([]course.Course, error) {
	rows := parquet.NewGenericReader[course.Course](r.file)
	defer func() { _ = rows.Close() }()

	courses := make([]course.Course, 0, rows.NumRows())
	buf := make([]course.Course, 256)
	for {
		n, err := rows.Read(buf)
		courses = append(courses, buf[:n]...)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return courses, nil
}

// Schema returns the Parquet schema, or nil for CSV datasets.
func (r *Reader) Schema() *parquet.Schema {
	if r.pqFile == nil {
		return nil
	}
	return r.pqFile.Schema()
}
