// Package reader loads course datasets into memory.
//
// Two on-disk formats are supported, chosen by file extension:
//
//   - CSV (any extension other than .parquet): a header line followed by one
//     course per line, 23 comma-separated fields in course.Columns order.
//     Commas inside double-quoted fields do not split. Title, instructors and
//     subject lose one leading and one trailing double quote; no other
//     unescaping happens.
//   - Parquet (.parquet): files written by "coursecat convert" or any writer
//     using the course.Course schema.
//
// # Basic Usage
//
//	r, err := reader.NewReader("courses.csv", reader.Options{})
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	courses, err := r.ReadAll()
//
// # Malformed Rows
//
// By default the first malformed CSV row aborts the load with a *RowError,
// which matches ErrMalformedRow under errors.Is. With Options.SkipMalformed
// the row is logged, skipped and counted in Stats.Skipped instead.
//
// # Multi-file Operations
//
// ReadMultipleFiles accepts a glob pattern and concatenates the rows of every
// matching file in lexical path order:
//
//	courses, stats, err := reader.ReadMultipleFiles("data/*.csv", reader.Options{})
package reader
