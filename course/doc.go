// Package course defines the record model for online course offerings.
//
// A Course is one row of the source dataset: one institution/subject/run
// offering of a course. Rows are created once by the reader package and are
// never mutated afterwards. The same struct doubles as the Parquet schema, so
// a dataset converted with "coursecat convert" round-trips without a mapping
// layer.
//
// Columns lists the dataset columns in their fixed CSV order:
//
//	for _, col := range course.Columns {
//	    fmt.Printf("%2d %-28s %s\n", col.Index, col.Name, col.Type)
//	}
package course
