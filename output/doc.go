// Package output renders query results.
//
// Every query result is first converted to a Table, a list of column names
// and positional rows. A Formatter then writes the table in one of the
// supported formats:
//
//   - table: aligned text table for terminals
//   - csv: comma-separated values with header row
//   - json: a single JSON array of objects
//   - jsonl: one JSON object per line
//   - yaml: a YAML sequence of mappings
//
// # Basic Usage
//
//	t := output.FromCounts("institution", analyzer.ParticipantsByInstitution())
//	formatter, err := output.NewFormatter("csv", os.Stdout)
//	if err != nil {
//	    return err
//	}
//	if err := formatter.Format(t); err != nil {
//	    return err
//	}
//
// # Type Handling
//
// Text formats (table, csv) flatten string slices by joining them with
// "; ". JSON and YAML keep them as arrays and write object keys in column
// order. Strings that a spreadsheet would
// interpret as a formula are escaped in CSV output.
//
// WriteParquet is the odd one out: it serialises raw course rows rather
// than a Table, and is used to convert CSV datasets to Parquet.
package output
