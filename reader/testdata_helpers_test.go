package reader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/coursecat/course"
)

const testHeader = `Institution,Course Number,Launch Date,Course Title,Instructors,Course Subject,Year,Honor Code Certificates,Participants (Course Content Accessed),Audited (> 50% Course Content Accessed),Certified,% Audited,% Certified,% Certified of > 50% Course Content Accessed,% Played Video,% Posted in Forum,% Grade Higher Than Zero,Total Course Hours (Thousands),Median Hours for Certification,Median Age,% Male,% Female,% Bachelor's Degree or Higher`

var (
	rowCircuits = `MITx,6.002x,09/05/2012,Circuits and Electronics,Khurram Afridi,"Science, Technology, Engineering, and Mathematics",1,1,36105,5431,3003,54.98,8.32,55.5,83.2,8.17,28.97,418.94,64.45,26,88.28,11.72,60.68`
	rowJustice  = `HarvardX,ER22x,03/02/2013,"Justice","Michael Sandel, Teaching Fellow","Humanities, History, Design, Religion, and Education",1,1,79750,22197,5438,44.18,6.82,24.48,71.88,3.47,17.97,452.4,12.78,30,59.36,40.64,72.42`
)

// writeCSV writes a dataset with the standard header followed by rows.
func writeCSV(t *testing.T, dir, name string, rows ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := testHeader + "\n" + strings.Join(rows, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

// writeParquet writes courses with the course.Course schema.
func writeParquet(t *testing.T, dir, name string, courses []course.Course) string {
	t.Helper()
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	writer := parquet.NewGenericWriter[course.Course](f)
	if _, err := writer.Write(courses); err != nil {
		t.Fatalf("failed to write test data: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}

	return path
}
