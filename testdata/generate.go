//go:build ignore

// Regenerates courses.parquet from courses.csv:
//
//	go run testdata/generate.go
package main

import (
	"log"
	"os"

	"github.com/vegasq/coursecat/output"
	"github.com/vegasq/coursecat/reader"
)

func main() {
	courses, stats, err := reader.ReadMultipleFiles("testdata/courses.csv", reader.Options{})
	if err != nil {
		log.Fatal(err)
	}

	file, err := os.Create("testdata/courses.parquet")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	if err := output.WriteParquet(file, courses, "snappy"); err != nil {
		log.Fatal(err)
	}

	log.Printf("Generated courses.parquet with %d courses", stats.Rows)
}
