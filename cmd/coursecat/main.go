// Command coursecat answers questions about an online-courses dataset.
//
// Usage:
//
//	coursecat -d courses.csv institutions
//	coursecat -d courses.csv top --k 5 --by hours
//	coursecat -d courses.csv -f json search --subject computer --min-audited 10 --max-hours 800
//	coursecat -d courses.csv recommend --age 25 --gender 1 --degree 1
//	coursecat -d courses.csv convert --out courses.parquet
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
