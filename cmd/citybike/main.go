// Command citybike runs the bike-share analytics pipeline: it loads and
// cleans the CSV tables, answers the business questions as a text
// report, optionally renders HTML charts, and can benchmark the sorting
// kernel against the real trip-duration column.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "citybike:", err)
		os.Exit(1)
	}
}
