// Package report renders the analytics results as a plain-text summary
// suitable for a terminal or a log file.
//
// A Writer streams "=== section ===" headed blocks to an io.Writer,
// with tabular sections laid out by tablewriter. Sections are
// independent; callers pick which to emit, or use WriteAll for the
// full report.
package report
