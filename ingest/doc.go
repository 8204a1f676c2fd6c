// Package ingest loads the raw CityBike CSV files and cleans them into
// validated domain records.
//
// Loading and cleaning are separate steps, mirroring the pipeline:
//
//	raw, err := loader.LoadDir("data")        // trips.csv, stations.csv, maintenance.csv
//	ds, stats := loader.Clean(raw)            // validated core.* records + drop counts
//
// Cleaning applies, in order:
//  1. de-duplication by record ID (first occurrence wins)
//  2. datetime parsing and numeric coercion (unparseable rows drop)
//  3. drop rows missing required fields
//  4. drop invalid rows (end before start, negative duration/distance/cost)
//  5. categorical normalization (lowercase + trim) before enum parsing
//
// Steps 2-5 are enforced by the core row factories; ingest owns the
// de-duplication, the per-row drop accounting and the structured logging
// around both.
//
// The loader never fails a whole file because of one bad row: bad rows
// are counted and logged at debug level, good rows survive. Structural
// problems (no header, missing key column) do fail the load.
package ingest
