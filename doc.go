// Package citybike is an analytics toolkit for bike-share systems: it
// loads raw trip, station and maintenance exports, cleans them into a
// typed dataset, and answers the operational questions on top of a
// small, deterministic algorithms kernel.
//
// 🚀 What is citybike?
//
//	A self-contained pipeline plus the kernel it runs on:
//		• Sorting & searching: stable merge/insertion sort, binary/linear
//		  search, operation counting, input-size benchmarking
//		• Numerics: haversine distances, descriptive statistics with
//		  missing-value exclusion, three outlier rules
//		• Ingestion: CSV loading and rule-by-rule cleaning with drop counts
//		• Analytics: station/user/route rankings, temporal usage patterns,
//		  maintenance cost and revenue estimates
//		• Pricing: casual, member and peak-hour fare strategies
//		• Output: text report tables and HTML charts
//
// ✨ Why citybike?
//
//   - Kernel first - sortsearch and numeric stand alone, import them
//     without pulling in the pipeline
//   - Deterministic by construction - stable sorts, fixed split points,
//     reproducible rankings under ties
//   - Missing data stays missing - excluded from every statistic, never
//     silently counted as zero
//
// Everything is organized under focused subpackages:
//
//	sortsearch/ — sorting/searching kernel with counters & benchmarks
//	numeric/    — haversine, Describe, percentiles, outlier detection
//	core/       — Bike, Station, User, Trip, MaintenanceRecord + row factories
//	ingest/     — CSV loading, de-duplication, validation, drop accounting
//	pricing/    — fare strategies & vectorized fare calculation
//	analytics/  — the business questions over a cleaned dataset
//	report/     — plain-text section report
//	chart/      — HTML charts (bar, line, histogram, pie)
//	config/     — YAML runtime configuration
//	cmd/        — the citybike CLI (run, bench)
//
// Quick start:
//
//	loader := ingest.NewLoader()
//	raw, _ := loader.LoadDir("data")
//	ds, _ := loader.Clean(raw)
//	a := analytics.NewAnalyzer(ds)
//	_ = report.NewWriter(os.Stdout).WriteAll(a, numeric.IQRFence, 0)
//
// Dive into examples/ for scenario walkthroughs of each package.
//
//	go get github.com/katalvlaran/citybike
package citybike
