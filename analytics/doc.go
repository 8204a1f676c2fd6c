// Package analytics answers the CityBike business questions over a
// cleaned dataset.
//
// An Analyzer wraps an ingest.Dataset and exposes one method per
// question: overall summary, station and user rankings, temporal usage
// patterns, maintenance cost breakdowns, duration statistics with
// outlier detection, station distance matrices and revenue estimates.
//
// Every ranking runs through sortsearch's stable merge sort, so ties
// preserve a deterministic base order (ascending ID), and every
// statistic runs through the numeric package, so missing values stay
// excluded rather than counted as zero.
package analytics
