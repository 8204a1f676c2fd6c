// Package numeric derives geospatial distances, descriptive statistics
// and outlier flags from raw trip/station columns.
//
// 🚀 What is numeric?
//
//	The numerical half of the CityBike analytics kernel - pure functions
//	over coordinate pairs and float64 series:
//	  • Haversine / DistanceMatrix — great-circle station distances (km)
//	  • Describe / Percentile      — count, mean, median, std dev, quartiles
//	  • DetectOutliers             — IQR fencing, modified z-score, z-score
//
// ✨ Missing data:
//
//	A Series may contain missing entries, encoded as NaN. Missing values
//	are excluded from every statistic - never treated as zero. A series
//	with no usable values fails with ErrInsufficientData instead of
//	returning NaN-filled output, so callers cannot silently propagate
//	garbage.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/citybike/numeric"
//
//	s := numeric.Series{12.5, numeric.Missing, 45.0, 27.8}
//	sum, err := numeric.Describe(s)          // stats over the 3 valid values
//	rep, err := numeric.DetectOutliers(s, numeric.IQRFence, 0) // default 1.5
//
// Determinism & purity:
//
//   - No randomness, no I/O, no shared state between calls; results are
//     recomputed fresh on every invocation.
//   - Safe for concurrent use as long as each caller supplies its own
//     inputs (no function mutates its arguments).
//
// Precision: standard IEEE-754 double precision throughout; no guarantee
// beyond that.
package numeric
