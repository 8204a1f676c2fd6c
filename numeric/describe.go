package numeric

import (
	"fmt"
	"math"
	"sort"
)

// Describe computes the descriptive statistics of a series.
//
// Missing entries are excluded from Count and from every derived
// statistic - they are never treated as zero. An empty or all-missing
// series fails with ErrInsufficientData.
//
// Conventions (documented, covered by tests):
//   - StdDev uses the sample (n-1) formula when Count > 1.
//   - Count == 1 yields StdDev = 0.
//   - Median/Q1/Q3 use linear interpolation over the sorted values.
//
// Complexity: O(n·log n) time (one sort), O(n) memory.
func Describe(s Series) (Summary, error) {
	vals, _ := s.valid()
	if len(vals) == 0 {
		return Summary{}, fmt.Errorf("%w: describe over %d entries", ErrInsufficientData, len(s))
	}

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range vals {
		sum += v
	}
	n := len(vals)
	mean := sum / float64(n)

	var sq float64
	for _, v := range vals {
		d := v - mean
		sq += d * d
	}
	std := 0.0 // single-value series: zero by convention, not NaN
	if n > 1 {
		std = math.Sqrt(sq / float64(n-1))
	}

	return Summary{
		Count:  n,
		Mean:   mean,
		Median: interpolate(sorted, 50),
		StdDev: std,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Q1:     interpolate(sorted, 25),
		Q3:     interpolate(sorted, 75),
	}, nil
}

// Percentile returns the p-th percentile (p in [0, 100]) of the
// non-missing values, by linear interpolation over the sorted values.
//
// Errors:
//   - ErrBadPercentile    — p outside [0, 100].
//   - ErrInsufficientData — no usable values.
func Percentile(s Series, p float64) (float64, error) {
	if p < 0 || p > 100 || math.IsNaN(p) {
		return 0, fmt.Errorf("%w: got %v", ErrBadPercentile, p)
	}

	vals, _ := s.valid()
	if len(vals) == 0 {
		return 0, fmt.Errorf("%w: percentile over %d entries", ErrInsufficientData, len(s))
	}

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)

	return interpolate(sorted, p), nil
}

// interpolate reads the p-th percentile from an already-sorted non-empty
// slice using the linear interpolation convention: the rank is
// (n-1)·p/100, fractional ranks blend the two surrounding values.
func interpolate(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := float64(len(sorted)-1) * p / 100
	lo := int(math.Floor(rank))
	frac := rank - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// median returns the interpolated median of an already-sorted non-empty
// slice. Shared by the outlier rules.
func median(sorted []float64) float64 {
	return interpolate(sorted, 50)
}
