package numeric

import (
	"fmt"
	"math"
	"sort"
)

// madScale is the consistency constant relating MAD to the standard
// deviation of a normal distribution (0.6745 ≈ Φ⁻¹(0.75)).
const madScale = 0.6745

// DetectOutliers flags the outliers of a series under the chosen rule.
//
// One flag is produced per non-missing element, in input order; the
// report's Index maps every flag back to its position in the original
// series. A threshold <= 0 selects the method's documented default
// (IQRFence 1.5, ModifiedZScore 3.5, ZScore 3.0).
//
// Rules:
//   - IQRFence:        x < Q1 - t·IQR  or  x > Q3 + t·IQR.
//   - ModifiedZScore:  |0.6745·(x - median)/MAD| > t. MAD == 0 flags
//     nothing (degenerate-variance guard, avoids division by zero).
//   - ZScore:          |x - mean|/σ > t with population σ; σ == 0 flags
//     nothing.
//
// Errors:
//   - ErrUnknownMethod    — method is not a defined constant.
//   - ErrInsufficientData — the series has no usable values.
//
// Pure: the report is recomputed fresh on every call, nothing is cached.
//
// Complexity: O(n·log n) time, O(n) memory.
func DetectOutliers(s Series, method OutlierMethod, threshold float64) (OutlierReport, error) {
	if method != IQRFence && method != ModifiedZScore && method != ZScore {
		return OutlierReport{}, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}

	vals, idx := s.valid()
	if len(vals) == 0 {
		return OutlierReport{}, fmt.Errorf("%w: outlier detection over %d entries", ErrInsufficientData, len(s))
	}

	if threshold <= 0 {
		threshold = defaultThreshold(method)
	}

	var flags []bool
	switch method {
	case IQRFence:
		flags = iqrFlags(vals, threshold)
	case ModifiedZScore:
		flags = modifiedZFlags(vals, threshold)
	case ZScore:
		flags = zFlags(vals, threshold)
	}

	return OutlierReport{
		Method:    method,
		Threshold: threshold,
		Index:     idx,
		Flags:     flags,
	}, nil
}

func defaultThreshold(method OutlierMethod) float64 {
	switch method {
	case ModifiedZScore:
		return DefaultModifiedZThreshold
	case ZScore:
		return DefaultZThreshold
	default:
		return DefaultIQRThreshold
	}
}

// iqrFlags marks values outside [Q1 - t·IQR, Q3 + t·IQR].
func iqrFlags(vals []float64, t float64) []bool {
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)

	q1 := interpolate(sorted, 25)
	q3 := interpolate(sorted, 75)
	iqr := q3 - q1
	lo, hi := q1-t*iqr, q3+t*iqr

	flags := make([]bool, len(vals))
	for i, v := range vals {
		flags[i] = v < lo || v > hi
	}

	return flags
}

// modifiedZFlags marks values whose modified z-score exceeds t.
func modifiedZFlags(vals []float64, t float64) []bool {
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	med := median(sorted)

	// MAD: median of the absolute deviations from the median.
	dev := make([]float64, len(vals))
	for i, v := range vals {
		dev[i] = math.Abs(v - med)
	}
	sort.Float64s(dev)
	mad := median(dev)

	flags := make([]bool, len(vals))
	if mad == 0 {
		return flags // all-equal-ish series: nothing is an outlier
	}

	for i, v := range vals {
		flags[i] = math.Abs(madScale*(v-med)/mad) > t
	}

	return flags
}

// zFlags marks values whose plain z-score exceeds t. Population σ keeps
// the rule aligned with the vectorized pipeline it descends from.
func zFlags(vals []float64, t float64) []bool {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	mean := sum / float64(len(vals))

	var sq float64
	for _, v := range vals {
		d := v - mean
		sq += d * d
	}
	sigma := math.Sqrt(sq / float64(len(vals)))

	flags := make([]bool, len(vals))
	if sigma == 0 {
		return flags
	}

	for i, v := range vals {
		flags[i] = math.Abs(v-mean)/sigma > t
	}

	return flags
}
