// Package numeric - value types, enums and error definitions for the
// numerical analytics kernel.
package numeric

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for the numerical kernel.
var (
	// ErrInvalidCoordinate is returned when a latitude is outside
	// [-90, 90] or a longitude is outside [-180, 180].
	ErrInvalidCoordinate = errors.New("numeric: coordinate out of range")

	// ErrInsufficientData is returned when a series holds no usable
	// (non-missing) values for the requested statistic.
	ErrInsufficientData = errors.New("numeric: no usable values in series")

	// ErrUnknownMethod is returned when an OutlierMethod value is not
	// one of the defined constants.
	ErrUnknownMethod = errors.New("numeric: unknown outlier method")

	// ErrBadPercentile is returned when a percentile is outside [0, 100].
	ErrBadPercentile = errors.New("numeric: percentile must be in [0, 100]")
)

// Missing is the in-band marker for an absent series entry.
// Arithmetic never touches it: every statistic filters missing values
// out first.
var Missing = math.NaN()

// IsMissing reports whether v is the missing-value marker.
func IsMissing(v float64) bool { return math.IsNaN(v) }

// Coordinate is a latitude/longitude pair in decimal degrees.
// Valid ranges: Lat in [-90, 90], Lon in [-180, 180]. Value type,
// immutable once constructed.
type Coordinate struct {
	Lat float64
	Lon float64
}

// NewCoordinate validates the ranges and returns the coordinate.
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	c := Coordinate{Lat: lat, Lon: lon}
	if !c.Valid() {
		return Coordinate{}, fmt.Errorf("%w: (%v, %v)", ErrInvalidCoordinate, lat, lon)
	}

	return c, nil
}

// Valid reports whether the coordinate lies inside the WGS-84 ranges.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Series is an ordered, finite sequence of float64 values, possibly
// containing missing entries (see Missing).
type Series []float64

// valid returns the non-missing values of s, preserving order, together
// with each value's index in the original series.
func (s Series) valid() ([]float64, []int) {
	vals := make([]float64, 0, len(s))
	idx := make([]int, 0, len(s))
	for i, v := range s {
		if IsMissing(v) {
			continue
		}
		vals = append(vals, v)
		idx = append(idx, i)
	}

	return vals, idx
}

// Summary holds the descriptive statistics of one series.
// Count is the number of non-missing values; every other field is
// derived from those values only.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
	Q1     float64
	Q3     float64
}

// OutlierMethod selects an outlier detection rule.
type OutlierMethod int

const (
	// IQRFence flags x when x < Q1 - t·IQR or x > Q3 + t·IQR.
	IQRFence OutlierMethod = iota

	// ModifiedZScore flags x when |0.6745·(x - median)/MAD| > t.
	// When MAD == 0 nothing is flagged (degenerate-variance guard).
	ModifiedZScore

	// ZScore flags x when |x - mean|/σ > t, with population σ.
	// When σ == 0 nothing is flagged.
	ZScore
)

// String returns the canonical method name.
func (m OutlierMethod) String() string {
	switch m {
	case IQRFence:
		return "iqr_fence"
	case ModifiedZScore:
		return "modified_zscore"
	case ZScore:
		return "zscore"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// Default thresholds applied when DetectOutliers receives threshold <= 0.
const (
	DefaultIQRThreshold       = 1.5
	DefaultModifiedZThreshold = 3.5
	DefaultZThreshold         = 3.0
)

// OutlierReport carries one flag per non-missing series element, plus the
// rule and threshold the flags were derived with. Recomputed fresh on
// every call; never cached.
type OutlierReport struct {
	// Method is the rule that produced the flags.
	Method OutlierMethod

	// Threshold is the multiplier actually used (the default when the
	// caller passed <= 0).
	Threshold float64

	// Index maps each flag back to the element's position in the input
	// series (missing entries carry no flag).
	Index []int

	// Flags holds one outlier verdict per non-missing element, in input
	// order. len(Flags) == len(Index).
	Flags []bool
}

// Outliers returns the original-series indices of the flagged elements.
func (r OutlierReport) Outliers() []int {
	var out []int
	for i, f := range r.Flags {
		if f {
			out = append(out, r.Index[i])
		}
	}

	return out
}
