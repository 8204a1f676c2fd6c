// Package sortsearch - enums, options and error definitions for the
// sorting/searching kernel.
package sortsearch

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for sorting, searching and benchmarking.
var (
	// ErrTypeMismatch is returned when two extracted keys cannot be
	// compared (unsupported kind, or mixed kinds such as string vs float).
	ErrTypeMismatch = errors.New("sortsearch: keys are not comparable")

	// ErrUnknownAlgorithm is returned when an Algorithm value is not one
	// of the defined constants.
	ErrUnknownAlgorithm = errors.New("sortsearch: unknown algorithm")

	// ErrNilKeyFunc is returned when a nil key extractor is supplied.
	ErrNilKeyFunc = errors.New("sortsearch: key function must be non-nil")

	// ErrNotFound is returned by BinarySearch and LinearSearch when no
	// element's key equals the target.
	ErrNotFound = errors.New("sortsearch: target not found")

	// ErrNilGenerator is returned by Benchmark when no input generator
	// is supplied.
	ErrNilGenerator = errors.New("sortsearch: input generator must be non-nil")
)

// Algorithm selects a sorting algorithm.
//
//   - MergeSort     — stable divide-and-conquer, O(n·log n) time, O(n) memory.
//     The split point is always len/2; ties are taken from the left run,
//     which preserves relative input order (stability).
//   - InsertionSort — stable quadratic sort, O(n²) worst-case time.
//     Elements shift only on a strict key ">", so equal keys never cross.
type Algorithm int

const (
	// MergeSort: deterministic stable O(n·log n) sort.
	MergeSort Algorithm = iota

	// InsertionSort: deterministic stable O(n²) sort.
	InsertionSort
)

// String returns the canonical algorithm name used in benchmark reports.
func (a Algorithm) String() string {
	switch a {
	case MergeSort:
		return "merge_sort"
	case InsertionSort:
		return "insertion_sort"
	default:
		return fmt.Sprintf("unknown(%d)", int(a))
	}
}

// KeyFunc extracts the ordering key from an element. Supported key kinds:
// all signed and unsigned integers, float32/float64, string and time.Time.
// Every other kind, and any mix of string/numeric/time kinds within one
// call, yields ErrTypeMismatch.
type KeyFunc[T any] func(T) any

// Identity is the KeyFunc for sequences whose elements are their own key.
func Identity[T any](v T) any { return v }

// Counters tallies the primitive operations performed by one algorithm run.
//
// Comparisons counts key-vs-key comparisons. Swaps counts element moves:
// shifts for InsertionSort, per-element merge writes for MergeSort.
type Counters struct {
	Comparisons uint64
	Swaps       uint64
}

// Result is one benchmark measurement: a single algorithm applied to a
// single input of the given size. Produced once per run; never persisted.
type Result struct {
	// Algorithm is the canonical name (Algorithm.String()).
	Algorithm string

	// Size is the input length the algorithm was run against.
	Size int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration

	// Counters holds the comparison/move tallies of the run.
	Counters Counters
}
