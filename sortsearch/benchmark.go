package sortsearch

import (
	"errors"
	"time"
)

// Benchmark times every algorithm in algos against the same inputs.
//
// For each size (caller-supplied, normally ascending) the generator is
// invoked exactly once; every algorithm then receives an independent copy
// of that input, so an in-place algorithm can never corrupt a later run.
// One Result per (size, algorithm) pair is produced, in that nesting
// order.
//
// An empty algos or sizes list yields an empty result sequence, not an
// error.
//
// Errors:
//   - ErrNilKeyFunc / ErrNilGenerator — missing collaborator.
//   - ErrUnknownAlgorithm / ErrTypeMismatch — propagated from the first
//     failing run; no partial results are returned.
func Benchmark[T any](algos []Algorithm, key KeyFunc[T], gen func(n int) []T, sizes []int) ([]Result, error) {
	if key == nil {
		return nil, ErrNilKeyFunc
	}
	if gen == nil {
		return nil, ErrNilGenerator
	}

	results := make([]Result, 0, len(algos)*len(sizes))
	for _, n := range sizes {
		input := gen(n)

		for _, algo := range algos {
			// Fresh copy per algorithm: identical input, no sharing.
			cp := append([]T(nil), input...)

			start := time.Now()
			_, c, err := SortWithCounters(cp, key, algo)
			elapsed := time.Since(start)
			if err != nil {
				return nil, err
			}

			results = append(results, Result{
				Algorithm: algo.String(),
				Size:      len(input),
				Elapsed:   elapsed,
				Counters:  c,
			})
		}
	}

	return results, nil
}

// BenchmarkSearch times BinarySearch against LinearSearch for one target.
//
// The input is merge-sorted first (binary search requires it); the sort
// cost is not included in either measurement. A target that is absent is
// a valid benchmark, not an error - only comparison failures propagate.
func BenchmarkSearch[T any](data []T, key KeyFunc[T], target any) ([]Result, error) {
	if key == nil {
		return nil, ErrNilKeyFunc
	}

	sorted, err := Sort(data, key, MergeSort)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, 2)

	var bc Counters
	start := time.Now()
	_, err = binarySearch(sorted, key, target, &bc)
	elapsed := time.Since(start)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	results = append(results, Result{
		Algorithm: "binary_search",
		Size:      len(data),
		Elapsed:   elapsed,
		Counters:  bc,
	})

	var lc Counters
	start = time.Now()
	_, err = linearSearch(data, key, target, &lc)
	elapsed = time.Since(start)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	results = append(results, Result{
		Algorithm: "linear_search",
		Size:      len(data),
		Elapsed:   elapsed,
		Counters:  lc,
	})

	return results, nil
}
