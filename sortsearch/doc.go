// Package sortsearch provides hand-implemented, instrumented sorting and
// searching over arbitrary comparable sequences, plus a benchmarking
// harness that pits the algorithms against each other on identical input.
//
// 🚀 What is sortsearch?
//
//	A small, deterministic algorithm kernel used by the CityBike analytics
//	pipeline wherever rankings and lookups must be reproducible and their
//	cost measurable:
//	  • MergeSort      — stable O(n·log n) divide-and-conquer sort
//	  • InsertionSort  — stable O(n²) comparison sort
//	  • BinarySearch   — O(log n) lookup over a sorted sequence
//	  • LinearSearch   — O(n) first-match scan
//	  • Benchmark      — wall time + comparison/move counts per algorithm
//
// ✨ Why two sorts?
//
//   - Both produce byte-identical output (stable, non-decreasing by key);
//     they differ only in cost, which is exactly what Benchmark measures.
//   - Determinism everywhere: the split point is always len/2, there is no
//     randomized pivoting, so output and operation counts are reproducible
//     for a given input.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/citybike/sortsearch"
//
//	byDuration := func(t Trip) any { return t.DurationMinutes }
//	sorted, err := sortsearch.Sort(trips, byDuration, sortsearch.MergeSort)
//
//	i, err := sortsearch.BinarySearch(sorted, byDuration, 42.0)
//
// Keys are extracted once per element and compared dynamically; numeric
// kinds, strings and time.Time are supported. Mixing incomparable key kinds
// surfaces ErrTypeMismatch instead of a silently wrong order.
//
// Complexity:
//
//   - MergeSort:     O(n·log n) time, O(n) memory
//   - InsertionSort: O(n²) worst-case time, O(n) memory (input is copied)
//   - BinarySearch:  O(log n); LinearSearch: O(n)
//
// All functions are pure: inputs are never mutated, results are fresh
// slices, and no state is shared between calls.
package sortsearch
