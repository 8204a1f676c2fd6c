package sortsearch_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/citybike/sortsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tagged carries a secondary tag so stability can be observed on
// duplicate keys.
type tagged struct {
	key float64
	tag int
}

func byKey(v tagged) any { return v.key }

// TestSort_EmptyAndSingle verifies that empty and single-element inputs
// are returned unchanged immediately, as a base case rather than an error.
func TestSort_EmptyAndSingle(t *testing.T) {
	for _, algo := range []sortsearch.Algorithm{sortsearch.MergeSort, sortsearch.InsertionSort} {
		out, err := sortsearch.Sort([]float64{}, sortsearch.Identity[float64], algo)
		require.NoError(t, err, "%s: empty input must not error", algo)
		assert.Empty(t, out, "%s: empty input stays empty", algo)

		out, err = sortsearch.Sort([]float64{7}, sortsearch.Identity[float64], algo)
		require.NoError(t, err, "%s: single element must not error", algo)
		assert.Equal(t, []float64{7}, out, "%s: single element unchanged", algo)
	}
}

// TestSort_BothAlgorithmsAgree runs the scenario from the duplicate-key
// contract: sorting [5,3,5,1,4] by identity key yields [1,3,4,5,5] under
// both algorithms, and the two fives retain their original relative order.
func TestSort_BothAlgorithmsAgree(t *testing.T) {
	input := []tagged{{5, 0}, {3, 1}, {5, 2}, {1, 3}, {4, 4}}
	want := []tagged{{1, 3}, {3, 1}, {4, 4}, {5, 0}, {5, 2}}

	for _, algo := range []sortsearch.Algorithm{sortsearch.MergeSort, sortsearch.InsertionSort} {
		out, err := sortsearch.Sort(input, byKey, algo)
		require.NoError(t, err)
		assert.Equal(t, want, out, "%s: sorted output with stable duplicates", algo)
	}

	// Input must not have been mutated.
	assert.Equal(t, []tagged{{5, 0}, {3, 1}, {5, 2}, {1, 3}, {4, 4}}, input)
}

// TestSort_PermutationAndOrder checks, on pseudo-random data with a fixed
// seed, that the output is a permutation of the input in non-decreasing
// key order and that both algorithms produce identical output.
func TestSort_PermutationAndOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	input := make([]tagged, 200)
	for i := range input {
		input[i] = tagged{key: float64(rng.Intn(25)), tag: i}
	}

	merged, err := sortsearch.Sort(input, byKey, sortsearch.MergeSort)
	require.NoError(t, err)
	inserted, err := sortsearch.Sort(input, byKey, sortsearch.InsertionSort)
	require.NoError(t, err)

	assert.Equal(t, merged, inserted, "both algorithms must agree element-for-element")
	require.Len(t, merged, len(input), "output must have the input length")

	seen := make(map[int]bool, len(input))
	for i, v := range merged {
		assert.False(t, seen[v.tag], "tag %d appears more than once", v.tag)
		seen[v.tag] = true
		if i > 0 {
			assert.LessOrEqual(t, merged[i-1].key, v.key, "keys must be non-decreasing at %d", i)
			if merged[i-1].key == v.key {
				assert.Less(t, merged[i-1].tag, v.tag, "equal keys must retain input order at %d", i)
			}
		}
	}
}

// TestSort_StringAndTimeKeys verifies the non-numeric key kinds.
func TestSort_StringAndTimeKeys(t *testing.T) {
	names := []string{"delta", "alpha", "charlie", "bravo"}
	out, err := sortsearch.Sort(names, sortsearch.Identity[string], sortsearch.MergeSort)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, out)

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	stamps := []time.Time{base.AddDate(0, 0, 2), base, base.AddDate(0, 0, 1)}
	sorted, err := sortsearch.Sort(stamps, sortsearch.Identity[time.Time], sortsearch.InsertionSort)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{base, base.AddDate(0, 0, 1), base.AddDate(0, 0, 2)}, sorted)
}

// TestSort_TypeMismatch ensures mixed key kinds fail with ErrTypeMismatch
// and return no partial result.
func TestSort_TypeMismatch(t *testing.T) {
	mixed := []any{1.5, "two", 3.0}

	for _, algo := range []sortsearch.Algorithm{sortsearch.MergeSort, sortsearch.InsertionSort} {
		out, err := sortsearch.Sort(mixed, sortsearch.Identity[any], algo)
		assert.ErrorIs(t, err, sortsearch.ErrTypeMismatch, "%s: incomparable keys must error", algo)
		assert.Nil(t, out, "%s: no partial result on failure", algo)
	}
}

// TestSort_BadArguments covers the nil key func and unknown algorithm
// sentinels.
func TestSort_BadArguments(t *testing.T) {
	_, err := sortsearch.Sort([]float64{1, 2}, nil, sortsearch.MergeSort)
	assert.ErrorIs(t, err, sortsearch.ErrNilKeyFunc)

	_, err = sortsearch.Sort([]float64{1, 2}, sortsearch.Identity[float64], sortsearch.Algorithm(99))
	assert.ErrorIs(t, err, sortsearch.ErrUnknownAlgorithm)
}

// TestSortWithCounters_CountsOperations checks that a reverse-ordered
// input produces the expected quadratic tally for insertion sort and a
// far smaller one for merge sort.
func TestSortWithCounters_CountsOperations(t *testing.T) {
	n := 64
	input := make([]float64, n)
	for i := range input {
		input[i] = float64(n - i)
	}

	_, ic, err := sortsearch.SortWithCounters(input, sortsearch.Identity[float64], sortsearch.InsertionSort)
	require.NoError(t, err)
	// Reverse order is the worst case: n(n-1)/2 shifts.
	assert.Equal(t, uint64(n*(n-1)/2), ic.Swaps, "insertion sort shift count on reversed input")

	_, mc, err := sortsearch.SortWithCounters(input, sortsearch.Identity[float64], sortsearch.MergeSort)
	require.NoError(t, err)
	assert.Less(t, mc.Comparisons, ic.Comparisons, "merge sort must compare less on reversed input")
}
