package sortsearch

// Sort orders data ascending by the extracted key using the selected
// algorithm and returns a fresh slice; the input is never mutated.
//
// Guarantees (identical for every Algorithm):
//  1. The output is a permutation of the input: every element appears
//     exactly once.
//  2. Keys are in non-decreasing order.
//  3. Stability: elements with equal keys retain their relative input
//     order.
//
// Empty and single-element inputs are returned (as a copy) immediately -
// a base case, not an error.
//
// Errors:
//   - ErrNilKeyFunc      — key is nil.
//   - ErrUnknownAlgorithm — algo is not a defined constant.
//   - ErrTypeMismatch    — two keys could not be compared; no partial
//     result is returned.
func Sort[T any](data []T, key KeyFunc[T], algo Algorithm) ([]T, error) {
	out, _, err := SortWithCounters(data, key, algo)

	return out, err
}

// SortWithCounters behaves exactly like Sort and additionally reports the
// comparison/move tallies of the run, for benchmarking.
func SortWithCounters[T any](data []T, key KeyFunc[T], algo Algorithm) ([]T, Counters, error) {
	var c Counters
	if key == nil {
		return nil, c, ErrNilKeyFunc
	}
	if algo != MergeSort && algo != InsertionSort {
		return nil, c, ErrUnknownAlgorithm
	}

	// Base case: nothing to order.
	if len(data) <= 1 {
		return append([]T(nil), data...), c, nil
	}

	// Extract every key exactly once; all subsequent comparisons reuse
	// the cached key, keeping operation counts independent of key cost.
	ks := make([]keyed[T], len(data))
	for i, v := range data {
		ks[i] = keyed[T]{val: v, key: key(v)}
	}

	var err error
	switch algo {
	case MergeSort:
		ks, err = mergeSort(ks, &c)
	case InsertionSort:
		err = insertionSort(ks, &c)
	}
	if err != nil {
		return nil, Counters{}, err
	}

	out := make([]T, len(ks))
	for i := range ks {
		out[i] = ks[i].val
	}

	return out, c, nil
}

// keyed pairs an element with its pre-extracted ordering key.
type keyed[T any] struct {
	val T
	key any
}

// mergeSort is the classic top-down stable merge sort. The split point is
// always len/2, so the recursion shape - and therefore the operation
// count - is fully determined by the input length.
func mergeSort[T any](ks []keyed[T], c *Counters) ([]keyed[T], error) {
	if len(ks) <= 1 {
		return ks, nil
	}

	mid := len(ks) / 2
	left, err := mergeSort(ks[:mid], c)
	if err != nil {
		return nil, err
	}
	right, err := mergeSort(ks[mid:], c)
	if err != nil {
		return nil, err
	}

	return merge(left, right, c)
}

// merge combines two sorted runs into one. Ties take from the left run
// first (<= 0), which is what makes the whole sort stable.
func merge[T any](left, right []keyed[T], c *Counters) ([]keyed[T], error) {
	out := make([]keyed[T], 0, len(left)+len(right))

	var i, j int
	for i < len(left) && j < len(right) {
		rel, err := compareKeys(left[i].key, right[j].key)
		if err != nil {
			return nil, err
		}
		c.Comparisons++

		if rel <= 0 {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
		c.Swaps++ // one element moved into the merged run
	}

	c.Swaps += uint64(len(left) - i + len(right) - j)
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)

	return out, nil
}

// insertionSort orders ks in place. Elements shift only on a strict
// key ">" against the current element, so equal keys never cross
// (stability). Each shift is counted as one move.
func insertionSort[T any](ks []keyed[T], c *Counters) error {
	for i := 1; i < len(ks); i++ {
		cur := ks[i]

		j := i - 1
		for j >= 0 {
			rel, err := compareKeys(ks[j].key, cur.key)
			if err != nil {
				return err
			}
			c.Comparisons++

			if rel <= 0 {
				break
			}
			ks[j+1] = ks[j]
			c.Swaps++
			j--
		}
		ks[j+1] = cur
	}

	return nil
}
