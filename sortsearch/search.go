package sortsearch

// BinarySearch looks target up in a sequence sorted ascending by the same
// key and returns the index of one matching element.
//
// Contract (not checked at runtime, mirroring the cost model of the
// standard library): the input must already be sorted ascending by key.
// On an unsorted input the result is unspecified - the search terminates
// and does not crash, but the returned index or ErrNotFound may be wrong.
//
// On duplicate keys any one matching index may be returned; unlike Sort,
// no ordering among duplicates is guaranteed.
//
// Errors:
//   - ErrNilKeyFunc   — key is nil.
//   - ErrTypeMismatch — a key could not be compared against target.
//   - ErrNotFound     — no element's key equals target.
//
// Complexity: O(log n) comparisons.
func BinarySearch[T any](sorted []T, key KeyFunc[T], target any) (int, error) {
	var c Counters

	return binarySearch(sorted, key, target, &c)
}

func binarySearch[T any](sorted []T, key KeyFunc[T], target any, c *Counters) (int, error) {
	if key == nil {
		return 0, ErrNilKeyFunc
	}

	lo, hi := 0, len(sorted)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1) // overflow-safe midpoint

		rel, err := compareKeys(key(sorted[mid]), target)
		if err != nil {
			return 0, err
		}
		c.Comparisons++

		switch {
		case rel == 0:
			return mid, nil
		case rel < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return 0, ErrNotFound
}

// LinearSearch scans data in input order and returns the index of the
// first element whose key equals target.
//
// Errors:
//   - ErrNilKeyFunc   — key is nil.
//   - ErrTypeMismatch — a key could not be compared against target.
//   - ErrNotFound     — no element's key equals target.
//
// Complexity: O(n) comparisons.
func LinearSearch[T any](data []T, key KeyFunc[T], target any) (int, error) {
	var c Counters

	return linearSearch(data, key, target, &c)
}

func linearSearch[T any](data []T, key KeyFunc[T], target any, c *Counters) (int, error) {
	if key == nil {
		return 0, ErrNilKeyFunc
	}

	for i := range data {
		rel, err := compareKeys(key(data[i]), target)
		if err != nil {
			return 0, err
		}
		c.Comparisons++

		if rel == 0 {
			return i, nil
		}
	}

	return 0, ErrNotFound
}
