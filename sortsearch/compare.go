package sortsearch

import (
	"cmp"
	"strings"
	"time"
)

// compareKeys orders two extracted keys.
// Returns -1 / 0 / +1, or ErrTypeMismatch when the keys do not share a
// comparable kind. Numeric kinds are widened to float64 so that, e.g., an
// int column and a float column compare the way a caller expects; strings
// and time.Time only compare against their own kind.
//
// NaN float keys order below every other value (cmp.Compare semantics),
// keeping the comparison total and the sorts deterministic.
func compareKeys(a, b any) (int, error) {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, ErrTypeMismatch
		}

		return strings.Compare(av, bv), nil
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return 0, ErrTypeMismatch
		}

		return av.Compare(bv), nil
	default:
		af, ok := toFloat(a)
		if !ok {
			return 0, ErrTypeMismatch
		}
		bf, ok := toFloat(b)
		if !ok {
			return 0, ErrTypeMismatch
		}

		return cmp.Compare(af, bf), nil
	}
}

// toFloat widens any supported numeric key kind to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
