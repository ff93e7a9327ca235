package interval

import (
	"github.com/ostafen/interval/internal/keycode"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

func compare[T constraints.Ordered](v1, v2 T) int {
	if v1 < v2 {
		return -1
	} else if v1 > v2 {
		return 1
	}
	return 0
}

// compareLower orders two minimum endpoints: at the same value the inclusive one comes first.
func compareLower[T constraints.Ordered](e1, e2 Endpoint[T]) int {
	if res := compare(e1.Value, e2.Value); res != 0 {
		return res
	}
	return boolRank(!e1.Inclusive) - boolRank(!e2.Inclusive)
}

// compareUpper orders two maximum endpoints: at the same value the inclusive one comes last.
func compareUpper[T constraints.Ordered](e1, e2 Endpoint[T]) int {
	if res := compare(e1.Value, e2.Value); res != 0 {
		return res
	}
	return boolRank(e1.Inclusive) - boolRank(e2.Inclusive)
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// CompareMinimums orders a and b by their minimum endpoint only.
func CompareMinimums[T constraints.Ordered](a, b Span[T]) int {
	return compareLower(lowerOf(a), lowerOf(b))
}

// CompareMaximums orders a and b by their maximum endpoint only.
func CompareMaximums[T constraints.Ordered](a, b Span[T]) int {
	return compareUpper(upperOf(a), upperOf(b))
}

// Compare orders intervals by minimum first, then by maximum.
// An inclusive minimum sorts before an exclusive one at the same value,
// while an inclusive maximum sorts after an exclusive one.
func Compare[T constraints.Ordered](a, b Interval[T]) int {
	if res := CompareMinimums[T](a, b); res != 0 {
		return res
	}
	return CompareMaximums[T](a, b)
}

func (i Interval[T]) Compare(other Interval[T]) int {
	return Compare(i, other)
}

func (i Interval[T]) Less(other Interval[T]) bool {
	return Compare(i, other) < 0
}

// SortIntervals sorts s in place by Compare.
func SortIntervals[T constraints.Ordered](s []Interval[T]) {
	slices.SortStableFunc(s, Compare[T])
}

// SortKey returns a byte string whose lexicographic order matches Compare.
// Only numeric and string scalars can be encoded.
func (i Interval[T]) SortKey() ([]byte, error) {
	return keycode.AppendInterval(nil, i.min, i.topology.IsMinimumInclusive(), i.max, i.topology.IsMaximumInclusive())
}
