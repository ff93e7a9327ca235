package interval

import (
	"math"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Center returns the middle of i. It is infinite or NaN for unbounded intervals.
func Center[T constraints.Float](i Interval[T]) T {
	return i.min/2 + i.max/2
}

// Range returns the length of i.
func Range[T constraints.Float](i Interval[T]) T {
	return i.max - i.min
}

// Radius returns half the length of i.
func Radius[T constraints.Float](i Interval[T]) T {
	return Range(i) / 2
}

// Anchor returns a representative value of i: its center when bounded,
// or its finite endpoint when unbounded on one side.
func Anchor[T constraints.Float](i Interval[T]) (T, error) {
	minInf := math.IsInf(float64(i.min), -1)
	maxInf := math.IsInf(float64(i.max), 1)
	switch {
	case minInf && maxInf:
		return 0, errors.Wrapf(ErrUnbounded, "interval %s", i)
	case minInf:
		return i.max, nil
	case maxInf:
		return i.min, nil
	}
	return Center(i), nil
}

// UnitNormalize maps value to its relative position in i, 0 at the minimum and 1 at the maximum.
// With clamp, values outside i are mapped to 0 or 1.
func UnitNormalize[T constraints.Float](i Interval[T], value T, clamp bool) T {
	r := Range(i)
	if r == 0 {
		return 0
	}

	n := (value - i.min) / r
	if clamp {
		n = T(math.Max(0, math.Min(1, float64(n))))
	}
	return n
}

// Scale multiplies both endpoints by factor. A negative factor mirrors i.
func Scale[T constraints.Float](i Interval[T], factor T) (Interval[T], error) {
	if factor < 0 {
		return New(i.max*factor, i.min*factor, NewTopology(i.topology.IsMaximumInclusive(), i.topology.IsMinimumInclusive()))
	}
	return New(i.min*factor, i.max*factor, i.topology)
}

// Extend moves the endpoints of i apart by delta on each side. A negative delta shrinks i.
func Extend[T constraints.Float](i Interval[T], delta T) (Interval[T], error) {
	return New(i.min-delta, i.max+delta, i.topology)
}

// Shift moves i by delta.
func Shift[T constraints.Float](i Interval[T], delta T) (Interval[T], error) {
	return New(i.min+delta, i.max+delta, i.topology)
}

// WithTolerance widens i by radius on each side and closes it.
func WithTolerance[T constraints.Float](i Interval[T], radius T) (Interval[T], error) {
	if radius < 0 {
		return Interval[T]{}, errors.Wrapf(ErrNegativeTolerance, "radius %v", radius)
	}
	return New(i.min-radius, i.max+radius, Closed)
}
