package interval

import (
	"math"
	"reflect"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Unit is [0, 1).
var Unit = MustNew(0.0, 1.0, Default)

// RealLine is (-∞, ∞).
var RealLine = Universe[float64](Reals{})

// Degenerate returns the interval holding only value. It panics if value is not ordered.
func Degenerate[T constraints.Ordered](value T) Interval[T] {
	return MustNew(value, value, Closed)
}

// EmptyAt returns an empty interval located at value. It panics if value is not ordered.
func EmptyAt[T constraints.Ordered](value T) Interval[T] {
	return MustNew(value, value, Open)
}

// Empty returns the canonical empty interval, (0, 0).
func Empty[T constraints.Ordered]() Interval[T] {
	return Interval[T]{topology: Open}
}

// Universe returns the open interval between the infinities of u.
func Universe[T constraints.Ordered](u Unbounded[T]) Interval[T] {
	return Interval[T]{min: u.NegativeInfinity(), max: u.PositiveInfinity(), topology: Open}
}

// AtLeast returns [value, ∞).
func AtLeast[T constraints.Ordered](u Unbounded[T], value T) (Interval[T], error) {
	return New(value, u.PositiveInfinity(), LeftClosedRightOpen)
}

// GreaterThan returns (value, ∞).
func GreaterThan[T constraints.Ordered](u Unbounded[T], value T) (Interval[T], error) {
	return New(value, u.PositiveInfinity(), Open)
}

// AtMost returns (-∞, value].
func AtMost[T constraints.Ordered](u Unbounded[T], value T) (Interval[T], error) {
	return New(u.NegativeInfinity(), value, LeftOpenRightClosed)
}

// LessThan returns (-∞, value).
func LessThan[T constraints.Ordered](u Unbounded[T], value T) (Interval[T], error) {
	return New(u.NegativeInfinity(), value, Open)
}

// ClosureOf returns the smallest closed interval holding every value.
// The closure of no value is the empty interval.
func ClosureOf[T constraints.Ordered](values ...T) (Interval[T], error) {
	if len(values) == 0 {
		return Empty[T](), nil
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if isNaN(v) {
			return Interval[T]{}, errors.Wrapf(ErrNotOrdered, "value %v", v)
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return New(min, max, Closed)
}

// FromTolerance returns [center-radius, center+radius].
func FromTolerance[T constraints.Float](center, radius T) (Interval[T], error) {
	if radius < 0 {
		return Interval[T]{}, errors.Wrapf(ErrNegativeTolerance, "radius %v", radius)
	}
	return New(center-radius, center+radius, Closed)
}

// Approximation returns the closed interval within 5% of value.
func Approximation[T constraints.Float](value T) (Interval[T], error) {
	return FromTolerance(value, T(math.Abs(float64(value))*0.05))
}

// SameOrderOfMagnitude returns the closed interval [value^0.1, value^10], bounds swapped when value < 1.
func SameOrderOfMagnitude[T constraints.Float](value T) (Interval[T], error) {
	if value < 0 {
		return Interval[T]{}, errors.Wrapf(ErrNotOrdered, "order of magnitude of negative value %v", value)
	}

	v := float64(value)
	min, max := T(math.Pow(v, 0.1)), T(math.Pow(v, 10))
	if min > max {
		min, max = max, min
	}
	return New(min, max, Closed)
}

func reflectName(v interface{}) string {
	return reflect.TypeOf(v).String()
}
