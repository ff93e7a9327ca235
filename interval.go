package interval

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Endpoint is one bound of an interval together with its inclusiveness.
type Endpoint[T constraints.Ordered] struct {
	Value     T
	Inclusive bool
}

// Span is the read-only view of an interval the classifier and the set operations work on.
type Span[T constraints.Ordered] interface {
	Minimum() T
	Maximum() T
	Topology() Topology
}

// Interval is an immutable contiguous range of an ordered scalar type.
//
// An interval whose bounds coincide is degenerate (a single point) when it is Closed,
// and empty otherwise. The zero value is the empty interval [0, 0).
type Interval[T constraints.Ordered] struct {
	min, max T
	topology Topology
}

var _ Span[float64] = Interval[float64]{}

// New creates the interval between min and max.
func New[T constraints.Ordered](min, max T, topology Topology) (Interval[T], error) {
	if err := checkBounds(min, max); err != nil {
		return Interval[T]{}, err
	}
	return Interval[T]{min: min, max: max, topology: topology}, nil
}

// FromEndpoints creates an interval from its (value, inclusive) pairs.
func FromEndpoints[T constraints.Ordered](min, max Endpoint[T]) (Interval[T], error) {
	return New(min.Value, max.Value, NewTopology(min.Inclusive, max.Inclusive))
}

// MustNew is like New but panics if the bounds are invalid.
func MustNew[T constraints.Ordered](min, max T, topology Topology) Interval[T] {
	i, err := New(min, max, topology)
	if err != nil {
		panic(err)
	}
	return i
}

// MustFromEndpoints is like FromEndpoints but panics if the bounds are invalid.
func MustFromEndpoints[T constraints.Ordered](min, max Endpoint[T]) Interval[T] {
	i, err := FromEndpoints(min, max)
	if err != nil {
		panic(err)
	}
	return i
}

func isNaN[T constraints.Ordered](v T) bool {
	return v != v
}

func checkBounds[T constraints.Ordered](min, max T) error {
	if isNaN(min) || isNaN(max) {
		return errors.Wrapf(ErrNotOrdered, "bounds %v and %v", min, max)
	}
	if min > max {
		return errors.Wrapf(ErrInvalidBounds, "minimum %v is greater than maximum %v", min, max)
	}
	return nil
}

func (i Interval[T]) Minimum() T         { return i.min }
func (i Interval[T]) Maximum() T         { return i.max }
func (i Interval[T]) Topology() Topology { return i.topology }

func (i Interval[T]) IsMinimumInclusive() bool { return i.topology.IsMinimumInclusive() }
func (i Interval[T]) IsMaximumInclusive() bool { return i.topology.IsMaximumInclusive() }

// Endpoints deconstructs the interval into its (value, inclusive) pairs.
func (i Interval[T]) Endpoints() (min, max Endpoint[T]) {
	return lowerOf[T](i), upperOf[T](i)
}

// Bounds deconstructs the interval into its raw fields.
func (i Interval[T]) Bounds() (min, max T, topology Topology) {
	return i.min, i.max, i.topology
}

// IsDegenerate reports whether the interval holds exactly one point.
func (i Interval[T]) IsDegenerate() bool {
	return i.min == i.max && i.topology == Closed
}

// IsEmpty reports whether the interval holds no point at all.
func (i Interval[T]) IsEmpty() bool {
	return isEmpty[T](i)
}

func (i Interval[T]) IsProper() bool {
	return !i.IsDegenerate() && !i.IsEmpty()
}

// Interior returns the largest open interval within i.
func (i Interval[T]) Interior() Interval[T] {
	return Interval[T]{min: i.min, max: i.max, topology: Open}
}

// IsLeftBounded reports whether the minimum is not the negative infinity of u.
func (i Interval[T]) IsLeftBounded(u Unbounded[T]) bool {
	return i.min != u.NegativeInfinity()
}

// IsRightBounded reports whether the maximum is not the positive infinity of u.
func (i Interval[T]) IsRightBounded(u Unbounded[T]) bool {
	return i.max != u.PositiveInfinity()
}

func (i Interval[T]) IsBounded(u Unbounded[T]) bool {
	return i.IsLeftBounded(u) && i.IsRightBounded(u)
}

// Equal reports whether i and other have identical endpoints and topology.
func (i Interval[T]) Equal(other Interval[T]) bool {
	return i.min == other.min && i.max == other.max && i.topology == other.topology
}

func (i Interval[T]) Contains(value T) bool {
	return ContainsValue[T](i, value)
}

// Classify returns the relationship of i with other.
func (i Interval[T]) Classify(other Interval[T]) IntersectionDetails {
	return Classify[T](i, other)
}

func (i Interval[T]) IsSubset(other Interval[T]) bool {
	return i.Classify(other).IsSubset()
}

func (i Interval[T]) IsProperSubset(other Interval[T]) bool {
	return i.Classify(other).IsProperSubset()
}

func (i Interval[T]) IsSuperset(other Interval[T]) bool {
	return i.Classify(other).IsSuperset()
}

func (i Interval[T]) IsProperSuperset(other Interval[T]) bool {
	return i.Classify(other).IsProperSuperset()
}

func (i Interval[T]) IntersectsWith(other Interval[T]) bool {
	return i.Classify(other).IsIntersecting()
}

func (i Interval[T]) Union(other Interval[T]) Interval[T] {
	return UnionOf[T](i, other, mustCreate[T])
}

func (i Interval[T]) Intersection(other Interval[T]) Interval[T] {
	return IntersectionOf[T](i, other, mustCreate[T])
}

// Difference returns i minus other.
func (i Interval[T]) Difference(other Interval[T]) SplitResult[Interval[T]] {
	return DifferenceOf[T](i, other, mustCreate[T])
}

func (i Interval[T]) SymmetricDifference(other Interval[T]) Bi[Interval[T]] {
	return SymmetricDifferenceOf[T](i, other, mustCreate[T])
}

// Complement returns the points of universe which are not in i.
func (i Interval[T]) Complement(universe Interval[T]) SplitResult[Interval[T]] {
	return ComplementOf[T](i, universe, mustCreate[T])
}

// Partition splits i at point.
func (i Interval[T]) Partition(point T) PartitionResult[Interval[T]] {
	return PartitionOf[T](i, point, mustCreate[T])
}

func mustCreate[T constraints.Ordered](min, max Endpoint[T]) Interval[T] {
	i, err := FromEndpoints(min, max)
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "set operation produced invalid bounds"))
	}
	return i
}
