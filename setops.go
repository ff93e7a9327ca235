package interval

import (
	"golang.org/x/exp/constraints"
)

// Factory builds the concrete representation R of an interval from its endpoints.
// The set operations never build an interval with a minimum greater than its maximum.
type Factory[T constraints.Ordered, R any] func(min, max Endpoint[T]) R

func lowerOf[T constraints.Ordered](s Span[T]) Endpoint[T] {
	return Endpoint[T]{Value: s.Minimum(), Inclusive: s.Topology().IsMinimumInclusive()}
}

func upperOf[T constraints.Ordered](s Span[T]) Endpoint[T] {
	return Endpoint[T]{Value: s.Maximum(), Inclusive: s.Topology().IsMaximumInclusive()}
}

func isEmpty[T constraints.Ordered](s Span[T]) bool {
	return s.Minimum() == s.Maximum() && s.Topology() != Closed
}

// flip returns the endpoint with the opposite inclusiveness, used for cut edges.
func flip[T constraints.Ordered](e Endpoint[T]) Endpoint[T] {
	return Endpoint[T]{Value: e.Value, Inclusive: !e.Inclusive}
}

func emptyEndpoints[T constraints.Ordered]() (min, max Endpoint[T]) {
	return Endpoint[T]{}, Endpoint[T]{}
}

func emptyOf[T constraints.Ordered, R any](create Factory[T, R]) R {
	return create(emptyEndpoints[T]())
}

// piece creates [min, max], canonicalizing it to the empty interval when it holds no point.
func piece[T constraints.Ordered, R any](min, max Endpoint[T], create Factory[T, R]) R {
	if pieceIsEmpty(min, max) {
		return emptyOf(create)
	}
	return create(min, max)
}

func pieceIsEmpty[T constraints.Ordered](min, max Endpoint[T]) bool {
	return min.Value == max.Value && !(min.Inclusive && max.Inclusive)
}

// split builds the result of cutting an interval in two, dropping the pieces holding no point.
func split[T constraints.Ordered, R any](lowMin, lowMax, highMin, highMax Endpoint[T], create Factory[T, R]) SplitResult[R] {
	lowEmpty, highEmpty := pieceIsEmpty(lowMin, lowMax), pieceIsEmpty(highMin, highMax)
	switch {
	case lowEmpty && highEmpty:
		return Mono[R]{emptyOf(create)}
	case lowEmpty:
		return Mono[R]{create(highMin, highMax)}
	case highEmpty:
		return Mono[R]{create(lowMin, lowMax)}
	}
	return Bi[R]{Lower: create(lowMin, lowMax), Upper: create(highMin, highMax)}
}

// ContainsValue reports whether value lies strictly between the endpoints of s,
// or equals an inclusive endpoint. An empty span contains no value.
func ContainsValue[T constraints.Ordered](s Span[T], value T) bool {
	if isEmpty(s) {
		return false
	}

	min, max := s.Minimum(), s.Maximum()
	if min < value && value < max {
		return true
	}
	t := s.Topology()
	return (value == min && t.IsMinimumInclusive()) || (value == max && t.IsMaximumInclusive())
}

// UnionOf returns the smallest interval covering a and b.
// When a and b are disjoint their union is not an interval, and the empty interval is returned.
func UnionOf[T constraints.Ordered, R any](a, b Span[T], create Factory[T, R]) R {
	switch {
	case isEmpty(a) && isEmpty(b):
		return emptyOf(create)
	case isEmpty(a):
		return create(lowerOf(b), upperOf(b))
	case isEmpty(b):
		return create(lowerOf(a), upperOf(a))
	}

	if Classify(a, b).IsDisjoint() {
		return emptyOf(create)
	}

	min := lowerOf(a)
	if bmin := lowerOf(b); compareLower(bmin, min) < 0 {
		min = bmin
	}
	max := upperOf(a)
	if bmax := upperOf(b); compareUpper(bmax, max) > 0 {
		max = bmax
	}
	return create(min, max)
}

// IntersectionOf returns the points shared by a and b.
func IntersectionOf[T constraints.Ordered, R any](a, b Span[T], create Factory[T, R]) R {
	details := Classify(a, b)
	if details.IsDisjoint() {
		return emptyOf(create)
	}

	var min, max Endpoint[T]
	switch c := details.(Intersecting).Closure; {
	case c == Equal || details.IsSubset():
		min, max = lowerOf(a), upperOf(a)
	case details.IsSuperset():
		min, max = lowerOf(b), upperOf(b)
	case c == AOverlapsLowerB:
		min, max = lowerOf(b), upperOf(a)
	default: // AOverlapsUpperB
		min, max = lowerOf(a), upperOf(b)
	}
	return piece(min, max, create)
}

// DifferenceOf returns the points of a which are not in b.
func DifferenceOf[T constraints.Ordered, R any](a, b Span[T], create Factory[T, R]) SplitResult[R] {
	if isEmpty(a) {
		return Mono[R]{emptyOf(create)}
	}
	if isEmpty(b) {
		return Mono[R]{create(lowerOf(a), upperOf(a))}
	}

	details := Classify(a, b)
	if details.IsDisjoint() {
		return Mono[R]{create(lowerOf(a), upperOf(a))}
	}

	a1, a2 := lowerOf(a), upperOf(a)
	b1, b2 := lowerOf(b), upperOf(b)

	switch c := details.(Intersecting).Closure; {
	case c == Equal || details.IsSubset():
		return Mono[R]{emptyOf(create)}
	case details.IsSuperset():
		return split(a1, flip(b1), flip(b2), a2, create)
	case c == AOverlapsLowerB:
		return Mono[R]{piece(a1, flip(b1), create)}
	default: // AOverlapsUpperB
		return Mono[R]{piece(flip(b2), a2, create)}
	}
}

// SymmetricDifferenceOf returns the points belonging to exactly one of a and b,
// as the region below the overlap and the region above it. Either region may be empty.
func SymmetricDifferenceOf[T constraints.Ordered, R any](a, b Span[T], create Factory[T, R]) Bi[R] {
	empty := emptyOf(create)
	switch {
	case isEmpty(a) && isEmpty(b):
		return Bi[R]{empty, empty}
	case isEmpty(a):
		return Bi[R]{empty, create(lowerOf(b), upperOf(b))}
	case isEmpty(b):
		return Bi[R]{empty, create(lowerOf(a), upperOf(a))}
	}

	a1, a2 := lowerOf(a), upperOf(a)
	b1, b2 := lowerOf(b), upperOf(b)

	details := Classify(a, b)
	switch {
	case details.IsFullyBelow():
		return Bi[R]{create(a1, a2), create(b1, b2)}
	case details.IsFullyAbove():
		return Bi[R]{create(b1, b2), create(a1, a2)}
	}

	switch c := details.(Intersecting).Closure; {
	case c == Equal:
		return Bi[R]{empty, empty}
	case details.IsSubset():
		return Bi[R]{piece(b1, flip(a1), create), piece(flip(a2), b2, create)}
	case details.IsSuperset():
		return Bi[R]{piece(a1, flip(b1), create), piece(flip(b2), a2, create)}
	case c == AOverlapsLowerB:
		return Bi[R]{piece(a1, flip(b1), create), piece(flip(a2), b2, create)}
	default: // AOverlapsUpperB
		return Bi[R]{piece(b1, flip(a1), create), piece(flip(b2), a2, create)}
	}
}

// ComplementOf returns the points of universe which are not in a.
// Each cut edge takes the opposite inclusiveness of the edge of a it was cut from,
// so that the complement of the complement gives back a.
func ComplementOf[T constraints.Ordered, R any](a, universe Span[T], create Factory[T, R]) SplitResult[R] {
	if isEmpty(a) {
		return Mono[R]{create(lowerOf(universe), upperOf(universe))}
	}
	if !Classify(a, universe).IsSubset() {
		return DifferenceOf(universe, a, create)
	}

	u1, u2 := lowerOf(universe), upperOf(universe)
	return split(u1, flip(lowerOf(a)), flip(upperOf(a)), u2, create)
}

// PartitionOf splits s at point into the part below it, the point itself and the part above it.
// When point does not belong to s the result is disjoint and holds the empty interval at point.
func PartitionOf[T constraints.Ordered, R any](s Span[T], point T, create Factory[T, R]) PartitionResult[R] {
	if !ContainsValue(s, point) {
		return DisjointPartition[R]{create(Endpoint[T]{Value: point}, Endpoint[T]{Value: point})}
	}

	at := Endpoint[T]{Value: point, Inclusive: true}
	cut := flip(at)
	return ValidPartition[R]{
		Lower: piece(lowerOf(s), cut, create),
		Point: create(at, at),
		Upper: piece(cut, upperOf(s), create),
	}
}
