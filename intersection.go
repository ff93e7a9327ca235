package interval

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Position locates an interval relative to another one it does not share any point with.
type Position int8

const (
	Below Position = -1
	Above Position = 1
)

func (p Position) String() string {
	if p == Below {
		return "Below"
	}
	return "Above"
}

// Closure is the shape of the overlap of two intersecting intervals A and B.
// The order of the constants is the order used for display.
type Closure uint8

const (
	ProperSuperset Closure = iota
	Superset
	// AOverlapsLowerB means A starts first and its upper part overlaps (or joins) the lower part of B.
	AOverlapsLowerB
	Equal
	Subset
	ProperSubset
	// AOverlapsUpperB means B starts first and the lower part of A overlaps (or joins) the upper part of B.
	AOverlapsUpperB
)

var closureNames = [...]string{
	ProperSuperset:  "ProperSuperset",
	Superset:        "Superset",
	AOverlapsLowerB: "AOverlapsLowerB",
	Equal:           "Equal",
	Subset:          "Subset",
	ProperSubset:    "ProperSubset",
	AOverlapsUpperB: "AOverlapsUpperB",
}

func (c Closure) String() string {
	if int(c) < len(closureNames) {
		return closureNames[c]
	}
	return fmt.Sprintf("Closure(%d)", c)
}

// Mirror returns the closure of B relative to A.
func (c Closure) Mirror() Closure {
	switch c {
	case ProperSuperset:
		return ProperSubset
	case Superset:
		return Subset
	case AOverlapsLowerB:
		return AOverlapsUpperB
	case Subset:
		return Superset
	case ProperSubset:
		return ProperSuperset
	case AOverlapsUpperB:
		return AOverlapsLowerB
	}
	return c
}

// IntersectionDetails is the relationship between two intervals A and B.
// It is either a Disjoint or an Intersecting value.
type IntersectionDetails interface {
	IsDisjoint() bool
	IsIntersecting() bool
	IsFullyBelow() bool
	IsFullyAbove() bool
	IsSubset() bool
	IsProperSubset() bool
	IsSuperset() bool
	IsProperSuperset() bool
	// Mirror returns the details seen from B.
	Mirror() IntersectionDetails
	String() string

	intersectionDetails()
}

// Disjoint means A and B do not share any point.
type Disjoint struct {
	Position Position
}

// Intersecting means A and B share at least one point, or join without a gap.
type Intersecting struct {
	Closure Closure
}

var (
	FullyBelow IntersectionDetails = Disjoint{Below}
	FullyAbove IntersectionDetails = Disjoint{Above}
)

func (Disjoint) intersectionDetails()     {}
func (Disjoint) IsDisjoint() bool         { return true }
func (Disjoint) IsIntersecting() bool     { return false }
func (d Disjoint) IsFullyBelow() bool     { return d.Position == Below }
func (d Disjoint) IsFullyAbove() bool     { return d.Position == Above }
func (Disjoint) IsSubset() bool           { return false }
func (Disjoint) IsProperSubset() bool     { return false }
func (Disjoint) IsSuperset() bool         { return false }
func (Disjoint) IsProperSuperset() bool   { return false }
func (d Disjoint) Mirror() IntersectionDetails {
	return Disjoint{-d.Position}
}

func (d Disjoint) String() string {
	return "Disjoint(" + d.Position.String() + ")"
}

func (Intersecting) intersectionDetails() {}
func (Intersecting) IsDisjoint() bool     { return false }
func (Intersecting) IsIntersecting() bool { return true }
func (Intersecting) IsFullyBelow() bool   { return false }
func (Intersecting) IsFullyAbove() bool   { return false }

func (i Intersecting) IsSubset() bool {
	return i.Closure == Subset || i.Closure == ProperSubset
}

func (i Intersecting) IsProperSubset() bool {
	return i.Closure == ProperSubset
}

func (i Intersecting) IsSuperset() bool {
	return i.Closure == Superset || i.Closure == ProperSuperset
}

func (i Intersecting) IsProperSuperset() bool {
	return i.Closure == ProperSuperset
}

func (i Intersecting) Mirror() IntersectionDetails {
	return Intersecting{i.Closure.Mirror()}
}

func (i Intersecting) String() string {
	return "Intersecting(" + i.Closure.String() + ")"
}

func intersecting(c Closure) IntersectionDetails {
	return Intersecting{c}
}

// Classify computes the relationship of a with b. It is the single decision procedure
// every set operation is derived from.
//
// The empty set is a proper subset of every non-empty interval and equal to any other empty one.
// Two intervals touching at a single value are joined when either of them includes it,
// in which case they are reported as overlapping.
func Classify[T constraints.Ordered](a, b Span[T]) IntersectionDetails {
	switch ae, be := isEmpty(a), isEmpty(b); {
	case ae && be:
		return intersecting(Equal)
	case ae:
		return intersecting(ProperSubset)
	case be:
		return intersecting(ProperSuperset)
	}

	ta, tb := a.Topology(), b.Topology()
	a2b1 := compare(a.Maximum(), b.Minimum())
	a1b2 := compare(a.Minimum(), b.Maximum())

	// A  B
	if a2b1 < 0 {
		return FullyBelow
	}

	// B  A
	if a1b2 > 0 {
		return FullyAbove
	}

	// AB, touching but not joined
	if a2b1 == 0 && !ta.IsAsymmetricallyCompatible(tb) {
		return FullyBelow
	}

	// BA, touching but not joined
	if a1b2 == 0 && !tb.IsAsymmetricallyCompatible(ta) {
		return FullyAbove
	}

	// A and B share at least a point (or join): which one reaches further on each side?
	low := compareLower(lowerOf(a), lowerOf(b))
	high := compareUpper(upperOf(a), upperOf(b))

	switch {
	case low < 0 && high > 0:
		return intersecting(ProperSuperset)
	case low > 0 && high < 0:
		return intersecting(ProperSubset)
	case low == 0 && high == 0:
		return intersecting(Equal)
	case low <= 0 && high >= 0:
		return intersecting(Superset)
	case low >= 0 && high <= 0:
		return intersecting(Subset)
	case low < 0 && high < 0:
		return intersecting(AOverlapsLowerB)
	case low > 0 && high > 0:
		return intersecting(AOverlapsUpperB)
	}

	panic(errors.AssertionFailedf("unexpected interval intersection case: A:%s, B:%s", describe(a), describe(b)))
}

func describe[T constraints.Ordered](s Span[T]) string {
	left, right := s.Topology().Brackets()
	return fmt.Sprintf("%c%v, %v%c", left, s.Minimum(), s.Maximum(), right)
}
