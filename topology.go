package interval

// Topology tells which endpoints of an interval belong to it.
// The zero value is LeftClosedRightOpen, i.e. [a, b).
type Topology uint8

const (
	// LeftClosedRightOpen includes the minimum but not the maximum ( min ≤ x < max ).
	LeftClosedRightOpen Topology = iota
	// Open excludes both endpoints ( min < x < max ).
	Open
	// LeftOpenRightClosed includes the maximum but not the minimum ( min < x ≤ max ).
	LeftOpenRightClosed
	// Closed includes both endpoints ( min ≤ x ≤ max ).
	Closed
)

const (
	Default   = LeftClosedRightOpen
	Exclusive = Open
	Inclusive = Closed
)

// NewTopology returns the topology having the given inclusiveness on each side.
func NewTopology(minimumInclusive, maximumInclusive bool) Topology {
	switch {
	case minimumInclusive && maximumInclusive:
		return Closed
	case minimumInclusive:
		return LeftClosedRightOpen
	case maximumInclusive:
		return LeftOpenRightClosed
	}
	return Open
}

func (t Topology) IsMinimumInclusive() bool {
	return t == LeftClosedRightOpen || t == Closed
}

func (t Topology) IsMaximumInclusive() bool {
	return t == LeftOpenRightClosed || t == Closed
}

// Combine takes the minimum side of t and the maximum side of other.
func (t Topology) Combine(other Topology) Topology {
	return NewTopology(t.IsMinimumInclusive(), other.IsMaximumInclusive())
}

// WithMinimum returns t with the minimum side forced to inclusive.
func (t Topology) WithMinimum(inclusive bool) Topology {
	return NewTopology(inclusive, t.IsMaximumInclusive())
}

// WithMaximum returns t with the maximum side forced to inclusive.
func (t Topology) WithMaximum(inclusive bool) Topology {
	return NewTopology(t.IsMinimumInclusive(), inclusive)
}

func (t Topology) CloseMinimum() Topology { return t.WithMinimum(true) }
func (t Topology) CloseMaximum() Topology { return t.WithMaximum(true) }
func (t Topology) OpenMinimum() Topology  { return t.WithMinimum(false) }
func (t Topology) OpenMaximum() Topology  { return t.WithMaximum(false) }

// IsMinimumCompatible reports whether either minimum side is inclusive.
func (t Topology) IsMinimumCompatible(other Topology) bool {
	return t.IsMinimumInclusive() || other.IsMinimumInclusive()
}

// IsMaximumCompatible reports whether either maximum side is inclusive.
func (t Topology) IsMaximumCompatible(other Topology) bool {
	return t.IsMaximumInclusive() || other.IsMaximumInclusive()
}

// IsAsymmetricallyCompatible decides whether two intervals whose endpoints touch
// (the maximum of the lower one equals the minimum of the upper one) are joined at that point.
// t is the topology of the lower interval.
func (t Topology) IsAsymmetricallyCompatible(upper Topology) bool {
	return t.IsMaximumInclusive() || upper.IsMinimumInclusive()
}

func (t Topology) IsMinimumEqual(other Topology) bool {
	return t.IsMinimumInclusive() == other.IsMinimumInclusive()
}

func (t Topology) IsMaximumEqual(other Topology) bool {
	return t.IsMaximumInclusive() == other.IsMaximumInclusive()
}

func (t Topology) Brackets() (left, right byte) {
	left, right = '(', ')'
	if t.IsMinimumInclusive() {
		left = '['
	}
	if t.IsMaximumInclusive() {
		right = ']'
	}
	return left, right
}

func (t Topology) String() string {
	switch t {
	case Open:
		return "Open"
	case LeftClosedRightOpen:
		return "LeftClosedRightOpen"
	case LeftOpenRightClosed:
		return "LeftOpenRightClosed"
	case Closed:
		return "Closed"
	}
	return "Topology(?)"
}
