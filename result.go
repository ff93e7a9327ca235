package interval

import "fmt"

// SplitResult is the outcome of an operation yielding one or two intervals.
// It is either a Mono or a Bi value.
type SplitResult[R any] interface {
	// Intervals returns the one or two resulting intervals, lower first.
	Intervals() []R
	String() string

	splitResult()
}

// Mono holds exactly one resulting interval, possibly the empty one.
type Mono[R any] struct {
	Result R
}

// Bi holds two disjoint resulting intervals.
type Bi[R any] struct {
	Lower, Upper R
}

func (Mono[R]) splitResult() {}

func (m Mono[R]) Intervals() []R { return []R{m.Result} }

func (m Mono[R]) String() string {
	return fmt.Sprintf("Mono(%v)", m.Result)
}

func (Bi[R]) splitResult() {}

func (b Bi[R]) Intervals() []R { return []R{b.Lower, b.Upper} }

func (b Bi[R]) String() string {
	return fmt.Sprintf("Bi(%v, %v)", b.Lower, b.Upper)
}

// PartitionResult is the outcome of splitting an interval at a point.
// It is either a DisjointPartition or a ValidPartition value.
type PartitionResult[R any] interface {
	IsValid() bool
	String() string

	partitionResult()
}

// DisjointPartition is returned when the point does not belong to the interval.
// Empty is the empty interval located at the point.
type DisjointPartition[R any] struct {
	Empty R
}

// ValidPartition holds the part below the point, the degenerate interval at the point
// and the part above it.
type ValidPartition[R any] struct {
	Lower, Point, Upper R
}

func (DisjointPartition[R]) partitionResult() {}
func (DisjointPartition[R]) IsValid() bool    { return false }

func (d DisjointPartition[R]) String() string {
	return fmt.Sprintf("Disjoint(%v)", d.Empty)
}

func (ValidPartition[R]) partitionResult() {}
func (ValidPartition[R]) IsValid() bool    { return true }

func (v ValidPartition[R]) String() string {
	return fmt.Sprintf("Valid(%v, %v, %v)", v.Lower, v.Point, v.Upper)
}
