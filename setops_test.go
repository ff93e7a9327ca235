package interval

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

func requireSameSet(t *testing.T, expected, actual Interval[float64], msgAndArgs ...interface{}) {
	t.Helper()
	require.True(t, sameSet(expected, actual), append([]interface{}{"expected %s, got %s", expected, actual}, msgAndArgs...)...)
}

func TestOverlappingIntervals(t *testing.T) {
	a := MustParse("[0, 10)")
	b := MustParse("[5, 15)")

	require.Equal(t, Intersecting{AOverlapsLowerB}, a.Classify(b))
	require.True(t, a.Intersection(b).Equal(MustParse("[5, 10)")))
	require.True(t, a.Union(b).Equal(MustParse("[0, 15)")))
}

func TestDifferenceAtLowerEdge(t *testing.T) {
	res := MustParse("[1, 10]").Difference(Degenerate(1.0))
	require.Equal(t, Mono[Interval[float64]]{MustParse("(1, 10]")}, res)
}

func TestDifference(t *testing.T) {
	cases := []struct {
		a, b     string
		expected []string
	}{
		{"[0, 10]", "[3, 5]", []string{"[0, 3)", "(5, 10]"}},
		{"[0, 10]", "(3, 5)", []string{"[0, 3]", "[5, 10]"}},
		{"[0, 10]", "(0, 10)", []string{"0", "10"}},
		{"[0, 10)", "[5, 15)", []string{"[0, 5)"}},
		{"[5, 15)", "[0, 10)", []string{"[10, 15)"}},
		{"[0, 10)", "[20, 30)", []string{"[0, 10)"}},
		{"[0, 5)", "[0, 10)", []string{"∅"}},
		{"[0, 10)", "[0, 10)", []string{"∅"}},
		{"[0, 10]", "[0, 5]", []string{"(5, 10]"}},
		{"∅", "[0, 5]", []string{"∅"}},
		{"[0, 5]", "∅", []string{"[0, 5]"}},
		{"(-∞, ∞)", "[0, 5)", []string{"(-∞, 0)", "[5, ∞)"}},
	}

	for _, c := range cases {
		res := MustParse(c.a).Difference(MustParse(c.b))
		got := res.Intervals()
		require.Len(t, got, len(c.expected), "%s \\ %s = %s", c.a, c.b, res)
		for k, e := range c.expected {
			requireSameSet(t, MustParse(e), got[k], "%s \\ %s", c.a, c.b)
		}
	}
}

func TestSymmetricDifference(t *testing.T) {
	cases := []struct {
		a, b         string
		lower, upper string
	}{
		{"[0, 10)", "[5, 15)", "[0, 5)", "[10, 15)"},
		{"[5, 15)", "[0, 10)", "[0, 5)", "[10, 15)"},
		{"[0, 10]", "[3, 5]", "[0, 3)", "(5, 10]"},
		{"[3, 5]", "[0, 10]", "[0, 3)", "(5, 10]"},
		{"[0, 1]", "[2, 3]", "[0, 1]", "[2, 3]"},
		{"[2, 3]", "[0, 1]", "[0, 1]", "[2, 3]"},
		{"[0, 5]", "[5, 10]", "[0, 5)", "(5, 10]"},
		{"[0, 10)", "[0, 10)", "∅", "∅"},
		{"[0, 10]", "[0, 5]", "∅", "(5, 10]"},
		{"∅", "[0, 5]", "∅", "[0, 5]"},
	}

	for _, c := range cases {
		res := MustParse(c.a).SymmetricDifference(MustParse(c.b))
		requireSameSet(t, MustParse(c.lower), res.Lower, "%s △ %s", c.a, c.b)
		requireSameSet(t, MustParse(c.upper), res.Upper, "%s △ %s", c.a, c.b)
	}
}

func TestComplement(t *testing.T) {
	res := MustParse("(-∞, 5)").Complement(RealLine)
	require.Equal(t, Mono[Interval[float64]]{MustParse("[5, ∞)")}, res)

	res = MustParse("[2, 5)").Complement(RealLine)
	require.Equal(t, Bi[Interval[float64]]{MustParse("(-∞, 2)"), MustParse("[5, ∞)")}, res)

	res = RealLine.Complement(RealLine)
	require.True(t, res.(Mono[Interval[float64]]).Result.IsEmpty())

	res = Empty[float64]().Complement(RealLine)
	require.Equal(t, Mono[Interval[float64]]{RealLine}, res)

	universe := MustParse("[0, 10]")
	res = MustParse("(0, 5)").Complement(universe)
	require.Equal(t, Bi[Interval[float64]]{Degenerate(0.0), MustParse("[5, 10]")}, res)

	// not within the universe: what is left of the universe
	res = MustParse("[5, 20]").Complement(universe)
	require.Equal(t, Mono[Interval[float64]]{MustParse("[0, 5)")}, res)
}

func TestComplementIsInvolutive(t *testing.T) {
	r := Reals{}
	builders := []func(Unbounded[float64], float64) (Interval[float64], error){
		AtLeast[float64], GreaterThan[float64], AtMost[float64], LessThan[float64],
	}

	for i := 0; i < 1000; i++ {
		build := builders[gofakeit.IntRange(0, len(builders)-1)]
		a, err := build(r, gofakeit.Float64Range(-1000, 1000))
		require.NoError(t, err)

		c, ok := a.Complement(RealLine).(Mono[Interval[float64]])
		require.True(t, ok)

		cc, ok := c.Result.Complement(RealLine).(Mono[Interval[float64]])
		require.True(t, ok)
		require.True(t, a.Equal(cc.Result), "%s: %s", a, cc.Result)
	}

	universe := MustParse("[0, 10]")
	for v := 1.0; v < 10; v++ {
		for _, a := range []Interval[float64]{MustNew(0, v, LeftClosedRightOpen), MustNew(0, v, Closed), MustNew(v, 10, Closed), MustNew(v, 10, LeftOpenRightClosed)} {
			c := a.Complement(universe).(Mono[Interval[float64]])
			cc := c.Result.Complement(universe).(Mono[Interval[float64]])
			require.True(t, a.Equal(cc.Result), "%s: %s", a, cc.Result)
		}
	}
}

func TestPartition(t *testing.T) {
	res := MustParse("[0, 10]").Partition(5)
	require.Equal(t, ValidPartition[Interval[float64]]{
		Lower: MustParse("[0, 5)"),
		Point: Degenerate(5.0),
		Upper: MustParse("(5, 10]"),
	}, res)

	res = MustParse("[0, 10)").Partition(10)
	require.False(t, res.IsValid())
	require.True(t, res.(DisjointPartition[Interval[float64]]).Empty.Equal(EmptyAt(10.0)))

	res = MustParse("[0, 10)").Partition(0)
	valid := res.(ValidPartition[Interval[float64]])
	require.True(t, valid.Lower.IsEmpty())
	require.True(t, valid.Upper.Equal(MustParse("(0, 10)")))
}

func TestEmptyContainsNothing(t *testing.T) {
	for _, empty := range []Interval[float64]{
		MustNew(5.0, 5.0, LeftClosedRightOpen),
		MustNew(5.0, 5.0, LeftOpenRightClosed),
		EmptyAt(5.0),
		{},
	} {
		require.True(t, empty.IsEmpty())
		require.False(t, empty.Contains(empty.Minimum()), "%s", empty)

		res := empty.Partition(empty.Minimum())
		require.False(t, res.IsValid(), "%s", empty)

		disjoint, ok := res.(DisjointPartition[Interval[float64]])
		require.True(t, ok, "%s", empty)
		require.True(t, disjoint.Empty.IsEmpty())
	}
}

func TestPartitionRebuildsInterval(t *testing.T) {
	for i := 0; i < 5000; i++ {
		a := randomInterval()
		p := float64(gofakeit.IntRange(-10, 10))
		if !a.Contains(p) {
			continue
		}

		v := a.Partition(p).(ValidPartition[Interval[float64]])
		requireSameSet(t, a, v.Lower.Union(v.Point).Union(v.Upper))

		require.True(t, v.Lower.Intersection(v.Point).IsEmpty())
		require.True(t, v.Point.Intersection(v.Upper).IsEmpty())
		require.True(t, v.Lower.Intersection(v.Upper).IsEmpty())
	}
}

func TestIdentities(t *testing.T) {
	for i := 0; i < 10000; i++ {
		a := randomUnboundedInterval()

		requireSameSet(t, a, a.Union(a))
		requireSameSet(t, a, a.Intersection(a))

		diff := a.Difference(a)
		require.True(t, diff.(Mono[Interval[float64]]).Result.Equal(Empty[float64]()), "%s", a)

		sym := a.SymmetricDifference(a)
		require.True(t, sym.Lower.IsEmpty())
		require.True(t, sym.Upper.IsEmpty())
	}
}

func TestCommutativity(t *testing.T) {
	for i := 0; i < 10000; i++ {
		a, b := randomUnboundedInterval(), randomUnboundedInterval()

		require.True(t, a.Union(b).Equal(b.Union(a)), "%s ∪ %s", a, b)
		require.True(t, a.Intersection(b).Equal(b.Intersection(a)), "%s ∩ %s", a, b)

		ab, ba := a.SymmetricDifference(b), b.SymmetricDifference(a)
		requireSameSet(t, ab.Lower, ba.Lower, "%s △ %s", a, b)
		requireSameSet(t, ab.Upper, ba.Upper, "%s △ %s", a, b)
	}
}

func TestOperationsAgreeWithPoints(t *testing.T) {
	for i := 0; i < 5000; i++ {
		a, b := randomInterval(), randomInterval()

		inter := a.Intersection(b)
		diff := a.Difference(b).Intervals()
		for x := -10.5; x <= 10.5; x += 0.5 {
			require.Equal(t, a.Contains(x) && b.Contains(x), inter.Contains(x), "%v in %s ∩ %s", x, a, b)

			inDiff := false
			for _, d := range diff {
				inDiff = inDiff || d.Contains(x)
			}
			require.Equal(t, a.Contains(x) && !b.Contains(x), inDiff, "%v in %s \\ %s", x, a, b)

			if a.Classify(b).IsIntersecting() {
				require.Equal(t, a.Contains(x) || b.Contains(x), a.Union(b).Contains(x), "%v in %s ∪ %s", x, a, b)
			}
		}
	}
}

type span struct {
	min, max int
	topology Topology
}

func (s span) Minimum() int       { return s.min }
func (s span) Maximum() int       { return s.max }
func (s span) Topology() Topology { return s.topology }

func TestEngineWithCustomRepresentation(t *testing.T) {
	create := func(min, max Endpoint[int]) span {
		return span{min.Value, max.Value, NewTopology(min.Inclusive, max.Inclusive)}
	}

	a := span{0, 10, Closed}
	b := span{5, 20, Open}

	require.Equal(t, span{5, 10, LeftOpenRightClosed}, IntersectionOf[int](a, b, create))
	require.Equal(t, span{0, 20, LeftClosedRightOpen}, UnionOf[int](a, b, create))
	require.Equal(t, Mono[span]{span{0, 5, Closed}}, DifferenceOf[int](a, b, create))
	require.True(t, ContainsValue[int](b, 6))
}
