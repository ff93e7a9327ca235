package interval

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/ostafen/interval/internal/scan"
	"golang.org/x/exp/constraints"
)

// Scalar describes the endpoint type of an interval to the parser.
type Scalar[T constraints.Ordered] interface {
	Name() string
	// Epsilon is the value the ε symbol stands for.
	Epsilon() T
	// ParseEndpoint reads a finite value at the start of b, returning it with the number of bytes consumed.
	ParseEndpoint(b []byte) (T, int, bool)
}

// Unbounded is implemented by scalars having infinity sentinels.
type Unbounded[T constraints.Ordered] interface {
	NegativeInfinity() T
	PositiveInfinity() T
}

// Tolerance is implemented by scalars supporting the center±radius notation.
type Tolerance[T constraints.Ordered] interface {
	Tolerance(center, radius T) (Interval[T], error)
}

// Approximator is implemented by scalars supporting the ≈value notation.
type Approximator[T constraints.Ordered] interface {
	Approximation(value T) (Interval[T], error)
}

// Magnituder is implemented by scalars supporting the ~value notation.
type Magnituder[T constraints.Ordered] interface {
	SameOrderOfMagnitude(value T) (Interval[T], error)
}

// Reals is the float64 scalar. It supports every capability.
type Reals struct{}

var (
	_ Scalar[float64]       = Reals{}
	_ Unbounded[float64]    = Reals{}
	_ Tolerance[float64]    = Reals{}
	_ Approximator[float64] = Reals{}
	_ Magnituder[float64]   = Reals{}
)

func (Reals) Name() string              { return "float64" }
func (Reals) Epsilon() float64          { return math.SmallestNonzeroFloat64 }
func (Reals) NegativeInfinity() float64 { return math.Inf(-1) }
func (Reals) PositiveInfinity() float64 { return math.Inf(1) }

func (Reals) ParseEndpoint(b []byte) (float64, int, bool) {
	n := scan.Float(b)
	if n == 0 {
		return 0, 0, false
	}
	v, err := strconv.ParseFloat(string(b[:n]), 64)
	if err != nil {
		return 0, 0, false
	}
	return v, n, true
}

func (Reals) Tolerance(center, radius float64) (Interval[float64], error) {
	return FromTolerance(center, radius)
}

func (Reals) Approximation(value float64) (Interval[float64], error) {
	return Approximation(value)
}

func (Reals) SameOrderOfMagnitude(value float64) (Interval[float64], error) {
	return SameOrderOfMagnitude(value)
}

// Integers is the scalar of the integer types. It has no infinity sentinel,
// so it only supports bounded intervals, and ε stands for 1.
type Integers[T constraints.Integer] struct{}

func (Integers[T]) Name() string {
	var zero T
	return reflectName(zero)
}

func (Integers[T]) Epsilon() T { return 1 }

func (Integers[T]) ParseEndpoint(b []byte) (T, int, bool) {
	n := scan.Integer(b)
	if n == 0 {
		return 0, 0, false
	}

	text := string(b[:n])
	var zero T
	if isSigned(zero) {
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil || int64(T(v)) != v {
			return 0, 0, false
		}
		return T(v), n, true
	}

	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil || uint64(T(v)) != v {
		return 0, 0, false
	}
	return T(v), n, true
}

func (Integers[T]) Tolerance(center, radius T) (Interval[T], error) {
	if radius < 0 {
		return Interval[T]{}, errors.Wrapf(ErrNegativeTolerance, "radius %v", radius)
	}
	lo, hi := center-radius, center+radius
	if lo > center || hi < center {
		return Interval[T]{}, errors.Wrapf(ErrOutOfRange, "%v±%v does not fit in %T", center, radius, center)
	}
	return New(lo, hi, Closed)
}

func isSigned[T constraints.Integer](v T) bool {
	return v-1 < v
}

func scalarFor[T constraints.Ordered]() (Scalar[T], error) {
	var zero T
	var s interface{}
	switch any(zero).(type) {
	case float64:
		s = Reals{}
	case int:
		s = Integers[int]{}
	case int8:
		s = Integers[int8]{}
	case int16:
		s = Integers[int16]{}
	case int32:
		s = Integers[int32]{}
	case int64:
		s = Integers[int64]{}
	case uint:
		s = Integers[uint]{}
	case uint8:
		s = Integers[uint8]{}
	case uint16:
		s = Integers[uint16]{}
	case uint32:
		s = Integers[uint32]{}
	case uint64:
		s = Integers[uint64]{}
	default:
		return nil, unsupported("parsing", reflectName(zero))
	}
	return s.(Scalar[T]), nil
}
