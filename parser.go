package interval

import (
	"github.com/ostafen/interval/internal/scan"
	"golang.org/x/exp/constraints"
)

// Notation symbols.
const (
	SymbolEmpty               = "∅"
	SymbolEpsilon             = "ε"
	SymbolInfinity            = "∞"
	SymbolTolerance           = "±"
	SymbolToleranceASCII      = "+-"
	SymbolApproximation       = "≈"
	SymbolMagnitude           = "~"
	SymbolGreater             = ">"
	SymbolGreaterOrEqual      = "≥"
	SymbolGreaterOrEqualASCII = ">="
	SymbolLess                = "<"
	SymbolLessOrEqual         = "≤"
	SymbolLessOrEqualASCII    = "<="
	SymbolSeparator           = ","
)

const (
	msgEmptyInput    = "interval notation cannot be empty"
	msgLeftOver      = "characters left over"
	msgUnknownFormat = "unknown interval format"
)

// Parser reads intervals of T from their textual notation:
//
//	∅                 the empty interval
//	5                 a degenerate interval
//	5±0.5, 5+-0.5     a tolerance interval
//	[1, 5), (1,5]     a bounded interval
//	≈5                an approximation
//	~5                the same order of magnitude
//	>5, ≥5, <5, ≤5    a half-unbounded interval (>= and <= also accepted)
//
// ε stands for the epsilon of the scalar and ∞, +∞, -∞ for its infinities, when it has them.
type Parser[T constraints.Ordered] struct {
	scalar  Scalar[T]
	epsilon T
}

// NewParser returns a parser for the given scalar.
func NewParser[T constraints.Ordered](scalar Scalar[T], opts ...ParserOption[T]) (*Parser[T], error) {
	p := &Parser[T]{scalar: scalar, epsilon: scalar.Epsilon()}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

var realParser, _ = NewParser[float64](Reals{})

// Parse reads a float64 interval.
func Parse(text string) (Interval[float64], error) {
	return realParser.Parse(text)
}

// MustParse is like Parse but panics on error.
func MustParse(text string) Interval[float64] {
	i, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return i
}

type parseState[T constraints.Ordered] struct {
	*Parser[T]
	input string
	s     *scan.Scanner
}

func (p *Parser[T]) Parse(text string) (Interval[T], error) {
	st := &parseState[T]{Parser: p, input: text, s: scan.New(text)}
	return st.parse()
}

func (st *parseState[T]) fail(msg string) error {
	return &ParseError{Input: st.input, Offset: st.s.Pos(), Msg: msg}
}

func (st *parseState[T]) failWith(err error) error {
	return &ParseError{Input: st.input, Offset: st.s.Pos(), Msg: err.Error(), Err: err}
}

func (st *parseState[T]) unknownFormat(detail string) error {
	if detail == "" {
		return st.fail(msgUnknownFormat)
	}
	return st.fail(msgUnknownFormat + ": " + detail)
}

// done checks that the whole input was read.
func (st *parseState[T]) done(i Interval[T], err error) (Interval[T], error) {
	if err != nil {
		return Interval[T]{}, st.failWith(err)
	}
	if !st.s.Done() {
		return Interval[T]{}, st.fail(msgLeftOver + ": `" + st.s.Rest() + "`")
	}
	return i, nil
}

func (st *parseState[T]) parse() (Interval[T], error) {
	if st.s.Done() {
		return Interval[T]{}, st.fail(msgEmptyInput)
	}

	s := st.s
	switch {
	case s.Peek(SymbolEmpty):
		s.Consume(SymbolEmpty)
		return st.done(Empty[T](), nil)
	case s.Peek("[", "("):
		return st.parseBrackets()
	case s.Peek(SymbolApproximation):
		s.Consume(SymbolApproximation)
		return st.parseApproximation()
	case s.Peek(SymbolMagnitude):
		s.Consume(SymbolMagnitude)
		return st.parseMagnitude()
	case s.Peek(SymbolGreaterOrEqual, SymbolGreaterOrEqualASCII, SymbolLessOrEqual, SymbolLessOrEqualASCII, SymbolGreater, SymbolLess):
		return st.parseInequality()
	}
	return st.parseNumber()
}

// endpoint reads a value, ε or an infinity.
func (st *parseState[T]) endpoint() (T, bool) {
	s := st.s
	if _, ok := s.Consume(SymbolEpsilon); ok {
		return st.epsilon, true
	}

	if u, ok := st.scalar.(Unbounded[T]); ok {
		if tok, ok := s.Consume(SymbolInfinity, "+"+SymbolInfinity, "-"+SymbolInfinity); ok {
			if tok[0] == '-' {
				return u.NegativeInfinity(), true
			}
			return u.PositiveInfinity(), true
		}
	}

	v, n, ok := st.scalar.ParseEndpoint([]byte(s.Rest()))
	if !ok {
		var zero T
		return zero, false
	}
	s.Advance(n)
	return v, true
}

func (st *parseState[T]) parseNumber() (Interval[T], error) {
	value, ok := st.endpoint()
	if !ok {
		return Interval[T]{}, st.unknownFormat("")
	}

	if st.s.Done() {
		return st.done(New(value, value, Closed))
	}

	if _, ok := st.s.Consume(SymbolTolerance, SymbolToleranceASCII); !ok {
		return Interval[T]{}, st.unknownFormat("expected `" + SymbolTolerance + "` after a value")
	}

	radius, ok := st.endpoint()
	if !ok {
		return Interval[T]{}, st.unknownFormat("expected a tolerance after `" + SymbolTolerance + "`")
	}

	tol, ok := st.scalar.(Tolerance[T])
	if !ok {
		return Interval[T]{}, st.failWith(unsupported("tolerance notation", st.scalar.Name()))
	}
	return st.done(tol.Tolerance(value, radius))
}

func (st *parseState[T]) parseBrackets() (Interval[T], error) {
	s := st.s
	left, _ := s.Consume("[", "(")

	min, ok := st.endpoint()
	if !ok {
		return Interval[T]{}, st.unknownFormat("expected the minimum after `" + left + "`")
	}

	if _, ok := s.Consume(SymbolSeparator); !ok {
		return Interval[T]{}, st.unknownFormat("expected `" + SymbolSeparator + "` after the minimum")
	}
	s.SkipSpaces()

	max, ok := st.endpoint()
	if !ok {
		return Interval[T]{}, st.unknownFormat("expected the maximum after `" + SymbolSeparator + "`")
	}

	right, ok := s.Consume("]", ")")
	if !ok {
		return Interval[T]{}, st.unknownFormat("expected `]` or `)` after the maximum")
	}
	return st.done(New(min, max, NewTopology(left == "[", right == "]")))
}

func (st *parseState[T]) parseApproximation() (Interval[T], error) {
	value, ok := st.endpoint()
	if !ok {
		return Interval[T]{}, st.unknownFormat("expected a value after `" + SymbolApproximation + "`")
	}

	approx, ok := st.scalar.(Approximator[T])
	if !ok {
		return Interval[T]{}, st.failWith(unsupported("approximation notation", st.scalar.Name()))
	}
	return st.done(approx.Approximation(value))
}

func (st *parseState[T]) parseMagnitude() (Interval[T], error) {
	value, ok := st.endpoint()
	if !ok {
		return Interval[T]{}, st.unknownFormat("expected a value after `" + SymbolMagnitude + "`")
	}

	m, ok := st.scalar.(Magnituder[T])
	if !ok {
		return Interval[T]{}, st.failWith(unsupported("order of magnitude notation", st.scalar.Name()))
	}
	return st.done(m.SameOrderOfMagnitude(value))
}

func (st *parseState[T]) parseInequality() (Interval[T], error) {
	s := st.s
	// two-character symbols first, so that ">=" is not read as ">"
	op, _ := s.Consume(SymbolGreaterOrEqual, SymbolGreaterOrEqualASCII, SymbolLessOrEqual, SymbolLessOrEqualASCII, SymbolGreater, SymbolLess)

	u, ok := st.scalar.(Unbounded[T])
	if !ok {
		return Interval[T]{}, st.failWith(unsupported("unbounded intervals", st.scalar.Name()))
	}

	value, ok := st.endpoint()
	if !ok {
		return Interval[T]{}, st.unknownFormat("expected a value after `" + op + "`")
	}

	switch op {
	case SymbolGreaterOrEqual, SymbolGreaterOrEqualASCII:
		return st.done(AtLeast(u, value))
	case SymbolGreater:
		return st.done(GreaterThan(u, value))
	case SymbolLessOrEqual, SymbolLessOrEqualASCII:
		return st.done(AtMost(u, value))
	}
	return st.done(LessThan(u, value))
}
