package interval

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
)

const (
	VerbDefault      = 'g'
	PrecisionDefault = -1
)

// FormatConfig contains the parameters of a Formatter.
type FormatConfig struct {
	Simplified bool
	Verb       byte
	Precision  int
	Locale     language.Tag
}

func defaultFormatConfig() *FormatConfig {
	return &FormatConfig{
		Simplified: false,
		Verb:       VerbDefault,
		Precision:  PrecisionDefault,
		Locale:     language.Und,
	}
}

func (c *FormatConfig) applyOptions(opts []FormatOption) (*FormatConfig, error) {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// FormatOption is a function that takes a format config struct and modifies it
type FormatOption func(c *FormatConfig) error

// WithSimplifiedNotation enables the short forms: ∅, a single value, ≥a, >a, ≤b and <b.
func WithSimplifiedNotation() FormatOption {
	return func(c *FormatConfig) error {
		c.Simplified = true
		return nil
	}
}

// WithPrecision sets the strconv format verb ('e', 'E', 'f', 'g' or 'G') and precision of floating point endpoints.
// A negative precision prints the shortest representation reading back to the same value.
func WithPrecision(verb byte, prec int) FormatOption {
	return func(c *FormatConfig) error {
		switch verb {
		case 'e', 'E', 'f', 'g', 'G':
		default:
			return errors.Newf("unsupported format verb %q", verb)
		}
		c.Verb, c.Precision = verb, prec
		return nil
	}
}

// WithLocale prints endpoints with the number formatting of the given language.
// Localized output is meant for display and may not read back.
func WithLocale(tag language.Tag) FormatOption {
	return func(c *FormatConfig) error {
		c.Locale = tag
		return nil
	}
}

// ParserOption is a function that takes a parser and modifies it
type ParserOption[T constraints.Ordered] func(p *Parser[T]) error

// WithEpsilon overrides the value ε stands for.
func WithEpsilon[T constraints.Ordered](epsilon T) ParserOption[T] {
	return func(p *Parser[T]) error {
		var zero T
		if !(epsilon > zero) {
			return errors.Newf("epsilon must be positive, got %v", epsilon)
		}
		p.epsilon = epsilon
		return nil
	}
}
