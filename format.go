package interval

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter prints intervals in their textual notation.
type Formatter struct {
	config  *FormatConfig
	printer *message.Printer
}

func NewFormatter(opts ...FormatOption) (*Formatter, error) {
	config, err := defaultFormatConfig().applyOptions(opts)
	if err != nil {
		return nil, err
	}

	f := &Formatter{config: config}
	if config.Locale != language.Und {
		f.printer = message.NewPrinter(config.Locale)
	}
	return f, nil
}

var canonicalFormatter, _ = NewFormatter()

// Format prints i with a formatter built from opts.
func Format[T constraints.Ordered](i Interval[T], opts ...FormatOption) (string, error) {
	f, err := NewFormatter(opts...)
	if err != nil {
		return "", err
	}
	return FormatWith(f, i), nil
}

// FormatWith prints i with f.
func FormatWith[T constraints.Ordered](f *Formatter, i Interval[T]) string {
	if f.config.Simplified {
		if s, ok := f.simplified(i.min, i.max, i.topology, i.IsEmpty(), i.IsDegenerate()); ok {
			return s
		}
	}
	return f.canonical(i.min, i.max, i.topology)
}

// String returns the canonical notation of i, which Parse reads back.
func (i Interval[T]) String() string {
	return FormatWith(canonicalFormatter, i)
}

func (f *Formatter) canonical(min, max interface{}, topology Topology) string {
	left, right := topology.Brackets()

	var sb strings.Builder
	sb.WriteByte(left)
	sb.WriteString(f.value(min))
	sb.WriteString(SymbolSeparator + " ")
	sb.WriteString(f.value(max))
	sb.WriteByte(right)
	return sb.String()
}

func (f *Formatter) simplified(min, max interface{}, topology Topology, empty, degenerate bool) (string, bool) {
	switch {
	case empty:
		return SymbolEmpty, true
	case degenerate:
		return f.value(min), true
	}

	minInf, maxInf := infinity(min) < 0, infinity(max) > 0
	switch {
	case maxInf && !minInf:
		if topology.IsMinimumInclusive() {
			return SymbolGreaterOrEqual + f.value(min), true
		}
		return SymbolGreater + f.value(min), true
	case minInf && !maxInf:
		if topology.IsMaximumInclusive() {
			return SymbolLessOrEqual + f.value(max), true
		}
		return SymbolLess + f.value(max), true
	}
	return "", false
}

// infinity returns -1 or 1 for the floating point infinities, 0 for anything else.
func infinity(v interface{}) int {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		x := rv.Float()
		if math.IsInf(x, -1) {
			return -1
		}
		if math.IsInf(x, 1) {
			return 1
		}
	}
	return 0
}

func (f *Formatter) value(v interface{}) string {
	switch infinity(v) {
	case -1:
		return "-" + SymbolInfinity
	case 1:
		return SymbolInfinity
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		if f.printer != nil {
			return f.printer.Sprint(number.Decimal(rv.Float(), f.decimalOptions()...))
		}
		return strconv.FormatFloat(rv.Float(), f.config.Verb, f.config.Precision, rv.Type().Bits())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if f.printer != nil {
			return f.printer.Sprint(number.Decimal(rv.Int()))
		}
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if f.printer != nil {
			return f.printer.Sprint(number.Decimal(rv.Uint()))
		}
		return strconv.FormatUint(rv.Uint(), 10)
	}
	return fmt.Sprint(v)
}

func (f *Formatter) decimalOptions() []number.Option {
	if f.config.Precision < 0 {
		return nil
	}
	return []number.Option{number.MaxFractionDigits(f.config.Precision)}
}
