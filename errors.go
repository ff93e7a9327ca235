package interval

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidBounds is returned when the minimum of an interval is greater than its maximum.
	ErrInvalidBounds = errors.New("interval minimum must be less than or equal to the maximum")
	// ErrNotOrdered is returned when an endpoint has no place in the ordering of its type (NaN).
	ErrNotOrdered = errors.New("interval endpoint is not an ordered value")
	// ErrNegativeTolerance is returned when a tolerance interval is built with a negative radius.
	ErrNegativeTolerance = errors.New("tolerance cannot be negative")
	// ErrUnsupported is returned when a scalar type lacks a capability required by an operation.
	ErrUnsupported = errors.New("operation not supported by scalar type")
	// ErrUnbounded is returned when a measure needs a finite endpoint and the interval has none.
	ErrUnbounded = errors.New("interval has no finite endpoint")
	// ErrOutOfRange is returned when an endpoint cannot be represented by the scalar type.
	ErrOutOfRange = errors.New("interval endpoint out of range")
	// ErrParse is matched by every error returned by a Parser.
	ErrParse = errors.New("invalid interval notation")
)

// ParseError describes a failure to read the textual notation of an interval.
type ParseError struct {
	Input  string
	Offset int
	Msg    string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse `%s` as an interval: %s", e.Input, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func unsupported(capability, typeName string) error {
	return errors.Wrapf(ErrUnsupported, "%s is not available for the type %s", capability, typeName)
}
