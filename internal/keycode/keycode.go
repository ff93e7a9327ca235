// Package keycode builds byte keys whose lexicographic order matches the order of the encoded values.
package keycode

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/google/orderedcode"
)

func encodeValue(value interface{}) (interface{}, error) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if f == 0 {
			f = 0 // -0 and +0 must share a key
		}
		return f, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint(), nil
	case reflect.String:
		return v.String(), nil
	}
	return nil, errors.Newf("keycode: unsupported type %T", value)
}

// Append appends the encoding of each value to buf.
func Append(buf []byte, values ...interface{}) ([]byte, error) {
	for _, value := range values {
		encoded, err := encodeValue(value)
		if err != nil {
			return nil, err
		}

		buf, err = orderedcode.Append(buf, encoded)
		if err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// AppendInterval appends the encoding of an interval given by its endpoints.
// Minimums sort inclusive first, maximums sort inclusive last.
func AppendInterval[T any](buf []byte, min T, minInclusive bool, max T, maxInclusive bool) ([]byte, error) {
	minRank, maxRank := uint64(1), uint64(0)
	if minInclusive {
		minRank = 0
	}
	if maxInclusive {
		maxRank = 1
	}
	return Append(buf, min, minRank, max, maxRank)
}

// Parse decodes a key produced by Append into items, which must be pointers
// to the orderedcode types matching the encoded values (*float64, *int64, *uint64, *string).
func Parse(key []byte, items ...interface{}) ([]byte, error) {
	rest, err := orderedcode.Parse(string(key), items...)
	return []byte(rest), err
}
