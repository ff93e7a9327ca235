package interval

import (
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Interval[float64]{}
	_ msgpack.CustomDecoder = (*Interval[float64])(nil)
)

// MarshalText encodes i in its canonical notation.
func (i Interval[T]) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText reads the notation of an interval. Only float64 and the integer types are supported.
func (i *Interval[T]) UnmarshalText(text []byte) error {
	scalar, err := scalarFor[T]()
	if err != nil {
		return err
	}

	p, err := NewParser(scalar)
	if err != nil {
		return err
	}

	parsed, err := p.Parse(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// EncodeMsgpack stores i as its canonical notation string.
func (i Interval[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(i.String())
}

func (i *Interval[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	text, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return i.UnmarshalText([]byte(text))
}
