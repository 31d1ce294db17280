package codecs

import (
	"errors"
	"fmt"
)

// Codec marshals and unmarshals values to and from bytes.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

var ErrUnknownCodec = errors.New("unknown codec")

// Names lists the codecs ByName understands.
var Names = []string{"jsoniter", "gojson", "std"}

// ByName returns the codec registered under name.
func ByName(name string) (Codec, error) {
	switch name {
	case "jsoniter":
		return NewJSONIter(), nil
	case "gojson":
		return NewGoJSON(), nil
	case "std":
		return NewStd(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
}
