package codecs

import stdjson "encoding/json"

// StdCodec is the encoding/json reference the other codecs are checked against.
type StdCodec struct{}

func NewStd() *StdCodec {
	return &StdCodec{}
}

func (c *StdCodec) Marshal(v any) ([]byte, error) {
	return stdjson.Marshal(v)
}

func (c *StdCodec) Unmarshal(data []byte, v any) error {
	return stdjson.Unmarshal(data, v)
}
