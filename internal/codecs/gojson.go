package codecs

import gojson "github.com/goccy/go-json"

type GoJSONCodec struct{}

func NewGoJSON() *GoJSONCodec {
	return &GoJSONCodec{}
}

func (c *GoJSONCodec) Marshal(v any) ([]byte, error) {
	return gojson.Marshal(v)
}

func (c *GoJSONCodec) Unmarshal(data []byte, v any) error {
	return gojson.Unmarshal(data, v)
}
