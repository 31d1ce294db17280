package codecs

import jsoniter "github.com/json-iterator/go"

// jsoniterAPI matches encoding/json output byte for byte, including HTML
// escaping and map key ordering.
var jsoniterAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type JSONIterCodec struct{}

func NewJSONIter() *JSONIterCodec {
	return &JSONIterCodec{}
}

func (c *JSONIterCodec) Marshal(v any) ([]byte, error) {
	return jsoniterAPI.Marshal(v)
}

func (c *JSONIterCodec) Unmarshal(data []byte, v any) error {
	return jsoniterAPI.Unmarshal(data, v)
}
