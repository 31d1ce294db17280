package roundtrip

// Literal is the document the demo command decodes.
const Literal = `{"x": true}`

// Record is the single shape this package encodes and decodes. X is required:
// a document without it, or with a non-boolean value, fails to decode.
type Record struct {
	X bool `json:"x"`
}
