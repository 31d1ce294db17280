package codecs

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/ripkitten-co/roundtrip/internal/meta"
)

var (
	ErrMalformed = errors.New("malformed JSON")

	// ErrMissingField is returned when a required key is absent or null.
	ErrMissingField = errors.New("missing required field")

	// ErrNotObject is returned when a struct is decoded from a document that
	// is not a JSON object.
	ErrNotObject = errors.New("document is not an object")

	ErrNotPointer = errors.New("unmarshal target must be a non-nil pointer")
)

// StrictCodec decodes structs field by field through an inner codec. Fields
// without omitempty are required, so a document cannot silently fall back to
// zero values. Non-struct values pass straight through to the inner codec.
type StrictCodec struct {
	inner Codec
}

func NewStrict(inner Codec) *StrictCodec {
	return &StrictCodec{inner: inner}
}

// Marshal writes struct fields in declaration order. Optional fields holding
// their zero value are left out.
func (c *StrictCodec) Marshal(v any) ([]byte, error) {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return c.inner.Marshal(v)
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return c.inner.Marshal(v)
	}
	m := meta.AnalyzeType(val.Type())

	var buf bytes.Buffer
	buf.WriteByte('{')
	wrote := false
	for _, f := range m.Fields {
		fv := val.Field(f.Index)
		if !f.Required && fv.IsZero() {
			continue
		}
		key, err := c.inner.Marshal(f.JSONKey)
		if err != nil {
			return nil, fieldError(m, f, err)
		}
		value, err := c.inner.Marshal(fv.Interface())
		if err != nil {
			return nil, fieldError(m, f, err)
		}
		if wrote {
			buf.WriteByte(',')
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
		wrote = true
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (c *StrictCodec) Unmarshal(data []byte, v any) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("%w: got %T", ErrNotPointer, v)
	}
	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return c.inner.Unmarshal(data, v)
	}

	// jsoniter reports a truncated document as io.EOF, which its Unmarshal
	// treats as success.
	if !jsoniterAPI.Valid(data) {
		return ErrMalformed
	}

	var raw map[string]stdjson.RawMessage
	if err := c.inner.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return ErrNotObject
	}

	m := meta.AnalyzeType(val.Type())
	for _, f := range m.Fields {
		rawVal, ok := raw[f.JSONKey]
		if !ok || isNull(rawVal) {
			if f.Required {
				return fieldError(m, f, ErrMissingField)
			}
			continue
		}
		fieldPtr := reflect.New(val.Field(f.Index).Type())
		if err := c.inner.Unmarshal(rawVal, fieldPtr.Interface()); err != nil {
			return fieldError(m, f, err)
		}
		val.Field(f.Index).Set(fieldPtr.Elem())
	}

	return nil
}

// fieldError names both the JSON key and the Go field it maps to.
func fieldError(m *meta.StructMeta, f meta.FieldMeta, err error) error {
	return fmt.Errorf("field %s (%s.%s): %w", f.JSONKey, m.Name, f.Name, err)
}

func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
