package roundtrip_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ripkitten-co/roundtrip"
	"github.com/ripkitten-co/roundtrip/internal/codecs"
)

func TestDecode_Literal(t *testing.T) {
	r, err := roundtrip.Decode([]byte(roundtrip.Literal))
	require.NoError(t, err)
	assert.True(t, r.X)
}

func TestDecode_False(t *testing.T) {
	r, err := roundtrip.Decode([]byte(`{"x": false}`))
	require.NoError(t, err)
	assert.False(t, r.X)
}

func TestDecode_ParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"x": tru`},
		{"empty", ``},
		{"missing field", `{}`},
		{"null field", `{"x": null}`},
		{"string field", `{"x": "true"}`},
		{"number field", `{"x": 1}`},
		{"array", `[true]`},
		{"null document", `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := roundtrip.Decode([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, roundtrip.ErrParse)

			var perr *roundtrip.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, -1, perr.Offset)
			assert.Contains(t, err.Error(), "roundtrip: parse:")
		})
	}
}

func TestDecode_MissingFieldCause(t *testing.T) {
	_, err := roundtrip.Decode([]byte(`{"y": true}`))
	assert.ErrorIs(t, err, codecs.ErrMissingField)
	assert.Contains(t, err.Error(), "field x (Record.X)")
}

func TestRoundTrip_DropsUnknownKeys(t *testing.T) {
	for _, name := range codecs.Names {
		t.Run(name, func(t *testing.T) {
			c, err := codecs.ByName(name)
			require.NoError(t, err)

			out, err := roundtrip.RoundTrip([]byte(`{"x":true,"y":1}`), roundtrip.WithCodec(c))
			require.NoError(t, err)
			assert.Equal(t, `{"x":true}`, string(out))
		})
	}
}

func TestEncode(t *testing.T) {
	out, err := roundtrip.Encode(roundtrip.Record{X: true})
	require.NoError(t, err)
	assert.Equal(t, `{"x":true}`, string(out))

	out, err = roundtrip.Encode(roundtrip.Record{X: false})
	require.NoError(t, err)
	assert.Equal(t, `{"x":false}`, string(out))
}

func TestRoundTrip_Idempotent(t *testing.T) {
	for _, x := range []bool{true, false} {
		original := roundtrip.Record{X: x}
		data, err := roundtrip.Encode(original)
		require.NoError(t, err)

		again, err := roundtrip.RoundTrip(data)
		require.NoError(t, err)
		assert.Equal(t, string(data), string(again))

		got, err := roundtrip.Decode(again)
		require.NoError(t, err)
		assert.Equal(t, original, got)
	}
}

func TestRoundTrip_AllCodecsAgree(t *testing.T) {
	for _, name := range codecs.Names {
		t.Run(name, func(t *testing.T) {
			c, err := codecs.ByName(name)
			require.NoError(t, err)

			out, err := roundtrip.RoundTrip([]byte(roundtrip.Literal), roundtrip.WithCodec(c))
			require.NoError(t, err)
			assert.Equal(t, `{"x":true}`, string(out))
		})
	}
}

func TestRun_WritesOneLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, roundtrip.Run(&buf, []byte(roundtrip.Literal)))
	assert.Equal(t, "{\"x\":true}\n", buf.String())

	var fields map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &fields))
	require.Len(t, fields, 1)
	assert.Equal(t, true, fields["x"])
}

func TestRun_ReflectsDecodedValue(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, roundtrip.Run(&buf, []byte(`{"x": false}`)))
	assert.Equal(t, "{\"x\":false}\n", buf.String())
}

func TestRun_ParseErrorWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	err := roundtrip.Run(&buf, []byte(`{"x":`))
	assert.ErrorIs(t, err, roundtrip.ErrParse)
	assert.Zero(t, buf.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRun_WriteError(t *testing.T) {
	err := roundtrip.Run(failingWriter{}, []byte(roundtrip.Literal))
	require.Error(t, err)
	assert.NotErrorIs(t, err, roundtrip.ErrParse)
	assert.Contains(t, err.Error(), "roundtrip: write: disk full")
}
