// Package roundtrip decodes JSON documents into a Record and encodes them
// back. Decode and Encode are inverses for every valid Record.
package roundtrip

import (
	"fmt"
	"io"

	"github.com/ripkitten-co/roundtrip/internal/codecs"
)

// Decode parses exactly one Record from data. Every failure is a *ParseError.
func Decode(data []byte, opts ...Option) (Record, error) {
	return decode(codecFor(newConfig(opts)), data, -1)
}

// Encode returns the JSON text for r.
func Encode(r Record, opts ...Option) ([]byte, error) {
	return encode(codecFor(newConfig(opts)), r)
}

// RoundTrip decodes data and re-encodes the resulting Record.
func RoundTrip(data []byte, opts ...Option) ([]byte, error) {
	c := codecFor(newConfig(opts))
	r, err := decode(c, data, -1)
	if err != nil {
		return nil, err
	}
	return encode(c, r)
}

// Run round-trips input and writes the encoded text to w followed by a newline.
func Run(w io.Writer, input []byte, opts ...Option) error {
	out, err := RoundTrip(input, opts...)
	if err != nil {
		return err
	}
	return writeLine(w, out)
}

func codecFor(cfg *config) codecs.Codec {
	return codecs.NewStrict(cfg.codec)
}

func decode(c codecs.Codec, data []byte, offset int) (Record, error) {
	var r Record
	if err := c.Unmarshal(data, &r); err != nil {
		return Record{}, &ParseError{Offset: offset, Err: err}
	}
	return r, nil
}

func encode(c codecs.Codec, r Record) ([]byte, error) {
	out, err := c.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("roundtrip: encode: %w", err)
	}
	return out, nil
}

func writeLine(w io.Writer, line []byte) error {
	buf := make([]byte, 0, len(line)+1)
	buf = append(buf, line...)
	buf = append(buf, '\n')
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("roundtrip: write: %w", err)
	}
	return nil
}
