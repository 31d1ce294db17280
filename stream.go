package roundtrip

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var framing = jsoniter.ConfigCompatibleWithStandardLibrary

// Stream reads whitespace-separated or concatenated JSON records from r and
// writes each one, re-encoded, as its own line on w. It returns the number of
// records written. Reaching EOF is not an error; the first record that fails
// to decode stops the stream with a *ParseError carrying its offset.
//
// Records are split with jsoniter regardless of the configured codec; the
// codec only sees one record at a time.
func Stream(r io.Reader, w io.Writer, opts ...Option) (int, error) {
	c := codecFor(newConfig(opts))
	guard := &nulGuard{r: r}
	dec := framing.NewDecoder(guard)

	n := 0
	for dec.More() {
		var raw stdjson.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return n, &ParseError{Offset: n, Err: err}
		}
		rec, err := decode(c, raw, n)
		if err != nil {
			return n, err
		}
		out, err := encode(c, rec)
		if err != nil {
			return n, err
		}
		if err := writeLine(w, out); err != nil {
			return n, err
		}
		n++
	}
	// jsoniter reads a NUL as end of input, so More alone cannot tell it
	// apart from EOF.
	if guard.err != nil {
		return n, &ParseError{Offset: n, Err: guard.err}
	}
	// More stops on a closing bracket as well as on EOF.
	rest, _ := io.ReadAll(dec.Buffered())
	if rest = bytes.TrimSpace(rest); len(rest) > 0 {
		return n, &ParseError{Offset: n, Err: fmt.Errorf("unexpected %q", rest[:1])}
	}
	return n, nil
}

var errNUL = errors.New("unexpected NUL byte")

// nulGuard stops reading at the first NUL byte, which can never appear in
// JSON text, and keeps returning the error afterwards.
type nulGuard struct {
	r   io.Reader
	err error
}

func (g *nulGuard) Read(p []byte) (int, error) {
	if g.err != nil {
		return 0, g.err
	}
	n, err := g.r.Read(p)
	if i := bytes.IndexByte(p[:n], 0); i >= 0 {
		g.err = errNUL
		if i == 0 {
			return 0, g.err
		}
		return i, nil
	}
	return n, err
}
