// Command roundtrip-stream reads JSON records from stdin and writes each one
// back, re-encoded, as its own line on stdout.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/ripkitten-co/roundtrip"
)

func main() {
	if n, err := run(os.Stdin, os.Stdout); err != nil {
		slog.Error("round trip stream", "records", n, "error", err)
		os.Exit(1)
	}
}

func run(r io.Reader, w io.Writer) (int, error) {
	return roundtrip.Stream(r, w)
}
