// Command roundtrip decodes a fixed JSON record, re-encodes it and prints the
// result on a single line.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/ripkitten-co/roundtrip"
)

func main() {
	if err := run(os.Stdout); err != nil {
		slog.Error("round trip", "input", roundtrip.Literal, "error", err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	return roundtrip.Run(w, []byte(roundtrip.Literal))
}
