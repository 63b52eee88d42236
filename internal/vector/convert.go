// Package vector parses NIST-style test-vector files (Len/Msg/MD lines)
// and rewrites them as source-code literals.
package vector

import (
	"errors"
	"io"
)

// Convert reads vector records from in and writes one TN(...) block per
// record to out, in input order. It returns nil at end of input; the
// first odd-length message or digest aborts the stream with ErrOddLength.
func Convert(in io.Reader, out io.Writer) error {
	r := NewReader(in, 0)
	rend := NewRenderer(out)
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := rend.Render(rec); err != nil {
			return err
		}
	}
}
