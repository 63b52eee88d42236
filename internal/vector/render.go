package vector

import (
	"fmt"
	"io"

	"github.com/benzea/skein-altivec/internal/model"
)

// Renderer writes records as TN(...) source-literal blocks, the form
// consumed by the C test harness:
//
//	\tTN(<length>, "<escaped message>",
//	\t   "<escaped digest>"),
//	<blank line>
//
// The length is emitted unquoted and verbatim.
type Renderer struct {
	w io.Writer
}

// NewRenderer returns a Renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Render escapes the record's message and digest and writes one block.
// An odd-length field aborts with ErrOddLength; anything already written
// to w stays written.
func (r *Renderer) Render(rec model.Record) error {
	msg, err := HexEscape(rec.Message)
	if err != nil {
		return fmt.Errorf("message %w", err)
	}
	md, err := HexEscape(rec.Digest)
	if err != nil {
		return fmt.Errorf("digest %w", err)
	}
	_, err = fmt.Fprintf(r.w, "\tTN(%s, \"%s\",\n\t   \"%s\"),\n\n", rec.Length, msg, md)
	return err
}
