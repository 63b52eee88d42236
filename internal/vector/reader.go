package vector

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/benzea/skein-altivec/internal/model"
)

// Field labels as they appear in NIST-style vector files.
const (
	prefixLen = "Len = "
	prefixMsg = "Msg = "
	prefixMD  = "MD = "
)

// Reader extracts vector records from a line-oriented input stream. A
// record is complete when an "MD = " line is seen; "Len = " and "Msg = "
// lines update the pending record, every other line is ignored.
//
// Length and Message are deliberately not reset between records, matching
// the converter this tool replaces: a record missing a fresh "Len = " or
// "Msg = " line reuses whatever value the previous record set.
type Reader struct {
	scanner *bufio.Scanner
	pending model.Record
}

// NewReader returns a Reader over r. maxLineSize caps the size of a
// single input line; values <= 0 fall back to model.DefaultMaxLineSize.
func NewReader(r io.Reader, maxLineSize int) *Reader {
	if maxLineSize <= 0 {
		maxLineSize = model.DefaultMaxLineSize
	}
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, maxLineSize), maxLineSize)
	return &Reader{scanner: s}
}

// Next returns the next complete record, or io.EOF when the input is
// exhausted. The returned record shares Length and Message with later
// records that do not overwrite them.
func (r *Reader) Next() (model.Record, error) {
	for r.scanner.Scan() {
		line := r.scanner.Text()
		switch {
		case strings.HasPrefix(line, prefixLen):
			r.pending.Length = strings.TrimSpace(line[len(prefixLen):])
		case strings.HasPrefix(line, prefixMsg):
			r.pending.Message = strings.TrimSpace(line[len(prefixMsg):])
		case strings.HasPrefix(line, prefixMD):
			r.pending.Digest = strings.TrimSpace(line[len(prefixMD):])
			return r.pending, nil
		}
	}
	if err := r.scanner.Err(); err != nil {
		return model.Record{}, fmt.Errorf("vector: reading input: %w", err)
	}
	return model.Record{}, io.EOF
}
