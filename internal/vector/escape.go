package vector

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOddLength is returned when a message or digest field holds an odd
// number of hex digits and therefore cannot be split into byte pairs.
var ErrOddLength = errors.New("vector: odd-length hex string")

// HexEscape rewrites a string of hex digits as C string-literal escapes,
// two digits per `\xNN` unit. The digits are treated as opaque text: no
// decoding, case preserved exactly as given. "4142" becomes `\x41\x42`.
func HexEscape(s string) (string, error) {
	if len(s)%2 != 0 {
		return "", fmt.Errorf("%w (%d digits)", ErrOddLength, len(s))
	}
	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := 0; i < len(s); i += 2 {
		b.WriteString(`\x`)
		b.WriteString(s[i : i+2])
	}
	return b.String(), nil
}
