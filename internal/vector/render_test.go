package vector

import (
	"bytes"
	"errors"
	"testing"

	"github.com/benzea/skein-altivec/internal/model"
)

func TestRenderBlock(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	err := r.Render(model.Record{Length: "8", Message: "4142", Digest: "61626364"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "\tTN(8, \"\\x41\\x42\",\n\t   \"\\x61\\x62\\x63\\x64\"),\n\n"
	if buf.String() != want {
		t.Errorf("block = %q, want %q", buf.String(), want)
	}
}

func TestRenderEmptyMessage(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	err := r.Render(model.Record{Length: "0", Message: "", Digest: "aabb"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "\tTN(0, \"\",\n\t   \"\\xaa\\xbb\"),\n\n"
	if buf.String() != want {
		t.Errorf("block = %q, want %q", buf.String(), want)
	}
}

func TestRenderOddLengthDigest(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	err := r.Render(model.Record{Length: "0", Message: "", Digest: "abc"})
	if !errors.Is(err, ErrOddLength) {
		t.Fatalf("Render error = %v, want ErrOddLength", err)
	}
	if buf.Len() != 0 {
		t.Errorf("partial block written on failure: %q", buf.String())
	}
}

func TestRenderLengthVerbatim(t *testing.T) {
	// The length field is echoed as-is, even when it is not numeric.
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	if err := r.Render(model.Record{Length: "0x10", Message: "ff", Digest: "00"}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "\tTN(0x10, \"\\xff\",\n\t   \"\\x00\"),\n\n"
	if buf.String() != want {
		t.Errorf("block = %q, want %q", buf.String(), want)
	}
}
