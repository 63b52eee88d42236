// Package verify replays test-vector files against a digest
// implementation and reports every vector whose recorded digest does not
// match the computed one.
package verify

import (
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/benzea/skein-altivec/internal/model"
	"github.com/benzea/skein-altivec/internal/vector"
)

// Options configures a verification run.
type Options struct {
	Algorithm   string // digest name, see Algorithms
	Jobs        int    // max files verified concurrently
	MaxLineSize int    // per-line scanner cap, 0 = default
}

// Files verifies each vector file and returns one report per path, in
// input order. Per-file read errors land in that file's report; only an
// unusable configuration fails the whole run.
func Files(paths []string, opts Options) ([]model.FileReport, error) {
	ctor, err := newHash(opts.Algorithm)
	if err != nil {
		return nil, err
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = model.DefaultJobs
	}

	reports := make([]model.FileReport, len(paths))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			reports[i] = verifyFile(path, opts.Algorithm, ctor, opts.MaxLineSize)
			return nil
		})
	}
	return reports, g.Wait()
}

func verifyFile(path, algo string, ctor func() hash.Hash, maxLineSize int) model.FileReport {
	f, err := os.Open(path)
	if err != nil {
		return model.FileReport{Path: path, Algorithm: algo, Err: err.Error()}
	}
	defer f.Close()

	rep := Stream(f, algo, ctor, maxLineSize)
	rep.Path = path
	return rep
}

// Stream verifies all records readable from r. The returned report has
// no Path; callers fill it in.
func Stream(r io.Reader, algo string, ctor func() hash.Hash, maxLineSize int) model.FileReport {
	rep := model.FileReport{Algorithm: algo}
	rd := vector.NewReader(r, maxLineSize)
	h := ctor()
	for i := 0; ; i++ {
		rec, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return rep
		}
		if err != nil {
			rep.Err = err.Error()
			return rep
		}
		checkRecord(&rep, i, rec, h)
	}
}

func checkRecord(rep *model.FileReport, index int, rec model.Record, h hash.Hash) {
	bits, err := strconv.ParseUint(rec.Length, 10, 64)
	if err != nil || bits%8 != 0 {
		// Bit-oriented or unparsable lengths are out of scope for a
		// byte-oriented digest.
		rep.Skipped++
		return
	}
	byteLen := int(bits / 8)

	msg, err := hex.DecodeString(rec.Message)
	if err != nil {
		fail(rep, index, rec, fmt.Sprintf("bad message hex: %v", err))
		return
	}
	if len(msg) < byteLen {
		fail(rep, index, rec, fmt.Sprintf("message holds %d bytes, Len says %d", len(msg), byteLen))
		return
	}
	// Zero-length vectors conventionally carry a one-byte placeholder;
	// Len is authoritative.
	msg = msg[:byteLen]

	h.Reset()
	h.Write(msg)
	got := hex.EncodeToString(h.Sum(nil))
	if !strings.EqualFold(got, rec.Digest) {
		fail(rep, index, rec, got)
		return
	}
	rep.Passed++
}

func fail(rep *model.FileReport, index int, rec model.Record, got string) {
	rep.Failed++
	rep.Mismatches = append(rep.Mismatches, model.Mismatch{
		Index:    index,
		Length:   rec.Length,
		Expected: rec.Digest,
		Got:      got,
	})
}
