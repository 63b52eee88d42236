package verify

import (
	"fmt"
	"hash"
	"sort"

	"golang.org/x/crypto/sha3"

	"github.com/benzea/skein-altivec/internal/skein"
)

// algorithms maps config names to digest constructors. Skein comes from
// the in-tree implementation; the SHA-3 finalists' successor comes from
// x/crypto for cross-checking foreign vector files.
var algorithms = map[string]func() hash.Hash{
	"skein512": skein.New512,
	"skein256": skein.New256,
	"sha3-256": func() hash.Hash { return sha3.New256() },
	"sha3-384": func() hash.Hash { return sha3.New384() },
	"sha3-512": func() hash.Hash { return sha3.New512() },
}

// Supported reports whether name is a known digest algorithm.
func Supported(name string) bool {
	_, ok := algorithms[name]
	return ok
}

// Algorithms returns the supported algorithm names, sorted.
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newHash(name string) (func() hash.Hash, error) {
	ctor, ok := algorithms[name]
	if !ok {
		return nil, fmt.Errorf("verify: unknown algorithm %q (have %v)", name, Algorithms())
	}
	return ctor, nil
}
