package skein

import "math/bits"

// Threefish-512 parameters.
const (
	numWords  = 8
	numRounds = 72

	// keyScheduleParity is XORed over the key words to form the extra
	// key-schedule word, so no key can zero the whole schedule.
	keyScheduleParity = 0x1bd11bdaa9fc1a22
)

// rotations holds the four rotation amounts used by the mix operations
// of each round, indexed by round number mod 8.
var rotations = [8][4]int{
	{46, 36, 19, 37},
	{33, 27, 14, 42},
	{17, 49, 36, 39},
	{44, 9, 54, 56},
	{39, 30, 34, 24},
	{13, 50, 10, 17},
	{25, 29, 39, 43},
	{8, 35, 56, 22},
}

// mixPairs lists which state words each of the four mix operations of a
// round touches, indexed by round number mod 4. The pair orders fold the
// word permutation into the schedule, matching the unrolled reference
// block function.
var mixPairs = [4][4][2]int{
	{{0, 1}, {2, 3}, {4, 5}, {6, 7}},
	{{2, 1}, {4, 7}, {6, 5}, {0, 3}},
	{{4, 1}, {6, 3}, {0, 5}, {2, 7}},
	{{6, 1}, {0, 7}, {2, 5}, {4, 3}},
}

// ubiBlock runs one UBI iteration: Threefish-512 encryption of block w
// under the chain value as key and the given tweak, followed by the
// feed-forward XOR with the plaintext. The new chain value replaces h.
func ubiBlock(h *[numWords]uint64, tweak [2]uint64, w [numWords]uint64) {
	var ks [numWords + 1]uint64
	ks[numWords] = keyScheduleParity
	for i, v := range h {
		ks[i] = v
		ks[numWords] ^= v
	}
	ts := [3]uint64{tweak[0], tweak[1], tweak[0] ^ tweak[1]}

	var x [numWords]uint64
	for i := range x {
		x[i] = w[i] + ks[i]
	}
	x[numWords-3] += ts[0]
	x[numWords-2] += ts[1]

	for d := 0; d < numRounds; d++ {
		pairs := &mixPairs[d%4]
		rot := &rotations[d%8]
		for j := 0; j < 4; j++ {
			a, b := pairs[j][0], pairs[j][1]
			x[a] += x[b]
			x[b] = bits.RotateLeft64(x[b], rot[j]) ^ x[a]
		}
		if d%4 == 3 {
			s := d/4 + 1
			for i := 0; i < numWords; i++ {
				x[i] += ks[(s+i)%(numWords+1)]
			}
			x[numWords-3] += ts[s%3]
			x[numWords-2] += ts[(s+1)%3]
			x[numWords-1] += uint64(s) // avoid slide attacks
		}
	}

	for i := range h {
		h[i] = x[i] ^ w[i]
	}
}
