// Package skein implements the Skein-512 hash function (final spec
// revision) over the Threefish-512 block cipher.
package skein

import (
	"encoding/binary"
	"hash"
)

const (
	// BlockSize is the Skein-512 block size in bytes.
	BlockSize = 64
	// Size512 is the byte length of a Skein-512-512 digest.
	Size512 = 64
	// Size256 is the byte length of a Skein-512-256 digest.
	Size256 = 32
)

// Tweak type values (bits 120..125 of the 128-bit tweak) and block
// position flags.
const (
	typeCfg = 4
	typeMsg = 48
	typeOut = 63

	flagFirst = uint64(1) << 62
	flagFinal = uint64(1) << 63
)

// Chaining values after processing the configuration block, precomputed
// per the Skein specification. configIV reproduces them.
var iv512 = [numWords]uint64{
	0x4903adff749c51ce, 0x0d95de399746df03, 0x8fd1934127c79bce, 0x9a255629ff352cb1,
	0x5db62599df6ca7b0, 0xeabe394ca9d5c3f4, 0x991112c71a75b523, 0xae18a40b660fcc33,
}

var iv256 = [numWords]uint64{
	0xccd044a12fdb3e13, 0xe83590301a79a9eb, 0x55aea0614f816e6f, 0x2a2767a4ae9b94db,
	0xec06025e74dd7683, 0xe7a436cdc4746251, 0xc36fbaf9393ad185, 0x3eedba1833edfc13,
}

type digest struct {
	iv   [numWords]uint64
	size int

	h   [numWords]uint64
	t   [2]uint64
	buf [BlockSize]byte
	n   int
}

// New512 returns a hash.Hash computing Skein-512-512.
func New512() hash.Hash { return newDigest(iv512, Size512) }

// New256 returns a hash.Hash computing Skein-512-256.
func New256() hash.Hash { return newDigest(iv256, Size256) }

// Sum512 computes the Skein-512-512 digest of data.
func Sum512(data []byte) [Size512]byte {
	d := newDigest(iv512, Size512)
	d.Write(data)
	var out [Size512]byte
	copy(out[:], d.checkSum())
	return out
}

func newDigest(iv [numWords]uint64, size int) *digest {
	d := &digest{iv: iv, size: size}
	d.Reset()
	return d
}

func (d *digest) Reset() {
	d.h = d.iv
	d.t = [2]uint64{0, flagFirst | typeMsg<<56}
	d.n = 0
}

func (d *digest) Size() int      { return d.size }
func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) {
	nn := len(p)
	for len(p) > 0 {
		// A full buffer is only processed once more input arrives: the
		// last block must carry the final flag, so it stays buffered
		// until checkSum.
		if d.n == BlockSize {
			d.process(&d.buf, BlockSize)
			d.n = 0
		}
		c := copy(d.buf[d.n:], p)
		d.n += c
		p = p[c:]
	}
	return nn, nil
}

func (d *digest) Sum(b []byte) []byte {
	d0 := *d // finalize a copy so Write can continue
	return append(b, d0.checkSum()...)
}

func (d *digest) checkSum() []byte {
	for i := d.n; i < BlockSize; i++ {
		d.buf[i] = 0
	}
	d.t[1] |= flagFinal
	d.process(&d.buf, d.n)

	// Output transform: one UBI block over a zero counter.
	d.t = [2]uint64{0, flagFirst | flagFinal | typeOut<<56}
	var ctr [BlockSize]byte
	d.process(&ctr, 8)

	out := make([]byte, BlockSize)
	for i, v := range d.h {
		binary.LittleEndian.PutUint64(out[8*i:], v)
	}
	return out[:d.size]
}

// process consumes one 64-byte block. consumed is the number of message
// bytes the block represents; it is below BlockSize only for the final
// (zero-padded) block.
func (d *digest) process(block *[BlockSize]byte, consumed int) {
	d.t[0] += uint64(consumed)
	var w [numWords]uint64
	for i := range w {
		w[i] = binary.LittleEndian.Uint64(block[8*i:])
	}
	ubiBlock(&d.h, d.t, w)
	d.t[1] &^= flagFirst
}

// configIV derives the chaining value for the given output size by
// hashing the 32-byte configuration string (schema "SHA3", version 1,
// output length in bits) as a single first+final CFG block.
func configIV(outputBits uint64) [numWords]uint64 {
	var cfg [BlockSize]byte
	copy(cfg[:4], "SHA3")
	binary.LittleEndian.PutUint16(cfg[4:], 1)
	binary.LittleEndian.PutUint64(cfg[8:], outputBits)

	var w [numWords]uint64
	for i := range w {
		w[i] = binary.LittleEndian.Uint64(cfg[8*i:])
	}
	var h [numWords]uint64
	ubiBlock(&h, [2]uint64{32, flagFirst | flagFinal | typeCfg<<56}, w)
	return h
}
