package shabrute

import (
	"encoding/binary"
	"encoding/hex"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file contains the digest facade: padding, then one compression per block from the fixed
// initial state.

//go:generate go run ./constgen

// Size is the length of a digest in bytes.
const Size = 32

// Digest is a 256-bit message digest held as 8 words in digest order.
type Digest [8]uint32

// Sum returns the digest of msg.
func Sum(msg []byte) Digest {
	var h Hasher
	return h.Sum(msg)
}

// Equal reports whether d and o agree in all 8 words.
func (d Digest) Equal(o Digest) bool { return d == o }

// Bytes returns the digest as 32 bytes, each word most-significant byte first.
func (d Digest) Bytes() (out [Size]byte) {
	for i, w := range d {
		binary.BigEndian.PutUint32(out[i<<2:], w)
	}
	return out
}

func (d Digest) String() string {
	b := d.Bytes()
	return hex.EncodeToString(b[:])
}

// Hasher computes digests while reusing its block buffer across calls. The zero value is ready
// to use; a Hasher must not be shared between goroutines.
type Hasher struct {
	blocks []Block
}

// Sum returns the digest of msg.
func (h *Hasher) Sum(msg []byte) Digest {
	h.blocks = PadInto(h.blocks, msg)
	sum := initial
	for i := range h.blocks {
		sum = Compress(sum, &h.blocks[i])
	}
	return sum
}
