package shabrute

import "encoding/binary"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Message padding and parsing: the byte message becomes a whole number of 512-bit blocks of
// big-endian 32-bit words, terminated by a 1 bit, zero fill and the 64-bit message bit-length.

const (
	BlockSize     = 64 /* bytes per block */
	wordsPerBlock = BlockSize / 4
	lengthBits    = 64
)

// Block is one 512-bit unit of the padded message.
type Block [wordsPerBlock]uint32

// BlockCount returns ⌈(8n + 1 + 64) / 512⌉, the number of blocks a message of n bytes pads to.
func BlockCount(n int) int {
	return int((uint64(n)<<3 + 1 + lengthBits + BlockSize<<3 - 1) / (BlockSize << 3))
}

// Pad returns the padded blocks of msg in a freshly allocated slice.
func Pad(msg []byte) []Block { return PadInto(nil, msg) }

// PadInto pads msg into dst, reusing its capacity when it is large enough, and returns the blocks.
// Any previous content of dst is overwritten.
func PadInto(dst []Block, msg []byte) []Block {
	n := len(msg)
	count := BlockCount(n)
	if cap(dst) < count {
		dst = make([]Block, count)
	} else {
		dst = dst[:count]
		for i := range dst {
			dst[i] = Block{}
		}
	}

	/* Whole words first, then the trailing bytes of a partial word. */
	w := 0
	for ; w<<2+4 <= n; w++ {
		dst[w/wordsPerBlock][w%wordsPerBlock] = binary.BigEndian.Uint32(msg[w<<2:])
	}
	for i := w << 2; i < n; i++ {
		dst[i/BlockSize][i%BlockSize>>2] |= uint32(msg[i]) << (24 - 8*(i&3))
	}

	/* The 1-bit marker directly follows the message; the block-count formula guarantees room. */
	dst[n/BlockSize][n%BlockSize>>2] |= 0x80 << (24 - 8*(n&3))

	bitLen := uint64(n) << 3
	last := &dst[count-1]
	last[wordsPerBlock-2] = uint32(bitLen >> 32)
	last[wordsPerBlock-1] = uint32(bitLen)
	return dst
}
