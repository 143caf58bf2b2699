package shabrute

import "math/bits"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// The compression function. All arithmetic is modulo 2^32, which Go's uint32 wraparound gives for
// free.

const rounds = 64

func sigma0(x uint32) uint32 { return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ x>>3 }

func sigma1(x uint32) uint32 { return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ x>>10 }

func bigSigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22)
}

func bigSigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25)
}

func ch(x, y, z uint32) uint32 { return x&y ^ ^x&z }

func maj(x, y, z uint32) uint32 { return x&y ^ x&z ^ y&z }

// Compress folds one block into the running digest sum and returns the result.
func Compress(sum Digest, blk *Block) Digest {
	var w [rounds]uint32 /* Message schedule; lives only for this block. */
	copy(w[:], blk[:])
	for i := wordsPerBlock; i < rounds; i++ {
		w[i] = sigma1(w[i-2]) + w[i-7] + sigma0(w[i-15]) + w[i-16]
	}

	a, b, c, d, e, f, g, h := sum[0], sum[1], sum[2], sum[3], sum[4], sum[5], sum[6], sum[7]
	for i := 0; i < rounds; i++ {
		t1 := h + bigSigma1(e) + ch(e, f, g) + k[i] + w[i]
		t2 := bigSigma0(a) + maj(a, b, c)
		h, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}

	sum[0] += a
	sum[1] += b
	sum[2] += c
	sum[3] += d
	sum[4] += e
	sum[5] += f
	sum[6] += g
	sum[7] += h
	return sum
}
