package main

import (
	"context"
	"encoding/binary"
	. "fmt"
	"math/bits"
	"time"

	"github.com/aead/chacha20/chacha"
	"github.com/minio/sha256-simd"
	"github.com/p7r0x7/shabrute"
	"github.com/p7r0x7/shabrute/search"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const ints = uint32(5e4)

/* Reproducible random messages: a fixed-key ChaCha20 keystream. */
func keystream() *chacha.Cipher {
	var key [chacha.KeySize]byte
	c, err := chacha.NewCipher(make([]byte, chacha.NonceSize), key[:], 20)
	if err != nil {
		panic(err)
	}
	return c
}

/* Mean absolute deviation from a 50% set rate per output bit, in percent. */
func meanBias(tally *[shabrute.Size * 8]int32, count uint32) float64 {
	var total int32
	for _, t := range tally {
		t -= int32(count >> 1)
		if t < 0 {
			t = -t
		}
		total += t
	}
	return float64(total) / float64(len(tally)) / float64(count>>1) * 100
}

func addBits(tally *[shabrute.Size * 8]int32, d shabrute.Digest) {
	for i, w := range d {
		for ; w != 0; w &= w - 1 {
			tally[i<<5+31-bits.TrailingZeros32(w)]++
		}
	}
}

func qualityTest() {
	var integers, random [shabrute.Size * 8]int32
	var h shabrute.Hasher
	stream, msg, iBytes := keystream(), make([]byte, 1024), make([]byte, 4)
	mismatches := 0

	for i := ints; i > 0; i-- {
		binary.BigEndian.PutUint32(iBytes, i)
		addBits(&integers, h.Sum(iBytes))

		stream.XORKeyStream(msg, msg)
		n := int(i % uint32(len(msg)))
		d := h.Sum(msg[:n])
		addBits(&random, d)
		if d.Bytes() != sha256.Sum256(msg[:n]) {
			mismatches++
		}
	}
	Printf("Integer input Monobit test:  %5.3f%%\n", meanBias(&integers, ints))
	Printf("Random input Monobit test:   %5.3f%%\n", meanBias(&random, ints))
	Printf("Disagreements with sha256-simd: %d of %d\n", mismatches, ints)
}

func crackRate() {
	const length = 4
	opts := search.Options{MinLen: length, MaxLen: length, Workers: search.DefaultWorkers()}
	/* No letters-only string hashes to all zeroes, so the whole space is walked. */
	res, err := search.Search(context.Background(), shabrute.Digest{}, opts)
	if err != nil {
		panic(err)
	}
	rate := float64(res.Tried) / res.Elapsed.Seconds()
	Printf("Exhausted %d candidates of length %d on %d workers in %s (%.4g/s)\n",
		res.Tried, length, opts.Workers, res.Elapsed.Truncate(time.Millisecond), rate)
}
