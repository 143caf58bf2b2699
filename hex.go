package shabrute

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// ErrInvalidDigest is returned for a digest representation that is not 64 hexadecimal characters.
var ErrInvalidDigest = errors.New("shabrute: invalid digest")

// ParseDigest reads 64 hex characters, 8 per word and most-significant nibble first, in digest
// order. Either letter case is accepted.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	if len(s) != Size*2 {
		return d, fmt.Errorf("%w: %d characters, want %d", ErrInvalidDigest, len(s), Size*2)
	}
	var raw [Size]byte
	if _, err := hex.Decode(raw[:], []byte(s)); err != nil {
		return d, fmt.Errorf("%w: %v", ErrInvalidDigest, err)
	}
	for i := range d {
		d[i] = binary.BigEndian.Uint32(raw[i<<2:])
	}
	return d, nil
}

// MustParseDigest is like ParseDigest but panics on malformed input. It is meant for constants.
func MustParseDigest(s string) Digest {
	d, err := ParseDigest(s)
	if err != nil {
		panic(err)
	}
	return d
}
