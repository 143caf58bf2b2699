package search

import (
	"math"
	"math/bits"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Generator enumerates every candidate of a fixed length whose first character lies in a given
// range of the alphabet. Candidates come in depth-first order: position 0 varies slowest and the
// last position fastest, each position running through the whole alphabet before the one before
// it advances. A Generator owns its candidate buffer and must not be shared between goroutines.
type Generator struct {
	chars   []byte
	first   Range
	idx     []int
	buf     []byte
	started bool
	done    bool
}

// NewGenerator returns a generator over candidates of the given length drawn from a, with the
// first character restricted to first. A length below 1 or an empty range yields nothing.
func NewGenerator(a Alphabet, length int, first Range) *Generator {
	g := &Generator{chars: a.Chars(), first: first}
	if length < 1 || first.Lo < 0 || first.Hi > len(g.chars) || first.Len() < 1 {
		g.done = true
		return g
	}
	g.idx, g.buf = make([]int, length), make([]byte, length)
	return g
}

// Next advances to the next candidate and reports whether there was one.
func (g *Generator) Next() bool {
	if g.done {
		return false
	}
	if !g.started {
		g.started = true
		g.idx[0] = g.first.Lo
		g.buf[0] = g.chars[g.first.Lo]
		for p := 1; p < len(g.idx); p++ {
			g.idx[p], g.buf[p] = 0, g.chars[0]
		}
		return true
	}

	for p := len(g.idx) - 1; p > 0; p-- {
		if g.idx[p]++; g.idx[p] < len(g.chars) {
			g.buf[p] = g.chars[g.idx[p]]
			return true
		}
		g.idx[p], g.buf[p] = 0, g.chars[0]
	}
	if g.idx[0]++; g.idx[0] >= g.first.Hi {
		g.done = true
		return false
	}
	g.buf[0] = g.chars[g.idx[0]]
	return true
}

// Candidate returns the current candidate. The buffer is rewritten by the following call to Next.
func (g *Generator) Candidate() []byte { return g.buf }

// Reset rewinds the generator to before its first candidate.
func (g *Generator) Reset() {
	if g.idx != nil {
		g.started, g.done = false, false
	}
}

// Count returns how many candidates a full enumeration yields, saturating at math.MaxUint64.
func (g *Generator) Count() uint64 {
	if g.idx == nil {
		return 0
	}
	n := uint64(g.first.Len())
	for p := 1; p < len(g.idx); p++ {
		hi, lo := bits.Mul64(n, uint64(len(g.chars)))
		if hi != 0 {
			return math.MaxUint64
		}
		n = lo
	}
	return n
}
