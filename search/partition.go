package search

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Range is a half-open interval [Lo, Hi) of alphabet indices for the first candidate position.
type Range struct {
	Lo, Hi int
}

func (r Range) Len() int { return r.Hi - r.Lo }

/* Cuts r into k contiguous pieces as equal as integer division allows; the last takes the rest. */
func split(r Range, k int) []Range {
	if k > r.Len() {
		k = r.Len()
	}
	if k < 1 {
		return nil
	}
	out, size := make([]Range, k), r.Len()/k
	for i := range out {
		out[i] = Range{r.Lo + i*size, r.Lo + (i+1)*size}
	}
	out[k-1].Hi = r.Hi
	return out
}

// Partition divides the first-position alphabet among at most workers ranges. Workers are shared
// out evenly over the alphabet's segments (any remainder goes to the last segment) and each
// segment is split among its share; with fewer workers than segments the whole alphabet is split
// instead. No segment is given more workers than it has characters, so fewer ranges than workers
// may come back. Every index is covered by exactly one range.
func Partition(a Alphabet, workers int) []Range {
	if workers < 1 || a.Len() == 0 {
		return nil
	}
	segs := a.Segments()
	if workers < len(segs) {
		return split(Range{0, a.Len()}, workers)
	}

	per, extra := workers/len(segs), workers%len(segs)
	out := make([]Range, 0, workers)
	for i, s := range segs {
		k := per
		if i == len(segs)-1 {
			k += extra
		}
		out = append(out, split(s, k)...)
	}
	return out
}
