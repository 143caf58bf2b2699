package search

import "fmt"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Mode selects one of the built-in alphabets.
type Mode int

const (
	// LettersOnly is A–Z followed by a–z; each case is its own segment for partitioning.
	LettersOnly Mode = iota
	// FullASCII is every printable, non-space ASCII character, '!' through '~'.
	FullASCII
)

func (m Mode) String() string {
	switch m {
	case LettersOnly:
		return "letters"
	case FullASCII:
		return "ascii"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Alphabet is an ordered character set made of contiguous segments. Enumeration order is the
// concatenation of the segments.
type Alphabet struct {
	chars    []byte
	segments []int /* end offset of each segment within chars */
}

func span(lo, hi byte) []byte {
	out := make([]byte, 0, int(hi-lo)+1)
	for c := int(lo); c <= int(hi); c++ {
		out = append(out, byte(c))
	}
	return out
}

// NewAlphabet returns the built-in alphabet for m.
func NewAlphabet(m Mode) (Alphabet, error) {
	switch m {
	case LettersOnly:
		upper, lower := span('A', 'Z'), span('a', 'z')
		return Alphabet{chars: append(upper, lower...), segments: []int{len(upper), len(upper) + len(lower)}}, nil
	case FullASCII:
		chars := span('!', '~')
		return Alphabet{chars: chars, segments: []int{len(chars)}}, nil
	default:
		return Alphabet{}, fmt.Errorf("%w: unknown alphabet mode %v", ErrConfig, m)
	}
}

// CustomAlphabet returns a single-segment alphabet enumerated in the order given. It fails on an
// empty set or on a repeated character, which would make two partitions overlap.
func CustomAlphabet(chars []byte) (Alphabet, error) {
	if len(chars) == 0 {
		return Alphabet{}, fmt.Errorf("%w: empty alphabet", ErrConfig)
	}
	var seen [256]bool
	for _, c := range chars {
		if seen[c] {
			return Alphabet{}, fmt.Errorf("%w: alphabet repeats %q", ErrConfig, c)
		}
		seen[c] = true
	}
	own := append([]byte(nil), chars...)
	return Alphabet{chars: own, segments: []int{len(own)}}, nil
}

// Chars returns the characters in enumeration order. The slice must not be modified.
func (a Alphabet) Chars() []byte { return a.chars }

func (a Alphabet) Len() int { return len(a.chars) }

// Segments returns each segment as a contiguous half-open range of character indices.
func (a Alphabet) Segments() []Range {
	out, lo := make([]Range, len(a.segments)), 0
	for i, hi := range a.segments {
		out[i] = Range{lo, hi}
		lo = hi
	}
	return out
}
