package search

import (
	"sync/atomic"

	"github.com/p7r0x7/shabrute"
	"github.com/rs/zerolog"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

type match struct {
	candidate []byte
	length    int
	worker    int
}

// signal is the one piece of state shared by all workers of a search. Go's atomics are
// sequentially consistent, which covers the acquire/release ordering the workers rely on.
type signal struct {
	stop  atomic.Bool
	found atomic.Pointer[match]
}

/* Only the first announcement is kept; it reports whether m was that one. */
func (s *signal) announce(m *match) bool {
	if !s.found.CompareAndSwap(nil, m) {
		return false
	}
	s.stop.Store(true)
	return true
}

func (s *signal) cancel() { s.stop.Store(true) }

func (s *signal) stopped() bool { return s.stop.Load() }

// worker searches one first-position range. Its hasher, generator and counter are its own.
type worker struct {
	id     int
	first  Range
	alpha  Alphabet
	target shabrute.Digest
	sig    *signal
	log    zerolog.Logger
	hasher shabrute.Hasher
	tried  uint64
}

func (w *worker) search(length int) {
	gen := NewGenerator(w.alpha, length, w.first)
	/* The flag is polled before every digest; a digest in flight always completes. */
	for !w.sig.stopped() && gen.Next() {
		w.tried++
		if cand := gen.Candidate(); w.hasher.Sum(cand) == w.target {
			m := &match{candidate: append([]byte(nil), cand...), length: length, worker: w.id}
			if w.sig.announce(m) {
				w.log.Debug().Int("worker", w.id).Int("length", length).Msg("match announced")
			}
			return
		}
	}
}
