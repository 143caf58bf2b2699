package search

import (
	"context"
	"time"

	"github.com/p7r0x7/shabrute"
	"github.com/remeh/sizedwaitgroup"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file contains the search coordinator: lengths are tried in increasing order, and within a
// length the first character's alphabet is split among a fixed pool of workers.

// Result is the outcome of a Search. A search that exhausts its space without a match is not an
// error; Found is simply false.
type Result struct {
	Found     bool
	Candidate []byte
	Length    int    /* of Candidate; 0 when nothing was found */
	Tried     uint64 /* digests computed, over all workers */
	Elapsed   time.Duration
}

// Search looks for a candidate whose digest equals target. When several candidates match, which
// one is returned depends on worker scheduling. Cancelling ctx stops the workers cooperatively;
// Search then returns ctx.Err() along with the count tried so far.
func Search(ctx context.Context, target shabrute.Digest, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	alpha, _ := opts.alphabet()
	log, start := opts.logger(), time.Now()

	sig := &signal{}
	defer context.AfterFunc(ctx, sig.cancel)()

	ranges := Partition(alpha, opts.Workers)
	workers := make([]*worker, len(ranges))
	for i, r := range ranges {
		workers[i] = &worker{id: i, first: r, alpha: alpha, target: target, sig: sig, log: log}
	}
	log.Debug().Stringer("target", target).Int("workers", len(workers)).Int("alphabet", alpha.Len()).
		Int("min", opts.MinLen).Int("max", opts.MaxLen).Msg("search started")

	pool := sizedwaitgroup.New(poolSize(len(workers)))
	length := opts.MinLen
	if length < 1 {
		length = 1
	}
	for ; length <= opts.MaxLen && !sig.stopped(); length++ {
		for _, w := range workers {
			pool.Add()
			go func(w *worker, length int) {
				defer pool.Done()
				w.search(length)
			}(w, length)
		}
		pool.Wait()
		if !sig.stopped() {
			log.Debug().Int("length", length).Msg("length exhausted")
		}
	}

	res := Result{Elapsed: time.Since(start)}
	for _, w := range workers {
		res.Tried += w.tried
	}
	if m := sig.found.Load(); m != nil {
		res.Found, res.Candidate, res.Length = true, m.candidate, m.length
		log.Info().Bytes("candidate", m.candidate).Int("worker", m.worker).Uint64("tried", res.Tried).
			Dur("elapsed", res.Elapsed).Msg("secret found")
		return res, nil
	}
	if sig.stopped() {
		return res, ctx.Err()
	}
	log.Debug().Uint64("tried", res.Tried).Msg("search exhausted")
	return res, nil
}

/* At most one running worker per logical CPU; surplus ranges wait for a free slot. */
func poolSize(workers int) int {
	if n := DefaultWorkers(); n < workers {
		return n
	}
	return workers
}
