package main

import (
	. "fmt"
	"sync"
	"testing"
	"time"

	"github.com/dterei/gotsc"
	"github.com/minio/sha256-simd"
	"github.com/p7r0x7/shabrute"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var sizes = [...]int{64, 512 << 10, 64 << 20}
var bytes, calltime = []byte(nil), gotsc.TSCOverhead()

func BenchmarkShabrute(b *testing.B) {
	var h shabrute.Hasher
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		h.Sum(bytes)
	}
}

func BenchmarkSHA256(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		sha256.Sum256(bytes)
	}
}

func BenchmarkBlake3(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		blake3.Sum256(bytes)
	}
}

func BenchmarkXXH3(b *testing.B) {
	b.SetBytes(int64(len(bytes)))
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		xxh3.Hash(bytes)
	}
}

/* Samples the TSC rate over 1ms windows every 10ms until stopped. */
type clock struct {
	mut          sync.Mutex
	ticks, polls uint64
	quit         chan struct{}
}

func startClock() *clock {
	c := &clock{quit: make(chan struct{})}
	go func() {
		for {
			select {
			case <-c.quit:
				return
			default:
			}
			tsc1 := gotsc.BenchStart()
			time.Sleep(time.Millisecond)
			tsc2 := gotsc.BenchEnd()

			c.mut.Lock()
			c.ticks += tsc2 - tsc1 - calltime
			c.polls++
			c.mut.Unlock()
			time.Sleep(9 * time.Millisecond)
		}
	}()
	return c
}

/* Stops sampling and returns the mean rate in Hz, or 0 without samples. */
func (c *clock) stop() float64 {
	close(c.quit)
	c.mut.Lock()
	defer c.mut.Unlock()
	if c.polls == 0 {
		return 0
	}
	return float64(c.ticks) * 1000 / float64(c.polls)
}

func benchAlg(alg func(b *testing.B)) {
	throughputs, speeds, usages := make([]float64, len(sizes)), make([]float64, len(sizes)), make([]float64, len(sizes))

	for i, v := range sizes {
		bytes = make([]byte, v)
		var c *clock
		if calltime > 0 {
			c = startClock()
		}
		r := testing.Benchmark(alg)
		bps := float64(r.Bytes*int64(r.N)) / r.T.Seconds()
		if c != nil {
			speeds[i] = c.stop() / bps /* cycles per byte */
		}
		throughputs[i], usages[i] = bps/1e6, float64(r.AllocedBytesPerOp())
	}

	Println(row("Speed", "MB/s", throughputs))
	if calltime > 0 {
		Println(row("     ", "cpb", speeds))
	}
	Println(row("Usage", "B/op", usages) + "\n")
}

/* Whole numbers print bare; small rates keep three decimals, large ones one. */
func row(label, unit string, f []float64) string {
	str := label + " "
	for _, v := range f {
		switch {
		case v == float64(int64(v)):
			str += Sprintf("  %8.f", v)
		case v < 100:
			str += Sprintf("  %8.3f", v)
		default:
			str += Sprintf("  %8.1f", v)
		}
	}
	return str + "   " + unit
}
