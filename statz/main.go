package main

import (
	. "fmt"
	"runtime"
	"time"

	"github.com/klauspost/cpuid/v2"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

func main() {
	Printf("Running Statz on %d CPUs!\n%s/%s, %s (SHA extensions: %t)\n\n",
		runtime.NumCPU(), runtime.GOOS, runtime.GOARCH, cpuid.CPU.BrandName, cpuid.CPU.Supports(cpuid.SHA))
	t := time.Now()

	qualityTest()
	crackRate()
	Println(" ============================================= ")
	Println("             64B      512K       64M")

	Println("github.com/p7r0x7/shabrute")
	benchAlg(BenchmarkShabrute)

	Println("github.com/minio/sha256-simd")
	benchAlg(BenchmarkSHA256)

	Println("github.com/zeebo/blake3")
	benchAlg(BenchmarkBlake3)

	Println("github.com/zeebo/xxh3")
	benchAlg(BenchmarkXXH3)

	Println("Finished in " + time.Since(t).Truncate(time.Millisecond).String() + ".")
}
