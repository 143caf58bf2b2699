package shabrute

import (
	"strconv"
	"testing"

	"github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

var sizes = [...]int{8, 64, 1 << 10, 64 << 10}

func benchSizes(b *testing.B, fn func(b *testing.B, msg []byte)) {
	for _, n := range sizes {
		msg := make([]byte, n)
		b.Run(byteSize(n), func(b *testing.B) {
			b.SetBytes(int64(n))
			b.ReportAllocs()
			b.ResetTimer()
			fn(b, msg)
		})
	}
}

func byteSize(n int) string {
	if n >= 1<<10 {
		return strconv.Itoa(n>>10) + "KiB"
	}
	return strconv.Itoa(n) + "B"
}

func BenchmarkSum(b *testing.B) {
	benchSizes(b, func(b *testing.B, msg []byte) {
		var h Hasher
		for i := b.N; i > 0; i-- {
			h.Sum(msg)
		}
	})
}

func BenchmarkSHA256SIMD(b *testing.B) {
	benchSizes(b, func(b *testing.B, msg []byte) {
		for i := b.N; i > 0; i-- {
			sha256.Sum256(msg)
		}
	})
}

func BenchmarkBlake3(b *testing.B) {
	benchSizes(b, func(b *testing.B, msg []byte) {
		for i := b.N; i > 0; i-- {
			blake3.Sum256(msg)
		}
	})
}

func BenchmarkXXH3(b *testing.B) {
	benchSizes(b, func(b *testing.B, msg []byte) {
		for i := b.N; i > 0; i-- {
			xxh3.Hash(msg)
		}
	})
}
