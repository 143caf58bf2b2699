package shabrute

import (
	"math/big"
	"testing"
)

func firstPrimes(n int) []int64 {
	var out []int64
	for i := int64(2); len(out) < n; i++ {
		if big.NewInt(i).ProbablyPrime(20) {
			out = append(out, i)
		}
	}
	return out
}

/* Checks r^e <= p < (r + 2^-32)^e for r = m + word/2^32, with m the integer e-th root of p. */
func rootBits(p int64, e int, word uint32) bool {
	m := int64(1)
	for pow(big.NewRat(m+1, 1), e).Cmp(big.NewRat(p, 1)) <= 0 {
		m++
	}
	const scale = 1 << 32
	lo := big.NewRat(m*scale+int64(word), scale)
	hi := big.NewRat(m*scale+int64(word)+1, scale)
	target := big.NewRat(p, 1)
	return pow(lo, e).Cmp(target) <= 0 && pow(hi, e).Cmp(target) > 0
}

func pow(x *big.Rat, e int) *big.Rat {
	out := big.NewRat(1, 1)
	for ; e > 0; e-- {
		out.Mul(out, x)
	}
	return out
}

func TestRoundConstants(t *testing.T) {
	for i, p := range firstPrimes(len(k)) {
		if !rootBits(p, 3, k[i]) {
			t.Errorf("k[%d] = %#08x is not the cube root fraction of %d", i, k[i], p)
		}
	}
}

func TestInitialState(t *testing.T) {
	for i, p := range firstPrimes(len(initial)) {
		if !rootBits(p, 2, initial[i]) {
			t.Errorf("initial[%d] = %#08x is not the square root fraction of %d", i, initial[i], p)
		}
	}
}
