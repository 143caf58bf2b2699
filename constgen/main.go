package main

import (
	"bytes"
	"fmt"
	"go/format"
	"math"
	"math/big"
	"os"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
/* Regenerates ../consts.go from first principles: the fractional parts of the cube roots of the
first 64 primes (round constants) and of the square roots of the first 8 primes (initial state). */

const prec = 256

func primes(n int) []uint64 {
	out := make([]uint64, 0, n)
	for i := int64(2); len(out) < n; i++ {
		if big.NewInt(i).ProbablyPrime(20) {
			out = append(out, uint64(i))
		}
	}
	return out
}

/* Returns the first 32 bits of the fractional part of x. */
func frac32(x *big.Float) uint32 {
	whole, _ := x.Int(nil)
	f := new(big.Float).SetPrec(prec).Sub(x, new(big.Float).SetInt(whole))
	v, _ := f.SetMantExp(f, 32).Uint64()
	return uint32(v)
}

func cbrt(p uint64) *big.Float {
	n := new(big.Float).SetPrec(prec).SetUint64(p)
	x := new(big.Float).SetPrec(prec).SetFloat64(math.Cbrt(float64(p)))
	two, three := big.NewFloat(2), big.NewFloat(3)
	for i := 0; i < 10; i++ {
		/* Newton: x = (2x + n/x²) / 3 */
		sq := new(big.Float).SetPrec(prec).Mul(x, x)
		q := new(big.Float).SetPrec(prec).Quo(n, sq)
		x.Mul(x, two).Add(x, q).Quo(x, three)
	}
	return x
}

func sqrt(p uint64) *big.Float {
	return new(big.Float).SetPrec(prec).Sqrt(new(big.Float).SetPrec(prec).SetUint64(p))
}

func table(buf *bytes.Buffer, words []uint32) {
	for i, w := range words {
		if i%8 == 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(buf, "0x%08x, ", w)
	}
	buf.WriteString("\n")
}

func main() {
	ps := primes(64)
	rk, h := make([]uint32, 64), make([]uint32, 8)
	for i, p := range ps {
		rk[i] = frac32(cbrt(p))
		if i < len(h) {
			h[i] = frac32(sqrt(p))
		}
	}

	buf := &bytes.Buffer{}
	buf.WriteString("// Code generated by go run ./constgen; DO NOT EDIT.\n\npackage shabrute\n\n" +
		"// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.\n" +
		"// FIPS 180-4 §4.2.2 and §5.3.3: round constants are the first 32 bits of the fractional parts of\n" +
		"// the cube roots of the first 64 primes; initial hash values those of the square roots of the\n" +
		"// first 8 primes.\n\nvar k = [64]uint32{")
	table(buf, rk)
	buf.WriteString("}\n\nvar initial = Digest{")
	table(buf, h)
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintln(os.Stderr, "constgen:", err)
		os.Exit(1)
	}
	if err = os.WriteFile("consts.go", src, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "constgen:", err)
		os.Exit(1)
	}
}
