/**
 * RS(127,121) Coding over GF(2^7) for 19-bit tagged words.
 *
 * Copyright 2026, rs19 authors.
 */

package rs19

// encodeSlice computes the six RS parity symbols for one 121-symbol data
// stream and writes the full 127-symbol systematic codeword into cw,
// whose first 121 entries must already hold the data symbols: a
// Galois-LFSR division by the generator polynomial g(x), with g_6=1
// implicit.
//
// Register update per input symbol d:
//
//	fb := d XOR s5
//	for j := 5; j >= 1; j-- { s[j] = s[j-1] XOR mul(fb, g[j]) }
//	s[0] = mul(fb, g[0])
//
// Data symbols are fed highest degree first, d_120 down to d_0: d_n is the
// coefficient of x^(n+6), the degree view syndromes and mapDegreeToIndex use.
// After all 121 data symbols have been fed in, [s0..s5] is the parity.
func encodeSlice(cw *codeword) {
	var s [numParity]byte
	for n := numDataSymbols - 1; n >= 0; n-- {
		fb := gfAdd(cw[n], s[numParity-1])
		for j := numParity - 1; j >= 1; j-- {
			s[j] = gfAdd(s[j-1], gfMul(fb, generator[j]))
		}
		s[0] = gfMul(fb, generator[0])
	}
	for i := 0; i < numParity; i++ {
		cw[numDataSymbols+i] = s[i]
	}
}
