/**
 * RS(127,121) Coding over GF(2^7) for 19-bit tagged words.
 *
 * Copyright 2026, rs19 authors.
 */

package rs19

// forneyMagnitudes computes the error magnitude e_j = X_j * omega(X_j^-1) /
// sigma'(X_j^-1), with X_j = alpha^j, for each error degree j found by
// Chien search; the X_j factor comes from omega being Berlekamp's
// evaluator (see berlekampMassey). ok is
// false if any Forney denominator is zero, which means the block is
// uncorrectable.
func forneyMagnitudes(sigma, omega poly, degrees []int) (magnitudes []byte, ok bool) {
	sigmaPrime := polyDerivative(sigma)
	magnitudes = make([]byte, len(degrees))
	for i, j := range degrees {
		xInv := gfPow(-j)
		num := polyEval(omega, xInv)
		den := polyEval(sigmaPrime, xInv)
		if den == 0 {
			return nil, false
		}
		e, err := gfDiv(num, den)
		if err != nil {
			return nil, false
		}
		magnitudes[i] = gfMul(e, gfPow(j))
	}
	return magnitudes, true
}
