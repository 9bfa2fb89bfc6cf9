/**
 * RS(127,121) Coding over GF(2^7) for 19-bit tagged values.
 *
 * Copyright 2026, rs19 authors.
 */

package rs19

// berlekampMassey runs the inversionless Berlekamp-Massey recurrence
// over six syndromes S_1..S_6, producing the
// error-locator polynomial sigma(x) and error-evaluator polynomial
// omega(x). omega is Berlekamp's evaluator: it starts at 1 with its
// auxiliary beta at 0, so (1 + S(x))*sigma(x) = omega(x) mod x^7 with
// S(x) = S_1 x + ... + S_6 x^6. No GF divisions are performed anywhere in
// this function, which is the entire point of the inversionless form.
func berlekampMassey(s [numSyndromes]byte) (sigma, omega poly) {
	syn := func(i int) byte {
		if i < 1 || i > numSyndromes {
			return 0
		}
		return s[i-1]
	}

	c := poly{1}
	w := poly{1}
	b := poly{1}
	beta := poly{0}
	l := 0
	gamma := byte(1)

	for k := 0; k < numSyndromes; k++ {
		var delta byte
		for j := 0; j <= l && j < len(c); j++ {
			delta = gfAdd(delta, gfMul(c[j], syn(k+1-j)))
		}

		cNext := polyAdd(polyScale(c, gamma), polyScale(polyShift(b, 1), delta))
		wNext := polyAdd(polyScale(w, gamma), polyScale(polyShift(beta, 1), delta))

		if delta == 0 || 2*l > k {
			b = polyShift(b, 1)
			beta = polyShift(beta, 1)
		} else {
			newL := (k + 1) - l
			b = c
			beta = w
			l = newL
			gamma = delta
		}
		c = cNext
		w = wNext
	}
	return c, w
}
