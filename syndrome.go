/**
 * RS(127,121) Coding over GF(2^7) for 19-bit tagged words.
 *
 * Copyright 2026, rs19 authors.
 */

package rs19

// numSyndromes is 2t = 6: syndromes S_1..S_6.
const numSyndromes = numParity

// syndromes computes S_1..S_6 for a received 127-symbol codeword. The
// codeword is stored ascending [d_0..d_120, p_0..p_5], but the syndrome
// Horner evaluation is defined over the descending polynomial-degree view
// [r_126, r_125, ..., r_0] = [d_120, ..., d_0, p_5, ..., p_0]; that
// reordering happens here, at the one interface where it matters.
//
// Returned syndromes[j-1] holds S_j for j=1..6. All zero means the
// codeword is already a valid RS codeword.
func syndromes(cw *codeword) (out [numSyndromes]byte) {
	var alphaJ [numSyndromes]byte
	for j := 1; j <= numSyndromes; j++ {
		alphaJ[j-1] = gfPow(j)
	}
	// Descending order: data symbols d_120..d_0, then parity p_5..p_0.
	for n := numDataSymbols - 1; n >= 0; n-- {
		v := cw[n]
		for j := 0; j < numSyndromes; j++ {
			out[j] = gfAdd(gfMul(out[j], alphaJ[j]), v)
		}
	}
	for i := numParity - 1; i >= 0; i-- {
		v := cw[numDataSymbols+i]
		for j := 0; j < numSyndromes; j++ {
			out[j] = gfAdd(gfMul(out[j], alphaJ[j]), v)
		}
	}
	return
}

// syndromesZero reports whether all six syndromes are zero, i.e. the
// codeword needs no correction.
func syndromesZero(s [numSyndromes]byte) bool {
	for _, v := range s {
		if v != 0 {
			return false
		}
	}
	return true
}
