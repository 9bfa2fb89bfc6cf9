/**
 * RS(127,121) Coding over GF(2^7) for 19-bit tagged words.
 *
 * Copyright 2026, rs19 authors.
 */

package rs19

// maxErrors is t, the maximum number of symbol errors per slice this code
// can correct (RS(127,121), 2t=6 parity symbols).
const maxErrors = 3

// chienRegisters is the number of parallel registers used by the search:
// one per possible coefficient of sigma(x), degree 0..3.
const chienRegisters = maxErrors + 1

// chienSearch finds the roots of sigma(x) among {alpha^0..alpha^126},
// returning their 0-based degrees j such that sigma(alpha^-j) = 0. ok is
// false if the number of roots found does not match deg(sigma), or
// exceeds t=3: either case means the block is uncorrectable.
func chienSearch(sigma poly) (degrees []int, ok bool) {
	d := sigma.degree()
	if d < 0 || d > maxErrors {
		return nil, false
	}

	var r [chienRegisters]byte
	var mul [chienRegisters]byte
	for i := 0; i < chienRegisters; i++ {
		r[i] = sigma.coeff(i)
		mul[i] = gfPow(-i)
	}

	for j := 0; j < gfSize; j++ {
		var acc byte
		for i := 0; i < chienRegisters; i++ {
			acc = gfAdd(acc, r[i])
		}
		if acc == 0 {
			degrees = append(degrees, j)
			if len(degrees) > maxErrors {
				return nil, false
			}
		}
		for i := 0; i < chienRegisters; i++ {
			r[i] = gfMul(r[i], mul[i])
		}
	}

	if len(degrees) != d {
		return nil, false
	}
	return degrees, true
}
