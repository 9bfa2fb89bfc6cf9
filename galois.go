/**
 * RS(127,121) Coding over GF(2^7) for 19-bit tagged words.
 *
 * Copyright 2026, rs19 authors.
 */

package rs19

import "errors"

// gfSize is the number of non-zero elements of GF(2^7): 127.
const gfSize = 127

// gfFeedback is the 8-bit feedback constant used while generating the
// exp/log tables: the primitive polynomial p(x) = x^7 + x^3 + 1 (0x09 in
// its low 7 bits) expressed as the byte XORed in whenever the shifting
// accumulator overflows bit 7.
const gfFeedback = 0x89

// ErrDivideByZero is returned by gfDiv when the divisor is zero, a
// precondition violation, not a panic: it is reachable from caller input.
var ErrDivideByZero = errors.New("rs19: division by zero in GF(2^7)")

// gfExp and gfLog are the exponent and log tables of GF(2^7) under the
// primitive element alpha = 2. gfExp[i] = alpha^i for i in [0,126].
// gfLog[v] = i such that alpha^i = v, for v in [1,127]; gfLog[0] is never
// consulted and left at its zero value.
var gfExp [gfSize]byte
var gfLog [gfSize + 1]byte

func init() {
	v := 1
	for i := 0; i < gfSize; i++ {
		gfExp[i] = byte(v)
		gfLog[v] = byte(i)
		v <<= 1
		if v >= 128 {
			v ^= gfFeedback
		}
	}
}

// gfAdd returns a+b in GF(2^7). Addition and subtraction coincide in
// characteristic 2.
func gfAdd(a, b byte) byte {
	return a ^ b
}

// gfMul returns a*b in GF(2^7).
func gfMul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return gfExp[(int(gfLog[a])+int(gfLog[b]))%gfSize]
}

// gfInv returns the multiplicative inverse of a. a must be non-zero.
func gfInv(a byte) byte {
	return gfExp[(gfSize-int(gfLog[a]))%gfSize]
}

// gfDiv returns a/b in GF(2^7). Dividing by zero is a precondition
// violation and returns ErrDivideByZero.
func gfDiv(a, b byte) (byte, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	if a == 0 {
		return 0, nil
	}
	return gfMul(a, gfInv(b)), nil
}

// gfPow returns alpha^e for any integer exponent e, reducing e modulo the
// multiplicative group order (gfSize) first so negative exponents (as used
// by Chien search and Forney, e.g. alpha^-j) work directly.
func gfPow(e int) byte {
	e %= gfSize
	if e < 0 {
		e += gfSize
	}
	return gfExp[e]
}
