/**
 * RS(127,121) Coding over GF(2^7) for 19-bit tagged words.
 *
 * Copyright 2026, rs19 authors.
 */

package rs19

import "fmt"

// numParity is the number of RS parity symbols per slice (t=3, so 2t=6).
const numParity = 6

// numDataSymbols is the number of data symbols per slice (121 tagged
// words each contribute one symbol per slice).
const numDataSymbols = 121

// codewordLen is the total RS(127,121) codeword length per slice.
const codewordLen = numDataSymbols + numParity

// generatorCoeffs are the expected coefficients g_0..g_5 of
// g(x) = prod_{i=1..6} (x + alpha^i), leading coefficient g_6=1 implicit.
// A mismatch here is a fatal build-time configuration error:
// it means the GF tables or the generator construction disagree with the
// wire protocol this codec implements.
var generatorCoeffs = [numParity]byte{0x6D, 0x22, 0x64, 0x44, 0x40, 0x7E}

// generator is g(x), ascending coefficient order, degree 6, g[6]=1.
var generator poly

// ErrGeneratorMismatch is panicked (never returned: this can only be
// reached by a corrupted build of this package, not by caller input) when
// the computed generator polynomial disagrees with the fixed constants
// this protocol requires.
type ErrGeneratorMismatch struct {
	got, want [numParity]byte
}

func (e *ErrGeneratorMismatch) Error() string {
	return fmt.Sprintf("rs19: generator polynomial mismatch: got %02x, want %02x", e.got, e.want)
}

func init() {
	// g(x) = prod_{i=1..6} (x + alpha^i), built by repeated convolution
	// with the monomial (x + alpha^i).
	g := poly{1}
	for i := 1; i <= numParity; i++ {
		root := poly{gfPow(i), 1} // (alpha^i + x), ascending: [alpha^i, 1]
		g = polyMul(g, root)
	}
	if g.degree() != numParity {
		panic(&ErrGeneratorMismatch{})
	}
	var got [numParity]byte
	for i := 0; i < numParity; i++ {
		got[i] = g.coeff(i)
	}
	if got != generatorCoeffs {
		panic(&ErrGeneratorMismatch{got: got, want: generatorCoeffs})
	}
	generator = g
}
