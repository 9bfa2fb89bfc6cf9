/**
 * RS(127,121) Coding over GF(2^7) for 19-bit tagged words.
 *
 * Copyright 2026, rs19 authors.
 */

package rs19

// poly is a GF(2^7) polynomial stored coefficient-ascending: poly[0] is
// the constant term. This is the convention used everywhere except the
// 127-symbol Horner syndrome stream, which is descending; conversion
// between the two happens only at that interface, in syndrome.go.
type poly []byte

// degree returns the degree of p, ignoring any trailing zero coefficients.
// The zero polynomial has degree -1.
func (p poly) degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}

// coeff returns the coefficient of x^i, or 0 if i is out of range.
func (p poly) coeff(i int) byte {
	if i < 0 || i >= len(p) {
		return 0
	}
	return p[i]
}

// trim returns p with any trailing zero coefficients removed, always
// leaving at least one coefficient (the zero polynomial is []byte{0}).
func (p poly) trim() poly {
	d := p.degree()
	if d < 0 {
		return poly{0}
	}
	return p[:d+1]
}

// polyAdd returns a+b, zero-padding the shorter operand. Addition and
// subtraction coincide in GF(2^7).
func polyAdd(a, b poly) poly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(poly, n)
	for i := 0; i < n; i++ {
		out[i] = gfAdd(a.coeff(i), b.coeff(i))
	}
	return out.trim()
}

// polyMul returns the convolution a*b (schoolbook, O(len(a)*len(b))).
func polyMul(a, b poly) poly {
	if len(a) == 0 || len(b) == 0 {
		return poly{0}
	}
	out := make(poly, len(a)+len(b)-1)
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			out[i+j] = gfAdd(out[i+j], gfMul(av, bv))
		}
	}
	return out.trim()
}

// polyScale returns c*p for a scalar c.
func polyScale(p poly, c byte) poly {
	out := make(poly, len(p))
	for i, v := range p {
		out[i] = gfMul(v, c)
	}
	return out.trim()
}

// polyShift returns p * x^m: m zero coefficients prepended.
func polyShift(p poly, m int) poly {
	if m <= 0 {
		return p.trim()
	}
	out := make(poly, len(p)+m)
	copy(out[m:], p)
	return out.trim()
}

// polyEval evaluates p(x) at x using Horner's method, ascending
// convention: p(x) = (...((p[k]*x + p[k-1])*x + ...) + p[0].
func polyEval(p poly, x byte) byte {
	var acc byte
	for i := len(p) - 1; i >= 0; i-- {
		acc = gfAdd(gfMul(acc, x), p[i])
	}
	return acc
}

// polyDerivative returns the formal derivative of p. In characteristic 2,
// d(x^(2k))/dx = 0 and d(x^(2k+1))/dx = x^(2k), so only odd-degree terms
// survive and each drops one degree: new[i] = p[i+1] when i is even, else
// 0.
func polyDerivative(p poly) poly {
	if len(p) <= 1 {
		return poly{0}
	}
	out := make(poly, len(p)-1)
	for i := 0; i < len(out); i++ {
		if i%2 == 0 {
			out[i] = p.coeff(i + 1)
		}
	}
	return out.trim()
}
