/**
 * RS(127,121) Coding over GF(2^7) for 19-bit tagged words.
 *
 * Copyright 2026, rs19 authors.
 */

package rs19

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForneyMagnitudesNoDegreesIsTrivial(t *testing.T) {
	mags, ok := forneyMagnitudes(poly{1}, poly{1}, nil)
	require.True(t, ok)
	assert.Empty(t, mags)
}

func TestForneyMagnitudesRejectsZeroDenominator(t *testing.T) {
	// sigma(x) = 1 has a zero derivative (constant polynomials vanish
	// under differentiation), so any claimed root degree must be rejected.
	_, ok := forneyMagnitudes(poly{1}, poly{1}, []int{0})
	assert.False(t, ok)
}
