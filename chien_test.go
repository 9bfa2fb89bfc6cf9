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

func TestChienSearchTrivialLocatorHasNoRoots(t *testing.T) {
	degrees, ok := chienSearch(poly{1})
	require.True(t, ok)
	assert.Empty(t, degrees)
}

func TestChienSearchFindsKnownRoot(t *testing.T) {
	// sigma(x) = x + alpha^5 has a single root at alpha^-j = alpha^5, so
	// the search must report exactly one degree j satisfying that.
	root := gfPow(5)
	sigma := poly{root, 1}
	degrees, ok := chienSearch(sigma)
	require.True(t, ok)
	require.Len(t, degrees, 1)
	j := degrees[0]
	assert.Equal(t, byte(0), gfAdd(root, gfPow(-j)))
}

func TestChienSearchRejectsZeroLocator(t *testing.T) {
	// The zero polynomial has degree -1, which is not a valid locator.
	degrees, ok := chienSearch(poly{0, 0, 0, 0})
	assert.Nil(t, degrees)
	assert.False(t, ok)
}
