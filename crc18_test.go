/**
 * RS(127,121) Coding over GF(2^7) for 19-bit tagged words.
 *
 * Copyright 2026, rs19 authors.
 */

package rs19

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/ka9q-fec/rs19/internal/testlevel"
)

func TestCRC18Deterministic(t *testing.T) {
	words := []uint32{0x00001, 0x3FFFF, 0x20000, 0x00000}
	a := crc18(words)
	b := crc18(words)
	assert.Equal(t, a, b, "crc18 must be a pure function of its input")
	assert.LessOrEqual(t, a, uint32(0x3FFFF))
}

func TestCRC18IsKExcluded(t *testing.T) {
	// Flipping bit 18 (is_k) of a word must not change the CRC: only din
	// feeds the CRC.
	withoutK := []uint32{0x12345}
	withK := []uint32{0x12345 | (1 << isKBit)}
	assert.Equal(t, crc18(withoutK), crc18(withK))
}

// TestCRC18DetectsSingleBitFlip checks that a single flipped din bit
// always changes the CRC residue.
func TestCRC18DetectsSingleBitFlip(t *testing.T) {
	elem := rapid.Uint32Range(0, dinMask)
	bitGen := rapid.IntRange(0, 17)
	rapid.Check(t, func(t *rapid.T) {
		for range make([]struct{}, testlevel.Get()) {
			w := elem.Draw(t, "din")
			bit := bitGen.Draw(t, "bit")
			original := []uint32{w}
			flipped := []uint32{w ^ (1 << uint(bit))}
			if original[0]&dinMask == flipped[0]&dinMask {
				continue // bit flip landed outside din, nothing to test
			}
			assert.NotEqual(t, crc18(original), crc18(flipped))
		}
	})
}
