/**
 * RS(127,121) Coding over GF(2^7) for 19-bit tagged words.
 *
 * Copyright 2026, rs19 authors.
 */

// Package rs19 implements Reed-Solomon forward error correction for a
// serial transport carrying 19-bit tagged words (an is_k flag plus an
// 18-bit payload). Each 121-word block is protected by three independent
// RS(127,121) codewords over GF(2^7), one per 6-bit lane of the payload,
// each correcting up to three symbol errors.
//
// For the block layout and wire format, see Encode and Decode.
package rs19
