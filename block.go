/**
 * RS(127,121) Coding over GF(2^7) for 19-bit tagged words.
 *
 * Copyright 2026, rs19 authors.
 */

package rs19

import "sync"

// DecodeResult reports the outcome of decoding one block.
type DecodeResult struct {
	// CorrectedErrors is the sum, across all three slices, of symbol
	// corrections applied.
	CorrectedErrors uint8

	// Uncorrectable is true if any of the three slices could not be
	// corrected. The other slices' data is still
	// recovered best-effort.
	Uncorrectable bool

	// CRCPass reports the optional CRC-18 check. It is
	// only meaningful when Decode was called with crcEnable true;
	// otherwise it is always false.
	CRCPass bool

	// IsKMismatch is a diagnostic: true if slice A's is_k bit disagreed
	// with the majority of the three slices for any word, even though
	// slice A's is_k is always what gets returned.
	IsKMismatch bool
}

// Encode protects 121 tagged 19-bit words with RS(127,121) FEC, returning
// a 128-word block. When crcEnable is true, only the first 120
// entries of words are treated as user data: word 120's din is
// overwritten with the computed CRC-18 and its is_k is forced to 0.
func Encode(words []uint32, crcEnable bool) ([]uint32, error) {
	return EncodeWithOptions(words, crcEnable, DefaultOptions())
}

// EncodeWithOptions is Encode with explicit Options controlling per-slice
// concurrency.
func EncodeWithOptions(words []uint32, crcEnable bool, opts Options) ([]uint32, error) {
	if len(words) != numDataSymbols {
		return nil, ErrInvalidWordCount
	}
	var in [numDataSymbols]uint32
	copy(in[:], words)

	if crcEnable {
		crcWordIdx := numDataSymbols - 1
		sum := crc18(in[:crcWordIdx])
		in[crcWordIdx] = sum & dinMask // is_k forced to 0: the whole word is replaced.
	}

	a, b, c := packDataSlices(in)
	runThreeSlices(opts, func() { encodeSlice(&a) }, func() { encodeSlice(&b) }, func() { encodeSlice(&c) })

	block := buildBlock(in, a, b, c)
	return block[:], nil
}

// Decode corrects up to 3 symbol errors per RS slice in a 128-word block
// and recovers the original tagged words. When crcEnable is
// true, the returned slice holds the 120 user-data words and the CRC-18
// residue (computed over those 120 words) is checked against word 120's
// decoded din; when false, all 121 decoded words are returned and CRCPass
// is always false.
func Decode(block []uint32, crcEnable bool) ([]uint32, DecodeResult, error) {
	return DecodeWithOptions(block, crcEnable, DefaultOptions())
}

// DecodeWithOptions is Decode with explicit Options controlling
// per-slice concurrency.
func DecodeWithOptions(block []uint32, crcEnable bool, opts Options) ([]uint32, DecodeResult, error) {
	if len(block) != blockSize {
		return nil, DecodeResult{}, ErrDecodeBlockSize
	}
	var blk [blockSize]uint32
	copy(blk[:], block)

	a, b, c := unpackBlock(blk)

	var corrA, corrB, corrC int
	var uncorrA, uncorrB, uncorrC bool
	runThreeSlices(opts,
		func() { corrA, uncorrA = decodeSlice(&a) },
		func() { corrB, uncorrB = decodeSlice(&b) },
		func() { corrC, uncorrC = decodeSlice(&c) },
	)

	words := rebuildWords(a, b, c)

	result := DecodeResult{
		CorrectedErrors: uint8(corrA + corrB + corrC),
		Uncorrectable:   uncorrA || uncorrB || uncorrC,
	}
	for n := 0; n < numDataSymbols; n++ {
		if !isKMajority(a, b, c, n) {
			result.IsKMismatch = true
			break
		}
	}

	outCount := numDataSymbols
	if crcEnable {
		outCount = numDataSymbols - 1
		crcWordIdx := numDataSymbols - 1
		want := words[crcWordIdx] & dinMask
		got := crc18(words[:crcWordIdx])
		result.CRCPass = got == want
	}

	out := make([]uint32, outCount)
	copy(out, words[:outCount])
	return out, result, nil
}

// runThreeSlices runs the three independent per-slice closures (the three
// RS slices of a block are independent and may be processed concurrently),
// fanning out across goroutines when opts.concurrentSlices is set - the
// same goroutine-per-chunk pattern used for byte-range fan-out elsewhere
// in this family of codecs, just with exactly three fixed units of work
// instead of a variable number of byte chunks.
func runThreeSlices(opts Options, slices ...func()) {
	if !opts.concurrentSlices {
		for _, fn := range slices {
			fn()
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(len(slices))
	for _, fn := range slices {
		go func(fn func()) {
			defer wg.Done()
			fn()
		}(fn)
	}
	wg.Wait()
}
