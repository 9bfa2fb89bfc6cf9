/**
 * RS(127,121) Coding over GF(2^7) for 19-bit tagged words.
 *
 * Copyright 2026, rs19 authors.
 */

package rs19

import (
	"encoding/binary"
	"io"
)

// EncodeBlocks reads consecutive 121-word blocks of little-endian uint32
// tagged words from r, RS-encodes each one independently with Encode, and
// writes the resulting 128-word blocks to w. Blocks are handled strictly
// one at a time and in order; only the three slices within a single block
// ever run concurrently, and never across blocks. r must contain a whole
// number of 121-word blocks, or io.ErrUnexpectedEOF is returned for a
// trailing partial block.
func EncodeBlocks(r io.Reader, w io.Writer, crcEnable bool) (blocks int, err error) {
	buf := make([]uint32, numDataSymbols)
	for {
		if err := readWords(r, buf); err != nil {
			if err == io.EOF {
				return blocks, nil
			}
			return blocks, err
		}
		encoded, err := Encode(buf, crcEnable)
		if err != nil {
			return blocks, err
		}
		if err := writeWords(w, encoded); err != nil {
			return blocks, err
		}
		blocks++
	}
}

// DecodeBlocks reads consecutive 128-word blocks from r, decodes each
// with Decode, and writes the recovered tagged words to w. It returns one
// DecodeResult per block processed, in order. r must contain a whole
// number of 128-word blocks, or io.ErrUnexpectedEOF is returned for a
// trailing partial block.
func DecodeBlocks(r io.Reader, w io.Writer, crcEnable bool) (results []DecodeResult, err error) {
	buf := make([]uint32, blockSize)
	for {
		if err := readWords(r, buf); err != nil {
			if err == io.EOF {
				return results, nil
			}
			return results, err
		}
		decoded, result, err := Decode(buf, crcEnable)
		if err != nil {
			return results, err
		}
		if err := writeWords(w, decoded); err != nil {
			return results, err
		}
		results = append(results, result)
	}
}

func readWords(r io.Reader, buf []uint32) error {
	raw := make([]byte, 4*len(buf))
	if _, err := io.ReadFull(r, raw); err != nil {
		if err == io.ErrUnexpectedEOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	for i := range buf {
		buf[i] = binary.LittleEndian.Uint32(raw[4*i:])
	}
	return nil
}

func writeWords(w io.Writer, words []uint32) error {
	raw := make([]byte, 4*len(words))
	for i, v := range words {
		binary.LittleEndian.PutUint32(raw[4*i:], v)
	}
	_, err := w.Write(raw)
	return err
}
