/**
 * RS(127,121) Coding over GF(2^7) for 19-bit tagged words.
 *
 * Copyright 2026, rs19 authors.
 */

package rs19

// Stats accumulates running totals across repeated Decode calls. It is
// pure instrumentation: nothing in Encode/Decode reads or depends on it,
// so its zero value is ready to use and it is safe to discard entirely.
type Stats struct {
	BlocksDecoded      uint64
	SymbolsCorrected   uint64
	BlocksUncorrectable uint64
	CRCFailures        uint64
}

// Observe folds one Decode call's result into the running totals.
// crcChecked should be the crcEnable value passed to that Decode call;
// CRCFailures is only incremented when crcChecked is true and the check
// failed.
func (s *Stats) Observe(result DecodeResult, crcChecked bool) {
	s.BlocksDecoded++
	s.SymbolsCorrected += uint64(result.CorrectedErrors)
	if result.Uncorrectable {
		s.BlocksUncorrectable++
	}
	if crcChecked && !result.CRCPass {
		s.CRCFailures++
	}
}
