/**
 * RS(127,121) Coding over GF(2^7) for 19-bit tagged words.
 *
 * Copyright 2026, rs19 authors.
 */

package rs19

import (
	"errors"
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// Options allows overriding processing parameters of Encode and Decode.
// Options should be based on DefaultOptions and not created from scratch.
type Options struct {
	// concurrentSlices controls whether the three RS slices of a block
	// are processed on separate goroutines. A block only has three
	// independent units of work, so there is never a reason to run more
	// than three goroutines per block.
	concurrentSlices bool

	// Unsetable. Set only by DefaultOptions, so a zero-value Options{}
	// is rejected by SetDefaultOptions.
	valid *struct{}
}

var defaultOptions = Options{
	concurrentSlices: true,
}
var defaultOptionsMu sync.RWMutex

// ErrInvalidOptions is returned by SetDefaultOptions if the given Options
// were not obtained from DefaultOptions.
var ErrInvalidOptions = errors.New("rs19: invalid option set")

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	defaultOptionsMu.RLock()
	o := defaultOptions
	defaultOptionsMu.RUnlock()
	return o
}

// SetDefaultOptions overrides the default options used by Encode and
// Decode (the variants without explicit Options).
func SetDefaultOptions(o Options) error {
	if o.valid == nil {
		return ErrInvalidOptions
	}
	defaultOptionsMu.Lock()
	defaultOptions = o
	defaultOptionsMu.Unlock()
	return nil
}

func init() {
	// A block has exactly three independent slices. On a single logical
	// core there is no benefit (and real overhead) to spinning up
	// goroutines for each of them, so detected topology - not just
	// GOMAXPROCS - decides the default.
	if runtime.GOMAXPROCS(0) <= 1 || cpuid.CPU.LogicalCores <= 1 {
		defaultOptions.concurrentSlices = false
	}
	defaultOptions.valid = &struct{}{}
}

// WithConcurrentSlices controls whether the three RS slices making up a
// block are encoded/decoded on separate goroutines. The three slices are
// independent by construction, so enabling this never changes
// the result, only the wall-clock time and goroutine count.
func (o Options) WithConcurrentSlices(enabled bool) Options {
	o.concurrentSlices = enabled
	return o
}
