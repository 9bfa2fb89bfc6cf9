/**
 * RS(127,121) Coding over GF(2^7) for 19-bit tagged words.
 *
 * Copyright 2026, rs19 authors.
 */

// Package testlevel scales how many iterations the property-based tests
// run. The RS19_TEST_LEVEL environment variable picks how exhaustive the
// rapid.Check loops in the package's _test.go files are.
package testlevel

import (
	"os"
	"strconv"
)

// Default is the iteration multiplier used when RS19_TEST_LEVEL is unset
// or unparseable. 1 means "use rapid's own defaults"; CI can set
// RS19_TEST_LEVEL=4 for a more exhaustive nightly run.
const Default = 1

// Get returns the configured test level, clamped to [1,8].
func Get() int {
	v := os.Getenv("RS19_TEST_LEVEL")
	if v == "" {
		return Default
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return Default
	}
	if n > 8 {
		return 8
	}
	return n
}
