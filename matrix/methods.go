// SPDX-License-Identifier: MIT
// Package matrix: comparison and text rendering.

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tolerance is the absolute per-element tolerance used by Equal.
const Tolerance = 1e-6

// ---------- Formatting literals ----------
const (
	_fmtSep      = " "  // written after every value, including the last in a row
	_fmtRowClose = "\n" // terminates every row
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// Equal reports whether a and b have the same shape and every pair of
// corresponding elements differs by at most Tolerance.
// Two nil matrices are equal; a nil and a non-nil one are not.
// NaN never compares equal, not even to NaN; same-signed infinities do.
//
// Complexity: O(r*c), early exit on the first differing element.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data {
		x, y := a.data[idx], b.data[idx]
		if x == y {
			continue
		}
		if d := math.Abs(x - y); !(d <= Tolerance) { // NaN fails here
			return false
		}
	}

	return true
}

// String renders one line per row, each value followed by a single space:
//
//	[[1 2] [3 4]] → "1 2 \n3 4 \n"
//
// Values use the shortest decimal form that round-trips (no exponent), so
// whole numbers print without a fractional part.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			sb.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'f', -1, 64))
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
