// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every contract violation in this package is a programmer error and is
// raised as a panic whose value is an error wrapping one of the sentinels
// below. Callers that need to inspect a failure recover the value and match
// it with errors.Is.

package matrix

import (
	"github.com/pkg/errors"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so a crash log points at this
// package. Context (operation tag, shapes, coordinates) is attached by
// contractf via errors.Wrapf; the sentinel stays reachable through Unwrap.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// (including construction from an empty literal).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRaggedRows is raised by FromRows when the literal rows differ in length.
	ErrRaggedRows = errors.New("matrix: inconsistent row length")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub/Hadamard with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// contractf aborts the current operation with err wrapped in the given context.
// It never returns; the panic value is always a non-nil error.
//
// Complexity: O(1) plus the cost of formatting the message.
func contractf(err error, format string, args ...interface{}) {
	panic(errors.Wrapf(err, format, args...))
}
