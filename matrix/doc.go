// Package matrix offers a small dense linear-algebra toolkit.
//
// The matrix package provides:
//
//   - Dense, an immutable row-major float64 matrix built with FromRows,
//     FromVec or Random.
//   - Element-wise kernels (Add, Sub, Hadamard, Scale, Map) and reductions (Sum).
//   - Transpose and the plain triple-loop product Mul.
//   - Approximate equality (Equal, tolerance 1e-6) and a space-separated
//     text rendering via String.
//
// Every operation allocates its result; no operand is ever modified.
// Shape and index violations are programming errors: they panic with an error
// wrapping one of the package sentinels (ErrDimensionMismatch, ErrOutOfRange,
// ErrRaggedRows, ErrInvalidDimensions, ErrNilMatrix).
//
// See the examples in this package and in nn for usage patterns.
package matrix
