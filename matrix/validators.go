// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the operand checks shared by kernels.
//  - Keep kernels minimal by delegating nil/shape checks here.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - Validators panic through contractf; they never return an error value.

package matrix

// validateNotNil ensures the operand is a usable matrix.
// Complexity: O(1).
func validateNotNil(op string, m *Dense) {
	if m == nil {
		contractf(ErrNilMatrix, "%s", op)
	}
}

// validateSameShape ensures a and b are non-nil with identical dimensions.
// Used by Add, Sub and Hadamard.
// Complexity: O(1).
func validateSameShape(op string, a, b *Dense) {
	validateNotNil(op, a)
	validateNotNil(op, b)
	if a.r != b.r || a.c != b.c {
		contractf(ErrDimensionMismatch, "%s: %dx%d vs %dx%d", op, a.r, a.c, b.r, b.c)
	}
}

// validateMulCompatible ensures a.Cols() == b.Rows() for the product a·b.
// Complexity: O(1).
func validateMulCompatible(a, b *Dense) {
	validateNotNil(opMul, a)
	validateNotNil(opMul, b)
	if a.c != b.r {
		contractf(ErrDimensionMismatch, "%s: %dx%d * %dx%d", opMul, a.r, a.c, b.r, b.c)
	}
}
