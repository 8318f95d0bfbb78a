// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels used by the network: element-wise
// addition, subtraction and product, scalar scaling, transpose, matrix product,
// element-wise mapping and summation. All kernels validate their operands, never
// mutate them, and return a freshly allocated *Dense.
//
// Determinism:
//   - Fixed loop orders (flat 0..n-1 for element-wise kernels, i→j→k for Mul).

package matrix

// Operation name constants for uniform panic messages.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opMap       = "Map"
	opSum       = "Sum"
)

// ZeroSum is the initial value of every accumulation.
const ZeroSum = 0.0

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation and allocation.
//
// Implementation:
//   - Stage 1: validateSameShape(a, b). Allocate result with the same shape.
//   - Stage 2: single flat loop 0..n-1.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b *Dense, sign float64, opTag string) *Dense {
	validateSameShape(opTag, a, b)

	res := newDense(opTag, a.r, a.c)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res
}

// Add computes the element-wise sum C = A + B.
// Panics with ErrDimensionMismatch when the shapes differ.
// Complexity: O(r*c).
func Add(a, b *Dense) *Dense { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B.
// Panics with ErrDimensionMismatch when the shapes differ.
// Complexity: O(r*c).
func Sub(a, b *Dense) *Dense { return addSub(a, b, -1, opSub) }

// Hadamard computes the element-wise product C[i,j] = A[i,j] * B[i,j].
// Panics with ErrDimensionMismatch when the shapes differ.
// Complexity: O(r*c).
func Hadamard(a, b *Dense) *Dense {
	validateSameShape(opHadamard, a, b)

	res := newDense(opHadamard, a.r, a.c)
	for idx := range res.data {
		res.data[idx] = a.data[idx] * b.data[idx]
	}

	return res
}

// Scale multiplies every element by alpha. No shape requirement.
// Complexity: O(r*c).
func Scale(m *Dense, alpha float64) *Dense {
	validateNotNil(opScale, m)

	res := newDense(opScale, m.r, m.c)
	for idx := range res.data {
		res.data[idx] = m.data[idx] * alpha
	}

	return res
}

// Transpose returns the c×r matrix T with T[j,i] = M[i,j].
//
// Implementation:
//   - Stage 1: allocate the swapped shape.
//   - Stage 2: walk the source row-major and scatter into the destination.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m *Dense) *Dense {
	validateNotNil(opTranspose, m)

	res := newDense(opTranspose, m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c // source row offset
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res
}

// Mul computes the matrix product C = A·B with C[i,j] = Σ_k A[i,k]*B[k,j].
// MAIN DESCRIPTION:
//   - Plain triple loop; no blocking, no Strassen.
//
// Implementation:
//   - Stage 1: validateMulCompatible (A.Cols == B.Rows), else ErrDimensionMismatch.
//   - Stage 2: for each (i,j) accumulate over k in ascending order.
//
// Determinism:
//   - Fixed i→j→k order, so the floating-point summation order is stable.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c) for A (r×n), B (n×c).
func Mul(a, b *Dense) *Dense {
	validateMulCompatible(a, b)

	rows, inner, cols := a.r, a.c, b.c
	res := newDense(opMul, rows, cols)

	var i, j, k int
	var sum float64
	for i = 0; i < rows; i++ {
		aRow := a.data[i*inner : (i+1)*inner] // row i of A
		for j = 0; j < cols; j++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				sum += aRow[k] * b.data[k*cols+j]
			}
			res.data[i*cols+j] = sum
		}
	}

	return res
}

// Map applies f to every element and returns the result with the same shape.
// f must be pure; it is called exactly once per element in row-major order.
// Complexity: O(r*c) calls of f.
func Map(m *Dense, f func(float64) float64) *Dense {
	validateNotNil(opMap, m)

	res := newDense(opMap, m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = f(v)
	}

	return res
}

// Sum returns the scalar sum of all elements.
// Complexity: O(r*c).
func Sum(m *Dense) float64 {
	validateNotNil(opSum, m)

	total := ZeroSum
	for _, v := range m.data {
		total += v
	}

	return total
}
