// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & constructors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Keep value semantics: a *Dense never changes after construction; every
//     operation in this package allocates a fresh result.
//   - Fail fast: shape and index violations panic with a wrapped sentinel (see errors.go).
//
// Complexity quicksheet:
//   - FromRows/FromVec/Random: O(r*c); At: O(1); Data: O(r*c) copy.

package matrix

import (
	"math/rand"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in panic messages
	ctxFromRows = "FromRows" // ctor tag
	ctxFromVec  = "FromVec"  // ctor tag
	ctxRandom   = "Random"   // ctor tag
)

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// There is no exported mutator: a *Dense may be shared freely once built.
type Dense struct {
	r, c int       // row and column counts (>0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// newDense allocates a zero-filled r×c matrix.
// Stage 1 (Validate): rows > 0 and cols > 0, else ErrInvalidDimensions.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func newDense(op string, rows, cols int) *Dense {
	if rows <= 0 || cols <= 0 {
		contractf(ErrInvalidDimensions, "%s(%d,%d)", op, rows, cols)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// FromRows builds a matrix from a rectangular literal of rows.
// MAIN DESCRIPTION:
//   - The first row fixes the column count; every other row must match it.
//
// Implementation:
//   - Stage 1: reject an empty literal or an empty first row (ErrInvalidDimensions).
//   - Stage 2: copy row by row, rejecting ragged rows (ErrRaggedRows).
//
// Behavior highlights:
//   - The input slices are copied; later edits to them do not leak in.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64) *Dense {
	if len(rows) == 0 {
		contractf(ErrInvalidDimensions, "%s: no rows", ctxFromRows)
	}
	m := newDense(ctxFromRows, len(rows), len(rows[0]))

	var i int
	for i = 0; i < m.r; i++ {
		if len(rows[i]) != m.c {
			contractf(ErrRaggedRows, "%s: row %d has %d values, want %d", ctxFromRows, i, len(rows[i]), m.c)
		}
		copy(m.data[i*m.c:(i+1)*m.c], rows[i]) // row i lands at offset i*c
	}

	return m
}

// FromVec interprets v as a column vector: len(v) rows, one column.
// The slice is copied. Complexity: O(n).
func FromVec(v []float64) *Dense {
	m := newDense(ctxFromVec, len(v), 1)
	copy(m.data, v)

	return m
}

// Random returns a rows×cols matrix whose entries are drawn independently and
// uniformly from [0,1).
//
// Implementation:
//   - Stage 1: validate the shape.
//   - Stage 2: fill in row-major order from rng.
//
// Determinism:
//   - For a given rng state the result is fully reproducible. A nil rng falls
//     back to the math/rand global source, which is not seeded by this package.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Random(rows, cols int, rng *rand.Rand) *Dense {
	m := newDense(ctxRandom, rows, cols)

	draw := rand.Float64
	if rng != nil {
		draw = rng.Float64
	}
	for idx := range m.data {
		m.data[idx] = draw()
	}

	return m
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// At returns the element at (row, col).
// Panics with ErrOutOfRange when either index is outside the matrix.
// Complexity: O(1).
func (m *Dense) At(row, col int) float64 {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		contractf(ErrOutOfRange, "Dense.%s(%d,%d) on %dx%d", ctxAt, row, col, m.r, m.c)
	}

	return m.data[row*m.c+col]
}

// Data returns a copy of the row-major backing buffer.
func (m *Dense) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Equal reports whether m and other have the same shape and every pair of
// corresponding elements differs by at most Tolerance.
func (m *Dense) Equal(other *Dense) bool { return Equal(m, other) }
