// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels.
//   • Turn contract panics back into errors so tests can match sentinels.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnn/matrix"
)

// requireContractPanic runs fn, expects it to panic with an error wrapping
// target, and returns that error for further message checks.
func requireContractPanic(t testing.TB, target error, fn func()) error {
	t.Helper()

	var got interface{}
	func() {
		defer func() { got = recover() }()
		fn()
	}()

	require.NotNil(t, got, "expected a panic wrapping %v", target)
	err, ok := got.(error)
	require.Truef(t, ok, "panic value %T is not an error", got)
	require.ErrorIs(t, err, target)

	return err
}

// randDense builds an r×c matrix from a seeded stream, shifted into [-1,1)
// so sign-sensitive kernels are exercised.
func randDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	return matrix.Map(matrix.Random(r, c, rng), func(v float64) float64 { return 2*v - 1 })
}

// shapes used by property tests; includes vectors and non-square cases.
var shapes = [][2]int{{1, 1}, {1, 4}, {4, 1}, {2, 3}, {3, 2}, {5, 5}}
