package nn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// requireContractPanic runs fn, expects it to panic with an error wrapping
// target, and returns that error.
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

// sigmoid is an independent scalar reference for hand-computed updates.
func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

var (
	xorInputs  = [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	xorTargets = [][]float64{{0}, {1}, {1}, {0}}
)
