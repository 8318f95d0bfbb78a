// SPDX-License-Identifier: MIT

package nn

import (
	"github.com/katalvlaran/lvnn/matrix"
)

// Backward applies one online gradient-descent step for the forward pass
// recorded in trace, pulling the output toward target.
// MAIN DESCRIPTION:
//   - Walk layers from the output back to the input. At each layer i:
//     delta = (gradient ⊙ error) · lr
//     b[i]  = b[i] + delta
//     W[i]  = delta·trace[i]ᵀ + W[i]
//     error = W[i]ᵀ·error        (W[i] per Propagation, see below)
//     gradient = act'(trace[i])
//
// Implementation:
//   - Stage 1: validate trace depth, every traced layer shape and the target
//     shape, so a rejected call leaves the network untouched.
//   - Stage 2: seed error = target - output, gradient = act'(output).
//   - Stage 3: descend i = L-2 .. 0, replacing W[i] and b[i] with new matrices.
//
// Behavior highlights:
//   - PropagateUpdated (default) carries the error through the weights
//     updated in this very step; PropagateOriginal uses the pre-update weights.
//   - No clipping, no regularization.
//
// Panics:
//   - ErrTraceMismatch for a nil trace, one of a different depth, or one whose
//     layer i is not a layerSizes[i]×1 column (e.g. a trace of another network).
//   - ErrTargetShape unless target is a layerSizes[L-1]×1 column.
//
// Complexity:
//   - Time O(Σ n_i·n_{i+1}); allocates O(L) matrices.
func (n *Network) Backward(trace *Trace, target *matrix.Dense) {
	if trace == nil || trace.Len() != len(n.layerSizes) {
		contractf(ErrTraceMismatch, "Backward: trace depth %d, network depth %d", traceLen(trace), len(n.layerSizes))
	}
	for i, a := range trace.activations {
		if a == nil || a.Rows() != n.layerSizes[i] || a.Cols() != 1 {
			contractf(ErrTraceMismatch, "Backward: trace layer %d is %s, want %dx1", i, shapeOf(a), n.layerSizes[i])
		}
	}
	if target == nil || target.Rows() != n.outputSize() || target.Cols() != 1 {
		contractf(ErrTargetShape, "Backward: got %s, want %dx1", shapeOf(target), n.outputSize())
	}

	deriv := n.activation.DerivativeFromOutput
	output := trace.Output()
	errSignal := matrix.Sub(target, output)
	gradient := matrix.Map(output, deriv)

	for i := len(n.weights) - 1; i >= 0; i-- {
		delta := matrix.Scale(matrix.Hadamard(gradient, errSignal), n.learningRate)
		previous := n.weights[i] // read before replacement

		n.biases[i] = matrix.Add(n.biases[i], delta)
		n.weights[i] = matrix.Add(matrix.Mul(delta, matrix.Transpose(trace.activations[i])), previous)

		carrier := n.weights[i]
		if n.opts.propagation == PropagateOriginal {
			carrier = previous
		}
		errSignal = matrix.Mul(matrix.Transpose(carrier), errSignal)
		gradient = matrix.Map(trace.activations[i], deriv)
	}
}

func traceLen(t *Trace) int {
	if t == nil {
		return 0
	}
	return t.Len()
}
