// SPDX-License-Identifier: MIT

// Package nn - forward pass, Trace and Predict.

package nn

import (
	"fmt"

	"github.com/katalvlaran/lvnn/matrix"
)

// Trace records the activations of one forward pass, input first and output
// last. Backward consumes it; the network itself keeps no forward cache, so
// inference between a Forward and its Backward cannot disturb training.
type Trace struct {
	activations []*matrix.Dense
}

// Len is the number of recorded layers (input included).
func (t *Trace) Len() int { return len(t.activations) }

// Layer returns the activation of layer i; 0 is the input itself.
func (t *Trace) Layer(i int) *matrix.Dense { return t.activations[i] }

// Output returns the activation of the last layer.
func (t *Trace) Output() *matrix.Dense { return t.activations[len(t.activations)-1] }

// Forward propagates input through every layer:
//
//	current = act(W[i]·current + b[i])   for i = 0 .. L-2
//
// It returns the final activation together with the Trace of all layers.
// Panics with ErrInputShape unless input is a layerSizes[0]×1 column.
//
// Complexity: O(Σ n_i·n_{i+1}) time, O(Σ n_i) for the trace.
func (n *Network) Forward(input *matrix.Dense) (*matrix.Dense, *Trace) {
	if input == nil || input.Rows() != n.inputSize() || input.Cols() != 1 {
		contractf(ErrInputShape, "Forward: got %s, want %dx1", shapeOf(input), n.inputSize())
	}

	trace := &Trace{activations: make([]*matrix.Dense, 0, len(n.layerSizes))}
	trace.activations = append(trace.activations, input)

	current := input
	for i := range n.weights {
		z := matrix.Add(matrix.Mul(n.weights[i], current), n.biases[i])
		current = matrix.Map(z, n.activation.Forward)
		trace.activations = append(trace.activations, current)
	}

	return current, trace
}

// Predict runs Forward and drops the trace. It has no side effects.
func (n *Network) Predict(input *matrix.Dense) *matrix.Dense {
	out, _ := n.Forward(input)
	return out
}

// shapeOf formats a matrix shape for panic messages, tolerating nil.
func shapeOf(m *matrix.Dense) string {
	if m == nil {
		return "nil"
	}
	r, c := m.Shape()
	return fmt.Sprintf("%dx%d", r, c)
}
