// SPDX-License-Identifier: MIT

// Package nn - online SGD training loop and dataset loss.

package nn

import (
	"github.com/katalvlaran/lvnn/matrix"
)

// Train runs `epochs` passes of online stochastic gradient descent.
// Every epoch visits the examples in their original order (no shuffling) and
// performs Forward then Backward for each one.
//
// When a progress hook is installed (WithProgress), it is invoked after every
// N-th epoch with the training-set mean squared error. Without a hook no
// extra evaluation is done.
//
// Panics with ErrDatasetMismatch when len(inputs) != len(targets) or epochs < 0,
// and with ErrInputShape / ErrTargetShape for a malformed example.
func (n *Network) Train(inputs, targets [][]float64, epochs int) {
	if len(inputs) != len(targets) {
		contractf(ErrDatasetMismatch, "Train: %d inputs, %d targets", len(inputs), len(targets))
	}
	if epochs < 0 {
		contractf(ErrDatasetMismatch, "Train: negative epoch count %d", epochs)
	}

	// Matrices are immutable, so each example is converted once.
	xs, ys := columns(inputs), columns(targets)

	for epoch := 1; epoch <= epochs; epoch++ {
		for j := range xs {
			_, trace := n.Forward(xs[j])
			n.Backward(trace, ys[j])
		}
		if n.opts.progress != nil && epoch%n.opts.progressEvery == 0 {
			n.opts.progress(Progress{Epoch: epoch, Epochs: epochs, Loss: n.meanSquaredError(xs, ys)})
		}
	}
}

// MeanSquaredError averages (prediction - target)² over every output element
// of every example. An empty dataset yields 0.
// Panics with ErrDatasetMismatch when the slices differ in length.
func (n *Network) MeanSquaredError(inputs, targets [][]float64) float64 {
	if len(inputs) != len(targets) {
		contractf(ErrDatasetMismatch, "MeanSquaredError: %d inputs, %d targets", len(inputs), len(targets))
	}
	return n.meanSquaredError(columns(inputs), columns(targets))
}

func (n *Network) meanSquaredError(xs, ys []*matrix.Dense) float64 {
	if len(xs) == 0 {
		return 0
	}

	var total float64
	var count int
	for j := range xs {
		if ys[j].Rows() != n.outputSize() || ys[j].Cols() != 1 {
			contractf(ErrTargetShape, "MeanSquaredError: example %d target %s, want %dx1", j, shapeOf(ys[j]), n.outputSize())
		}
		diff := matrix.Sub(n.Predict(xs[j]), ys[j])
		total += matrix.Sum(matrix.Hadamard(diff, diff))
		count += diff.Rows()
	}

	return total / float64(count)
}

// columns converts every vector to a column matrix.
func columns(vs [][]float64) []*matrix.Dense {
	out := make([]*matrix.Dense, len(vs))
	for i, v := range vs {
		out[i] = matrix.FromVec(v)
	}
	return out
}
