// SPDX-License-Identifier: MIT

// Package nn - fully-connected feedforward network.
//
// Layout:
//   - layerSizes has length L ≥ 2 and defines L-1 (weight, bias) pairs.
//   - weights[i] is layerSizes[i+1] × layerSizes[i]; biases[i] is layerSizes[i+1] × 1.
//
// Parameters are *matrix.Dense values. Training never edits them element by
// element; each Backward step replaces weights[i] and biases[i] wholesale.

package nn

import (
	"math"

	"github.com/katalvlaran/lvnn/matrix"
)

// Network is a dense feedforward network with one activation shared by all
// layers and a scalar learning rate. It is not safe for concurrent use.
type Network struct {
	layerSizes   []int
	weights      []*matrix.Dense
	biases       []*matrix.Dense
	activation   Activation
	learningRate float64
	opts         Options
}

// New builds a network for the given topology.
// MAIN DESCRIPTION:
//   - For each adjacent pair (nIn, nOut) draw a random nOut×nIn weight matrix
//     and a random nOut×1 bias, uniform in [0,1), from the configured stream.
//
// Implementation:
//   - Stage 1: validate topology (len ≥ 2, sizes > 0, act != nil) and learning rate.
//   - Stage 2: resolve options and pick the RNG (WithRand, else seeded).
//   - Stage 3: draw weights[i] then biases[i], layer by layer.
//
// Determinism:
//   - Same seed and topology ⇒ identical parameters.
//
// Complexity:
//   - Time/Space O(Σ n_i·n_{i+1}).
func New(layerSizes []int, act Activation, learningRate float64, opts ...Option) *Network {
	if len(layerSizes) < 2 {
		contractf(ErrTopology, "New: %d layers, need at least 2", len(layerSizes))
	}
	for i, size := range layerSizes {
		if size <= 0 {
			contractf(ErrTopology, "New: layer %d has size %d", i, size)
		}
	}
	if act == nil {
		contractf(ErrTopology, "New: nil activation")
	}
	if math.IsNaN(learningRate) || math.IsInf(learningRate, 0) {
		contractf(ErrLearningRate, "New: %v", learningRate)
	}

	o := gatherOptions(opts...)
	rng := o.rng
	if rng == nil {
		rng = rngFromSeed(o.seed)
	}

	n := &Network{
		layerSizes:   append([]int(nil), layerSizes...),
		weights:      make([]*matrix.Dense, len(layerSizes)-1),
		biases:       make([]*matrix.Dense, len(layerSizes)-1),
		activation:   act,
		learningRate: learningRate,
		opts:         o,
	}
	for i := range n.weights {
		nIn, nOut := layerSizes[i], layerSizes[i+1]
		n.weights[i] = matrix.Random(nOut, nIn, rng)
		n.biases[i] = matrix.Random(nOut, 1, rng)
	}

	return n
}

// LayerSizes returns a copy of the topology.
func (n *Network) LayerSizes() []int { return append([]int(nil), n.layerSizes...) }

// LearningRate returns the step size applied to every update.
func (n *Network) LearningRate() float64 { return n.learningRate }

// Activation returns the shared activation pair.
func (n *Network) Activation() Activation { return n.activation }

// Weights returns the current weight matrices, input side first.
// The matrices are immutable; the slice is a copy.
func (n *Network) Weights() []*matrix.Dense { return append([]*matrix.Dense(nil), n.weights...) }

// Biases returns the current bias column vectors, input side first.
func (n *Network) Biases() []*matrix.Dense { return append([]*matrix.Dense(nil), n.biases...) }

// inputSize and outputSize are the first and last layer widths.
func (n *Network) inputSize() int  { return n.layerSizes[0] }
func (n *Network) outputSize() int { return n.layerSizes[len(n.layerSizes)-1] }
