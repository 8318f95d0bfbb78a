// SPDX-License-Identifier: MIT
// Package nn_test validates construction, Forward/Predict and a single
// Backward step against hand-computed scalar updates.
package nn_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnn/matrix"
	"github.com/katalvlaran/lvnn/nn"
)

func TestNewShapes(t *testing.T) {
	net := nn.New([]int{2, 3, 4, 1}, nn.Sigmoid, 0.5)

	ws, bs := net.Weights(), net.Biases()
	require.Len(t, ws, 3)
	require.Len(t, bs, 3)

	want := [][2]int{{3, 2}, {4, 3}, {1, 4}}
	for i := range ws {
		r, c := ws[i].Shape()
		assert.Equal(t, want[i], [2]int{r, c}, "weights[%d]", i)
		r, c = bs[i].Shape()
		assert.Equal(t, [2]int{want[i][0], 1}, [2]int{r, c}, "biases[%d]", i)
		for _, v := range append(ws[i].Data(), bs[i].Data()...) {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1.0)
		}
	}
	assert.Equal(t, []int{2, 3, 4, 1}, net.LayerSizes())
	assert.Equal(t, 0.5, net.LearningRate())
}

func TestNewRejectsBadTopology(t *testing.T) {
	requireContractPanic(t, nn.ErrTopology, func() { nn.New([]int{2}, nn.Sigmoid, 0.5) })
	requireContractPanic(t, nn.ErrTopology, func() { nn.New(nil, nn.Sigmoid, 0.5) })
	requireContractPanic(t, nn.ErrTopology, func() { nn.New([]int{2, 0, 1}, nn.Sigmoid, 0.5) })
	requireContractPanic(t, nn.ErrTopology, func() { nn.New([]int{2, 1}, nil, 0.5) })
	requireContractPanic(t, nn.ErrLearningRate, func() { nn.New([]int{2, 1}, nn.Sigmoid, math.NaN()) })
	requireContractPanic(t, nn.ErrLearningRate, func() { nn.New([]int{2, 1}, nn.Sigmoid, math.Inf(1)) })
}

func TestNewCopiesTopology(t *testing.T) {
	sizes := []int{2, 2, 1}
	net := nn.New(sizes, nn.Sigmoid, 0.5)
	sizes[0] = 7

	assert.Equal(t, []int{2, 2, 1}, net.LayerSizes())
}

func TestSeedDeterminism(t *testing.T) {
	a := nn.New([]int{2, 3, 1}, nn.Sigmoid, 0.5, nn.WithSeed(99))
	b := nn.New([]int{2, 3, 1}, nn.Sigmoid, 0.5, nn.WithSeed(99))
	c := nn.New([]int{2, 3, 1}, nn.Sigmoid, 0.5, nn.WithSeed(100))

	x := matrix.FromVec([]float64{0.3, 0.8})
	assert.True(t, a.Predict(x).Equal(b.Predict(x)))
	assert.False(t, a.Weights()[0].Equal(c.Weights()[0]))
}

func TestZeroSeedUsesDefault(t *testing.T) {
	a := nn.New([]int{2, 2, 1}, nn.Sigmoid, 0.5, nn.WithSeed(0))
	b := nn.New([]int{2, 2, 1}, nn.Sigmoid, 0.5, nn.WithSeed(nn.DefaultSeed))
	c := nn.New([]int{2, 2, 1}, nn.Sigmoid, 0.5) // no option at all

	assert.True(t, a.Weights()[0].Equal(b.Weights()[0]))
	assert.True(t, a.Weights()[0].Equal(c.Weights()[0]))
}

func TestWithRandDrawsInOrder(t *testing.T) {
	net := nn.New([]int{2, 3, 1}, nn.Sigmoid, 0.5, nn.WithRand(rand.New(rand.NewSource(5))))

	// weights[0], biases[0], weights[1], biases[1] are drawn in that order.
	rng := rand.New(rand.NewSource(5))
	require.True(t, net.Weights()[0].Equal(matrix.Random(3, 2, rng)))
	require.True(t, net.Biases()[0].Equal(matrix.Random(3, 1, rng)))
	require.True(t, net.Weights()[1].Equal(matrix.Random(1, 3, rng)))
	require.True(t, net.Biases()[1].Equal(matrix.Random(1, 1, rng)))
}

func TestForwardTrace(t *testing.T) {
	net := nn.New([]int{2, 3, 1}, nn.Sigmoid, 0.5, nn.WithSeed(3))
	x := matrix.FromVec([]float64{1, 0})

	out, trace := net.Forward(x)

	require.Equal(t, 3, trace.Len())
	assert.Same(t, x, trace.Layer(0))
	assert.Same(t, out, trace.Output())
	assert.Equal(t, 3, trace.Layer(1).Rows())
	assert.Equal(t, 1, out.Rows())
	assert.Equal(t, 1, out.Cols())

	// Layer 1 by hand: σ(W0·x + b0).
	w0, b0 := net.Weights()[0], net.Biases()[0]
	for r := 0; r < 3; r++ {
		want := sigmoid(w0.At(r, 0)*1 + w0.At(r, 1)*0 + b0.At(r, 0))
		assert.InDelta(t, want, trace.Layer(1).At(r, 0), 1e-12)
	}
}

func TestForwardRejectsBadInput(t *testing.T) {
	net := nn.New([]int{2, 3, 1}, nn.Sigmoid, 0.5)

	requireContractPanic(t, nn.ErrInputShape, func() { net.Forward(matrix.FromVec([]float64{1, 2, 3})) })
	requireContractPanic(t, nn.ErrInputShape, func() { net.Forward(matrix.FromRows([][]float64{{1, 2}, {3, 4}})) })
	requireContractPanic(t, nn.ErrInputShape, func() { net.Predict(nil) })
}

// TestPredictDeterministic: with fixed weights, Predict is a pure function.
func TestPredictDeterministic(t *testing.T) {
	net := nn.New([]int{2, 2, 1}, nn.Sigmoid, 0.5)
	x := matrix.FromVec([]float64{0, 1})

	first := net.Predict(x)
	second := net.Predict(x)
	require.Equal(t, first.Data(), second.Data())
}

// TestPredictBetweenForwardAndBackward shows inference cannot disturb a
// pending training step: the outcome equals an undisturbed twin.
func TestPredictBetweenForwardAndBackward(t *testing.T) {
	a := nn.New([]int{2, 3, 1}, nn.Sigmoid, 0.5, nn.WithSeed(11))
	b := nn.New([]int{2, 3, 1}, nn.Sigmoid, 0.5, nn.WithSeed(11))
	x, y := matrix.FromVec([]float64{1, 0}), matrix.FromVec([]float64{1})

	_, ta := a.Forward(x)
	_ = a.Predict(matrix.FromVec([]float64{0, 1})) // unrelated inference
	a.Backward(ta, y)

	_, tb := b.Forward(x)
	b.Backward(tb, y)

	for i := range a.Weights() {
		assert.Equal(t, b.Weights()[i].Data(), a.Weights()[i].Data())
		assert.Equal(t, b.Biases()[i].Data(), a.Biases()[i].Data())
	}
}

func TestBackwardRejectsBadArguments(t *testing.T) {
	net := nn.New([]int{2, 3, 1}, nn.Sigmoid, 0.5)
	other := nn.New([]int{2, 1}, nn.Sigmoid, 0.5)
	x := matrix.FromVec([]float64{1, 0})

	_, trace := net.Forward(x)
	_, shallow := other.Forward(x)

	requireContractPanic(t, nn.ErrTargetShape, func() { net.Backward(trace, matrix.FromVec([]float64{1, 0})) })
	requireContractPanic(t, nn.ErrTargetShape, func() { net.Backward(trace, nil) })
	requireContractPanic(t, nn.ErrTraceMismatch, func() { net.Backward(nil, matrix.FromVec([]float64{1})) })
	requireContractPanic(t, nn.ErrTraceMismatch, func() { net.Backward(shallow, matrix.FromVec([]float64{1})) })
}

// TestBackwardRejectsForeignTraceUntouched: a trace of equal depth but other
// widths is rejected before any parameter is replaced.
func TestBackwardRejectsForeignTraceUntouched(t *testing.T) {
	net := nn.New([]int{2, 3, 1}, nn.Sigmoid, 0.5, nn.WithSeed(3))
	wide := nn.New([]int{2, 4, 1}, nn.Sigmoid, 0.5, nn.WithSeed(3))
	_, foreign := wide.Forward(matrix.FromVec([]float64{1, 0}))

	weights, biases := net.Weights(), net.Biases()

	requireContractPanic(t, nn.ErrTraceMismatch, func() { net.Backward(foreign, matrix.FromVec([]float64{1})) })

	for i := range weights {
		require.Equal(t, weights[i].Data(), net.Weights()[i].Data())
		require.Equal(t, biases[i].Data(), net.Biases()[i].Data())
	}
}

// scalarNet holds the parameters of a 1-1-1 network as plain floats.
type scalarNet struct{ w0, b0, w1, b1 float64 }

func scalarOf(net *nn.Network) scalarNet {
	ws, bs := net.Weights(), net.Biases()
	return scalarNet{w0: ws[0].At(0, 0), b0: bs[0].At(0, 0), w1: ws[1].At(0, 0), b1: bs[1].At(0, 0)}
}

// step applies one backward step by hand. updated selects whether the error
// reaching layer 0 passes through the new or the old w1.
func (p scalarNet) step(x, target, lr float64, updated bool) scalarNet {
	h := sigmoid(p.w0*x + p.b0)
	y := sigmoid(p.w1*h + p.b1)

	e1 := target - y
	d1 := y * (1 - y) * e1 * lr
	next := scalarNet{b1: p.b1 + d1, w1: p.w1 + d1*h}

	carrier := p.w1
	if updated {
		carrier = next.w1
	}
	e0 := carrier * e1
	d0 := h * (1 - h) * e0 * lr
	next.b0 = p.b0 + d0
	next.w0 = p.w0 + d0*x

	return next
}

func TestBackwardMatchesHandComputation(t *testing.T) {
	const x, target, lr = 0.7, 1.0, 0.5

	cases := []struct {
		name    string
		prop    nn.Propagation
		updated bool
	}{
		{"updated", nn.PropagateUpdated, true},
		{"original", nn.PropagateOriginal, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			net := nn.New([]int{1, 1, 1}, nn.Sigmoid, lr, nn.WithSeed(21), nn.WithPropagation(tc.prop))
			want := scalarOf(net).step(x, target, lr, tc.updated)

			_, trace := net.Forward(matrix.FromVec([]float64{x}))
			net.Backward(trace, matrix.FromVec([]float64{target}))
			got := scalarOf(net)

			assert.InDelta(t, want.w1, got.w1, 1e-12)
			assert.InDelta(t, want.b1, got.b1, 1e-12)
			assert.InDelta(t, want.w0, got.w0, 1e-12)
			assert.InDelta(t, want.b0, got.b0, 1e-12)
		})
	}
}

// TestPropagationModesDiverge: the two orders agree on the output layer and
// differ on the hidden layer after the same step.
func TestPropagationModesDiverge(t *testing.T) {
	a := nn.New([]int{1, 1, 1}, nn.Sigmoid, 0.5, nn.WithSeed(8), nn.WithPropagation(nn.PropagateUpdated))
	b := nn.New([]int{1, 1, 1}, nn.Sigmoid, 0.5, nn.WithSeed(8), nn.WithPropagation(nn.PropagateOriginal))
	x, y := matrix.FromVec([]float64{1}), matrix.FromVec([]float64{0})

	_, ta := a.Forward(x)
	a.Backward(ta, y)
	_, tb := b.Forward(x)
	b.Backward(tb, y)

	assert.Equal(t, a.Weights()[1].Data(), b.Weights()[1].Data())
	assert.NotEqual(t, a.Weights()[0].Data(), b.Weights()[0].Data())
}

func TestPropagationString(t *testing.T) {
	assert.Equal(t, "updated", nn.PropagateUpdated.String())
	assert.Equal(t, "original", nn.PropagateOriginal.String())
	assert.Equal(t, "unknown", nn.Propagation(9).String())
}
