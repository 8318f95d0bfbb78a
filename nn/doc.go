// Package nn implements a fully-connected feedforward network trained by
// backpropagation with online (per-example) stochastic gradient descent.
//
// A Network owns one weight and one bias matrix per layer pair, a single
// Activation shared by all layers, and a scalar learning rate:
//
//	net := nn.New([]int{2, 3, 1}, nn.Sigmoid, 0.5, nn.WithSeed(42))
//	net.Train(inputs, targets, 100_000)
//	out := net.Predict(matrix.FromVec([]float64{0, 1}))
//
// Forward returns the output together with a Trace of every layer's
// activation; Backward consumes that Trace. Predict discards it, so inference
// never touches training state.
//
// Initialization draws from an explicitly owned random stream (WithSeed,
// WithRand); the same seed always yields the same network. Shape and topology
// violations panic with errors wrapping the package sentinels.
//
// The package itself never logs. Install WithProgress (optionally with
// LogProgress) to observe training.
package nn
