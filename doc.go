// Package lvnn is a small, dependency-light playground for dense linear
// algebra and the classic backpropagation network built on top of it.
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/   immutable row-major Dense matrices: Add, Sub, Hadamard, Scale,
//	          Transpose, Mul, Map, Sum, approximate Equal, text rendering
//	nn/       fully-connected feedforward Network, Activation (Sigmoid),
//	          Forward/Trace/Backward, online SGD Train, seeded initialization
//
// and one command:
//
//	cmd/xor   trains on the XOR table, optionally with parallel restarts
//
// Quick example:
//
//	net := nn.New([]int{2, 3, 1}, nn.Sigmoid, 0.5, nn.WithSeed(7))
//	net.Train(
//		[][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
//		[][]float64{{0}, {1}, {1}, {0}},
//		100_000,
//	)
//	fmt.Print(net.Predict(matrix.FromVec([]float64{1, 0})))
//
// Contract violations (shape mismatches, bad topology, out-of-range access)
// are programming errors and panic with an error that wraps a package
// sentinel, so a recovering caller can still match it with errors.Is.
package lvnn
