// SPDX-License-Identifier: MIT
// Package nn: sentinel error set.
// Like package matrix, every violation here is a programmer error: it is
// raised as a panic whose value wraps one of these sentinels.

package nn

import (
	"github.com/pkg/errors"
)

var (
	// ErrTopology is raised by New for fewer than two layers, a non-positive
	// layer size, or a nil Activation.
	ErrTopology = errors.New("nn: invalid topology")

	// ErrLearningRate is raised by New when the learning rate is NaN or ±Inf.
	ErrLearningRate = errors.New("nn: learning rate must be finite")

	// ErrInputShape indicates an input that is not a column vector of the
	// first layer's size.
	ErrInputShape = errors.New("nn: input shape does not match first layer")

	// ErrTargetShape indicates a target that is not a column vector of the
	// last layer's size.
	ErrTargetShape = errors.New("nn: target shape does not match last layer")

	// ErrTraceMismatch indicates a nil Trace, or one produced by a network of
	// a different depth.
	ErrTraceMismatch = errors.New("nn: trace does not belong to this network")

	// ErrDatasetMismatch indicates inputs and targets of different lengths,
	// or a negative epoch count.
	ErrDatasetMismatch = errors.New("nn: inputs and targets do not line up")
)

// contractf aborts the current operation with err wrapped in the given context.
func contractf(err error, format string, args ...interface{}) {
	panic(errors.Wrapf(err, format, args...))
}
