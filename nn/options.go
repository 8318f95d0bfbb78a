// SPDX-License-Identifier: MIT
// Package nn - functional options for Network construction.
//
// Purpose:
//   - Keep New's positional signature to the three essentials (topology,
//     activation, learning rate) and move everything else here.
//   - Defaults live in Default* constants (single source of truth).

package nn

import (
	"log"
	"math/rand"
)

// Propagation selects which weights carry the error signal to the previous
// layer during Backward.
type Propagation int

const (
	// PropagateUpdated sends the error back through the weights that were
	// just updated in the same step. This is the historical behaviour and
	// the default.
	PropagateUpdated Propagation = iota

	// PropagateOriginal sends the error back through the weights as they
	// were before this step's update (textbook backpropagation).
	PropagateOriginal
)

// String returns a short name for logs and flags.
func (p Propagation) String() string {
	switch p {
	case PropagateUpdated:
		return "updated"
	case PropagateOriginal:
		return "original"
	default:
		return "unknown"
	}
}

// Defaults.
const (
	DefaultProgressEvery = 10_000
	DefaultPropagation   = PropagateUpdated
)

// Progress is reported to a ProgressFunc every N epochs during Train.
type Progress struct {
	Epoch  int     // 1-based epoch just completed
	Epochs int     // total epochs requested
	Loss   float64 // mean squared error over the training set after Epoch
}

// ProgressFunc receives training progress. It runs on the training goroutine.
type ProgressFunc func(Progress)

// Options holds the resolved configuration of a Network.
type Options struct {
	seed          int64
	rng           *rand.Rand
	progressEvery int
	progress      ProgressFunc
	propagation   Propagation
}

// Option mutates Options; apply with New(..., opts...).
type Option func(*Options)

// WithSeed seeds the initialization stream. Zero selects DefaultSeed.
// Ignored when WithRand is also given.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithRand supplies the initialization stream directly.
// The Network consumes it only inside New.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.rng = rng }
}

// WithProgress installs fn to be called every `every` epochs of Train.
// every<=0 selects DefaultProgressEvery.
func WithProgress(every int, fn ProgressFunc) Option {
	return func(o *Options) {
		if every <= 0 {
			every = DefaultProgressEvery
		}
		o.progressEvery = every
		o.progress = fn
	}
}

// WithPropagation selects the error propagation order of Backward.
func WithPropagation(p Propagation) Option {
	return func(o *Options) { o.propagation = p }
}

// LogProgress returns a ProgressFunc that prints each report to l.
// A nil l writes to log.Default().
func LogProgress(l *log.Logger) ProgressFunc {
	if l == nil {
		l = log.Default()
	}
	return func(p Progress) {
		l.Printf("epoch %d/%d loss %.6f", p.Epoch, p.Epochs, p.Loss)
	}
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		seed:          DefaultSeed,
		progressEvery: DefaultProgressEvery,
		propagation:   DefaultPropagation,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
