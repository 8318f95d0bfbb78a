// SPDX-License-Identifier: MIT

// Package nn - RNG utilities for parameter initialization.
//
// Goals:
//   - Determinism: same seed ⇒ identical initial weights across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//     Callers that want a fresh stream per run choose the seed themselves.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveSeed to give each independently trained network its own stream.

package nn

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
// It is a SplitMix64-style finalizer, so neighbouring stream ids yield
// uncorrelated seeds.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
