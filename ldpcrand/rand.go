// Package ldpcrand centralizes deterministic random generation for the
// decoder package's stochastic algorithms (WBF tie-breaking, PPBF Bernoulli
// draws), generalized out of the pattern heuristic solvers commonly use
// internally for multi-start restarts.
//
// Goals:
//   - Determinism: same seed => identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - No hidden process-global RNG: every stochastic decoder owns its own stream.
package ldpcrand

import "math/rand"

// DefaultSeed is the fixed "zero" seed used when a caller wants a
// deterministic stream but does not care about the exact seed value.
const DefaultSeed int64 = 1

// New returns a deterministic *rand.Rand. seed==0 is treated as DefaultSeed
// so that a zero-value Option field reads as "use the default stream"
// rather than "uninitialized".
//
// Complexity: O(1).
func New(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// Derive creates an independent deterministic RNG stream from a base RNG and
// a stream identifier, using a SplitMix64-style avalanche mix so nearby
// stream ids do not produce correlated sequences. If base is nil, DefaultSeed
// is used as the parent.
//
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = DefaultSeed
	} else {
		// Int63 advances base's state; intentional, so reusing the same
		// stream id twice against the same base does not yield identical children.
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(splitMix64(parent, stream)))
}

// splitMix64 mixes a parent seed and a stream identifier into a new 64-bit
// seed using the canonical SplitMix64 multipliers and finalizer.
func splitMix64(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
