// Package series: deterministic synthetic observation generators.
//
// Linear and Pulse produce ready-to-plot observation slices for tests,
// examples and benchmarks. Both are pure given their arguments: Pulse takes
// an explicit seed so repeated calls yield identical noise.
package series

import (
	"math"
	"math/rand"
)

const (
	// pulseDuty is the fraction of each period spent at the high value.
	pulseDuty = 0.5
	// unitOne keeps the phase computation free of magic literals.
	unitOne = 1.0
)

// Linear returns n observations forming a straight ramp from `from` to `to`
// inclusive. Returns nil when n < 1; a single point sits at `from`.
// Complexity: O(n).
func Linear(n int, from, to float64) []Observation {
	if n < 1 {
		return nil
	}
	out := make([]Observation, n)
	if n == 1 {
		out[0] = NewObservation(from)
		return out
	}
	step := (to - from) / float64(n-1)
	for i := 0; i < n; i++ {
		out[i] = NewObservation(from + float64(i)*step)
	}

	return out
}

// Pulse returns a length-n rectangular pulse sequence oscillating between
// low and high with the given frequency (phase fraction per sample), plus
// optional Gaussian noise of standard deviation sigma seeded by seed.
//
// Validation: n < 1, freq ≤ 0 or sigma < 0 returns nil — invalid input
// yields no data, never a panic.
// Complexity: O(n).
func Pulse(n int, low, high, freq, sigma float64, seed int64) []Observation {
	if n < 1 || freq <= 0 || sigma < 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	out := make([]Observation, n)

	var frac, v float64
	for i := 0; i < n; i++ {
		// Phase fraction in [0,1): frac = (i*freq) mod 1.
		frac = math.Mod(float64(i)*freq, unitOne)
		if frac < pulseDuty {
			v = high
		} else {
			v = low
		}
		if sigma > 0 {
			v += sigma * rng.NormFloat64()
		}
		out[i] = NewObservation(v)
	}

	return out
}
