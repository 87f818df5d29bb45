// SPDX-License-Identifier: MIT

// Deterministic fixture columns for tests, examples and benchmarks.
//
// Determinism policy: generators either take no randomness at all or derive
// it from an explicit seed via a local rand.Rand; no global state, so the
// same call always yields the same column.

package frame

import (
	"math"
	"math/rand"
)

// Defaults shared by the waveform generators.
const (
	defAmp     = 1.0  // waveform amplitude
	defChirpF0 = 0.02 // chirp start frequency (cycles/sample)
	defChirpF1 = 0.25 // chirp end frequency (cycles/sample)
)

// tau is 2π, precomputed for the phase accumulators.
const tau = 2.0 * math.Pi

// Ramp returns n samples linearly spaced over [0, 1]. A single sample is 0.
// Returns nil when n < 1.
func Ramp(n int) []float64 {
	if n < 1 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		return out
	}
	step := 1.0 / float64(n-1)
	for i := 0; i < n; i++ {
		out[i] = float64(i) * step
	}
	return out
}

// Pulse returns a length-n rectangular pulse train: within each period the
// first half is high (+amp), the second half is low (-amp). Returns nil when
// n < 1 or period < 2.
func Pulse(n, period int) []float64 {
	if n < 1 || period < 2 {
		return nil
	}
	out := make([]float64, n)
	half := period / 2
	var phase int
	for i := 0; i < n; i++ {
		phase = i % period
		if phase < half {
			out[i] = defAmp
		} else {
			out[i] = -defAmp
		}
	}
	return out
}

// Chirp returns a length-n linear chirp sweeping from defChirpF0 to
// defChirpF1 cycles/sample through a phase accumulator:
//
//	fi    = f0 + (f1-f0) * i/(n-1)
//	θ(i+1) = θ(i) + τ*fi
//	y(i)  = amp * sin(θ(i))
//
// Returns nil when n < 1.
func Chirp(n int) []float64 {
	if n < 1 {
		return nil
	}
	out := make([]float64, n)
	theta := 0.0
	var t, fi float64
	for i := 0; i < n; i++ {
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		fi = defChirpF0 + (defChirpF1-defChirpF0)*t
		theta += tau * fi
		out[i] = defAmp * math.Sin(theta)
	}
	return out
}

// Noise returns n samples of seeded Gaussian noise scaled by sigma.
// Returns nil when n < 1 or sigma < 0.
func Noise(n int, seed int64, sigma float64) []float64 {
	if n < 1 || sigma < 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = sigma * rng.NormFloat64()
	}
	return out
}

// Labels returns n seeded draws from the given label set, uniform over the
// set. Returns nil when n < 1 or the set is empty. Feed the result to
// AddCategoricalFromStrings for a reproducible factor column.
func Labels(n int, labels []string, seed int64) []string {
	if n < 1 || len(labels) == 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = labels[rng.Intn(len(labels))]
	}
	return out
}
