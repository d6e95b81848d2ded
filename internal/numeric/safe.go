// Package numeric provides guarded scalar primitives used by every geometric
// formula in the engine.
//
// Downstream code constantly divides by time deltas, chord lengths and value
// ranges that can be (near-)zero at duplicate timestamps or degenerate
// segments. These helpers absorb that degeneracy into defined defaults so that
// numeric edge cases never propagate as errors or NaNs.
package numeric

import "math"

// Epsilon is the magnitude below which a denominator is treated as zero.
const Epsilon = 1e-6

// SafeDivide returns num/den, or def when |den| < Epsilon.
func SafeDivide(num, den, def float64) float64 {
	if math.Abs(den) < Epsilon {
		return def
	}

	return num / den
}

// SafeSlope returns the slope between (t0,v0) and (t1,v1), or 0 when the time
// delta is degenerate.
func SafeSlope(t0, v0, t1, v1 float64) float64 {
	return SafeDivide(v1-v0, t1-t0, 0)
}

// SafeLerpParameter maps t into the normalized parameter of [start, end],
// clamped to [0,1]. A degenerate interval yields 0.
func SafeLerpParameter(t, start, end float64) float64 {
	return Clamp01(SafeDivide(t-start, end-start, 0))
}

// Lerp linearly interpolates between a and b by parameter t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// SafeAcos returns acos of v with the argument clamped into the valid domain,
// guarding against |dot| drifting past 1 from rounding.
func SafeAcos(v float64) float64 {
	return math.Acos(Clamp(v, -1, 1))
}
