// Package curve defines the sample and compressed curve model: the input
// (time, value) samples, the tagged segment variants (linear, Bezier,
// B-spline) and the sequence-level evaluator used both for error measurement
// during fitting and for reconstruction by the host.
package curve

import (
	"fmt"

	"github.com/HarukaKajita/curvecompress/errs"
)

// Sample is one (time, value) point of the input signal.
//
// Samples are immutable values; every engine operation takes a caller-owned
// slice of them sorted non-decreasing by Time.
type Sample struct {
	Time  float64
	Value float64
}

// Point is a free (x, y) coordinate. B-spline control points are Points, not
// Samples: they parameterize the basis and need not lie on the signal.
type Point struct {
	X float64
	Y float64
}

// ValidateSamples checks that samples is non-nil, holds at least minCount
// points and is sorted non-decreasing by time.
//
// Samples are never auto-sorted: an out-of-order slice almost always means a
// caller bug, and silently reordering would hide it.
//
// Returns:
//   - error: errs.ErrNoSamples, errs.ErrTooFewSamples or errs.ErrUnsortedSamples
func ValidateSamples(samples []Sample, minCount int) error {
	if len(samples) == 0 {
		return errs.ErrNoSamples
	}
	if len(samples) < minCount {
		return fmt.Errorf("%w: got %d, need at least %d", errs.ErrTooFewSamples, len(samples), minCount)
	}

	for i := 1; i < len(samples); i++ {
		if samples[i].Time < samples[i-1].Time {
			return fmt.Errorf("%w: samples[%d].Time=%g < samples[%d].Time=%g",
				errs.ErrUnsortedSamples, i, samples[i].Time, i-1, samples[i-1].Time)
		}
	}

	return nil
}

// Values extracts the value column of samples into a fresh slice.
func Values(samples []Sample) []float64 {
	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = s.Value
	}

	return values
}
