// Package analyze summarizes the measurable characteristics of a sampled
// signal and scores the compression methods against them, so the hybrid
// router can pick the method the data actually favors instead of a fixed
// default.
package analyze

import (
	"math"

	"github.com/HarukaKajita/curvecompress/curve"
	"github.com/HarukaKajita/curvecompress/format"
	"github.com/HarukaKajita/curvecompress/internal/numeric"
	"github.com/HarukaKajita/curvecompress/internal/stats"
)

// DataCharacteristics is a pure descriptive summary of a signal. All scalar
// fields are normalized into [0,1] except TemporalDensity, which is points
// per unit time.
type DataCharacteristics struct {
	// Smoothness is 1 minus the mean angular change between consecutive
	// segment directions: 1 for a straight line, near 0 for a zigzag.
	Smoothness float64

	// Complexity is the normalized variance of the discrete second
	// derivative: how much the signal's curvature itself fluctuates.
	Complexity float64

	// NoiseLevel is the high-frequency residual amplitude relative to the
	// value range.
	NoiseLevel float64

	// Variability is the coefficient of variation (stdDev / |mean|), clamped.
	Variability float64

	// TemporalDensity is the sample count divided by the covered time span.
	TemporalDensity float64

	// Kind is a best-effort guess at the data's nature, derived from the
	// scalar characteristics.
	Kind format.DataKind
}

// Analyze measures the characteristics of samples. It never mutates its input
// and needs at least three points to say anything meaningful.
func Analyze(samples []curve.Sample) (DataCharacteristics, error) {
	if err := curve.ValidateSamples(samples, 3); err != nil {
		return DataCharacteristics{}, err
	}

	values := curve.Values(samples)
	valueRange := stats.ValueRange(values)

	ch := DataCharacteristics{
		Smoothness:      smoothness(samples),
		Complexity:      complexity(values, valueRange),
		NoiseLevel:      numeric.Clamp01(numeric.SafeDivide(stats.NoiseLevel(values), valueRange, 0)),
		Variability:     numeric.Clamp01(numeric.SafeDivide(stats.StdDev(values), math.Abs(stats.Mean(values)), 0)),
		TemporalDensity: temporalDensity(samples),
	}
	ch.Kind = guessKind(ch)

	return ch, nil
}

// smoothness averages the turn angle between consecutive segment directions
// and inverts it: no turning at all scores 1.
func smoothness(samples []curve.Sample) float64 {
	var sum float64
	count := 0
	for i := 1; i < len(samples)-1; i++ {
		prev, cur, next := samples[i-1], samples[i], samples[i+1]

		ax, ay := cur.Time-prev.Time, cur.Value-prev.Value
		bx, by := next.Time-cur.Time, next.Value-cur.Value

		la := math.Hypot(ax, ay)
		lb := math.Hypot(bx, by)
		if la < numeric.Epsilon || lb < numeric.Epsilon {
			continue
		}

		dot := (ax*bx + ay*by) / (la * lb)
		sum += numeric.SafeAcos(dot) / math.Pi
		count++
	}

	if count == 0 {
		return 1
	}

	return numeric.Clamp01(1 - sum/float64(count))
}

// complexity measures the spread of the discrete second derivative relative
// to the value range.
func complexity(values []float64, valueRange float64) float64 {
	if len(values) < 3 {
		return 0
	}

	second := make([]float64, 0, len(values)-2)
	for i := 1; i < len(values)-1; i++ {
		second = append(second, values[i-1]-2*values[i]+values[i+1])
	}

	return numeric.Clamp01(numeric.SafeDivide(stats.StdDev(second), valueRange, 0))
}

func temporalDensity(samples []curve.Sample) float64 {
	span := samples[len(samples)-1].Time - samples[0].Time

	return numeric.SafeDivide(float64(len(samples)), span, float64(len(samples)))
}

// guessKind derives a data kind hint from the measured characteristics. The
// thresholds are tuned, not principled; the guess only seeds weight presets
// and is never load-bearing for correctness.
func guessKind(ch DataCharacteristics) format.DataKind {
	switch {
	case ch.NoiseLevel > 0.05 && ch.Smoothness < 0.8:
		return format.KindSensor
	case ch.Variability > 0.5 && ch.Complexity > 0.1:
		return format.KindFinancial
	case ch.Smoothness > 0.9 && ch.NoiseLevel < 0.02:
		return format.KindAnimation
	default:
		return format.KindGeneric
	}
}
