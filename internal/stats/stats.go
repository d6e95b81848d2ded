// Package stats provides the summary statistics shared by the importance
// scorer, the control point estimators and the data analyzer.
package stats

import (
	"math"

	"github.com/HarukaKajita/curvecompress/internal/numeric"
)

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// Variance returns the population variance of values, or 0 for fewer than
// two values.
func Variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	mean := Mean(values)

	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}

	return sum / float64(len(values))
}

// StdDev returns the population standard deviation of values.
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// ValueRange returns max(values) - min(values), or 0 for an empty slice.
func ValueRange(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}

	return maxV - minV
}

// TotalVariation returns the sum of absolute consecutive differences, a cheap
// complexity proxy for a sampled signal.
func TotalVariation(values []float64) float64 {
	var sum float64
	for i := 1; i < len(values); i++ {
		sum += math.Abs(values[i] - values[i-1])
	}

	return sum
}

// NoiseLevel estimates the high-frequency noise amplitude of a sampled signal
// from the mean absolute second difference. The 1/sqrt(6) factor recovers the
// standard deviation of i.i.d. noise from its second difference, which damps
// the contribution of the underlying smooth trend.
func NoiseLevel(values []float64) float64 {
	if len(values) < 3 {
		return 0
	}

	var sum float64
	for i := 1; i < len(values)-1; i++ {
		sum += math.Abs(values[i-1] - 2*values[i] + values[i+1])
	}

	return sum / float64(len(values)-2) / math.Sqrt(6)
}

// SNR returns the signal-to-noise ratio stdDev/noise. A noiseless signal maps
// to a large finite ratio rather than infinity.
func SNR(values []float64) float64 {
	noise := NoiseLevel(values)
	sd := StdDev(values)

	return numeric.SafeDivide(sd, noise, sd*1e6)
}
