package importance

import (
	"math"

	"github.com/HarukaKajita/curvecompress/curve"
	"github.com/HarukaKajita/curvecompress/internal/numeric"
	"github.com/HarukaKajita/curvecompress/internal/stats"
)

// Scorer computes per-sample importance over one fixed sample slice.
//
// The global value range and variance are computed once at construction;
// scoring an index is then O(window). The scorer never mutates the samples.
type Scorer struct {
	samples    []curve.Sample
	weights    Weights
	valueRange float64
	variance   float64
	window     int
}

// NewScorer prepares a scorer for samples with the given component weights.
func NewScorer(samples []curve.Sample, weights Weights) *Scorer {
	values := curve.Values(samples)

	// Window half-width for local variance: ±min(5, n/10) samples.
	window := len(samples) / 10
	if window > 5 {
		window = 5
	}
	if window < 1 {
		window = 1
	}

	return &Scorer{
		samples:    samples,
		weights:    weights,
		valueRange: stats.ValueRange(values),
		variance:   stats.Variance(values),
		window:     window,
	}
}

// Score returns the weighted importance of sample i.
//
// Each component is normalized into [0,1] before weighting; the weighted sum
// is not renormalized, so weight bundles summing above 1 can push the result
// past 1 (RDP only uses it as a multiplicative boost). Boundary indices score
// 0: they are always retained anyway.
func (sc *Scorer) Score(i int) float64 {
	if i <= 0 || i >= len(sc.samples)-1 {
		return 0
	}

	w := sc.weights

	return w.Curvature*sc.curvature(i) +
		w.ChangeRate*sc.changeRate(i) +
		w.LocalVariance*sc.localVariance(i) +
		w.ExtremeValue*sc.extremumProminence(i)
}

// Score is the one-shot form of Scorer.Score for callers that only need a few
// indices of one slice.
func Score(samples []curve.Sample, i int, weights Weights) float64 {
	return NewScorer(samples, weights).Score(i)
}

// curvature measures the turn angle between the incoming and outgoing segment
// directions at i, normalized by π so a full reversal scores 1.
func (sc *Scorer) curvature(i int) float64 {
	prev, cur, next := sc.samples[i-1], sc.samples[i], sc.samples[i+1]

	ax, ay := cur.Time-prev.Time, cur.Value-prev.Value
	bx, by := next.Time-cur.Time, next.Value-cur.Value

	la := math.Hypot(ax, ay)
	lb := math.Hypot(bx, by)
	if la < numeric.Epsilon || lb < numeric.Epsilon {
		return 0
	}

	dot := (ax*bx + ay*by) / (la * lb)

	return numeric.SafeAcos(dot) / math.Pi
}

// changeRate measures the central-difference slope magnitude relative to the
// global value range, clamped to [0,1].
func (sc *Scorer) changeRate(i int) float64 {
	prev, next := sc.samples[i-1], sc.samples[i+1]
	slope := numeric.SafeSlope(prev.Time, prev.Value, next.Time, next.Value)

	return numeric.Clamp01(numeric.SafeDivide(math.Abs(slope), sc.valueRange, 0))
}

// localVariance measures the variance in a ±window neighborhood relative to
// the global variance, clamped to [0,1].
func (sc *Scorer) localVariance(i int) float64 {
	lo := numeric.ClampInt(i-sc.window, 0, len(sc.samples)-1)
	hi := numeric.ClampInt(i+sc.window, 0, len(sc.samples)-1)

	values := make([]float64, 0, hi-lo+1)
	for j := lo; j <= hi; j++ {
		values = append(values, sc.samples[j].Value)
	}

	return numeric.Clamp01(numeric.SafeDivide(stats.Variance(values), sc.variance, 0))
}

// extremumProminence scores strict local extrema by the smaller adjacent value
// delta relative to the global range; non-extrema score 0.
func (sc *Scorer) extremumProminence(i int) float64 {
	prev, cur, next := sc.samples[i-1].Value, sc.samples[i].Value, sc.samples[i+1].Value

	isMax := cur > prev && cur > next
	isMin := cur < prev && cur < next
	if !isMax && !isMin {
		return 0
	}

	prominence := math.Min(math.Abs(cur-prev), math.Abs(cur-next))

	return numeric.Clamp01(numeric.SafeDivide(prominence, sc.valueRange, 0))
}
