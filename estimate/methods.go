package estimate

import (
	"math"
	"sort"

	"github.com/HarukaKajita/curvecompress/curve"
	"github.com/HarukaKajita/curvecompress/fit"
	"github.com/HarukaKajita/curvecompress/importance"
	"github.com/HarukaKajita/curvecompress/internal/numeric"
	"github.com/HarukaKajita/curvecompress/internal/stats"
	"github.com/HarukaKajita/curvecompress/simplify"
)

// elbow fits a fixed-count B-spline at every candidate count, records the
// mean squared error, and picks the count at the maximum magnitude of the
// discrete second derivative of the error curve, the sharpest bend in the
// diminishing-returns curve.
func elbow(samples []curve.Sample, minPoints, maxPoints int) Result {
	counts := maxPoints - minPoints + 1
	errors := make([]float64, counts)
	for i := range errors {
		errors[i] = fixedFitMSE(samples, minPoints+i)
	}

	optimal := minPoints
	best := 0.0
	var totalBend float64
	for i := 1; i < counts-1; i++ {
		bend := math.Abs(errors[i-1] - 2*errors[i] + errors[i+1])
		totalBend += bend
		if bend > best {
			best = bend
			optimal = minPoints + i
		}
	}

	return Result{
		OptimalPointCount: optimal,
		Score:             numeric.Clamp01(numeric.SafeDivide(best, totalBend, 0)),
		Method:            MethodElbow,
		Metrics: map[string]float64{
			"candidates":     float64(counts),
			"mse_at_optimal": errors[optimal-minPoints],
		},
	}
}

// fixedFitMSE measures the mean squared error of a fixed-count B-spline fit.
func fixedFitMSE(samples []curve.Sample, controlPoints int) float64 {
	seg, err := fit.BSplineFixed(samples, controlPoints)
	if err != nil {
		return math.Inf(1)
	}

	var sum float64
	for _, s := range samples {
		d := seg.Evaluate(s.Time) - s.Value
		sum += d * d
	}

	return sum / float64(len(samples))
}

// curvatureAnalysis sums the local curvature of every interior point, finds
// how many of the highest-curvature points accumulate 90% of the total, then
// scales that count by 0.5 and offsets it by minPoints.
func curvatureAnalysis(samples []curve.Sample, minPoints, maxPoints int) Result {
	curvatures := localCurvatures(samples)

	var total float64
	for _, c := range curvatures {
		total += c
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(curvatures)))

	needed := 0
	var acc float64
	for _, c := range curvatures {
		if acc >= 0.9*total {
			break
		}
		acc += c
		needed++
	}

	optimal := numeric.ClampInt(minPoints+int(0.5*float64(needed)), minPoints, maxPoints)

	// Concentrated curvature (few points carry 90%) means the recommendation
	// is decisive; curvature spread evenly across the signal means it is not.
	concentration := 1 - numeric.SafeDivide(float64(needed), float64(len(curvatures)), 1)

	return Result{
		OptimalPointCount: optimal,
		Score:             numeric.Clamp01(concentration),
		Method:            MethodCurvature,
		Metrics: map[string]float64{
			"total_curvature":   total,
			"points_for_90_pct": float64(needed),
			"interior_points":   float64(len(curvatures)),
		},
	}
}

// localCurvatures returns the turn angle (normalized by π) at every interior
// sample.
func localCurvatures(samples []curve.Sample) []float64 {
	if len(samples) < 3 {
		return nil
	}

	curvatures := make([]float64, 0, len(samples)-2)
	for i := 1; i < len(samples)-1; i++ {
		prev, cur, next := samples[i-1], samples[i], samples[i+1]

		ax, ay := cur.Time-prev.Time, cur.Value-prev.Value
		bx, by := next.Time-cur.Time, next.Value-cur.Value

		la := math.Hypot(ax, ay)
		lb := math.Hypot(bx, by)
		if la < numeric.Epsilon || lb < numeric.Epsilon {
			curvatures = append(curvatures, 0)
			continue
		}

		dot := (ax*bx + ay*by) / (la * lb)
		curvatures = append(curvatures, numeric.SafeAcos(dot)/math.Pi)
	}

	return curvatures
}

// entropy bins the values into clamp(n/5, 1, 20) histogram bins and maps the
// Shannon entropy ratio H/log2(bins) linearly across [minPoints, maxPoints]:
// a flat histogram (ratio 1) recommends maxPoints, a single-bin signal
// recommends minPoints.
func entropy(samples []curve.Sample, minPoints, maxPoints int) Result {
	values := curve.Values(samples)
	bins := numeric.ClampInt(len(samples)/5, 1, 20)

	valueRange := stats.ValueRange(values)
	histogram := make([]int, bins)
	for _, v := range values {
		u := numeric.SafeDivide(v-minOf(values), valueRange, 0)
		idx := numeric.ClampInt(int(u*float64(bins)), 0, bins-1)
		histogram[idx]++
	}

	var h float64
	for _, count := range histogram {
		if count == 0 {
			continue
		}
		p := float64(count) / float64(len(values))
		h -= p * math.Log2(p)
	}

	maxH := math.Log2(float64(bins))
	ratio := numeric.Clamp01(numeric.SafeDivide(h, maxH, 0))
	optimal := minPoints + int(math.Round(ratio*float64(maxPoints-minPoints)))

	return Result{
		OptimalPointCount: numeric.ClampInt(optimal, minPoints, maxPoints),
		Score:             ratio,
		Method:            MethodEntropy,
		Metrics: map[string]float64{
			"entropy":     h,
			"max_entropy": maxH,
			"bins":        float64(bins),
		},
	}
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		m = math.Min(m, v)
	}

	return m
}

// rdpAdaptive bisects the RDP tolerance until the survivor count hits the
// middle of the requested range. Survivor count is monotone non-increasing in
// tolerance, so 24 bisection steps pin it down.
func rdpAdaptive(samples []curve.Sample, minPoints, maxPoints int) Result {
	target := (minPoints + maxPoints) / 2
	valueRange := stats.ValueRange(curve.Values(samples))
	if valueRange <= 0 {
		valueRange = 1
	}

	lo := valueRange * 1e-6
	hi := valueRange
	achieved := len(samples)
	tolerance := lo

	for iter := 0; iter < 24; iter++ {
		mid := (lo + hi) / 2
		count := rdpSurvivors(samples, mid)
		if count > target {
			lo = mid
		} else {
			hi = mid
		}
		tolerance = mid
		achieved = count
	}

	optimal := numeric.ClampInt(achieved, minPoints, maxPoints)
	miss := numeric.SafeDivide(math.Abs(float64(achieved-target)), float64(target), 1)

	return Result{
		OptimalPointCount: optimal,
		Score:             numeric.Clamp01(1 - miss),
		Method:            MethodRDPAdaptive,
		Metrics: map[string]float64{
			"achieved_tolerance": tolerance,
			"target_points":      float64(target),
			"achieved_points":    float64(achieved),
		},
	}
}

func rdpSurvivors(samples []curve.Sample, tolerance float64) int {
	indices, err := simplify.Indices(samples, simplify.Config{
		Tolerance:           tolerance,
		ImportanceThreshold: 1,
		Weights:             importance.DefaultWeights(),
	})
	if err != nil {
		return len(samples)
	}

	return len(indices)
}

// totalVariation counts how many full value-range traversals the signal makes
// (TV divided by the value range) and offsets that from minPoints.
func totalVariation(samples []curve.Sample, minPoints, maxPoints int) Result {
	values := curve.Values(samples)
	tv := stats.TotalVariation(values)
	normalized := numeric.SafeDivide(tv, stats.ValueRange(values), 0)

	raw := minPoints + int(math.Round(normalized))
	optimal := numeric.ClampInt(raw, minPoints, maxPoints)

	// Confidence drops with how far the raw recommendation had to be clamped.
	clampMiss := numeric.SafeDivide(math.Abs(float64(raw-optimal)), float64(maxPoints), 0)

	return Result{
		OptimalPointCount: optimal,
		Score:             numeric.Clamp01(1 - clampMiss),
		Method:            MethodTotalVariation,
		Metrics: map[string]float64{
			"total_variation":      tv,
			"normalized_variation": normalized,
		},
	}
}

// errorBound binary-searches the smallest count whose fixed-count fit error
// stays within tolerance. The error curve is treated as monotone in the
// count; that is a heuristic, not a guarantee, and is documented as such.
func errorBound(samples []curve.Sample, tolerance float64, minPoints, maxPoints int) Result {
	optimal := sort.Search(maxPoints-minPoints+1, func(i int) bool {
		return fixedFitMaxError(samples, minPoints+i) <= tolerance
	}) + minPoints

	satisfied := 1.0
	if optimal > maxPoints {
		// Even the largest budget misses the tolerance; recommend it anyway.
		optimal = maxPoints
		satisfied = 0
	}

	achieved := fixedFitMaxError(samples, optimal)
	score := 1.0
	if satisfied == 0 {
		score = numeric.Clamp01(numeric.SafeDivide(tolerance, achieved, 0))
	}

	return Result{
		OptimalPointCount: optimal,
		Score:             score,
		Method:            MethodErrorBound,
		Metrics: map[string]float64{
			"achieved_error": achieved,
			"satisfied":      satisfied,
		},
	}
}

func fixedFitMaxError(samples []curve.Sample, controlPoints int) float64 {
	seg, err := fit.BSplineFixed(samples, controlPoints)
	if err != nil {
		return math.Inf(1)
	}

	var maxErr float64
	for _, s := range samples {
		maxErr = math.Max(maxErr, math.Abs(seg.Evaluate(s.Time)-s.Value))
	}

	return maxErr
}

// statistical maps the signal-to-noise ratio to an adaptive upper bound
// clamp(10 + snr*5, 10, min(n/2, 200)) and recommends it, reporting variance,
// noise level and SNR as side metrics.
func statistical(samples []curve.Sample, minPoints, maxPoints int) Result {
	values := curve.Values(samples)

	variance := stats.Variance(values)
	noise := stats.NoiseLevel(values)
	snr := stats.SNR(values)

	upperCap := float64(min(len(samples)/2, 200))
	adaptive := numeric.Clamp(10+snr*5, 10, upperCap)
	optimal := numeric.ClampInt(int(adaptive), minPoints, maxPoints)

	return Result{
		OptimalPointCount: optimal,
		Score:             numeric.Clamp01(snr / (snr + 10)),
		Method:            MethodStatistical,
		Metrics: map[string]float64{
			"variance":       variance,
			"noise_level":    noise,
			"snr":            snr,
			"adaptive_upper": adaptive,
		},
	}
}
