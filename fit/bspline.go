package fit

import (
	"fmt"

	"github.com/HarukaKajita/curvecompress/curve"
	"github.com/HarukaKajita/curvecompress/errs"
	"github.com/HarukaKajita/curvecompress/internal/stats"
)

// BSpline fits adaptive 4-point uniform cubic B-spline segments over the full
// sample range. Ranges shorter than four samples fall back to linear pieces;
// ranges whose candidate misses tolerance are bisected at their midpoint.
func BSpline(samples []curve.Sample, tolerance float64) ([]curve.Segment, error) {
	if err := validateFitInput(samples, tolerance); err != nil {
		return nil, err
	}

	return bsplineRange(samples, 0, len(samples)-1, tolerance), nil
}

// bsplineRange recursively fits samples[start..end].
func bsplineRange(samples []curve.Sample, start, end int, tolerance float64) []curve.Segment {
	if end-start <= 1 {
		return []curve.Segment{linearSegment(samples, start, end)}
	}

	if end-start <= 3 {
		// Too short for a 4-point spline. A linear leaf usually suffices, but
		// it still has to honor the tolerance bound, so bisect when it misses.
		seg := linearSegment(samples, start, end)
		if maxRangeError(&seg, samples, start, end) <= tolerance {
			return []curve.Segment{seg}
		}

		return bisect(samples, start, end, tolerance)
	}

	seg := bsplineCandidate(samples, start, end)
	if maxRangeError(&seg, samples, start, end) <= tolerance {
		return []curve.Segment{seg}
	}

	return bisect(samples, start, end, tolerance)
}

func bisect(samples []curve.Sample, start, end int, tolerance float64) []curve.Segment {
	mid := (start + end) / 2
	left := bsplineRange(samples, start, mid, tolerance)
	right := bsplineRange(samples, mid, end, tolerance)

	return append(left, right...)
}

// bsplineCandidate builds the 4-control-point candidate for samples[start..end]:
// endpoints pinned to the range boundary samples, interior points at the 1/3
// and 2/3 index offsets. The interior placement is deliberately simple; the
// subdividing envelope compensates where it is too crude.
func bsplineCandidate(samples []curve.Sample, start, end int) curve.Segment {
	span := end - start
	i1 := start + span/3
	i2 := start + 2*span/3

	return curve.NewBSplineSegment([]curve.Point{
		{X: samples[start].Time, Y: samples[start].Value},
		{X: samples[i1].Time, Y: samples[i1].Value},
		{X: samples[i2].Time, Y: samples[i2].Value},
		{X: samples[end].Time, Y: samples[end].Value},
	})
}

// BSplineFixed fits a single B-spline segment with exactly controlPoints
// control points: uniform index placement followed by a bounded local-average
// refinement of the interior points. Endpoints are never moved.
//
// This variant serves fixed point budgets and the elbow-method estimator,
// which needs a comparable fit at every candidate count.
//
// Returns:
//   - curve.Segment: The fitted B-spline segment.
//   - error: errs.ErrInvalidPointCount if controlPoints is outside [2, len(samples)].
func BSplineFixed(samples []curve.Sample, controlPoints int) (curve.Segment, error) {
	if err := curve.ValidateSamples(samples, 2); err != nil {
		return curve.Segment{}, err
	}
	if controlPoints < 2 || controlPoints > len(samples) {
		return curve.Segment{}, fmt.Errorf("%w: %d not in [2, %d]",
			errs.ErrInvalidPointCount, controlPoints, len(samples))
	}

	n := len(samples)
	last := n - 1

	points := make([]curve.Point, controlPoints)
	for i := range points {
		idx := i * last / (controlPoints - 1)
		points[i] = curve.Point{X: samples[idx].Time, Y: samples[idx].Value}
	}

	// Windowed local-average refinement of interior control points: each
	// interior point takes the mean value of the samples around its anchor
	// index. Window size n/(2N) bounds the smoothing reach.
	window := n / (2 * controlPoints)
	if window > 0 {
		for i := 1; i < controlPoints-1; i++ {
			idx := i * last / (controlPoints - 1)
			lo := max(0, idx-window)
			hi := min(last, idx+window)
			points[i].Y = stats.Mean(curve.Values(samples[lo : hi+1]))
		}
	}

	return curve.NewBSplineSegment(points), nil
}
