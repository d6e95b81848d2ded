package fit

import (
	"github.com/HarukaKajita/curvecompress/curve"
	"github.com/HarukaKajita/curvecompress/internal/numeric"
)

// tangentPairs is how many point pairs contribute to each endpoint tangent.
const tangentPairs = 3

// Bezier fits adaptive cubic Hermite/Bezier segments over the full sample
// range. Each accepted segment reconstructs every sample of its range within
// tolerance; ranges that miss are bisected at their midpoint.
//
// This is the engine's default fitter: the Hermite form maps directly onto a
// host engine's keyframe tangents.
func Bezier(samples []curve.Sample, tolerance float64) ([]curve.Segment, error) {
	if err := validateFitInput(samples, tolerance); err != nil {
		return nil, err
	}

	return bezierRange(samples, 0, len(samples)-1, tolerance), nil
}

// bezierRange recursively fits samples[start..end].
func bezierRange(samples []curve.Sample, start, end int, tolerance float64) []curve.Segment {
	if end-start <= 1 {
		// Two points define the segment exactly.
		return []curve.Segment{linearSegment(samples, start, end)}
	}

	seg := bezierCandidate(samples, start, end)
	if maxRangeError(&seg, samples, start, end) <= tolerance {
		return []curve.Segment{seg}
	}

	mid := (start + end) / 2
	left := bezierRange(samples, start, mid, tolerance)
	right := bezierRange(samples, mid, end, tolerance)

	return append(left, right...)
}

// bezierCandidate builds the Hermite segment for samples[start..end] using
// weighted finite-difference tangent estimation at both endpoints.
func bezierCandidate(samples []curve.Sample, start, end int) curve.Segment {
	inTangent := startTangent(samples, start, end)
	outTangent := endTangent(samples, start, end)

	return curve.NewBezierSegment(
		samples[start].Time, samples[start].Value,
		samples[end].Time, samples[end].Value,
		inTangent, outTangent,
	)
}

// startTangent estimates the slope at the range start from up to three sample
// pairs walking inward, weighted 1/(i+1) so the nearest pair dominates.
func startTangent(samples []curve.Sample, start, end int) float64 {
	var weighted, total float64
	for i := 0; i < tangentPairs && start+i+1 <= end; i++ {
		a, b := samples[start+i], samples[start+i+1]
		w := 1 / float64(i+1)
		weighted += w * numeric.SafeSlope(a.Time, a.Value, b.Time, b.Value)
		total += w
	}

	return numeric.SafeDivide(weighted, total, 0)
}

// endTangent mirrors startTangent from the range end walking inward.
func endTangent(samples []curve.Sample, start, end int) float64 {
	var weighted, total float64
	for i := 0; i < tangentPairs && end-i-1 >= start; i++ {
		a, b := samples[end-i-1], samples[end-i]
		w := 1 / float64(i+1)
		weighted += w * numeric.SafeSlope(a.Time, a.Value, b.Time, b.Value)
		total += w
	}

	return numeric.SafeDivide(weighted, total, 0)
}
