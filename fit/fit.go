// Package fit provides the adaptive curve fitters: a Bezier fitter driven by
// weighted finite-difference tangents and a 4-point uniform cubic B-spline
// fitter, both using the same divide-and-conquer envelope: fit a candidate
// over the range, accept it when every sample lies within tolerance, bisect
// otherwise.
//
// Neither fitter optimizes globally; they are greedy by construction and
// documented as such. What they do guarantee is the per-leaf bound: every
// emitted segment reconstructs each sample of its range within tolerance.
package fit

import (
	"math"

	"github.com/HarukaKajita/curvecompress/curve"
	"github.com/HarukaKajita/curvecompress/errs"
)

// maxRangeError measures the worst absolute reconstruction error of seg
// against samples[start..end] inclusive.
func maxRangeError(seg *curve.Segment, samples []curve.Sample, start, end int) float64 {
	var maxErr float64
	for i := start; i <= end; i++ {
		err := math.Abs(seg.Evaluate(samples[i].Time) - samples[i].Value)
		maxErr = math.Max(maxErr, err)
	}

	return maxErr
}

// linearSegment builds the straight segment joining samples start and end.
func linearSegment(samples []curve.Sample, start, end int) curve.Segment {
	return curve.NewLinearSegment(
		samples[start].Time, samples[start].Value,
		samples[end].Time, samples[end].Value,
	)
}

// validateFitInput is the shared entry-point validation of both fitters.
func validateFitInput(samples []curve.Sample, tolerance float64) error {
	if err := curve.ValidateSamples(samples, 2); err != nil {
		return err
	}
	if tolerance <= 0 {
		return errs.ErrInvalidTolerance
	}

	return nil
}
