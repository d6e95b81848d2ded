// Package curvecompress compresses time-series curves: given an ordered
// sequence of (time, value) samples, it produces a compact piecewise-curve
// representation (a short sequence of linear, cubic Bezier or cubic B-spline
// segments) that reconstructs the original signal within a caller-specified
// error tolerance.
//
// # Core pieces
//
//   - Importance-weighted RDP simplification (simplify package)
//   - Adaptive Bezier and B-spline fitters (fit package)
//   - Per-sample importance scoring (importance package)
//   - Control point count estimation, seven algorithms (estimate package)
//   - Data characteristics analysis and method selection (analyze package)
//   - Binary serialization of compressed curves (blob package)
//
// The engine is single-threaded, synchronous and side-effect-free over its
// inputs: every call operates on caller-owned slices and returns caller-owned
// results. Compression is greedy/heuristic: it does not guarantee a global
// error minimum, only the per-segment tolerance bound.
//
// # Basic usage
//
//	samples := []curve.Sample{...} // sorted non-decreasing by time
//
//	// Convenience entry point, defaults to the Bezier fitter:
//	c, err := curvecompress.CompressWithTolerance(samples, 0.01)
//
//	// Full control:
//	c, err = curvecompress.Compress(samples, curvecompress.Params{
//	    Tolerance:           0.01,
//	    Method:              format.MethodRDPBezier,
//	    DataKind:            format.KindAnimation,
//	    ImportanceThreshold: 1.0,
//	    Weights:             importance.AnimationWeights(),
//	})
//
//	value := c.Evaluate(0.5)
//
// This package provides the top-level entry points and the method router;
// the subpackages expose the individual algorithms for fine-grained use.
package curvecompress

import (
	"github.com/HarukaKajita/curvecompress/analyze"
	"github.com/HarukaKajita/curvecompress/curve"
	"github.com/HarukaKajita/curvecompress/errs"
	"github.com/HarukaKajita/curvecompress/estimate"
	"github.com/HarukaKajita/curvecompress/fit"
	"github.com/HarukaKajita/curvecompress/format"
	"github.com/HarukaKajita/curvecompress/importance"
	"github.com/HarukaKajita/curvecompress/simplify"
)

// Params configures one compression call.
type Params struct {
	// Tolerance is the maximum acceptable absolute reconstruction error.
	// Must be positive.
	Tolerance float64

	// Method selects the compression pipeline. An unrecognized value falls
	// back to format.MethodBezier: producing some valid curve beats aborting
	// a pipeline.
	Method format.Method

	// DataKind hints at the data's nature. It only seeds the importance
	// weight preset when Weights is left zero; it never changes behavior
	// beyond that.
	DataKind format.DataKind

	// ImportanceThreshold scales how strongly importance boosts RDP's
	// distance test. Must be positive.
	ImportanceThreshold float64

	// Weights blends the importance components. All four must be
	// non-negative; a zero value is replaced by the DataKind preset.
	Weights importance.Weights
}

// DefaultParams returns the default configuration for a tolerance: the Bezier
// fitter with evenly blended importance weights.
func DefaultParams(tolerance float64) Params {
	return Params{
		Tolerance:           tolerance,
		Method:              format.MethodBezier,
		DataKind:            format.KindGeneric,
		ImportanceThreshold: 1.0,
		Weights:             importance.DefaultWeights(),
	}
}

// Compress reduces samples to a compressed curve according to params.
//
// Input validation fails fast; numeric edge cases (duplicate timestamps,
// constant signals, degenerate chords) never fail; they are absorbed into
// defined defaults by the numeric kernel. Two-point input always yields a
// single linear segment regardless of method.
//
// Parameters:
//   - samples: At least 2 points, sorted non-decreasing by time. Never mutated.
//   - params: See Params; Tolerance and ImportanceThreshold must be positive.
//
// Returns:
//   - *curve.Curve: The compressed curve, owned by the caller.
//   - error: An errs sentinel (possibly wrapped) for invalid input.
func Compress(samples []curve.Sample, params Params) (*curve.Curve, error) {
	if err := validateParams(samples, &params); err != nil {
		return nil, err
	}

	// Every method short-circuits a two-point signal to one linear segment.
	if len(samples) == 2 {
		return curve.NewCurve([]curve.Segment{curve.NewLinearSegment(
			samples[0].Time, samples[0].Value,
			samples[1].Time, samples[1].Value,
		)})
	}

	segments, err := dispatch(samples, params)
	if err != nil {
		return nil, err
	}

	return curve.NewCurve(segments)
}

// CompressWithTolerance is the convenience entry point: default parameters
// with the Bezier fitter.
func CompressWithTolerance(samples []curve.Sample, tolerance float64) (*curve.Curve, error) {
	return Compress(samples, DefaultParams(tolerance))
}

// CompressAuto analyzes the data characteristics, selects the best-scoring
// method and compresses with it.
//
// Returns:
//   - *curve.Curve: The compressed curve.
//   - analyze.Selection: The method ranking that drove the choice.
//   - error: Validation error from analysis or compression.
func CompressAuto(samples []curve.Sample, tolerance float64) (*curve.Curve, analyze.Selection, error) {
	selection, err := analyze.SelectMethod(samples)
	if err != nil {
		return nil, analyze.Selection{}, err
	}

	params := DefaultParams(tolerance)
	params.Method = selection.Primary

	c, err := Compress(samples, params)
	if err != nil {
		return nil, selection, err
	}

	return c, selection, nil
}

// EstimateAll runs all seven control point estimators and returns their
// results keyed by method name. See the estimate package for the individual
// algorithms.
func EstimateAll(samples []curve.Sample, tolerance float64, minPoints, maxPoints int) (map[string]estimate.Result, error) {
	return estimate.All(samples, tolerance, minPoints, maxPoints)
}

// Analyze measures the descriptive characteristics of samples (smoothness,
// complexity, noise, variability, temporal density and a data kind guess).
func Analyze(samples []curve.Sample) (analyze.DataCharacteristics, error) {
	return analyze.Analyze(samples)
}

// SelectMethod analyzes samples and ranks the compression methods against the
// measured characteristics.
func SelectMethod(samples []curve.Sample) (analyze.Selection, error) {
	return analyze.SelectMethod(samples)
}

// Stats summarizes one compression outcome for monitoring and tooling.
type Stats struct {
	// OriginalCount is the input sample count.
	OriginalCount int

	// SegmentCount is the number of segments in the compressed curve.
	SegmentCount int

	// CompressionRatio is SegmentCount / OriginalCount; values well below 1
	// indicate effective compression.
	CompressionRatio float64

	// MaxError and MeanError measure the reconstruction error against the
	// original samples.
	MaxError  float64
	MeanError float64
}

// Measure computes compression statistics of c against the original samples.
func Measure(samples []curve.Sample, c *curve.Curve) Stats {
	s := Stats{
		OriginalCount: len(samples),
		SegmentCount:  c.SegmentCount(),
		MaxError:      c.MaxError(samples),
		MeanError:     c.MeanError(samples),
	}
	if s.OriginalCount > 0 {
		s.CompressionRatio = float64(s.SegmentCount) / float64(s.OriginalCount)
	}

	return s
}

func validateParams(samples []curve.Sample, params *Params) error {
	if err := curve.ValidateSamples(samples, 2); err != nil {
		return err
	}
	if params.Tolerance <= 0 {
		return errs.ErrInvalidTolerance
	}
	if params.ImportanceThreshold <= 0 {
		return errs.ErrInvalidImportanceThreshold
	}

	w := params.Weights
	if w.Curvature < 0 || w.ChangeRate < 0 || w.LocalVariance < 0 || w.ExtremeValue < 0 {
		return errs.ErrInvalidWeights
	}
	if w == (importance.Weights{}) {
		params.Weights = importance.WeightsForKind(params.DataKind)
	}

	return nil
}

// dispatch routes to the pipeline matching the resolved method. The method
// set is closed; anything else takes the explicit Bezier fallback arm.
func dispatch(samples []curve.Sample, params Params) ([]curve.Segment, error) {
	switch params.Method {
	case format.MethodRDPLinear:
		return rdpLinear(samples, params)
	case format.MethodRDPBSpline:
		return rdpRefit(samples, params, fit.BSpline)
	case format.MethodRDPBezier:
		return rdpRefit(samples, params, fit.Bezier)
	case format.MethodBSpline:
		return fit.BSpline(samples, params.Tolerance)
	case format.MethodBezier:
		return fit.Bezier(samples, params.Tolerance)
	default:
		return fit.Bezier(samples, params.Tolerance)
	}
}

// rdpLinear joins the RDP survivors with one linear segment per consecutive
// pair.
func rdpLinear(samples []curve.Sample, params Params) ([]curve.Segment, error) {
	indices, err := rdpIndices(samples, params)
	if err != nil {
		return nil, err
	}

	segments := make([]curve.Segment, 0, len(indices)-1)
	for k := 1; k < len(indices); k++ {
		i, j := indices[k-1], indices[k]
		segments = append(segments, curve.NewLinearSegment(
			samples[i].Time, samples[i].Value,
			samples[j].Time, samples[j].Value,
		))
	}

	return segments, nil
}

// rdpRefit re-fits each survivor gap with the given adaptive fitter, so fine
// local curvature removed by RDP's line test can still be represented by the
// richer basis.
func rdpRefit(
	samples []curve.Sample,
	params Params,
	fitter func([]curve.Sample, float64) ([]curve.Segment, error),
) ([]curve.Segment, error) {
	indices, err := rdpIndices(samples, params)
	if err != nil {
		return nil, err
	}

	var segments []curve.Segment
	for k := 1; k < len(indices); k++ {
		i, j := indices[k-1], indices[k]
		if j-i == 1 {
			segments = append(segments, curve.NewLinearSegment(
				samples[i].Time, samples[i].Value,
				samples[j].Time, samples[j].Value,
			))

			continue
		}

		fitted, err := fitter(samples[i:j+1], params.Tolerance)
		if err != nil {
			return nil, err
		}
		segments = append(segments, fitted...)
	}

	return segments, nil
}

func rdpIndices(samples []curve.Sample, params Params) ([]int, error) {
	return simplify.Indices(samples, simplify.Config{
		Tolerance:           params.Tolerance,
		ImportanceThreshold: params.ImportanceThreshold,
		Weights:             params.Weights,
	})
}
