// Package estimate provides seven independent algorithms that recommend how
// many control points an adequate compression of a signal needs. Each
// algorithm is a pure function returning a Result; none depends on another's
// output, and All simply runs every one of them.
//
// The algorithms are heuristics: they trade global optimality for cheap,
// explainable recommendations, and each reports a confidence score plus the
// side metrics it derived along the way.
package estimate

import (
	"fmt"

	"github.com/HarukaKajita/curvecompress/curve"
	"github.com/HarukaKajita/curvecompress/errs"
)

// Estimator method names as reported in Result.Method and keyed by All.
const (
	MethodElbow          = "elbow"
	MethodCurvature      = "curvature"
	MethodEntropy        = "entropy"
	MethodRDPAdaptive    = "rdp_adaptive"
	MethodTotalVariation = "total_variation"
	MethodErrorBound     = "error_bound"
	MethodStatistical    = "statistical"
)

// Result is the immutable outcome of one estimation algorithm.
type Result struct {
	// OptimalPointCount is the recommended control point count, always within
	// the [minPoints, maxPoints] range the caller supplied.
	OptimalPointCount int

	// Score is the algorithm's confidence in its own recommendation, in [0,1].
	// Scores are comparable across algorithms only loosely; they mainly rank
	// how decisive the underlying statistic was.
	Score float64

	// Method names the algorithm that produced this result.
	Method string

	// Metrics carries the algorithm-specific side measurements (e.g. SNR and
	// noise level for the statistical estimator).
	Metrics map[string]float64
}

// All runs every estimation algorithm and returns the results keyed by method
// name.
//
// Parameters:
//   - samples: The input signal, sorted non-decreasing by time (>= 4 points).
//   - tolerance: Error tolerance used by the tolerance-driven algorithms.
//   - minPoints, maxPoints: Inclusive recommendation range; 2 <= min <= max <= len(samples).
//
// Returns:
//   - map[string]Result: One result per algorithm.
//   - error: Validation error for bad input; individual algorithms cannot fail
//     once the shared validation passes.
func All(samples []curve.Sample, tolerance float64, minPoints, maxPoints int) (map[string]Result, error) {
	if err := validate(samples, tolerance, minPoints, maxPoints); err != nil {
		return nil, err
	}

	results := map[string]Result{
		MethodElbow:          elbow(samples, minPoints, maxPoints),
		MethodCurvature:      curvatureAnalysis(samples, minPoints, maxPoints),
		MethodEntropy:        entropy(samples, minPoints, maxPoints),
		MethodRDPAdaptive:    rdpAdaptive(samples, minPoints, maxPoints),
		MethodTotalVariation: totalVariation(samples, minPoints, maxPoints),
		MethodErrorBound:     errorBound(samples, tolerance, minPoints, maxPoints),
		MethodStatistical:    statistical(samples, minPoints, maxPoints),
	}

	return results, nil
}

// Elbow recommends the count at the maximum curvature of the error-vs-count
// curve of fixed-count B-spline fits.
func Elbow(samples []curve.Sample, tolerance float64, minPoints, maxPoints int) (Result, error) {
	if err := validate(samples, tolerance, minPoints, maxPoints); err != nil {
		return Result{}, err
	}

	return elbow(samples, minPoints, maxPoints), nil
}

// CurvatureAnalysis recommends a count from how concentrated the signal's
// local curvature is.
func CurvatureAnalysis(samples []curve.Sample, tolerance float64, minPoints, maxPoints int) (Result, error) {
	if err := validate(samples, tolerance, minPoints, maxPoints); err != nil {
		return Result{}, err
	}

	return curvatureAnalysis(samples, minPoints, maxPoints), nil
}

// Entropy recommends a count from the Shannon entropy of the value histogram.
func Entropy(samples []curve.Sample, tolerance float64, minPoints, maxPoints int) (Result, error) {
	if err := validate(samples, tolerance, minPoints, maxPoints); err != nil {
		return Result{}, err
	}

	return entropy(samples, minPoints, maxPoints), nil
}

// RDPAdaptive recommends a count by searching for the RDP tolerance whose
// survivor set hits the middle of the requested range.
func RDPAdaptive(samples []curve.Sample, tolerance float64, minPoints, maxPoints int) (Result, error) {
	if err := validate(samples, tolerance, minPoints, maxPoints); err != nil {
		return Result{}, err
	}

	return rdpAdaptive(samples, minPoints, maxPoints), nil
}

// TotalVariation recommends a count from the signal's total variation, a cheap
// complexity proxy.
func TotalVariation(samples []curve.Sample, tolerance float64, minPoints, maxPoints int) (Result, error) {
	if err := validate(samples, tolerance, minPoints, maxPoints); err != nil {
		return Result{}, err
	}

	return totalVariation(samples, minPoints, maxPoints), nil
}

// ErrorBound recommends the smallest count whose fixed-count fit stays within
// tolerance, found by binary search.
func ErrorBound(samples []curve.Sample, tolerance float64, minPoints, maxPoints int) (Result, error) {
	if err := validate(samples, tolerance, minPoints, maxPoints); err != nil {
		return Result{}, err
	}

	return errorBound(samples, tolerance, minPoints, maxPoints), nil
}

// Statistical recommends a count from the signal-to-noise ratio, reporting
// variance, noise level and SNR as side metrics.
func Statistical(samples []curve.Sample, tolerance float64, minPoints, maxPoints int) (Result, error) {
	if err := validate(samples, tolerance, minPoints, maxPoints); err != nil {
		return Result{}, err
	}

	return statistical(samples, minPoints, maxPoints), nil
}

func validate(samples []curve.Sample, tolerance float64, minPoints, maxPoints int) error {
	if err := curve.ValidateSamples(samples, 4); err != nil {
		return err
	}
	if tolerance <= 0 {
		return errs.ErrInvalidTolerance
	}
	if minPoints < 2 || maxPoints < minPoints || maxPoints > len(samples) {
		return fmt.Errorf("%w: [%d, %d] with %d samples",
			errs.ErrInvalidPointRange, minPoints, maxPoints, len(samples))
	}

	return nil
}
