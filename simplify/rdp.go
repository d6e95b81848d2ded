// Package simplify implements importance-weighted Ramer-Douglas-Peucker point
// reduction.
//
// Classic RDP keeps the interior point with the largest perpendicular distance
// to the chord of the current range and recurses around it. This variant
// multiplies each distance by an importance boost, so visually or semantically
// salient points are retained even when their raw geometric deviation ties
// with a less interesting neighbor.
package simplify

import (
	"math"

	"github.com/HarukaKajita/curvecompress/curve"
	"github.com/HarukaKajita/curvecompress/errs"
	"github.com/HarukaKajita/curvecompress/importance"
	"github.com/HarukaKajita/curvecompress/internal/numeric"
)

// Config controls one simplification pass.
type Config struct {
	// Tolerance is the maximum boosted perpendicular distance a discarded
	// point may have from the chord of its range. Must be positive.
	Tolerance float64

	// ImportanceThreshold scales how strongly importance boosts a point's
	// distance: boosted = distance * (1 + importance*ImportanceThreshold).
	// Must be positive.
	ImportanceThreshold float64

	// Weights blends the importance components.
	Weights importance.Weights
}

// Indices reduces samples to the index subset that survives importance-
// weighted RDP at the configured tolerance. The result is sorted, starts at 0
// and ends at len(samples)-1.
func Indices(samples []curve.Sample, cfg Config) ([]int, error) {
	if err := curve.ValidateSamples(samples, 2); err != nil {
		return nil, err
	}
	if cfg.Tolerance <= 0 {
		return nil, errs.ErrInvalidTolerance
	}
	if cfg.ImportanceThreshold <= 0 {
		return nil, errs.ErrInvalidImportanceThreshold
	}

	s := &simplifier{
		samples: samples,
		scorer:  importance.NewScorer(samples, cfg.Weights),
		cfg:     cfg,
		keep:    make([]bool, len(samples)),
	}
	s.reduce(0, len(samples)-1)

	// The presence array deduplicates shared range endpoints in O(1) and
	// yields the indices already sorted.
	indices := make([]int, 0, len(samples))
	for i, kept := range s.keep {
		if kept {
			indices = append(indices, i)
		}
	}

	return indices, nil
}

type simplifier struct {
	samples []curve.Sample
	scorer  *importance.Scorer
	cfg     Config
	keep    []bool
}

// reduce recursively marks the points of [start, end] that must be kept.
func (s *simplifier) reduce(start, end int) {
	s.keep[start] = true
	s.keep[end] = true
	if end-start <= 1 {
		return
	}

	maxDist := 0.0
	maxIdx := -1
	for i := start + 1; i < end; i++ {
		dist := s.boostedDistance(i, start, end)
		// Strict comparison: the first index wins on equal distance, keeping
		// the recursion deterministic.
		if dist > maxDist {
			maxDist = dist
			maxIdx = i
		}
	}

	if maxIdx < 0 || maxDist <= s.cfg.Tolerance {
		// The whole range collapses to its endpoints.
		return
	}

	s.reduce(start, maxIdx)
	s.reduce(maxIdx, end)
}

// boostedDistance returns the perpendicular distance from sample i to the
// chord start..end, multiplied by the importance boost.
func (s *simplifier) boostedDistance(i, start, end int) float64 {
	dist := perpendicularDistance(s.samples[i], s.samples[start], s.samples[end])
	boost := 1 + s.scorer.Score(i)*s.cfg.ImportanceThreshold

	return dist * boost
}

// perpendicularDistance measures the point-to-chord distance in the
// (time, value) plane. A degenerate chord reduces to point distance.
func perpendicularDistance(p, chordStart, chordEnd curve.Sample) float64 {
	dx := chordEnd.Time - chordStart.Time
	dy := chordEnd.Value - chordStart.Value

	length := math.Hypot(dx, dy)
	if length < numeric.Epsilon {
		return math.Hypot(p.Time-chordStart.Time, p.Value-chordStart.Value)
	}

	return math.Abs(dy*p.Time-dx*p.Value+chordEnd.Time*chordStart.Value-chordEnd.Value*chordStart.Time) / length
}
