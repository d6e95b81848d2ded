package curve

import (
	"fmt"
	"math"
	"sort"

	"github.com/HarukaKajita/curvecompress/errs"
	"github.com/HarukaKajita/curvecompress/format"
)

// boundaryTolerance is the floating slack allowed when checking value
// continuity between adjacent segments.
const boundaryTolerance = 1e-9

// Curve is a compressed curve: a non-empty sequence of segments sorted by
// start time, contiguous and value-continuous at segment boundaries.
//
// A Curve is an immutable result value owned by the caller. Evaluation is a
// pure function of (curve, time).
type Curve struct {
	Segments []Segment
}

// NewCurve builds a curve from segments and validates the sequence invariants.
func NewCurve(segments []Segment) (*Curve, error) {
	c := &Curve{Segments: segments}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// StartTime returns the time where the curve coverage begins.
func (c *Curve) StartTime() float64 {
	return c.Segments[0].StartTime
}

// EndTime returns the time where the curve coverage ends.
func (c *Curve) EndTime() float64 {
	return c.Segments[len(c.Segments)-1].EndTime
}

// SegmentCount returns the number of segments in the curve.
func (c *Curve) SegmentCount() int {
	return len(c.Segments)
}

// Evaluate reconstructs the signal value at time t.
//
// Interior lookups use a binary search over segment start times; each segment
// owns [StartTime, EndTime) except the last, which is closed on the right.
// Times outside the covered range clamp to the boundary value of the first or
// last segment (constant extrapolation, never an error).
func (c *Curve) Evaluate(t float64) float64 {
	segs := c.Segments
	if len(segs) == 0 {
		return 0
	}

	if t <= segs[0].StartTime {
		return segs[0].Evaluate(segs[0].StartTime)
	}
	last := &segs[len(segs)-1]
	if t >= last.EndTime {
		return last.Evaluate(last.EndTime)
	}

	// First segment whose end lies beyond t owns it.
	idx := sort.Search(len(segs), func(i int) bool {
		return segs[i].EndTime > t
	})
	if idx == len(segs) {
		idx = len(segs) - 1
	}

	return segs[idx].Evaluate(t)
}

// ToSamples resamples the curve into count uniformly spaced samples across its
// covered range. A count below 2 yields the two boundary samples.
func (c *Curve) ToSamples(count int) []Sample {
	if count < 2 {
		count = 2
	}

	start := c.StartTime()
	end := c.EndTime()
	step := (end - start) / float64(count-1)

	samples := make([]Sample, count)
	for i := range samples {
		t := start + float64(i)*step
		if i == count-1 {
			t = end // avoid accumulating step error into the last sample
		}
		samples[i] = Sample{Time: t, Value: c.Evaluate(t)}
	}

	return samples
}

// MaxError returns the maximum absolute reconstruction error of the curve
// against the original samples.
func (c *Curve) MaxError(samples []Sample) float64 {
	var maxErr float64
	for _, s := range samples {
		maxErr = math.Max(maxErr, math.Abs(c.Evaluate(s.Time)-s.Value))
	}

	return maxErr
}

// MeanError returns the mean absolute reconstruction error of the curve
// against the original samples.
func (c *Curve) MeanError(samples []Sample) float64 {
	if len(samples) == 0 {
		return 0
	}

	var sum float64
	for _, s := range samples {
		sum += math.Abs(c.Evaluate(s.Time) - s.Value)
	}

	return sum / float64(len(samples))
}

// Validate checks the curve-level invariants: at least one segment, each
// segment valid for its type, segments sorted by start time, contiguous and
// value-continuous at shared boundaries.
//
// B-spline segments are exempt from the exact value-continuity check: the
// uniform cubic basis does not interpolate its end control points, so the
// reconstructed boundary value legitimately deviates from the stored one
// within the fitting tolerance.
func (c *Curve) Validate() error {
	if len(c.Segments) == 0 {
		return errs.ErrEmptyCurve
	}

	for i := range c.Segments {
		seg := &c.Segments[i]
		if err := seg.Validate(); err != nil {
			return fmt.Errorf("segment %d: %w", i, err)
		}

		if i == 0 {
			continue
		}
		prev := &c.Segments[i-1]
		if seg.StartTime != prev.EndTime {
			return fmt.Errorf("%w: segment %d starts at %g, previous ends at %g",
				errs.ErrInvalidSegment, i, seg.StartTime, prev.EndTime)
		}
		if seg.Type != format.SegmentBSpline && prev.Type != format.SegmentBSpline &&
			math.Abs(seg.StartValue-prev.EndValue) > boundaryTolerance {
			return fmt.Errorf("%w: segment %d value discontinuity %g",
				errs.ErrInvalidSegment, i, seg.StartValue-prev.EndValue)
		}
	}

	return nil
}
