package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/HarukaKajita/curvecompress/errs"
)

func twoSegmentCurve(t *testing.T) *Curve {
	t.Helper()

	c, err := NewCurve([]Segment{
		NewLinearSegment(0, 0, 1, 2),
		NewLinearSegment(1, 2, 3, 0),
	})
	require.NoError(t, err)

	return c
}

func TestCurveEvaluate(t *testing.T) {
	c := twoSegmentCurve(t)

	require.Equal(t, 0.0, c.Evaluate(0))
	require.Equal(t, 1.0, c.Evaluate(0.5))
	require.Equal(t, 2.0, c.Evaluate(1))
	require.Equal(t, 1.0, c.Evaluate(2))
	require.Equal(t, 0.0, c.Evaluate(3))
}

func TestCurveEvaluateClampsOutsideRange(t *testing.T) {
	c := twoSegmentCurve(t)

	// Constant extrapolation, never an error.
	require.Equal(t, 0.0, c.Evaluate(-10))
	require.Equal(t, 0.0, c.Evaluate(100))
}

func TestCurveEvaluateIsPure(t *testing.T) {
	c := twoSegmentCurve(t)

	for _, tt := range []float64{-1, 0, 0.3, 1, 2.7, 3, 9} {
		first := c.Evaluate(tt)
		for n := 0; n < 5; n++ {
			require.Equal(t, math.Float64bits(first), math.Float64bits(c.Evaluate(tt)))
		}
	}
}

func TestCurveBoundaryOwnership(t *testing.T) {
	// A shared boundary time belongs to the right-hand segment; with a
	// continuous curve both sides agree anyway.
	c := twoSegmentCurve(t)
	require.Equal(t, 2.0, c.Evaluate(1))
}

func TestCurveToSamples(t *testing.T) {
	c := twoSegmentCurve(t)

	samples := c.ToSamples(7)
	require.Len(t, samples, 7)
	require.Equal(t, 0.0, samples[0].Time)
	require.Equal(t, 3.0, samples[6].Time)

	for _, s := range samples {
		require.Equal(t, c.Evaluate(s.Time), s.Value)
	}

	// Degenerate counts fall back to the two boundary samples.
	require.Len(t, c.ToSamples(0), 2)
}

func TestCurveErrors(t *testing.T) {
	c := twoSegmentCurve(t)

	samples := []Sample{{Time: 0, Value: 0}, {Time: 0.5, Value: 1.5}, {Time: 3, Value: 0}}
	require.InDelta(t, 0.5, c.MaxError(samples), 1e-12)
	require.InDelta(t, 0.5/3, c.MeanError(samples), 1e-12)
}

func TestNewCurveRejectsEmptySequence(t *testing.T) {
	_, err := NewCurve(nil)
	require.ErrorIs(t, err, errs.ErrEmptyCurve)
}

func TestNewCurveRejectsGap(t *testing.T) {
	_, err := NewCurve([]Segment{
		NewLinearSegment(0, 0, 1, 1),
		NewLinearSegment(2, 1, 3, 0), // starts after the previous end
	})
	require.ErrorIs(t, err, errs.ErrInvalidSegment)
}

func TestNewCurveRejectsValueDiscontinuity(t *testing.T) {
	_, err := NewCurve([]Segment{
		NewLinearSegment(0, 0, 1, 1),
		NewLinearSegment(1, 5, 2, 0), // value jumps at the boundary
	})
	require.ErrorIs(t, err, errs.ErrInvalidSegment)
}

func TestCurveAccessors(t *testing.T) {
	c := twoSegmentCurve(t)

	require.Equal(t, 0.0, c.StartTime())
	require.Equal(t, 3.0, c.EndTime())
	require.Equal(t, 2, c.SegmentCount())
}
