package curve

import (
	"math"

	"github.com/HarukaKajita/curvecompress/errs"
	"github.com/HarukaKajita/curvecompress/format"
	"github.com/HarukaKajita/curvecompress/internal/numeric"
)

// Segment is one piece of a compressed curve, covering [StartTime, EndTime].
//
// Segment is a tagged variant over the three segment shapes. The tag selects
// which fields are meaningful:
//
//   - format.SegmentLinear: the endpoint fields only.
//   - format.SegmentBezier: endpoints plus InTangent/OutTangent. Tangents are
//     slopes (value units per time unit); evaluation scales them by the segment
//     duration, i.e. the segment is stored in Hermite form.
//   - format.SegmentBSpline: ControlPoints (>=2). Four or more control points
//     evaluate with the uniform cubic B-spline basis; fewer fall back to linear
//     interpolation across the control polygon.
//
// Consecutive segments of a curve share their boundary: EndTime/EndValue of
// segment i equal StartTime/StartValue of segment i+1.
type Segment struct {
	Type format.SegmentType

	StartTime  float64
	StartValue float64
	EndTime    float64
	EndValue   float64

	// InTangent and OutTangent are the Hermite slopes at the segment ends.
	// Meaningful for Bezier segments only.
	InTangent  float64
	OutTangent float64

	// ControlPoints parameterize a B-spline segment. Meaningful for B-spline
	// segments only.
	ControlPoints []Point
}

// NewLinearSegment builds a straight segment between two points.
func NewLinearSegment(startTime, startValue, endTime, endValue float64) Segment {
	return Segment{
		Type:       format.SegmentLinear,
		StartTime:  startTime,
		StartValue: startValue,
		EndTime:    endTime,
		EndValue:   endValue,
	}
}

// NewBezierSegment builds a cubic Hermite/Bezier segment. The tangents are
// slopes at the endpoints; they are scaled by the segment duration at
// evaluation time.
func NewBezierSegment(startTime, startValue, endTime, endValue, inTangent, outTangent float64) Segment {
	return Segment{
		Type:       format.SegmentBezier,
		StartTime:  startTime,
		StartValue: startValue,
		EndTime:    endTime,
		EndValue:   endValue,
		InTangent:  inTangent,
		OutTangent: outTangent,
	}
}

// NewBSplineSegment builds a B-spline segment from its control points. The
// segment time span is taken from the first and last control point, and the
// stored endpoint values pin the boundary samples the fitter placed there.
func NewBSplineSegment(controlPoints []Point) Segment {
	seg := Segment{
		Type:          format.SegmentBSpline,
		ControlPoints: controlPoints,
	}
	if n := len(controlPoints); n > 0 {
		seg.StartTime = controlPoints[0].X
		seg.StartValue = controlPoints[0].Y
		seg.EndTime = controlPoints[n-1].X
		seg.EndValue = controlPoints[n-1].Y
	}

	return seg
}

// Duration returns the time span covered by the segment.
func (s *Segment) Duration() float64 {
	return s.EndTime - s.StartTime
}

// Evaluate returns the segment value at time t. Times outside the segment span
// are clamped to the boundary parameter. An unknown segment type evaluates as
// linear, mirroring the engine-wide policy of producing a defined value rather
// than failing.
func (s *Segment) Evaluate(t float64) float64 {
	switch s.Type {
	case format.SegmentLinear:
		return s.evaluateLinear(t)
	case format.SegmentBezier:
		return s.evaluateBezier(t)
	case format.SegmentBSpline:
		return s.evaluateBSpline(t)
	default:
		return s.evaluateLinear(t)
	}
}

// Validate checks the segment invariants for its tagged shape.
func (s *Segment) Validate() error {
	if s.EndTime < s.StartTime {
		return errs.ErrInvalidSegment
	}

	switch s.Type {
	case format.SegmentLinear, format.SegmentBezier:
		return nil
	case format.SegmentBSpline:
		if len(s.ControlPoints) < 2 {
			return errs.ErrInvalidSegment
		}

		return nil
	default:
		return errs.ErrInvalidSegmentType
	}
}

func (s *Segment) evaluateLinear(t float64) float64 {
	u := numeric.SafeLerpParameter(t, s.StartTime, s.EndTime)

	return numeric.Lerp(s.StartValue, s.EndValue, u)
}

// evaluateBezier blends the Hermite basis
//
//	h1 = 2t³-3t²+1, h2 = -2t³+3t², h3 = t³-2t²+t, h4 = t³-t²
//
// with both tangents scaled by the segment duration.
func (s *Segment) evaluateBezier(t float64) float64 {
	u := numeric.SafeLerpParameter(t, s.StartTime, s.EndTime)
	u2 := u * u
	u3 := u2 * u

	h1 := 2*u3 - 3*u2 + 1
	h2 := -2*u3 + 3*u2
	h3 := u3 - 2*u2 + u
	h4 := u3 - u2

	d := s.Duration()

	return h1*s.StartValue + h2*s.EndValue + h3*s.InTangent*d + h4*s.OutTangent*d
}

// evaluateBSpline maps t to a span of the uniform cubic B-spline defined by
// the control points. With n control points there are n-3 cubic spans; fewer
// than four control points degenerate to linear interpolation across the
// control polygon.
func (s *Segment) evaluateBSpline(t float64) float64 {
	n := len(s.ControlPoints)
	switch {
	case n == 0:
		return 0
	case n == 1:
		return s.ControlPoints[0].Y
	case n < 4:
		return s.evaluateControlPolygon(t)
	}

	spans := n - 3
	u := numeric.SafeLerpParameter(t, s.StartTime, s.EndTime) * float64(spans)
	span := int(math.Floor(u))
	if span >= spans {
		span = spans - 1
	}
	u -= float64(span)

	p0 := s.ControlPoints[span].Y
	p1 := s.ControlPoints[span+1].Y
	p2 := s.ControlPoints[span+2].Y
	p3 := s.ControlPoints[span+3].Y

	return bsplineBasis(p0, p1, p2, p3, u)
}

// evaluateControlPolygon interpolates linearly across the control polygon by
// time, used for the 2- and 3-point degenerate cases.
func (s *Segment) evaluateControlPolygon(t float64) float64 {
	pts := s.ControlPoints
	if t <= pts[0].X {
		return pts[0].Y
	}

	for i := 1; i < len(pts); i++ {
		if t <= pts[i].X {
			u := numeric.SafeLerpParameter(t, pts[i-1].X, pts[i].X)

			return numeric.Lerp(pts[i-1].Y, pts[i].Y, u)
		}
	}

	return pts[len(pts)-1].Y
}

// bsplineBasis evaluates one uniform cubic B-spline span at local parameter u:
//
//	b0 = (1-u)³/6
//	b1 = (3u³-6u²+4)/6
//	b2 = (-3u³+3u²+3u+1)/6
//	b3 = u³/6
func bsplineBasis(p0, p1, p2, p3, u float64) float64 {
	u2 := u * u
	u3 := u2 * u

	omu := 1 - u
	b0 := omu * omu * omu / 6
	b1 := (3*u3 - 6*u2 + 4) / 6
	b2 := (-3*u3 + 3*u2 + 3*u + 1) / 6
	b3 := u3 / 6

	return b0*p0 + b1*p1 + b2*p2 + b3*p3
}
