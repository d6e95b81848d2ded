package curvecompress

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/HarukaKajita/curvecompress/curve"
	"github.com/HarukaKajita/curvecompress/errs"
	"github.com/HarukaKajita/curvecompress/format"
	"github.com/HarukaKajita/curvecompress/importance"
)

var allMethods = []format.Method{
	format.MethodRDPLinear,
	format.MethodRDPBSpline,
	format.MethodRDPBezier,
	format.MethodBSpline,
	format.MethodBezier,
}

func sineSamples(n int) []curve.Sample {
	samples := make([]curve.Sample, n)
	for i := range samples {
		tt := float64(i) / float64(n-1)
		samples[i] = curve.Sample{Time: tt, Value: math.Sin(2 * math.Pi * tt)}
	}

	return samples
}

func TestTwoPointsAlwaysOneLinearSegment(t *testing.T) {
	samples := []curve.Sample{{Time: 0, Value: 1}, {Time: 2, Value: 5}}

	for _, method := range allMethods {
		params := DefaultParams(0.01)
		params.Method = method

		c, err := Compress(samples, params)
		require.NoError(t, err, "method %s", method)
		require.Equal(t, 1, c.SegmentCount())
		require.Equal(t, format.SegmentLinear, c.Segments[0].Type)
		require.Equal(t, 1.0, c.Evaluate(0))
		require.Equal(t, 3.0, c.Evaluate(1))
		require.Equal(t, 5.0, c.Evaluate(2))
	}
}

func TestConstantSignalCollapses(t *testing.T) {
	samples := make([]curve.Sample, 40)
	for i := range samples {
		samples[i] = curve.Sample{Time: float64(i), Value: 3}
	}

	params := DefaultParams(0.01)
	params.Method = format.MethodRDPLinear

	c, err := Compress(samples, params)
	require.NoError(t, err)
	require.Equal(t, 1, c.SegmentCount())
	require.Equal(t, 3.0, c.Evaluate(17.3))
}

func TestAdaptiveFittersHonorTolerance(t *testing.T) {
	samples := sineSamples(101)

	for _, method := range []format.Method{format.MethodBezier, format.MethodBSpline} {
		params := DefaultParams(0.01)
		params.Method = method

		c, err := Compress(samples, params)
		require.NoError(t, err, "method %s", method)
		require.LessOrEqual(t, c.MaxError(samples), 0.01)
		require.Less(t, c.SegmentCount(), len(samples)/2,
			"method %s produced %d segments", method, c.SegmentCount())
	}

	// The Hermite basis interpolates its endpoints, so the Bezier fitter gets
	// away with far fewer segments on a smooth signal.
	bez, err := Compress(samples, DefaultParams(0.01))
	require.NoError(t, err)
	require.LessOrEqual(t, bez.SegmentCount(), 20)
}

func TestRDPPipelinesBoundError(t *testing.T) {
	samples := sineSamples(101)

	for _, method := range []format.Method{
		format.MethodRDPLinear, format.MethodRDPBSpline, format.MethodRDPBezier,
	} {
		params := DefaultParams(0.01)
		params.Method = method

		c, err := Compress(samples, params)
		require.NoError(t, err, "method %s", method)
		require.Less(t, c.SegmentCount(), len(samples))

		// RDP drops points whose boosted distance is under tolerance; the
		// reconstruction error stays within a small constant factor of it.
		require.LessOrEqual(t, c.MaxError(samples), 0.01*8, "method %s", method)
	}
}

func TestCompressionRatioImprovesWithTolerance(t *testing.T) {
	samples := sineSamples(200)

	prev := len(samples)
	for _, tolerance := range []float64{0.001, 0.01, 0.1} {
		c, err := CompressWithTolerance(samples, tolerance)
		require.NoError(t, err)
		require.LessOrEqual(t, c.SegmentCount(), prev)
		prev = c.SegmentCount()
	}
}

func TestCompressedCurveIsContinuous(t *testing.T) {
	samples := sineSamples(101)

	for _, method := range allMethods {
		params := DefaultParams(0.01)
		params.Method = method

		c, err := Compress(samples, params)
		require.NoError(t, err, "method %s", method)
		require.NoError(t, c.Validate(), "method %s", method)
		require.Equal(t, samples[0].Time, c.StartTime())
		require.Equal(t, samples[len(samples)-1].Time, c.EndTime())
	}
}

func TestUnknownMethodFallsBackToBezier(t *testing.T) {
	samples := sineSamples(50)

	unknown := DefaultParams(0.01)
	unknown.Method = format.Method(0xFF)
	bezier := DefaultParams(0.01)

	got, err := Compress(samples, unknown)
	require.NoError(t, err)
	want, err := Compress(samples, bezier)
	require.NoError(t, err)
	require.Equal(t, want.Segments, got.Segments)
}

func TestZeroWeightsTakeDataKindPreset(t *testing.T) {
	samples := sineSamples(50)

	preset := Params{
		Tolerance:           0.01,
		Method:              format.MethodRDPLinear,
		DataKind:            format.KindFinancial,
		ImportanceThreshold: 1,
	}
	explicit := preset
	explicit.Weights = importance.FinancialDataWeights()

	got, err := Compress(samples, preset)
	require.NoError(t, err)
	want, err := Compress(samples, explicit)
	require.NoError(t, err)
	require.Equal(t, want.Segments, got.Segments)
}

func TestCompressValidation(t *testing.T) {
	samples := sineSamples(10)

	_, err := Compress(nil, DefaultParams(0.01))
	require.ErrorIs(t, err, errs.ErrNoSamples)

	_, err = Compress(samples[:1], DefaultParams(0.01))
	require.ErrorIs(t, err, errs.ErrTooFewSamples)

	_, err = Compress([]curve.Sample{
		{Time: 1, Value: 0}, {Time: 0, Value: 0},
	}, DefaultParams(0.01))
	require.ErrorIs(t, err, errs.ErrUnsortedSamples)

	_, err = Compress(samples, DefaultParams(0))
	require.ErrorIs(t, err, errs.ErrInvalidTolerance)

	bad := DefaultParams(0.01)
	bad.ImportanceThreshold = 0
	_, err = Compress(samples, bad)
	require.ErrorIs(t, err, errs.ErrInvalidImportanceThreshold)

	bad = DefaultParams(0.01)
	bad.Weights.Curvature = -1
	_, err = Compress(samples, bad)
	require.ErrorIs(t, err, errs.ErrInvalidWeights)
}

func TestCompressAuto(t *testing.T) {
	samples := sineSamples(101)

	c, selection, err := CompressAuto(samples, 0.01)
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Contains(t, allMethods, selection.Primary)
	require.Len(t, selection.Scores, len(allMethods))
	require.GreaterOrEqual(t, selection.Confidence, 0.0)
	require.LessOrEqual(t, selection.Confidence, 1.0)

	_, _, err = CompressAuto(nil, 0.01)
	require.Error(t, err)
}

func TestMeasure(t *testing.T) {
	samples := sineSamples(101)

	c, err := CompressWithTolerance(samples, 0.01)
	require.NoError(t, err)

	stats := Measure(samples, c)
	require.Equal(t, 101, stats.OriginalCount)
	require.Equal(t, c.SegmentCount(), stats.SegmentCount)
	require.InDelta(t, float64(stats.SegmentCount)/101, stats.CompressionRatio, 1e-12)
	require.Less(t, stats.CompressionRatio, 1.0)
	require.LessOrEqual(t, stats.MeanError, stats.MaxError)
	require.LessOrEqual(t, stats.MaxError, 0.01)
}

func TestCompressDoesNotMutateInput(t *testing.T) {
	samples := sineSamples(60)
	original := make([]curve.Sample, len(samples))
	copy(original, samples)

	for _, method := range allMethods {
		params := DefaultParams(0.01)
		params.Method = method
		_, err := Compress(samples, params)
		require.NoError(t, err)
	}

	require.Equal(t, original, samples)
}
