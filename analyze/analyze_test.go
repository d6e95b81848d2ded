package analyze

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/HarukaKajita/curvecompress/curve"
	"github.com/HarukaKajita/curvecompress/errs"
	"github.com/HarukaKajita/curvecompress/format"
)

func lineSamples(n int) []curve.Sample {
	samples := make([]curve.Sample, n)
	for i := range samples {
		samples[i] = curve.Sample{Time: float64(i), Value: 2*float64(i) + 1}
	}

	return samples
}

func zigzagSamples(n int) []curve.Sample {
	samples := make([]curve.Sample, n)
	for i := range samples {
		v := 1.0
		if i%2 == 1 {
			v = -1.0
		}
		samples[i] = curve.Sample{Time: float64(i), Value: v}
	}

	return samples
}

func TestAnalyzeStraightLine(t *testing.T) {
	ch, err := Analyze(lineSamples(30))
	require.NoError(t, err)

	require.InDelta(t, 1.0, ch.Smoothness, 1e-9)
	require.InDelta(t, 0.0, ch.Complexity, 1e-9)
	require.InDelta(t, 0.0, ch.NoiseLevel, 1e-9)
	require.Equal(t, format.KindAnimation, ch.Kind)
}

func TestAnalyzeZigzag(t *testing.T) {
	ch, err := Analyze(zigzagSamples(30))
	require.NoError(t, err)

	require.Less(t, ch.Smoothness, 0.8)
	require.Greater(t, ch.NoiseLevel, 0.05)
	require.Equal(t, format.KindSensor, ch.Kind)
}

func TestAnalyzeBoundedFields(t *testing.T) {
	samples := make([]curve.Sample, 100)
	for i := range samples {
		tt := float64(i) / 99
		samples[i] = curve.Sample{
			Time:  tt,
			Value: math.Sin(12*math.Pi*tt) + 0.3*math.Sin(57*math.Pi*tt),
		}
	}

	ch, err := Analyze(samples)
	require.NoError(t, err)

	for name, v := range map[string]float64{
		"smoothness":  ch.Smoothness,
		"complexity":  ch.Complexity,
		"noise_level": ch.NoiseLevel,
		"variability": ch.Variability,
	} {
		require.GreaterOrEqual(t, v, 0.0, name)
		require.LessOrEqual(t, v, 1.0, name)
	}
	require.Greater(t, ch.TemporalDensity, 0.0)
}

func TestAnalyzeTemporalDensity(t *testing.T) {
	ch, err := Analyze(lineSamples(11))
	require.NoError(t, err)
	require.InDelta(t, 1.1, ch.TemporalDensity, 1e-9)
}

func TestAnalyzeValidation(t *testing.T) {
	_, err := Analyze(nil)
	require.ErrorIs(t, err, errs.ErrNoSamples)

	_, err = Analyze(lineSamples(2))
	require.ErrorIs(t, err, errs.ErrTooFewSamples)

	_, err = Analyze([]curve.Sample{
		{Time: 1, Value: 0}, {Time: 0, Value: 0}, {Time: 2, Value: 0},
	})
	require.ErrorIs(t, err, errs.ErrUnsortedSamples)
}
