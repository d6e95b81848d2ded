package analyze

import (
	"github.com/HarukaKajita/curvecompress/curve"
	"github.com/HarukaKajita/curvecompress/format"
	"github.com/HarukaKajita/curvecompress/internal/numeric"
)

// Selection is the outcome of scoring the compression methods against a
// signal's characteristics.
type Selection struct {
	// Primary is the highest-scoring method.
	Primary format.Method

	// Fallback is the runner-up, used when the caller wants a second opinion
	// or the primary fit turns out badly.
	Fallback format.Method

	// Confidence reflects how clearly the primary beat the fallback, in [0,1].
	Confidence float64

	// Scores holds the per-method scores. The map is freshly allocated on
	// every call; callers may mutate it freely.
	Scores map[format.Method]float64
}

// Select scores every compression method against the measured characteristics
// and returns the ranking.
//
// The score weights encode the methods' known strengths: RDP thrives on noisy,
// low-complexity data where dropping points is cheap; Bezier wants smooth,
// clean signals matching its Hermite basis; B-spline sits in between, riding
// out complexity thanks to its averaging basis.
func Select(ch DataCharacteristics) Selection {
	scores := map[format.Method]float64{
		format.MethodRDPLinear:  0.40*(1-ch.Complexity) + 0.40*ch.NoiseLevel + 0.20*(1-ch.Smoothness),
		format.MethodRDPBSpline: 0.30*ch.NoiseLevel + 0.35*ch.Complexity + 0.35*ch.Smoothness,
		format.MethodRDPBezier:  0.35*ch.NoiseLevel + 0.35*ch.Smoothness + 0.30*(1-ch.Variability),
		format.MethodBSpline:    0.40*ch.Complexity + 0.30*ch.Smoothness + 0.30*(1-ch.NoiseLevel),
		format.MethodBezier:     0.50*ch.Smoothness + 0.30*(1-ch.NoiseLevel) + 0.20*(1-ch.Variability),
	}

	primary, fallback := format.MethodBezier, format.MethodBezier
	best, second := -1.0, -1.0
	// Fixed iteration order keeps ties deterministic.
	for _, m := range []format.Method{
		format.MethodRDPLinear,
		format.MethodRDPBSpline,
		format.MethodRDPBezier,
		format.MethodBSpline,
		format.MethodBezier,
	} {
		s := scores[m]
		switch {
		case s > best:
			second, fallback = best, primary
			best, primary = s, m
		case s > second:
			second, fallback = s, m
		}
	}

	return Selection{
		Primary:    primary,
		Fallback:   fallback,
		Confidence: numeric.Clamp01(0.5 + (best - second)),
		Scores:     scores,
	}
}

// SelectMethod analyzes samples and selects a method in one step.
func SelectMethod(samples []curve.Sample) (Selection, error) {
	ch, err := Analyze(samples)
	if err != nil {
		return Selection{}, err
	}

	return Select(ch), nil
}
