// Package importance scores how salient each sample of a signal is. The score
// blends curvature, normalized rate of change, local variance and extremum
// prominence; the RDP simplifier uses it to bias retention toward points that
// matter visually or semantically.
package importance

import "github.com/HarukaKajita/curvecompress/format"

// Weights holds the non-negative blend factors of the four importance
// components. Weights need not sum to 1; callers that want a strict [0,1]
// score should supply weights that do.
type Weights struct {
	Curvature     float64
	ChangeRate    float64
	LocalVariance float64
	ExtremeValue  float64
}

// DefaultWeights blends all four components evenly.
func DefaultWeights() Weights {
	return Weights{Curvature: 0.25, ChangeRate: 0.25, LocalVariance: 0.25, ExtremeValue: 0.25}
}

// AnimationWeights favors curvature and rate of change: authored motion curves
// are smooth, and their shape lives in direction changes.
func AnimationWeights() Weights {
	return Weights{Curvature: 0.4, ChangeRate: 0.3, LocalVariance: 0.1, ExtremeValue: 0.2}
}

// SensorDataWeights favors local variance: measured data is noisy and bursts
// of variance mark real events.
func SensorDataWeights() Weights {
	return Weights{Curvature: 0.15, ChangeRate: 0.25, LocalVariance: 0.4, ExtremeValue: 0.2}
}

// FinancialDataWeights favors extremum prominence: peaks and troughs are the
// semantically important points of value-over-time data.
func FinancialDataWeights() Weights {
	return Weights{Curvature: 0.1, ChangeRate: 0.25, LocalVariance: 0.2, ExtremeValue: 0.45}
}

// WeightsForKind returns the preset matching a data kind hint. Unknown kinds
// get the default blend.
func WeightsForKind(kind format.DataKind) Weights {
	switch kind {
	case format.KindAnimation:
		return AnimationWeights()
	case format.KindSensor:
		return SensorDataWeights()
	case format.KindFinancial:
		return FinancialDataWeights()
	default:
		return DefaultWeights()
	}
}
