package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSafeDivide(t *testing.T) {
	require.Equal(t, 2.0, SafeDivide(10, 5, -1))
	require.Equal(t, -1.0, SafeDivide(10, 0, -1))
	require.Equal(t, -1.0, SafeDivide(10, 1e-9, -1))
	require.Equal(t, -1.0, SafeDivide(10, -1e-9, -1))
	require.Equal(t, -2.0, SafeDivide(10, -5, 0))
}

func TestSafeSlope(t *testing.T) {
	require.Equal(t, 2.0, SafeSlope(0, 0, 1, 2))
	// Duplicate timestamps yield a defined zero slope, not Inf.
	require.Equal(t, 0.0, SafeSlope(1, 0, 1, 5))
}

func TestSafeLerpParameter(t *testing.T) {
	require.Equal(t, 0.5, SafeLerpParameter(5, 0, 10))
	require.Equal(t, 0.0, SafeLerpParameter(-5, 0, 10))
	require.Equal(t, 1.0, SafeLerpParameter(15, 0, 10))
	// Degenerate interval maps everything to 0.
	require.Equal(t, 0.0, SafeLerpParameter(3, 3, 3))
}

func TestLerp(t *testing.T) {
	require.Equal(t, 5.0, Lerp(0, 10, 0.5))
	require.Equal(t, 0.0, Lerp(0, 10, 0))
	require.Equal(t, 10.0, Lerp(0, 10, 1))
}

func TestClamp(t *testing.T) {
	require.Equal(t, 5.0, Clamp(5, 0, 10))
	require.Equal(t, 0.0, Clamp(-5, 0, 10))
	require.Equal(t, 10.0, Clamp(15, 0, 10))
	require.Equal(t, 1.0, Clamp01(2))
	require.Equal(t, 0.0, Clamp01(-2))
	require.Equal(t, 3, ClampInt(3, 2, 4))
	require.Equal(t, 2, ClampInt(1, 2, 4))
	require.Equal(t, 4, ClampInt(9, 2, 4))
}

func TestSafeAcos(t *testing.T) {
	// Dot products drift past ±1 from rounding; the clamp keeps acos defined.
	require.Equal(t, 0.0, SafeAcos(1.0000001))
	require.InDelta(t, math.Pi, SafeAcos(-1.0000001), 1e-12)
	require.InDelta(t, math.Pi/2, SafeAcos(0), 1e-12)
}
