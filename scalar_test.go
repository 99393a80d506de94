package vecbridge

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	require.Equal(t, 6.0, Clamp(6.0, 5, 8))
	require.Equal(t, 6.0, Clamp(5.0, 6, 8))
	require.Equal(t, 8.0, Clamp(9.0, 5, 8))
	require.Equal(t, 5.0, Clamp(5.0, 5, 8))
	require.Equal(t, 8.0, Clamp(8.0, 5, 8))
	require.Equal(t, float32(6), Clamp[float32](5, 6, 8))

	// Inverted bounds apply the upper bound last.
	require.Equal(t, 5.0, Clamp(6.0, 8, 5))

	// NaN compares false against both bounds and passes through.
	require.True(t, math.IsNaN(Clamp(math.NaN(), 5, 8)))
	require.Equal(t, 8.0, Clamp(math.Inf(1), 5, 8))
}

func TestBitsRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 0.1, math.Pi, math.Inf(1), math.Inf(-1), math.SmallestNonzeroFloat64, math.MaxFloat64} {
		require.Equal(t, v, FromBits[float64](Bits(v)))
	}
	for _, v := range []float32{0, 1, -1, 0.1, math.MaxFloat32, float32(math.Inf(1))} {
		require.Equal(t, v, FromBits[float32](Bits(v)))
	}
	// Negative zero keeps its sign bit through the round trip.
	require.Equal(t, uint64(1)<<63, Bits(FromBits[float64](uint64(1)<<63)))
	require.Equal(t, uint64(1)<<31, Bits(FromBits[float32](uint64(1)<<31)))
}

func TestIsNormal(t *testing.T) {
	require.True(t, IsNormal(1.0))
	require.True(t, IsNormal(-math.MaxFloat64))
	require.False(t, IsNormal(0.0))
	require.False(t, IsNormal(math.SmallestNonzeroFloat64))
	require.False(t, IsNormal(math.Inf(1)))
	require.False(t, IsNormal(math.NaN()))

	require.True(t, IsNormal[float32](1))
	require.False(t, IsNormal[float32](0x1p-149))
	require.False(t, IsNormal(Inf[float32](-1)))
}

func TestIsFinite(t *testing.T) {
	require.True(t, IsFinite(1.0))
	require.True(t, IsFinite(math.SmallestNonzeroFloat64))
	require.False(t, IsFinite(math.Inf(1)))
	require.False(t, IsFinite(math.NaN()))
	require.False(t, IsFinite(Inf[float32](1)))
	require.True(t, IsFinite[float32](0))
}

func TestSqrtAbs(t *testing.T) {
	require.Equal(t, 3.0, Sqrt(9.0))
	require.Equal(t, float32(3), Sqrt[float32](9))
	require.Equal(t, float32(math.Sqrt(2)), Sqrt[float32](2))
	require.Equal(t, 2.5, Abs(-2.5))
	require.Equal(t, float32(2.5), Abs[float32](-2.5))
	require.True(t, math.IsNaN(float64(Sqrt(-1.0))))
}

func TestEpsilon(t *testing.T) {
	// Machine epsilon separates 1 from the next representable value.
	require.Equal(t, math.Nextafter(1, 2)-1, Epsilon[float64]())
	require.Equal(t, math.Nextafter32(1, 2)-1, Epsilon[float32]())
}

func TestLerp(t *testing.T) {
	require.Equal(t, 5.0, Lerp(0.0, 10, 0.5))
	require.Equal(t, 0.0, Lerp(0.0, 10, 0))
	require.Equal(t, 10.0, Lerp(0.0, 10, 1))
	require.Equal(t, float32(15), Lerp[float32](10, 20, 0.5))
}
