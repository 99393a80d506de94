package vecbridge

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAbsDiffEq(t *testing.T) {
	require.True(t, AbsDiffEq(1.0, 1.0, 0))
	require.True(t, AbsDiffEq(1.0, 1.5, 0.5))
	require.False(t, AbsDiffEq(1.0, 1.5, 0.4))
	require.True(t, AbsDiffEq(-0.0, 0.0, 0))

	// Exact equality short-circuits, so equal infinities are accepted.
	require.True(t, AbsDiffEq(math.Inf(1), math.Inf(1), 0))
	require.False(t, AbsDiffEq(math.Inf(1), math.Inf(-1), 1))
	require.False(t, AbsDiffEq(math.NaN(), math.NaN(), 1))

	require.True(t, AbsDiffEq[float32](1, 1+0x1p-24, DefaultEpsilon[float32]()))
}

func TestUlpsEqNeighbors(t *testing.T) {
	// Values a few representable steps apart are ULP-equal under the
	// default tolerance; values further apart are not.
	v := 1.0
	near := v
	for i := uint32(0); i < DefaultMaxUlps; i++ {
		near = math.Nextafter(near, 2)
	}
	require.True(t, UlpsEq(v, near, 0, DefaultMaxUlps))
	require.False(t, UlpsEq(v, math.Nextafter(near, 2), 0, DefaultMaxUlps))

	f := float32(1)
	nearf := f
	for i := uint32(0); i < DefaultMaxUlps; i++ {
		nearf = math.Nextafter32(nearf, 2)
	}
	require.True(t, UlpsEq(f, nearf, 0, DefaultMaxUlps))
	require.False(t, UlpsEq(f, math.Nextafter32(nearf, 2), 0, DefaultMaxUlps))
}

func TestUlpsEqSignsAndSpecials(t *testing.T) {
	// Values of opposite sign are never ULP-equal, however close, unless
	// the absolute-difference check already accepts them.
	require.False(t, UlpsEq(-math.SmallestNonzeroFloat64, math.SmallestNonzeroFloat64, 0, math.MaxUint32))
	require.True(t, UlpsEq(-math.SmallestNonzeroFloat64, math.SmallestNonzeroFloat64, 1e-300, DefaultMaxUlps))
	require.True(t, UlpsEq(0.0, -0.0, 0, 0))

	require.False(t, UlpsEq(math.NaN(), math.NaN(), 1, math.MaxUint32))
	require.False(t, UlpsEq(float32(math.NaN()), float32(1), 1, DefaultMaxUlps))
	require.True(t, UlpsEq(math.Inf(1), math.Inf(1), 0, 0))

	require.False(t, UlpsEq(1.0, 6.0, DefaultEpsilon[float64](), DefaultMaxUlps))
	require.False(t, UlpsEq[float32](1, 6, DefaultEpsilon[float32](), DefaultMaxUlps))
}

func TestDefaultTolerances(t *testing.T) {
	require.Equal(t, Epsilon[float64](), DefaultEpsilon[float64]())
	require.Equal(t, Epsilon[float32](), DefaultEpsilon[float32]())
	require.EqualValues(t, 4, DefaultMaxUlps)
}
