package vecbridge_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vecbridge/vecbridge"
	"github.com/vecbridge/vecbridge/mglvec"
	"github.com/vecbridge/vecbridge/modelvec"
	"github.com/vecbridge/vecbridge/rvec"
)

// signedArea is downstream generic code: it names no concrete vector type
// and recompiles unchanged against any conformant adapter.
func signedArea[F vecbridge.Scalar, V2 vecbridge.Vector2[F, V2, V3], V3 vecbridge.Vector3[F, V3, V2]](a, b, c V2) F {
	return b.Sub(a).PerpDot(c.Sub(a)) / 2
}

// extrudeMidpoint lifts the midpoint of a 2D segment into the paired 3D type
// at the given height, crossing the dimension pairing in both directions.
func extrudeMidpoint[F vecbridge.Scalar, V2 vecbridge.Vector2[F, V2, V3], V3 vecbridge.Vector3[F, V3, V2]](a, b V2, height F) V3 {
	return a.Add(b).Div(2).To3D(height)
}

func TestSignedAreaAcrossAdapters(t *testing.T) {
	require.Equal(t, float32(6),
		signedArea[float32, mglvec.Vec2, mglvec.Vec3](mglvec.V2(0, 0), mglvec.V2(4, 0), mglvec.V2(0, 3)))
	require.Equal(t, 6.0,
		signedArea[float64, mglvec.DVec2, mglvec.DVec3](mglvec.DV2(0, 0), mglvec.DV2(4, 0), mglvec.DV2(0, 3)))
	require.Equal(t, 6.0,
		signedArea[float64, modelvec.Vec2, modelvec.Vec3](modelvec.V2(0, 0), modelvec.V2(4, 0), modelvec.V2(0, 3)))
	require.Equal(t, 6.0,
		signedArea[float64, rvec.Vec2, rvec.Vec3](rvec.V2(0, 0), rvec.V2(4, 0), rvec.V2(0, 3)))

	// Clockwise orientation flips the sign.
	require.Equal(t, -6.0,
		signedArea[float64, rvec.Vec2, rvec.Vec3](rvec.V2(0, 0), rvec.V2(0, 3), rvec.V2(4, 0)))
}

func TestExtrudeMidpointAcrossAdapters(t *testing.T) {
	m := extrudeMidpoint[float64, modelvec.Vec2, modelvec.Vec3](modelvec.V2(0, 0), modelvec.V2(4, 2), 7)
	require.Equal(t, modelvec.V3(2, 1, 7), m)

	f := extrudeMidpoint[float32, mglvec.Vec2, mglvec.Vec3](mglvec.V2(0, 0), mglvec.V2(4, 2), 7)
	require.Equal(t, mglvec.V3(2, 1, 7), f)

	r := extrudeMidpoint[float64, rvec.Vec2, rvec.Vec3](rvec.V2(0, 0), rvec.V2(4, 2), 7)
	require.Equal(t, rvec.V3(2, 1, 7), r)
}
