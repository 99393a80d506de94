// Package vectest is a reusable conformance battery for implementations of
// the vecbridge capability interfaces. It is the executable form of the
// contracts: an adapter instantiates each applicable battery once per
// concrete vector type and scalar width, in the manner of testing/fstest.
//
// Sample coordinates should be small exact values such as 1, 2 and 3 so that
// the exact-equality assertions are meaningful; eps is the metric-identity
// tolerance appropriate to the scalar width (tighter for float64).
package vectest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vecbridge/vecbridge"
)

// ScalarOps checks the scalar contract for F: lossless bit-pattern
// round-trips, the clamp boundary policy, and the classification of
// infinities and ordinary values.
func ScalarOps[F vecbridge.Scalar](t *testing.T) {
	for _, v := range []F{0, 1, -1, 0.5, 6, 0.001} {
		require.Equal(t, v, vecbridge.FromBits[F](vecbridge.Bits(v)))
	}

	inf := vecbridge.Inf[F](1)
	require.False(t, vecbridge.IsNormal(inf))
	require.False(t, vecbridge.IsFinite(inf))
	require.False(t, vecbridge.IsNormal(vecbridge.Inf[F](-1)))
	require.True(t, vecbridge.IsNormal(F(1)))
	require.True(t, vecbridge.IsFinite(F(1)))
	require.False(t, vecbridge.IsNormal(F(0)))

	// In-range values are unchanged, boundary ties return the boundary, and
	// out-of-range values clamp to the nearer bound.
	require.Equal(t, F(6), vecbridge.Clamp[F](6, 5, 8))
	require.Equal(t, F(6), vecbridge.Clamp[F](5, 6, 8))
	require.Equal(t, F(8), vecbridge.Clamp[F](9, 5, 8))
	require.Equal(t, F(5), vecbridge.Clamp[F](5, 5, 8))
}

// CoordHolder2 checks the HasXY read contract and the Mut2 write contract
// for V: constructed coordinates read back unchanged, and writing an axis
// through its pointer is observably equivalent to writing it through the
// setter. It also runs ScalarOps for V's scalar type.
func CoordHolder2[F vecbridge.Scalar, V vecbridge.HasXY[F, V], PV vecbridge.Mut2[F, V]](t *testing.T, x, y F) {
	ScalarOps[F](t)

	var zero V
	v0 := zero.New2D(x, y)
	require.Equal(t, x, v0.X())
	require.Equal(t, y, v0.Y())

	v1 := v0
	*PV(&v1).XPtr() = x * 6
	*PV(&v1).YPtr() = y * 6
	require.Equal(t, x*6, v1.X())
	require.Equal(t, y*6, v1.Y())

	v2 := v0
	PV(&v2).SetX(x * 6)
	PV(&v2).SetY(y * 6)
	require.Equal(t, v1.X(), v2.X())
	require.Equal(t, v1.Y(), v2.Y())

	PV(&v1).SetX(x * 3)
	PV(&v1).SetY(y * 3)
	require.Equal(t, x*3, v1.X())
	require.Equal(t, y*3, v1.Y())
}

// CoordHolder3 checks the HasXYZ read contract and the Mut3 write contract
// for V, including both mutation paths on all three axes.
func CoordHolder3[F vecbridge.Scalar, V vecbridge.HasXYZ[F, V], PV vecbridge.Mut3[F, V]](t *testing.T, x, y, z F) {
	var zero V
	v0 := zero.New3D(x, y, z)
	require.Equal(t, x, v0.X())
	require.Equal(t, y, v0.Y())
	require.Equal(t, z, v0.Z())

	v1 := v0
	*PV(&v1).XPtr() = x * 6
	*PV(&v1).YPtr() = y * 6
	*PV(&v1).ZPtr() = z * 6
	require.Equal(t, x*6, v1.X())
	require.Equal(t, y*6, v1.Y())
	require.Equal(t, z*6, v1.Z())

	v2 := v0
	PV(&v2).SetX(x * 6)
	PV(&v2).SetY(y * 6)
	PV(&v2).SetZ(z * 6)
	require.Equal(t, v1, v2)
}

// Vector2Ops checks the full Vector2 contract for V2 paired with V3. The
// coordinates must be nonzero exact values; z seeds the promotion tests.
func Vector2Ops[
	F vecbridge.Scalar,
	V2 vecbridge.Vector2[F, V2, V3],
	V3 vecbridge.Vector3[F, V3, V2],
	PV2 vecbridge.Mut2[F, V2],
](t *testing.T, x, y, z, eps F) {
	var zero V2
	v0 := zero.New2D(x, y)
	require.Equal(t, x, v0.X())
	require.Equal(t, y, v0.Y())

	v1 := v0
	PV2(&v1).SetX(x * 6)
	PV2(&v1).SetY(y * 6)
	require.Equal(t, x*6, v1.X())
	require.Equal(t, y*6, v1.Y())

	// A vector is approximately equal to itself and not to a copy scaled by
	// a nontrivial factor, under the default tolerances.
	defEps, defUlps := vecbridge.DefaultEpsilon[F](), vecbridge.DefaultMaxUlps
	require.True(t, v0.UlpsEq(v0, defEps, defUlps))
	require.True(t, v0.AbsDiffEq(v0, defEps))
	require.False(t, v0.UlpsEq(v1, defEps, defUlps))
	require.False(t, v0.AbsDiffEq(v1, defEps))
	require.True(t, vecbridge.ApproxEq[F](v0, v0))
	require.False(t, vecbridge.ApproxEq[F](v0, v1))

	// Lifting to 3D carries x and y and takes the supplied z verbatim.
	v2 := v0.To3D(z).Mul(6)
	require.Equal(t, x*6, v2.X())
	require.Equal(t, y*6, v2.Y())
	require.Equal(t, z*6, v2.Z())

	// Promotion then demotion round-trips exactly for an exactly invertible
	// scale, with any z.
	v3 := v0.Mul(6).To3D(z).To2D().Div(6)
	require.Equal(t, x, v3.X())
	require.Equal(t, y, v3.Y())

	// The operator set reduces w + (-u - u + u + u) back to w.
	v4 := v0.Add(v1.Neg().Sub(v1).Add(v1).Add(v1))
	require.Equal(t, x, v4.At(0))
	require.Equal(t, y, v4.At(1))
	require.Equal(t, v0, v4)
	require.Panics(t, func() { _ = v0.At(2) })

	mag := v0.Magnitude()
	magSq := v0.MagnitudeSq()
	require.Less(t, vecbridge.Abs(mag*mag-magSq), eps)

	require.Equal(t, x*x*6+y*y*6, v0.Dot(v1))
	// v1 is v0 scaled, so the pair is collinear and the perp-dot product is
	// exactly zero.
	require.Equal(t, F(0), v0.PerpDot(v1))

	dist := v0.Distance(v1)
	distSq := v0.DistanceSq(v1)
	require.Less(t, vecbridge.Abs(dist*dist-distSq), eps)

	require.Less(t, vecbridge.Abs(v0.Normalize().Magnitude()-1), eps)
	n, ok := v0.SafeNormalize()
	require.True(t, ok)
	require.Less(t, vecbridge.Abs(n.Magnitude()-1), eps)

	o := zero.New2D(0, 0)
	_, ok = o.SafeNormalize()
	require.False(t, ok)
	require.True(t, o.UlpsEq(o, defEps, defUlps))
	require.True(t, o.AbsDiffEq(o, defEps))
}

// Vector3Ops checks the full Vector3 contract for V3 paired with V2,
// including the z-defaulting New2D construction and the collinear cross
// product identity.
func Vector3Ops[
	F vecbridge.Scalar,
	V3 vecbridge.Vector3[F, V3, V2],
	V2 vecbridge.Vector2[F, V2, V3],
	PV3 vecbridge.Mut3[F, V3],
](t *testing.T, x, y, z, eps F) {
	var zero V3

	// New2D on a 3D type yields a full 3D value with z set to zero.
	flat := zero.New2D(x, y)
	require.Equal(t, x, flat.X())
	require.Equal(t, y, flat.Y())
	require.Equal(t, F(0), flat.Z())
	p := flat.To2D()
	require.Equal(t, x, p.X())
	require.Equal(t, y, p.Y())

	v0 := zero.New3D(x, y, z)
	require.Equal(t, x, v0.X())
	require.Equal(t, y, v0.Y())
	require.Equal(t, z, v0.Z())

	v1 := v0
	PV3(&v1).SetX(x * 6)
	PV3(&v1).SetY(y * 6)
	PV3(&v1).SetZ(z * 6)
	require.Equal(t, x*6, v1.X())
	require.Equal(t, y*6, v1.Y())
	require.Equal(t, z*6, v1.Z())

	defEps, defUlps := vecbridge.DefaultEpsilon[F](), vecbridge.DefaultMaxUlps
	require.True(t, v0.UlpsEq(v0, defEps, defUlps))
	require.True(t, v0.AbsDiffEq(v0, defEps))
	require.False(t, v0.UlpsEq(v1, defEps, defUlps))
	require.False(t, v0.AbsDiffEq(v1, defEps))
	require.True(t, vecbridge.ApproxEq[F](v0, v0))
	require.False(t, vecbridge.ApproxEq[F](v0, v1))

	// Projection drops z and keeps x and y exactly.
	v2 := v0.Mul(6).To2D()
	require.Equal(t, x*6, v2.X())
	require.Equal(t, y*6, v2.Y())

	v4 := v0.Add(v1.Neg().Sub(v1).Add(v1).Add(v1))
	require.Equal(t, x, v4.At(0))
	require.Equal(t, y, v4.At(1))
	require.Equal(t, z, v4.At(2))
	require.Equal(t, v0, v4)
	require.Panics(t, func() { _ = v0.At(3) })

	mag := v0.Magnitude()
	magSq := v0.MagnitudeSq()
	require.Less(t, vecbridge.Abs(mag*mag-magSq), eps)

	require.Equal(t, x*x*6+y*y*6+z*z*6, v0.Dot(v1))

	// v1 is v0 scaled, so the cross product is exactly the zero vector.
	require.Equal(t, zero.New3D(0, 0, 0), v0.Cross(v1))

	dist := v0.Distance(v1)
	distSq := v0.DistanceSq(v1)
	require.Less(t, vecbridge.Abs(dist*dist-distSq), eps)

	require.Less(t, vecbridge.Abs(v0.Normalize().Magnitude()-1), eps)
	n, ok := v0.SafeNormalize()
	require.True(t, ok)
	require.Less(t, vecbridge.Abs(n.Magnitude()-1), eps)

	o := zero.New3D(0, 0, 0)
	_, ok = o.SafeNormalize()
	require.False(t, ok)
	require.True(t, o.UlpsEq(o, defEps, defUlps))
	require.True(t, o.AbsDiffEq(o, defEps))
}
