package mglvec

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vecbridge/vecbridge"
)

var _ = vecbridge.AssertPair[float64, DVec2, DVec3, *DVec2, *DVec3]

// DVec2 is a double-precision 2D vector backed by mgl64.Vec2.
type DVec2 mgl64.Vec2

// DVec3 is a double-precision 3D vector backed by mgl64.Vec3.
type DVec3 mgl64.Vec3

// DV2 returns the vector (x, y).
func DV2(x, y float64) DVec2 { return DVec2{x, y} }

// DV3 returns the vector (x, y, z).
func DV3(x, y, z float64) DVec3 { return DVec3{x, y, z} }

func (v DVec2) New2D(x, y float64) DVec2 { return DVec2{x, y} }

func (v DVec2) X() float64 { return v[0] }
func (v DVec2) Y() float64 { return v[1] }

func (v *DVec2) SetX(val float64) { v[0] = val }
func (v *DVec2) SetY(val float64) { v[1] = val }
func (v *DVec2) XPtr() *float64 { return &v[0] }
func (v *DVec2) YPtr() *float64 { return &v[1] }

func (v DVec2) Add(w DVec2) DVec2 { return DVec2(mgl64.Vec2(v).Add(mgl64.Vec2(w))) }
func (v DVec2) Sub(w DVec2) DVec2 { return DVec2(mgl64.Vec2(v).Sub(mgl64.Vec2(w))) }
func (v DVec2) Neg() DVec2 { return DVec2{-v[0], -v[1]} }
func (v DVec2) Mul(c float64) DVec2 { return DVec2(mgl64.Vec2(v).Mul(c)) }
func (v DVec2) Div(c float64) DVec2 { return DVec2{v[0] / c, v[1] / c} }

func (v DVec2) At(i int) float64 { return v[i] }

func (v DVec2) To3D(z float64) DVec3 { return DVec3(mgl64.Vec2(v).Vec3(z)) }

func (v DVec2) Magnitude() float64 { return mgl64.Vec2(v).Len() }
func (v DVec2) MagnitudeSq() float64 { return mgl64.Vec2(v).Dot(mgl64.Vec2(v)) }

func (v DVec2) Dot(w DVec2) float64 { return mgl64.Vec2(v).Dot(mgl64.Vec2(w)) }
func (v DVec2) PerpDot(w DVec2) float64 { return v[0]*w[1] - v[1]*w[0] }

func (v DVec2) Distance(w DVec2) float64 { return v.Sub(w).Magnitude() }
func (v DVec2) DistanceSq(w DVec2) float64 { return v.Sub(w).MagnitudeSq() }

func (v DVec2) Normalize() DVec2 { return v.Div(v.Magnitude()) }

func (v DVec2) SafeNormalize() (DVec2, bool) {
	m := v.Magnitude()
	if vecbridge.IsZero(m) {
		return DVec2{}, false
	}
	return v.Div(m), true
}

func (v DVec2) UlpsEq(w DVec2, epsilon float64, maxUlps uint32) bool {
	return vecbridge.UlpsEq(v[0], w[0], epsilon, maxUlps) &&
		vecbridge.UlpsEq(v[1], w[1], epsilon, maxUlps)
}

func (v DVec2) AbsDiffEq(w DVec2, epsilon float64) bool {
	return vecbridge.AbsDiffEq(v[0], w[0], epsilon) &&
		vecbridge.AbsDiffEq(v[1], w[1], epsilon)
}

func (v DVec3) New2D(x, y float64) DVec3 { return DVec3{x, y, 0} }
func (v DVec3) New3D(x, y, z float64) DVec3 { return DVec3{x, y, z} }

func (v DVec3) X() float64 { return v[0] }
func (v DVec3) Y() float64 { return v[1] }
func (v DVec3) Z() float64 { return v[2] }

func (v *DVec3) SetX(val float64) { v[0] = val }
func (v *DVec3) SetY(val float64) { v[1] = val }
func (v *DVec3) SetZ(val float64) { v[2] = val }
func (v *DVec3) XPtr() *float64 { return &v[0] }
func (v *DVec3) YPtr() *float64 { return &v[1] }
func (v *DVec3) ZPtr() *float64 { return &v[2] }

func (v DVec3) Add(w DVec3) DVec3 { return DVec3(mgl64.Vec3(v).Add(mgl64.Vec3(w))) }
func (v DVec3) Sub(w DVec3) DVec3 { return DVec3(mgl64.Vec3(v).Sub(mgl64.Vec3(w))) }
func (v DVec3) Neg() DVec3 { return DVec3{-v[0], -v[1], -v[2]} }
func (v DVec3) Mul(c float64) DVec3 { return DVec3(mgl64.Vec3(v).Mul(c)) }
func (v DVec3) Div(c float64) DVec3 { return DVec3{v[0] / c, v[1] / c, v[2] / c} }

func (v DVec3) At(i int) float64 { return v[i] }

func (v DVec3) To2D() DVec2 { return DVec2(mgl64.Vec3(v).Vec2()) }

func (v DVec3) Magnitude() float64 { return mgl64.Vec3(v).Len() }
func (v DVec3) MagnitudeSq() float64 { return mgl64.Vec3(v).Dot(mgl64.Vec3(v)) }

func (v DVec3) Dot(w DVec3) float64 { return mgl64.Vec3(v).Dot(mgl64.Vec3(w)) }
func (v DVec3) Cross(w DVec3) DVec3 { return DVec3(mgl64.Vec3(v).Cross(mgl64.Vec3(w))) }

func (v DVec3) Distance(w DVec3) float64 { return v.Sub(w).Magnitude() }
func (v DVec3) DistanceSq(w DVec3) float64 { return v.Sub(w).MagnitudeSq() }

func (v DVec3) Normalize() DVec3 { return v.Div(v.Magnitude()) }

func (v DVec3) SafeNormalize() (DVec3, bool) {
	m := v.Magnitude()
	if vecbridge.IsZero(m) {
		return DVec3{}, false
	}
	return v.Div(m), true
}

func (v DVec3) UlpsEq(w DVec3, epsilon float64, maxUlps uint32) bool {
	return vecbridge.UlpsEq(v[0], w[0], epsilon, maxUlps) &&
		vecbridge.UlpsEq(v[1], w[1], epsilon, maxUlps) &&
		vecbridge.UlpsEq(v[2], w[2], epsilon, maxUlps)
}

func (v DVec3) AbsDiffEq(w DVec3, epsilon float64) bool {
	return vecbridge.AbsDiffEq(v[0], w[0], epsilon) &&
		vecbridge.AbsDiffEq(v[1], w[1], epsilon) &&
		vecbridge.AbsDiffEq(v[2], w[2], epsilon)
}
