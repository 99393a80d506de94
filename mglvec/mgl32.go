// Package mglvec adapts the go-gl/mathgl vector types to the vecbridge
// capability interfaces. Vec2 and Vec3 wrap the float32 mgl32 types, DVec2
// and DVec3 wrap the float64 mgl64 types, and each 2D type names the 3D type
// of the same width as its promotion partner.
//
// The wrapper types exist because Go methods cannot be declared on types
// owned by another package. A wrapper and its backing type share a memory
// layout, so converting between them is a plain type conversion with no
// runtime cost.
package mglvec

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vecbridge/vecbridge"
)

var _ = vecbridge.AssertPair[float32, Vec2, Vec3, *Vec2, *Vec3]

// Vec2 is a single-precision 2D vector backed by mgl32.Vec2.
type Vec2 mgl32.Vec2

// Vec3 is a single-precision 3D vector backed by mgl32.Vec3.
type Vec3 mgl32.Vec3

// V2 returns the vector (x, y).
func V2(x, y float32) Vec2 { return Vec2{x, y} }

// V3 returns the vector (x, y, z).
func V3(x, y, z float32) Vec3 { return Vec3{x, y, z} }

func (v Vec2) New2D(x, y float32) Vec2 { return Vec2{x, y} }

func (v Vec2) X() float32 { return v[0] }
func (v Vec2) Y() float32 { return v[1] }

func (v *Vec2) SetX(val float32) { v[0] = val }
func (v *Vec2) SetY(val float32) { v[1] = val }
func (v *Vec2) XPtr() *float32 { return &v[0] }
func (v *Vec2) YPtr() *float32 { return &v[1] }

func (v Vec2) Add(w Vec2) Vec2 { return Vec2(mgl32.Vec2(v).Add(mgl32.Vec2(w))) }
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2(mgl32.Vec2(v).Sub(mgl32.Vec2(w))) }
func (v Vec2) Neg() Vec2 { return Vec2{-v[0], -v[1]} }
func (v Vec2) Mul(c float32) Vec2 { return Vec2(mgl32.Vec2(v).Mul(c)) }

// Div divides componentwise rather than multiplying by a reciprocal, so the
// result is exactly v[i] / c per axis.
func (v Vec2) Div(c float32) Vec2 { return Vec2{v[0] / c, v[1] / c} }

func (v Vec2) At(i int) float32 { return v[i] }

func (v Vec2) To3D(z float32) Vec3 { return Vec3(mgl32.Vec2(v).Vec3(z)) }

func (v Vec2) Magnitude() float32 { return mgl32.Vec2(v).Len() }
func (v Vec2) MagnitudeSq() float32 { return mgl32.Vec2(v).Dot(mgl32.Vec2(v)) }

func (v Vec2) Dot(w Vec2) float32 { return mgl32.Vec2(v).Dot(mgl32.Vec2(w)) }
func (v Vec2) PerpDot(w Vec2) float32 { return v[0]*w[1] - v[1]*w[0] }

func (v Vec2) Distance(w Vec2) float32 { return v.Sub(w).Magnitude() }
func (v Vec2) DistanceSq(w Vec2) float32 { return v.Sub(w).MagnitudeSq() }

// Normalize divides by the magnitude directly instead of using the backing
// library's Normalize, which multiplies by a reciprocal length.
func (v Vec2) Normalize() Vec2 { return v.Div(v.Magnitude()) }

func (v Vec2) SafeNormalize() (Vec2, bool) {
	m := v.Magnitude()
	if vecbridge.IsZero(m) {
		return Vec2{}, false
	}
	return v.Div(m), true
}

func (v Vec2) UlpsEq(w Vec2, epsilon float32, maxUlps uint32) bool {
	return vecbridge.UlpsEq(v[0], w[0], epsilon, maxUlps) &&
		vecbridge.UlpsEq(v[1], w[1], epsilon, maxUlps)
}

func (v Vec2) AbsDiffEq(w Vec2, epsilon float32) bool {
	return vecbridge.AbsDiffEq(v[0], w[0], epsilon) &&
		vecbridge.AbsDiffEq(v[1], w[1], epsilon)
}

func (v Vec3) New2D(x, y float32) Vec3 { return Vec3{x, y, 0} }
func (v Vec3) New3D(x, y, z float32) Vec3 { return Vec3{x, y, z} }

func (v Vec3) X() float32 { return v[0] }
func (v Vec3) Y() float32 { return v[1] }
func (v Vec3) Z() float32 { return v[2] }

func (v *Vec3) SetX(val float32) { v[0] = val }
func (v *Vec3) SetY(val float32) { v[1] = val }
func (v *Vec3) SetZ(val float32) { v[2] = val }
func (v *Vec3) XPtr() *float32 { return &v[0] }
func (v *Vec3) YPtr() *float32 { return &v[1] }
func (v *Vec3) ZPtr() *float32 { return &v[2] }

func (v Vec3) Add(w Vec3) Vec3 { return Vec3(mgl32.Vec3(v).Add(mgl32.Vec3(w))) }
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3(mgl32.Vec3(v).Sub(mgl32.Vec3(w))) }
func (v Vec3) Neg() Vec3 { return Vec3{-v[0], -v[1], -v[2]} }
func (v Vec3) Mul(c float32) Vec3 { return Vec3(mgl32.Vec3(v).Mul(c)) }
func (v Vec3) Div(c float32) Vec3 { return Vec3{v[0] / c, v[1] / c, v[2] / c} }

func (v Vec3) At(i int) float32 { return v[i] }

func (v Vec3) To2D() Vec2 { return Vec2(mgl32.Vec3(v).Vec2()) }

func (v Vec3) Magnitude() float32 { return mgl32.Vec3(v).Len() }
func (v Vec3) MagnitudeSq() float32 { return mgl32.Vec3(v).Dot(mgl32.Vec3(v)) }

func (v Vec3) Dot(w Vec3) float32 { return mgl32.Vec3(v).Dot(mgl32.Vec3(w)) }
func (v Vec3) Cross(w Vec3) Vec3 { return Vec3(mgl32.Vec3(v).Cross(mgl32.Vec3(w))) }

func (v Vec3) Distance(w Vec3) float32 { return v.Sub(w).Magnitude() }
func (v Vec3) DistanceSq(w Vec3) float32 { return v.Sub(w).MagnitudeSq() }

func (v Vec3) Normalize() Vec3 { return v.Div(v.Magnitude()) }

func (v Vec3) SafeNormalize() (Vec3, bool) {
	m := v.Magnitude()
	if vecbridge.IsZero(m) {
		return Vec3{}, false
	}
	return v.Div(m), true
}

func (v Vec3) UlpsEq(w Vec3, epsilon float32, maxUlps uint32) bool {
	return vecbridge.UlpsEq(v[0], w[0], epsilon, maxUlps) &&
		vecbridge.UlpsEq(v[1], w[1], epsilon, maxUlps) &&
		vecbridge.UlpsEq(v[2], w[2], epsilon, maxUlps)
}

func (v Vec3) AbsDiffEq(w Vec3, epsilon float32) bool {
	return vecbridge.AbsDiffEq(v[0], w[0], epsilon) &&
		vecbridge.AbsDiffEq(v[1], w[1], epsilon) &&
		vecbridge.AbsDiffEq(v[2], w[2], epsilon)
}
