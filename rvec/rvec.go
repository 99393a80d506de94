// Package rvec adapts the gonum spatial vector types to the vecbridge
// capability interfaces: Vec2 wraps r2.Vec and Vec3 wraps r3.Vec, both
// double precision. Affine operations delegate to the Vec methods and metric
// operations to the package-level Norm, Norm2, Dot and Cross functions.
//
// As with the other adapters, the wrappers hold the backing value in a field
// because the X, Y and Z fields of r2.Vec and r3.Vec would collide with the
// accessor methods on a defined type.
package rvec

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vecbridge/vecbridge"
)

var _ = vecbridge.AssertPair[float64, Vec2, Vec3, *Vec2, *Vec3]

// Vec2 is a 2D vector backed by r2.Vec.
type Vec2 struct {
	v r2.Vec
}

// Vec3 is a 3D vector backed by r3.Vec.
type Vec3 struct {
	v r3.Vec
}

// V2 returns the vector (x, y).
func V2(x, y float64) Vec2 { return Vec2{r2.Vec{X: x, Y: y}} }

// V3 returns the vector (x, y, z).
func V3(x, y, z float64) Vec3 { return Vec3{r3.Vec{X: x, Y: y, Z: z}} }

// FromR2 wraps an r2 vector.
func FromR2(v r2.Vec) Vec2 { return Vec2{v} }

// FromR3 wraps an r3 vector.
func FromR3(v r3.Vec) Vec3 { return Vec3{v} }

// R2 returns the backing r2 vector.
func (v Vec2) R2() r2.Vec { return v.v }

// R3 returns the backing r3 vector.
func (v Vec3) R3() r3.Vec { return v.v }

func (v Vec2) New2D(x, y float64) Vec2 { return V2(x, y) }

func (v Vec2) X() float64 { return v.v.X }
func (v Vec2) Y() float64 { return v.v.Y }

func (v *Vec2) SetX(val float64) { v.v.X = val }
func (v *Vec2) SetY(val float64) { v.v.Y = val }
func (v *Vec2) XPtr() *float64 { return &v.v.X }
func (v *Vec2) YPtr() *float64 { return &v.v.Y }

func (v Vec2) Add(w Vec2) Vec2 { return Vec2{r2.Add(v.v, w.v)} }
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{r2.Sub(v.v, w.v)} }
func (v Vec2) Neg() Vec2 { return v.Mul(-1) }
func (v Vec2) Mul(c float64) Vec2 { return Vec2{r2.Scale(c, v.v)} }
func (v Vec2) Div(c float64) Vec2 { return V2(v.v.X/c, v.v.Y/c) }

func (v Vec2) At(i int) float64 {
	switch i {
	case 0:
		return v.v.X
	case 1:
		return v.v.Y
	}
	panic("vector axis index out of range")
}

func (v Vec2) To3D(z float64) Vec3 { return V3(v.v.X, v.v.Y, z) }

func (v Vec2) Magnitude() float64 { return r2.Norm(v.v) }
func (v Vec2) MagnitudeSq() float64 { return r2.Norm2(v.v) }

func (v Vec2) Dot(w Vec2) float64 { return r2.Dot(v.v, w.v) }

// PerpDot is the signed 2D pseudo-cross product, which r2 calls Cross.
func (v Vec2) PerpDot(w Vec2) float64 { return r2.Cross(v.v, w.v) }

func (v Vec2) Distance(w Vec2) float64 { return r2.Norm(r2.Sub(v.v, w.v)) }
func (v Vec2) DistanceSq(w Vec2) float64 { return r2.Norm2(r2.Sub(v.v, w.v)) }

func (v Vec2) Normalize() Vec2 { return v.Div(v.Magnitude()) }

func (v Vec2) SafeNormalize() (Vec2, bool) {
	m := v.Magnitude()
	if vecbridge.IsZero(m) {
		return Vec2{}, false
	}
	return v.Div(m), true
}

func (v Vec2) UlpsEq(w Vec2, epsilon float64, maxUlps uint32) bool {
	return vecbridge.UlpsEq(v.v.X, w.v.X, epsilon, maxUlps) &&
		vecbridge.UlpsEq(v.v.Y, w.v.Y, epsilon, maxUlps)
}

func (v Vec2) AbsDiffEq(w Vec2, epsilon float64) bool {
	return vecbridge.AbsDiffEq(v.v.X, w.v.X, epsilon) &&
		vecbridge.AbsDiffEq(v.v.Y, w.v.Y, epsilon)
}

func (v Vec3) New2D(x, y float64) Vec3 { return V3(x, y, 0) }
func (v Vec3) New3D(x, y, z float64) Vec3 { return V3(x, y, z) }

func (v Vec3) X() float64 { return v.v.X }
func (v Vec3) Y() float64 { return v.v.Y }
func (v Vec3) Z() float64 { return v.v.Z }

func (v *Vec3) SetX(val float64) { v.v.X = val }
func (v *Vec3) SetY(val float64) { v.v.Y = val }
func (v *Vec3) SetZ(val float64) { v.v.Z = val }
func (v *Vec3) XPtr() *float64 { return &v.v.X }
func (v *Vec3) YPtr() *float64 { return &v.v.Y }
func (v *Vec3) ZPtr() *float64 { return &v.v.Z }

func (v Vec3) Add(w Vec3) Vec3 { return Vec3{r3.Add(v.v, w.v)} }
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{r3.Sub(v.v, w.v)} }
func (v Vec3) Neg() Vec3 { return v.Mul(-1) }
func (v Vec3) Mul(c float64) Vec3 { return Vec3{r3.Scale(c, v.v)} }
func (v Vec3) Div(c float64) Vec3 { return V3(v.v.X/c, v.v.Y/c, v.v.Z/c) }

func (v Vec3) At(i int) float64 {
	switch i {
	case 0:
		return v.v.X
	case 1:
		return v.v.Y
	case 2:
		return v.v.Z
	}
	panic("vector axis index out of range")
}

func (v Vec3) To2D() Vec2 { return V2(v.v.X, v.v.Y) }

func (v Vec3) Magnitude() float64 { return r3.Norm(v.v) }
func (v Vec3) MagnitudeSq() float64 { return r3.Norm2(v.v) }

func (v Vec3) Dot(w Vec3) float64 { return r3.Dot(v.v, w.v) }
func (v Vec3) Cross(w Vec3) Vec3 { return Vec3{r3.Cross(v.v, w.v)} }

func (v Vec3) Distance(w Vec3) float64 { return r3.Norm(r3.Sub(v.v, w.v)) }
func (v Vec3) DistanceSq(w Vec3) float64 { return r3.Norm2(r3.Sub(v.v, w.v)) }

func (v Vec3) Normalize() Vec3 { return v.Div(v.Magnitude()) }

func (v Vec3) SafeNormalize() (Vec3, bool) {
	m := v.Magnitude()
	if vecbridge.IsZero(m) {
		return Vec3{}, false
	}
	return v.Div(m), true
}

func (v Vec3) UlpsEq(w Vec3, epsilon float64, maxUlps uint32) bool {
	return vecbridge.UlpsEq(v.v.X, w.v.X, epsilon, maxUlps) &&
		vecbridge.UlpsEq(v.v.Y, w.v.Y, epsilon, maxUlps) &&
		vecbridge.UlpsEq(v.v.Z, w.v.Z, epsilon, maxUlps)
}

func (v Vec3) AbsDiffEq(w Vec3, epsilon float64) bool {
	return vecbridge.AbsDiffEq(v.v.X, w.v.X, epsilon) &&
		vecbridge.AbsDiffEq(v.v.Y, w.v.Y, epsilon) &&
		vecbridge.AbsDiffEq(v.v.Z, w.v.Z, epsilon)
}
