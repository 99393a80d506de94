// Package modelvec adapts the unixpickle/model3d coordinate types to the
// vecbridge capability interfaces: Vec2 wraps model2d.Coord and Vec3 wraps
// model3d.Coord3D, both double precision. Operations the backing library
// provides (Add, Sub, Scale, Dot, Cross, Norm, Dist, SquaredDist) are
// delegated; the remainder is computed componentwise.
//
// The backing types expose their axes as struct fields named X, Y and Z,
// which would collide with the accessor methods on a plain defined type, so
// the wrappers hold the backing value in a field instead. Layout is
// unchanged and Coord/Coord3D recover the backing value without copying
// overhead.
package modelvec

import (
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"

	"github.com/vecbridge/vecbridge"
)

var _ = vecbridge.AssertPair[float64, Vec2, Vec3, *Vec2, *Vec3]

// Vec2 is a 2D vector backed by model2d.Coord.
type Vec2 struct {
	c model2d.Coord
}

// Vec3 is a 3D vector backed by model3d.Coord3D.
type Vec3 struct {
	c model3d.Coord3D
}

// V2 returns the vector (x, y).
func V2(x, y float64) Vec2 { return Vec2{model2d.Coord{X: x, Y: y}} }

// V3 returns the vector (x, y, z).
func V3(x, y, z float64) Vec3 { return Vec3{model3d.Coord3D{X: x, Y: y, Z: z}} }

// FromCoord wraps a model2d coordinate.
func FromCoord(c model2d.Coord) Vec2 { return Vec2{c} }

// FromCoord3D wraps a model3d coordinate.
func FromCoord3D(c model3d.Coord3D) Vec3 { return Vec3{c} }

// Coord returns the backing model2d coordinate.
func (v Vec2) Coord() model2d.Coord { return v.c }

// Coord3D returns the backing model3d coordinate.
func (v Vec3) Coord3D() model3d.Coord3D { return v.c }

func (v Vec2) New2D(x, y float64) Vec2 { return V2(x, y) }

func (v Vec2) X() float64 { return v.c.X }
func (v Vec2) Y() float64 { return v.c.Y }

func (v *Vec2) SetX(val float64) { v.c.X = val }
func (v *Vec2) SetY(val float64) { v.c.Y = val }
func (v *Vec2) XPtr() *float64 { return &v.c.X }
func (v *Vec2) YPtr() *float64 { return &v.c.Y }

func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.c.Add(w.c)} }
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.c.Sub(w.c)} }
func (v Vec2) Neg() Vec2 { return v.Mul(-1) }
func (v Vec2) Mul(c float64) Vec2 { return Vec2{v.c.Scale(c)} }
func (v Vec2) Div(c float64) Vec2 { return V2(v.c.X/c, v.c.Y/c) }

func (v Vec2) At(i int) float64 {
	switch i {
	case 0:
		return v.c.X
	case 1:
		return v.c.Y
	}
	panic("vector axis index out of range")
}

func (v Vec2) To3D(z float64) Vec3 { return V3(v.c.X, v.c.Y, z) }

func (v Vec2) Magnitude() float64 { return v.c.Norm() }
func (v Vec2) MagnitudeSq() float64 { return v.c.Dot(v.c) }

func (v Vec2) Dot(w Vec2) float64 { return v.c.Dot(w.c) }
func (v Vec2) PerpDot(w Vec2) float64 { return v.c.X*w.c.Y - v.c.Y*w.c.X }

func (v Vec2) Distance(w Vec2) float64 { return v.c.Dist(w.c) }
func (v Vec2) DistanceSq(w Vec2) float64 { return v.c.SquaredDist(w.c) }

func (v Vec2) Normalize() Vec2 { return v.Div(v.Magnitude()) }

func (v Vec2) SafeNormalize() (Vec2, bool) {
	m := v.Magnitude()
	if vecbridge.IsZero(m) {
		return Vec2{}, false
	}
	return v.Div(m), true
}

func (v Vec2) UlpsEq(w Vec2, epsilon float64, maxUlps uint32) bool {
	return vecbridge.UlpsEq(v.c.X, w.c.X, epsilon, maxUlps) &&
		vecbridge.UlpsEq(v.c.Y, w.c.Y, epsilon, maxUlps)
}

func (v Vec2) AbsDiffEq(w Vec2, epsilon float64) bool {
	return vecbridge.AbsDiffEq(v.c.X, w.c.X, epsilon) &&
		vecbridge.AbsDiffEq(v.c.Y, w.c.Y, epsilon)
}

func (v Vec3) New2D(x, y float64) Vec3 { return V3(x, y, 0) }
func (v Vec3) New3D(x, y, z float64) Vec3 { return V3(x, y, z) }

func (v Vec3) X() float64 { return v.c.X }
func (v Vec3) Y() float64 { return v.c.Y }
func (v Vec3) Z() float64 { return v.c.Z }

func (v *Vec3) SetX(val float64) { v.c.X = val }
func (v *Vec3) SetY(val float64) { v.c.Y = val }
func (v *Vec3) SetZ(val float64) { v.c.Z = val }
func (v *Vec3) XPtr() *float64 { return &v.c.X }
func (v *Vec3) YPtr() *float64 { return &v.c.Y }
func (v *Vec3) ZPtr() *float64 { return &v.c.Z }

func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.c.Add(w.c)} }
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.c.Sub(w.c)} }
func (v Vec3) Neg() Vec3 { return v.Mul(-1) }
func (v Vec3) Mul(c float64) Vec3 { return Vec3{v.c.Scale(c)} }
func (v Vec3) Div(c float64) Vec3 { return V3(v.c.X/c, v.c.Y/c, v.c.Z/c) }

func (v Vec3) At(i int) float64 {
	switch i {
	case 0:
		return v.c.X
	case 1:
		return v.c.Y
	case 2:
		return v.c.Z
	}
	panic("vector axis index out of range")
}

func (v Vec3) To2D() Vec2 { return V2(v.c.X, v.c.Y) }

func (v Vec3) Magnitude() float64 { return v.c.Norm() }
func (v Vec3) MagnitudeSq() float64 { return v.c.Dot(v.c) }

func (v Vec3) Dot(w Vec3) float64 { return v.c.Dot(w.c) }
func (v Vec3) Cross(w Vec3) Vec3 { return Vec3{v.c.Cross(w.c)} }

func (v Vec3) Distance(w Vec3) float64 { return v.c.Dist(w.c) }
func (v Vec3) DistanceSq(w Vec3) float64 { return v.c.SquaredDist(w.c) }

func (v Vec3) Normalize() Vec3 { return v.Div(v.Magnitude()) }

func (v Vec3) SafeNormalize() (Vec3, bool) {
	m := v.Magnitude()
	if vecbridge.IsZero(m) {
		return Vec3{}, false
	}
	return v.Div(m), true
}

func (v Vec3) UlpsEq(w Vec3, epsilon float64, maxUlps uint32) bool {
	return vecbridge.UlpsEq(v.c.X, w.c.X, epsilon, maxUlps) &&
		vecbridge.UlpsEq(v.c.Y, w.c.Y, epsilon, maxUlps) &&
		vecbridge.UlpsEq(v.c.Z, w.c.Z, epsilon, maxUlps)
}

func (v Vec3) AbsDiffEq(w Vec3, epsilon float64) bool {
	return vecbridge.AbsDiffEq(v.c.X, w.c.X, epsilon) &&
		vecbridge.AbsDiffEq(v.c.Y, w.c.Y, epsilon) &&
		vecbridge.AbsDiffEq(v.c.Z, w.c.Z, epsilon)
}
